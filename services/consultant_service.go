package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"pousada-backend/models"
)

// BusinessSummary is the aggregate snapshot the consultant grounds every
// answer on: plain totals plus one sample record per collection.
type BusinessSummary struct {
	Totals struct {
		Reservations int `json:"reservas"`
		Guests       int `json:"hospedes"`
		Maintenance  int `json:"manutencoes"`
		Finance      int `json:"financeiro_mov"`
		Users        int `json:"usuarios"`
	} `json:"totais"`
	Samples struct {
		Reservation *models.Reservation       `json:"reserva_exemplo,omitempty"`
		Guest       *models.Guest             `json:"hospede_exemplo,omitempty"`
		Finance     *models.Income            `json:"financeiro_exemplo,omitempty"`
		Maintenance *models.MaintenanceTicket `json:"manutencao_exemplo,omitempty"`
	} `json:"amostras"`
}

type intent struct {
	pattern *regexp.Regexp
	label   string
}

// Quantitative questions in Portuguese are answered straight from the totals,
// without involving the advisor.
var intents = []intent{
	{regexp.MustCompile(`(?i)\b(qt|quant[oa]s?)\b.*\busu(á|a)?rios?\b`), "usuarios"},
	{regexp.MustCompile(`(?i)\b(qt|quant[oa]s?)\b.*\breservas?\b`), "reservas"},
	{regexp.MustCompile(`(?i)\b(qt|quant[oa]s?)\b.*\bh(ó|o)spedes?\b`), "hospedes"},
	{regexp.MustCompile(`(?i)\b(qt|quant[oa]s?)\b.*\bmanuten(ç|c)(ã|a)o?(es)?\b`), "manutencoes"},
	{regexp.MustCompile(`(?i)\b(qt|quant[oa]s?)\b.*\bmovimenta(ç|c)(õ|o)es?\b|\bfinanceir`), "financeiro_mov"},
}

type ConsultantService struct {
	reservations ReservationStore
	guests       GuestStore
	maintenance  MaintenanceStore
	finance      FinanceStore
	users        UserStore
	logs         ConsultantLogStore
	advisor      Advisor
	logger       *zap.Logger
}

func NewConsultantService(
	reservations ReservationStore,
	guests GuestStore,
	maintenance MaintenanceStore,
	finance FinanceStore,
	users UserStore,
	logs ConsultantLogStore,
	advisor Advisor,
	logger *zap.Logger,
) *ConsultantService {
	return &ConsultantService{
		reservations: reservations,
		guests:       guests,
		maintenance:  maintenance,
		finance:      finance,
		users:        users,
		logs:         logs,
		advisor:      advisor,
		logger:       logger,
	}
}

// Summarize scans the collections and builds the grounding snapshot. A
// collection that fails to load contributes zero instead of failing the
// whole summary.
func (s *ConsultantService) Summarize() *BusinessSummary {
	summary := &BusinessSummary{}

	if reservations, err := s.reservations.List(); err == nil {
		summary.Totals.Reservations = len(reservations)
		if len(reservations) > 0 {
			summary.Samples.Reservation = &reservations[0]
		}
	}
	if guests, err := s.guests.List(); err == nil {
		summary.Totals.Guests = len(guests)
		if len(guests) > 0 {
			summary.Samples.Guest = &guests[0]
		}
	}
	if tickets, err := s.maintenance.List(); err == nil {
		summary.Totals.Maintenance = len(tickets)
		if len(tickets) > 0 {
			summary.Samples.Maintenance = &tickets[0]
		}
	}
	if incomes, err := s.finance.ListIncomes(); err == nil {
		summary.Totals.Finance = len(incomes)
		if len(incomes) > 0 {
			summary.Samples.Finance = &incomes[0]
		}
	}
	if users, err := s.users.List(); err == nil {
		summary.Totals.Users = len(users)
	}
	return summary
}

func detectIntent(question string) string {
	q := strings.ToLower(question)
	for _, it := range intents {
		if it.pattern.MatchString(q) {
			return it.label
		}
	}
	return ""
}

func answerFromTotals(label string, summary *BusinessSummary) string {
	t := summary.Totals
	switch label {
	case "usuarios":
		return fmt.Sprintf("Temos %d usuário(s) cadastrado(s).", t.Users)
	case "reservas":
		return fmt.Sprintf("Temos %d reserva(s) cadastrada(s).", t.Reservations)
	case "hospedes":
		return fmt.Sprintf("Temos %d hóspede(s) registrado(s).", t.Guests)
	case "manutencoes":
		return fmt.Sprintf("Temos %d manutenção(ões) registrada(s).", t.Maintenance)
	case "financeiro_mov":
		return fmt.Sprintf("Temos %d movimentação(ões) financeira(s) registrada(s).", t.Finance)
	default:
		return ""
	}
}

// Consult answers a natural-language question about the business. Counting
// questions are answered from the totals; anything else goes to the advisor
// with the summary attached. Every answer is logged with the mode that
// produced it.
func (s *ConsultantService) Consult(ctx context.Context, question string) (string, string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", "", fmt.Errorf("%w: question is required", ErrInvalidInput)
	}

	summary := s.Summarize()

	if label := detectIntent(question); label != "" {
		if answer := answerFromTotals(label, summary); answer != "" {
			s.saveLog(question, answer, "rule", summary)
			return answer, "rule", nil
		}
	}

	if s.advisor == nil {
		return "", "", fmt.Errorf("consultant advisor is not configured")
	}

	contextJSON, err := json.Marshal(summary)
	if err != nil {
		return "", "", err
	}
	answer, err := s.advisor.Answer(ctx, question, string(contextJSON))
	if err != nil {
		return "", "", err
	}
	answer = strings.TrimSpace(answer)

	s.saveLog(question, answer, "llm", summary)
	return answer, "llm", nil
}

func (s *ConsultantService) saveLog(question, answer, mode string, summary *BusinessSummary) {
	contextJSON, err := json.Marshal(summary.Totals)
	if err != nil {
		contextJSON = nil
	}
	entry := &models.ConsultantLog{
		Question: question,
		Answer:   answer,
		Mode:     mode,
		Context:  contextJSON,
	}
	if err := s.logs.Create(entry); err != nil {
		s.logger.Warn("failed to persist consultant log", zap.Error(err))
	}
}
