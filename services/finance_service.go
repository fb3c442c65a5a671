package services

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"pousada-backend/models"
	"pousada-backend/utils"
)

type IncomeInput struct {
	Description string      `json:"description"`
	Date        string      `json:"date"`
	Amount      interface{} `json:"amount"`
	Method      string      `json:"method"`
}

type ExpenseInput struct {
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
	Amount      interface{} `json:"amount"`
}

// IncomeEntry is a merged revenue row: a manual income or an automatic one
// derived from a reservation whose payment was confirmed.
type IncomeEntry struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Origin      string  `json:"origin"`
}

type Receivable struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	DueDate string `json:"dueDate"`
	Amount  string `json:"amount"`
	Status  string `json:"status"`
}

type FinancialDashboard struct {
	KPIs struct {
		GrossRevenue    string `json:"grossRevenue"`
		Receivables     string `json:"receivables"`
		Expenses        string `json:"expenses"`
		EstimatedProfit string `json:"estimatedProfit"`
	} `json:"kpis"`
	PaymentOverview      []PaymentSlice `json:"paymentOverview"`
	Insights             []string       `json:"insights"`
	ReceivablesCompanies []Receivable   `json:"receivablesCompanies"`
	ReceivablesGeneral   []Receivable   `json:"receivablesGeneral"`
}

type PaymentSlice struct {
	Method string `json:"method"`
	Amount string `json:"amount"`
}

type FinanceService struct {
	finance      FinanceStore
	reservations ReservationStore
	logger       *zap.Logger
}

func NewFinanceService(finance FinanceStore, reservations ReservationStore, logger *zap.Logger) *FinanceService {
	return &FinanceService{finance: finance, reservations: reservations, logger: logger}
}

// paymentConfirmed reads a reservation's payment state leniently: legacy rows
// carry Portuguese labels, current ones the canonical vocabulary.
func paymentConfirmed(res models.Reservation) bool {
	status := strings.ToLower(res.PaymentStatus)
	if status == "" {
		status = strings.ToLower(res.Status)
	}
	for _, marker := range []string{models.PaymentConfirmed, "pago", "paid", "aprovado"} {
		if strings.Contains(status, marker) {
			return true
		}
	}
	return false
}

// ListIncomes merges manual incomes with the automatic revenue of confirmed
// reservation payments, newest date first.
func (s *FinanceService) ListIncomes() ([]IncomeEntry, error) {
	manual, err := s.finance.ListIncomes()
	if err != nil {
		return nil, err
	}
	reservations, err := s.reservations.List()
	if err != nil {
		return nil, err
	}

	entries := make([]IncomeEntry, 0, len(manual))
	for _, inc := range manual {
		entries = append(entries, IncomeEntry{
			ID:          fmt.Sprintf("income-%d", inc.ID),
			Description: inc.Description,
			Date:        inc.Date,
			Amount:      inc.Amount,
			Method:      inc.Method,
			Origin:      "Manual",
		})
	}

	for _, res := range reservations {
		if !paymentConfirmed(res) || res.Value <= 0 {
			continue
		}
		method := "Outros"
		if res.PaymentMethod != nil && *res.PaymentMethod != "" {
			method = *res.PaymentMethod
		}
		entries = append(entries, IncomeEntry{
			ID:          fmt.Sprintf("reservation-%d", res.ID),
			Description: "Reserva - " + res.OccupantLabel(),
			Date:        res.CheckOut,
			Amount:      res.Value,
			Method:      method,
			Origin:      "Automática",
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	return entries, nil
}

func (s *FinanceService) CreateIncome(in IncomeInput) (*models.Income, error) {
	amount := utils.ParseAmount(in.Amount)
	if strings.TrimSpace(in.Description) == "" || strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.Method) == "" || amount == 0 {
		return nil, fmt.Errorf("%w: description, date, amount and method are required", ErrInvalidInput)
	}
	if _, err := utils.ParseDate(in.Date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, in.Date)
	}

	income := &models.Income{
		Description: in.Description,
		Date:        in.Date,
		Amount:      amount,
		Method:      in.Method,
	}
	if err := s.finance.CreateIncome(income); err != nil {
		return nil, err
	}
	return income, nil
}

func (s *FinanceService) ListExpenses() ([]models.Expense, error) {
	return s.finance.ListExpenses()
}

func (s *FinanceService) CreateExpense(in ExpenseInput) (*models.Expense, error) {
	amount := utils.ParseAmount(in.Amount)
	if strings.TrimSpace(in.Description) == "" || strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.Date) == "" || amount == 0 {
		return nil, fmt.Errorf("%w: description, category, date and amount are required", ErrInvalidInput)
	}
	if _, err := utils.ParseDate(in.Date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, in.Date)
	}

	expense := &models.Expense{
		Description: in.Description,
		Category:    in.Category,
		Date:        in.Date,
		Amount:      amount,
	}
	if err := s.finance.CreateExpense(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Dashboard aggregates revenue, receivables, expenses and the payment-method
// split. Cancelled reservations are ignored entirely.
func (s *FinanceService) Dashboard() (*FinancialDashboard, error) {
	reservations, err := s.reservations.List()
	if err != nil {
		return nil, err
	}
	incomes, err := s.finance.ListIncomes()
	if err != nil {
		return nil, err
	}
	expenses, err := s.finance.ListExpenses()
	if err != nil {
		return nil, err
	}

	out := &FinancialDashboard{
		PaymentOverview:      []PaymentSlice{},
		Insights:             []string{},
		ReceivablesCompanies: []Receivable{},
		ReceivablesGeneral:   []Receivable{},
	}

	totalRevenue, pendingValue, totalExpenses := 0.0, 0.0, 0.0
	methods := map[string]float64{}

	for _, res := range reservations {
		if res.IsCancelled() {
			continue
		}

		value := res.Value
		method := "Outros"
		if res.PaymentMethod != nil && *res.PaymentMethod != "" {
			method = *res.PaymentMethod
		}

		dueDate := res.CheckOut
		if dueDate == "" {
			dueDate = "--"
		}
		entry := Receivable{
			ID:      fmt.Sprintf("reservation-%d", res.ID),
			Name:    res.OccupantLabel(),
			DueDate: dueDate,
			Amount:  utils.FormatBRL(value),
			Status:  "Em aberto",
		}
		isCompany := res.CompanyID != nil || res.CompanyName != ""

		switch {
		case paymentConfirmed(res):
			if value > 0 {
				totalRevenue += value
				methods[method] += value
			}
			entry.Status = "Pago"
			appendReceivable(out, entry, isCompany)
		case value > 0:
			pendingValue += value
			appendReceivable(out, entry, isCompany)
		}
	}

	for _, inc := range incomes {
		method := inc.Method
		if method == "" {
			method = "Outros"
		}
		totalRevenue += inc.Amount
		methods[method] += inc.Amount

		name := inc.Description
		if name == "" {
			name = "Receita manual"
		}
		out.ReceivablesGeneral = append(out.ReceivablesGeneral, Receivable{
			ID:      fmt.Sprintf("income-%d", inc.ID),
			Name:    name,
			DueDate: inc.Date,
			Amount:  utils.FormatBRL(inc.Amount),
			Status:  "Pago",
		})
	}

	for _, exp := range expenses {
		totalExpenses += exp.Amount
	}

	profit := totalRevenue - totalExpenses
	out.KPIs.GrossRevenue = utils.FormatBRL(totalRevenue)
	out.KPIs.Receivables = utils.FormatBRL(pendingValue)
	out.KPIs.Expenses = utils.FormatBRL(totalExpenses)
	out.KPIs.EstimatedProfit = utils.FormatBRL(profit)

	if pendingValue > 0 {
		out.Insights = append(out.Insights, "Existem reservas pendentes aguardando pagamento.")
	}
	if totalRevenue > 0 {
		out.Insights = append(out.Insights, "Reservas confirmadas e receitas manuais estão gerando receita consistente.")
	}
	if totalExpenses > 0 {
		out.Insights = append(out.Insights, "Despesas registradas estão afetando o lucro estimado.")
	}
	if profit < 0 {
		out.Insights = append(out.Insights, "Lucro negativo: reveja tarifas e custos operacionais.")
	}

	methodNames := make([]string, 0, len(methods))
	for name, amount := range methods {
		if amount > 0 {
			methodNames = append(methodNames, name)
		}
	}
	sort.Strings(methodNames)
	for _, name := range methodNames {
		out.PaymentOverview = append(out.PaymentOverview, PaymentSlice{
			Method: name,
			Amount: utils.FormatBRL(methods[name]),
		})
	}
	return out, nil
}

func appendReceivable(out *FinancialDashboard, entry Receivable, isCompany bool) {
	if isCompany {
		out.ReceivablesCompanies = append(out.ReceivablesCompanies, entry)
	} else {
		out.ReceivablesGeneral = append(out.ReceivablesGeneral, entry)
	}
}
