package services

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"pousada-backend/models"
	"pousada-backend/utils"
)

// OccupancyService is the read-only aggregator over the reservation set.
// Every query is a full scan; reservations whose dates cannot be parsed are
// excluded from the aggregate and reported through the Skipped counter
// instead of failing the whole read.
type OccupancyService struct {
	reservations ReservationStore
	rooms        RoomStore
	logger       *zap.Logger
}

func NewOccupancyService(reservations ReservationStore, rooms RoomStore, logger *zap.Logger) *OccupancyService {
	return &OccupancyService{reservations: reservations, rooms: rooms, logger: logger}
}

type MonthOccupancy struct {
	Year    int         `json:"year"`
	Month   int         `json:"month"`
	Days    map[int]int `json:"days"`
	Skipped int         `json:"skipped,omitempty"`
}

// MonthlyOccupancy counts, for each day of the month, the reservations
// occupying that day. The interval is half-open: the check-out day itself is
// not occupied. Cancelled reservations do not count.
func (s *OccupancyService) MonthlyOccupancy(year, month int) (*MonthOccupancy, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidInput, month)
	}

	all, err := s.reservations.List()
	if err != nil {
		return nil, err
	}

	totalDays := utils.DaysInMonth(year, time.Month(month))
	days := make(map[int]int, totalDays)
	for day := 1; day <= totalDays; day++ {
		days[day] = 0
	}

	skipped := 0
	for _, res := range all {
		if res.IsCancelled() {
			continue
		}
		in, out, ok := stayDatesLenient(res)
		if !ok {
			skipped++
			continue
		}
		for day := 1; day <= totalDays; day++ {
			d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			if !d.Before(in) && d.Before(out) {
				days[day]++
			}
		}
	}

	if skipped > 0 {
		s.logger.Warn("occupancy scan skipped malformed reservations", zap.Int("skipped", skipped))
	}
	return &MonthOccupancy{Year: year, Month: month, Days: days, Skipped: skipped}, nil
}

type Movement struct {
	ID          uint   `json:"id"`
	Guest       string `json:"guest"`
	Room        string `json:"room"`
	GuestsCount int    `json:"guestsCount,omitempty"`
	CheckIn     string `json:"checkIn,omitempty"`
	CheckOut    string `json:"checkOut,omitempty"`
	StatusLabel string `json:"statusLabel"`
}

type Movements struct {
	CheckIns  []Movement `json:"checkins"`
	CheckOuts []Movement `json:"checkouts"`
	Skipped   int        `json:"skipped,omitempty"`
}

// DailyMovements partitions reservations into arrivals and departures on the
// given date. Cancelled reservations are included: the movement lists mirror
// what was booked, not what survived.
func (s *OccupancyService) DailyMovements(date string) (*Movements, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return s.movementsBetween(day, day)
}

// PeriodMovements lists arrivals and departures falling inside the named
// period: today, the current Monday-to-Sunday week, or the calendar month.
func (s *OccupancyService) PeriodMovements(period string) (*Movements, error) {
	today := utils.Today()
	var start, end time.Time
	switch period {
	case "today", "":
		start, end = today, today
	case "week":
		start, end = utils.WeekRange(today)
	case "month":
		start, end = utils.MonthRange(today)
	default:
		return nil, fmt.Errorf("%w: period %q (use today, week or month)", ErrInvalidInput, period)
	}
	return s.movementsBetween(start, end)
}

func (s *OccupancyService) movementsBetween(start, end time.Time) (*Movements, error) {
	all, err := s.reservations.List()
	if err != nil {
		return nil, err
	}

	out := &Movements{CheckIns: []Movement{}, CheckOuts: []Movement{}}
	for _, res := range all {
		in, outDate, ok := stayDatesLenient(res)
		if !ok {
			out.Skipped++
			continue
		}

		room := res.RoomNumber
		if room == "" {
			room = res.RoomCode
		}
		if room == "" {
			room = "—"
		}
		guests := res.Guests
		if guests <= 0 {
			guests = 1
		}

		if !in.Before(start) && !in.After(end) {
			out.CheckIns = append(out.CheckIns, Movement{
				ID:          res.ID,
				Guest:       res.OccupantLabel(),
				Room:        room,
				GuestsCount: guests,
				CheckIn:     res.CheckIn,
				StatusLabel: "Entrada",
			})
		}
		if !outDate.Before(start) && !outDate.After(end) {
			out.CheckOuts = append(out.CheckOuts, Movement{
				ID:          res.ID,
				Guest:       res.OccupantLabel(),
				Room:        room,
				GuestsCount: guests,
				CheckOut:    res.CheckOut,
				StatusLabel: "Saída",
			})
		}
	}
	return out, nil
}

type DashboardSummary struct {
	Summary struct {
		OccupancyRate    string `json:"occupancyRate"`
		CheckinsPending  int    `json:"checkinsPending"`
		CheckoutsPending int    `json:"checkoutsPending"`
		Maintenance      int    `json:"maintenance"`
	} `json:"summary"`
	RoomsStatus struct {
		Available   int `json:"available"`
		Occupied    int `json:"occupied"`
		Maintenance int `json:"maintenance"`
	} `json:"roomsStatus"`
	TodayMovements struct {
		Checkins  []Movement `json:"checkins"`
		Checkouts []Movement `json:"checkouts"`
	} `json:"todayMovements"`
	Skipped int `json:"skipped,omitempty"`
}

// Dashboard builds the landing-page summary: rooms by status, today's
// arrivals and departures, and the occupancy rate (occupied over total, zero
// when there are no rooms).
func (s *OccupancyService) Dashboard() (*DashboardSummary, error) {
	rooms, err := s.rooms.List()
	if err != nil {
		return nil, err
	}
	all, err := s.reservations.List()
	if err != nil {
		return nil, err
	}

	out := &DashboardSummary{}
	out.TodayMovements.Checkins = []Movement{}
	out.TodayMovements.Checkouts = []Movement{}

	roomLabels := make(map[string]string, len(rooms))
	occupied, maintenance := 0, 0
	for _, room := range rooms {
		label := utils.CleanRoomLabel(room.Label())
		roomLabels[strconv.FormatUint(uint64(room.ID), 10)] = label
		if room.RoomCode != "" {
			roomLabels[room.RoomCode] = label
		}
		if room.RoomNumber != "" {
			roomLabels[room.RoomNumber] = label
		}

		switch room.Status {
		case models.StatusOccupied:
			occupied++
		case models.StatusMaintenance:
			maintenance++
		default:
			out.RoomsStatus.Available++
		}
	}
	out.RoomsStatus.Occupied = occupied
	out.RoomsStatus.Maintenance = maintenance

	today := utils.Today()
	for _, res := range all {
		in, outDate, ok := stayDatesLenient(res)
		if !ok {
			out.Skipped++
			continue
		}

		label := s.dashboardRoomLabel(res, roomLabels)
		if in.Equal(today) {
			out.TodayMovements.Checkins = append(out.TodayMovements.Checkins, Movement{
				ID: res.ID, Guest: res.OccupantLabel(), Room: label, StatusLabel: "Entrada",
			})
		}
		if outDate.Equal(today) {
			out.TodayMovements.Checkouts = append(out.TodayMovements.Checkouts, Movement{
				ID: res.ID, Guest: res.OccupantLabel(), Room: label, StatusLabel: "Saída",
			})
		}
	}

	rate := 0.0
	if len(rooms) > 0 {
		rate = float64(occupied) / float64(len(rooms)) * 100
	}
	out.Summary.OccupancyRate = fmt.Sprintf("%.1f%%", rate)
	out.Summary.CheckinsPending = len(out.TodayMovements.Checkins)
	out.Summary.CheckoutsPending = len(out.TodayMovements.Checkouts)
	out.Summary.Maintenance = maintenance
	return out, nil
}

// dashboardRoomLabel resolves a reservation's room to the cleaned display
// label, going through the directory map when the reference is known there.
func (s *OccupancyService) dashboardRoomLabel(res models.Reservation, labels map[string]string) string {
	for _, ref := range []string{res.RoomNumber, res.RoomCode} {
		if ref == "" {
			continue
		}
		if label, ok := labels[ref]; ok {
			return label
		}
		return utils.CleanRoomLabel(ref)
	}
	if res.RoomID != nil {
		if label, ok := labels[strconv.FormatUint(uint64(*res.RoomID), 10)]; ok {
			return label
		}
	}
	return "—"
}

// stayDatesLenient parses a reservation's stay leniently; ok is false when
// either date is unreadable.
func stayDatesLenient(res models.Reservation) (in, out time.Time, ok bool) {
	in, errIn := utils.ParseDate(res.CheckIn)
	out, errOut := utils.ParseDate(res.CheckOut)
	if errIn != nil || errOut != nil {
		return time.Time{}, time.Time{}, false
	}
	return in, out, true
}
