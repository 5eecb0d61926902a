package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/matchday/matchday-go/internal/clock"
	"github.com/matchday/matchday-go/internal/domain"
	"github.com/matchday/matchday-go/internal/repository"
	"github.com/matchday/matchday-go/internal/repository/memory"
)

// matchDateLayout parses calendar dates like "9-Apr-25".
const matchDateLayout = "2-Jan-06"

type Config struct {
	// DefaultVisible is the slice length served until the client asks
	// for the full list.
	DefaultVisible int
}

type Service struct {
	store *memory.Store
	clk   clock.Clock
	cfg   Config
}

func New(store *memory.Store, clk clock.Clock, cfg Config) *Service {
	if cfg.DefaultVisible <= 0 {
		cfg.DefaultVisible = 3
	}

	return &Service{
		store: store,
		clk:   clk,
		cfg:   cfg,
	}
}

// ListUpcoming returns matches dated today or later, in calendar order.
// When showAll is false only the first DefaultVisible matches are
// returned; toggling showAll changes the slice length and nothing else.
// Matches with unparseable dates are skipped silently.
func (s *Service) ListUpcoming(showAll bool) []domain.Match {
	now := s.clk.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var upcoming []domain.Match
	for _, m := range s.store.Matches() {
		d, err := time.ParseInLocation(matchDateLayout, m.Date, now.Location())
		if err != nil {
			continue
		}
		if !d.Before(todayStart) {
			upcoming = append(upcoming, m)
		}
	}

	if !showAll && len(upcoming) > s.cfg.DefaultVisible {
		upcoming = upcoming[:s.cfg.DefaultVisible]
	}

	return upcoming
}

// GetMatch retrieves a single fixture by id.
//
// Returns catalog.ErrMatchNotFound if the id is not in the calendar.
func (s *Service) GetMatch(id string) (*domain.Match, error) {
	const op = "service.catalog.GetMatch"

	m, err := s.store.GetMatch(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrMatchNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

// TicketTypes returns the stand-grid price table.
func (s *Service) TicketTypes() []domain.TicketType {
	return s.store.TicketTypes()
}

// TicketOptions returns the summary-buttons price table.
func (s *Service) TicketOptions() []domain.TicketOption {
	return s.store.TicketOptions()
}

// SeatingMap resolves a venue name to a seating-plan image, falling back
// to the generic stadium map for unknown venues.
func (s *Service) SeatingMap(venue string) string {
	return s.store.SeatingMap(venue)
}
