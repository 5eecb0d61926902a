// Package memory backs the repository layer with the static season
// catalog. All reference data is fixed at compile time; nothing is ever
// written, so the store needs no locking.
package memory

import (
	"github.com/matchday/matchday-go/internal/domain"
	"github.com/matchday/matchday-go/internal/repository"
)

type Store struct {
	matches       []domain.Match
	ticketTypes   []domain.TicketType
	ticketOptions []domain.TicketOption
	seatingMaps   map[string]string
}

func NewStore() *Store {
	return &Store{
		matches:       matches,
		ticketTypes:   ticketTypes,
		ticketOptions: ticketOptions,
		seatingMaps:   seatingMaps,
	}
}

// Matches returns the full season calendar in source order.
func (s *Store) Matches() []domain.Match {
	out := make([]domain.Match, len(s.matches))
	copy(out, s.matches)
	return out
}

func (s *Store) GetMatch(id string) (*domain.Match, error) {
	for i := range s.matches {
		if s.matches[i].ID == id {
			m := s.matches[i]
			return &m, nil
		}
	}
	return nil, repository.ErrNotFound
}

// TicketTypes returns the stand-grid price table.
func (s *Store) TicketTypes() []domain.TicketType {
	out := make([]domain.TicketType, len(s.ticketTypes))
	copy(out, s.ticketTypes)
	return out
}

// TicketOptions returns the summary-buttons price table.
func (s *Store) TicketOptions() []domain.TicketOption {
	out := make([]domain.TicketOption, len(s.ticketOptions))
	copy(out, s.ticketOptions)
	return out
}

func (s *Store) GetTicketType(id string) (*domain.TicketType, error) {
	for i := range s.ticketTypes {
		if s.ticketTypes[i].ID == id {
			t := s.ticketTypes[i]
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) GetTicketOption(id string) (*domain.TicketOption, error) {
	for i := range s.ticketOptions {
		if s.ticketOptions[i].ID == id {
			t := s.ticketOptions[i]
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

// SeatingMap resolves a venue name to its seating-plan image. Unknown
// venues fall back to the generic stadium map so the lookup never fails.
func (s *Store) SeatingMap(venue string) string {
	if url, ok := s.seatingMaps[venue]; ok {
		return url
	}
	return fallbackSeatingMap
}
