package booking

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/matchday/matchday-go/internal/domain"
	"github.com/matchday/matchday-go/internal/repository"
	"github.com/matchday/matchday-go/internal/repository/memory"
)

type Service struct {
	store *memory.Store
}

func New(store *memory.Store) *Service {
	return &Service{store: store}
}

// QuoteInput carries the seat-selection choices forward. Match is
// optional; a nil match quotes against the canonical example fixture.
type QuoteInput struct {
	Match    *domain.MatchSummary
	Source   domain.SelectionSource
	TicketID string
	Quantity int
}

// Quote resolves the chosen ticket id against the price table of the
// surface it was selected from and snapshots the result into a
// BookingPayload. Quantity is floored at 1.
//
// Returns booking.ErrTicketTypeNotFound if the id is missing from the
// active table and booking.ErrUnknownSource for a source other than the
// two selection surfaces.
func (s *Service) Quote(in QuoteInput) (*domain.BookingPayload, error) {
	const op = "service.booking.Quote"

	match := domain.DefaultMatchSummary()
	if in.Match != nil {
		match = *in.Match
	}

	var (
		name  string
		price int
	)

	switch in.Source {
	case domain.SourceGrid:
		t, err := s.store.GetTicketType(in.TicketID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%s: %w", op, ErrTicketTypeNotFound)
			}

			return nil, fmt.Errorf("%s: %w", op, err)
		}
		name, price = t.Name, t.Price
	case domain.SourceButtons:
		t, err := s.store.GetTicketOption(in.TicketID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%s: %w", op, ErrTicketTypeNotFound)
			}

			return nil, fmt.Errorf("%s: %w", op, err)
		}
		name, price = t.Name, t.Price
	default:
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownSource)
	}

	return &domain.BookingPayload{
		Match:      match,
		TicketType: name,
		Price:      price,
		Quantity:   int(domain.NewQuantity(in.Quantity)),
	}, nil
}

// ConfirmResult bundles everything the payment screen needs.
type ConfirmResult struct {
	Reference uuid.UUID
	Charges   domain.Charges
	Payment   domain.PaymentPayload
}

// Confirm derives the charge breakdown for a quoted booking and
// repackages it, with the customer's contact details, into the payment
// payload. A nil booking confirms the canonical example booking. The
// quoted price is taken as-is and not re-validated against the catalog.
func (s *Service) Confirm(b *domain.BookingPayload, customer domain.Customer) *ConfirmResult {
	payload := domain.DefaultBookingPayload()
	if b != nil {
		payload = *b
	}

	charges := domain.ComputeCharges(payload.Price, payload.Quantity)

	return &ConfirmResult{
		Reference: uuid.New(),
		Charges:   charges,
		Payment: domain.PaymentPayload{
			Team1:      payload.Match.Team1,
			Team2:      payload.Match.Team2,
			TicketType: payload.TicketType,
			Quantity:   payload.Quantity,
			Total:      charges.Total,
			Customer:   customer,
		},
	}
}
