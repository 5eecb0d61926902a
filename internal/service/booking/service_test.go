package booking

import (
	"testing"

	"github.com/matchday/matchday-go/internal/domain"
	"github.com/matchday/matchday-go/internal/repository/memory"
	"github.com/stretchr/testify/require"
)

func TestService_Quote(t *testing.T) {
	t.Parallel()

	svc := New(memory.NewStore())

	match := &domain.MatchSummary{
		Team1: "Chennai Super Kings",
		Team2: "Kolkata Knight Riders",
		Date:  "11-Apr-25",
		Time:  "7:30 PM",
		Venue: "MA Chidambaram Stadium, Chennai",
	}

	t.Run("grid selection prices from the stand table", func(t *testing.T) {
		t.Parallel()
		b, err := svc.Quote(QuoteInput{
			Match:    match,
			Source:   domain.SourceGrid,
			TicketID: "premium",
			Quantity: 2,
		})
		require.NoError(t, err)
		require.Equal(t, "Premium Stand", b.TicketType)
		require.Equal(t, 999, b.Price)
		require.Equal(t, 2, b.Quantity)
		require.Equal(t, *match, b.Match)
	})

	t.Run("button selection prices from the summary table", func(t *testing.T) {
		t.Parallel()
		b, err := svc.Quote(QuoteInput{
			Match:    match,
			Source:   domain.SourceButtons,
			TicketID: "premium",
			Quantity: 2,
		})
		require.NoError(t, err)
		require.Equal(t, "Premium Stand", b.TicketType)
		require.Equal(t, 200, b.Price, "the summary table carries its own prices for the same id")
	})

	t.Run("quantity below one is floored", func(t *testing.T) {
		t.Parallel()
		b, err := svc.Quote(QuoteInput{
			Match:    match,
			Source:   domain.SourceGrid,
			TicketID: "general",
			Quantity: 0,
		})
		require.NoError(t, err)
		require.Equal(t, 1, b.Quantity)
	})

	t.Run("missing match falls back to the example fixture", func(t *testing.T) {
		t.Parallel()
		b, err := svc.Quote(QuoteInput{
			Source:   domain.SourceGrid,
			TicketID: "vip",
			Quantity: 1,
		})
		require.NoError(t, err)
		require.Equal(t, domain.DefaultMatchSummary(), b.Match)
	})

	t.Run("id absent from the active table", func(t *testing.T) {
		t.Parallel()
		// premium-plus only exists in the stand table.
		_, err := svc.Quote(QuoteInput{
			Match:    match,
			Source:   domain.SourceButtons,
			TicketID: "premium-plus",
			Quantity: 1,
		})
		require.ErrorIs(t, err, ErrTicketTypeNotFound)
	})

	t.Run("unknown source", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Quote(QuoteInput{
			Match:    match,
			Source:   "banner",
			TicketID: "vip",
			Quantity: 1,
		})
		require.ErrorIs(t, err, ErrUnknownSource)
	})
}

func TestService_Confirm(t *testing.T) {
	t.Parallel()

	svc := New(memory.NewStore())

	customer := domain.Customer{
		FullName: "Rohit Verma",
		Email:    "rohit@example.com",
		Phone:    "9876543210",
	}

	t.Run("derives charges and repackages the payload", func(t *testing.T) {
		t.Parallel()
		res := svc.Confirm(&domain.BookingPayload{
			Match: domain.MatchSummary{
				Team1: "Chennai Super Kings",
				Team2: "Kolkata Knight Riders",
				Date:  "11-Apr-25",
				Time:  "7:30 PM",
				Venue: "MA Chidambaram Stadium, Chennai",
			},
			TicketType: "Premium Stand",
			Price:      999,
			Quantity:   2,
		}, customer)

		require.Equal(t, domain.Charges{Base: 1998, GST: 360, ServiceFee: 75, Total: 2433}, res.Charges)
		require.Equal(t, domain.PaymentPayload{
			Team1:      "Chennai Super Kings",
			Team2:      "Kolkata Knight Riders",
			TicketType: "Premium Stand",
			Quantity:   2,
			Total:      2433,
			Customer:   customer,
		}, res.Payment)
		require.NotEqual(t, res.Reference.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("quoted price is trusted as-is", func(t *testing.T) {
		t.Parallel()
		// A caller-supplied price never seen in either table still prices
		// the booking; totals are not re-validated upstream.
		res := svc.Confirm(&domain.BookingPayload{
			Match:      domain.DefaultMatchSummary(),
			TicketType: "Premium Stand",
			Price:      1,
			Quantity:   1,
		}, customer)

		require.Equal(t, 1+0+75, res.Charges.Total)
	})

	t.Run("missing booking falls back to the example booking", func(t *testing.T) {
		t.Parallel()
		res := svc.Confirm(nil, customer)

		require.Equal(t, "Premium Stand", res.Payment.TicketType)
		require.Equal(t, 1, res.Payment.Quantity)
		// 1999 + round(359.82) + 75
		require.Equal(t, 2434, res.Charges.Total)
	})
}
