package httpgin

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matchday/matchday-go/internal/clock"
	"github.com/matchday/matchday-go/internal/domain"
	"github.com/matchday/matchday-go/internal/repository/memory"
	"github.com/matchday/matchday-go/internal/service"
	"github.com/matchday/matchday-go/internal/service/payment"
	"github.com/stretchr/testify/require"
)

func newTestRouter(now time.Time) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svcs := service.NewServices(memory.NewStore(), clock.NewFixed(now), service.Config{
		Payment: payment.Config{
			MerchantVPA:  "mswipe.1400111324038715@kotak",
			MerchantName: "BookMyShow",
		},
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRouter(svcs, logger)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rec := doJSON(t, newTestRouter(time.Now()), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListMatches(t *testing.T) {
	t.Parallel()

	// match23 is dated 9-Apr-25; everything from match24 on is upcoming.
	r := newTestRouter(time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC))

	t.Run("default slice of three", func(t *testing.T) {
		t.Parallel()
		rec := doJSON(t, r, http.MethodGet, "/matches", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var matches []domain.Match
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
		require.Len(t, matches, 3)
		require.Equal(t, "match24", matches[0].ID)
	})

	t.Run("view all", func(t *testing.T) {
		t.Parallel()
		rec := doJSON(t, r, http.MethodGet, "/matches?all=true", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var matches []domain.Match
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
		require.Len(t, matches, 47)
	})

	t.Run("etag revalidation", func(t *testing.T) {
		t.Parallel()
		first := doJSON(t, r, http.MethodGet, "/matches", nil)
		etag := first.Header().Get("ETag")
		require.NotEmpty(t, etag)

		req := httptest.NewRequest(http.MethodGet, "/matches", nil)
		req.Header.Set("If-None-Match", etag)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNotModified, rec.Code)
	})

	t.Run("unknown match id", func(t *testing.T) {
		t.Parallel()
		rec := doJSON(t, r, http.MethodGet, "/matches/match999", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSeatingMapFallback(t *testing.T) {
	t.Parallel()

	r := newTestRouter(time.Now())
	rec := doJSON(t, r, http.MethodGet, "/venues/seating-map?venue=Lord%27s", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SeatingMapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "/img/stadium-map.png", resp.ImageURL)
}

func TestBookingFlow(t *testing.T) {
	t.Parallel()

	r := newTestRouter(time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC))

	// Quote two premium stand tickets from the grid surface.
	rec := doJSON(t, r, http.MethodPost, "/bookings/quote", QuoteRequest{
		Match: &domain.MatchSummary{
			Team1: "Chennai Super Kings",
			Team2: "Kolkata Knight Riders",
			Date:  "11-Apr-25",
			Time:  "7:30 PM",
			Venue: "MA Chidambaram Stadium, Chennai",
		},
		Source:       "grid",
		TicketTypeID: "premium",
		Quantity:     2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var quote QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	require.Equal(t, 1998, quote.Subtotal)
	require.Equal(t, 999, quote.Booking.Price)

	// Confirm with customer details.
	rec = doJSON(t, r, http.MethodPost, "/bookings/confirm", ConfirmRequest{
		Booking: &quote.Booking,
		Customer: CustomerInput{
			FullName: "Rohit Verma",
			Email:    "rohit@example.com",
			Phone:    "9876543210",
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var confirm ConfirmResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &confirm))
	require.Equal(t, domain.Charges{Base: 1998, GST: 360, ServiceFee: 75, Total: 2433}, confirm.Charges)
	require.NotEmpty(t, confirm.Reference)

	// Google Pay refuses with the static notice.
	rec = doJSON(t, r, http.MethodPost, "/payments/dispatch", DispatchRequest{
		Provider: "googlepay",
		Payment:  &confirm.Payment,
	})
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), "Google Pay servers are currently down")

	// PhonePe dispatches a deep link carrying the total.
	rec = doJSON(t, r, http.MethodPost, "/payments/dispatch", DispatchRequest{
		Provider: "phonepe",
		Payment:  &confirm.Payment,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var dispatch DispatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dispatch))
	require.Contains(t, dispatch.DeepLink, "phonepe://pay?")
	require.Contains(t, dispatch.DeepLink, "am=2433")
}

func TestBookingValidation(t *testing.T) {
	t.Parallel()

	r := newTestRouter(time.Now())

	t.Run("quote requires a selection source", func(t *testing.T) {
		t.Parallel()
		rec := doJSON(t, r, http.MethodPost, "/bookings/quote", map[string]any{
			"ticket_type_id": "premium",
			"quantity":       1,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("quote rejects an unknown surface", func(t *testing.T) {
		t.Parallel()
		rec := doJSON(t, r, http.MethodPost, "/bookings/quote", map[string]any{
			"source":         "banner",
			"ticket_type_id": "premium",
			"quantity":       1,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("confirm requires all contact fields", func(t *testing.T) {
		t.Parallel()
		rec := doJSON(t, r, http.MethodPost, "/bookings/confirm", map[string]any{
			"customer": map[string]any{
				"full_name": "Rohit Verma",
				"email":     "rohit@example.com",
			},
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("confirm without a booking uses the example booking", func(t *testing.T) {
		t.Parallel()
		rec := doJSON(t, r, http.MethodPost, "/bookings/confirm", ConfirmRequest{
			Customer: CustomerInput{
				FullName: "Rohit Verma",
				Email:    "rohit@example.com",
				Phone:    "9876543210",
			},
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var confirm ConfirmResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &confirm))
		require.Equal(t, "Premium Stand", confirm.Payment.TicketType)
		require.Equal(t, 2434, confirm.Charges.Total)
	})
}

func TestListProviders(t *testing.T) {
	t.Parallel()

	r := newTestRouter(time.Now())
	rec := doJSON(t, r, http.MethodGet, "/payments/providers", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ProvidersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Providers, 4)
	require.False(t, resp.Cards.Available)
	require.False(t, resp.Wallet.Available)
	require.NotEmpty(t, resp.Notes)
}
