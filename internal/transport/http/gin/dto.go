package httpgin

import (
	"github.com/matchday/matchday-go/internal/domain"
	"github.com/matchday/matchday-go/internal/service/payment"
)

// QuoteRequest carries the seat-selection choices. Match is optional and
// defaults to the example fixture when absent; Quantity below 1 is
// floored at 1.
type QuoteRequest struct {
	Match        *domain.MatchSummary `json:"match"`
	Source       string               `json:"source" binding:"required,oneof=grid buttons"`
	TicketTypeID string               `json:"ticket_type_id" binding:"required"`
	Quantity     int                  `json:"quantity"`
}

type QuoteResponse struct {
	Booking  domain.BookingPayload `json:"booking"`
	Subtotal int                   `json:"subtotal"`
}

// CustomerInput requires all three contact fields to be present but
// enforces no format beyond that.
type CustomerInput struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

type ConfirmRequest struct {
	Booking  *domain.BookingPayload `json:"booking"`
	Customer CustomerInput          `json:"customer" binding:"required"`
}

type ConfirmResponse struct {
	Reference string                `json:"reference"`
	Charges   domain.Charges        `json:"charges"`
	Payment   domain.PaymentPayload `json:"payment"`
}

type TicketTablesResponse struct {
	Stand   []domain.TicketType   `json:"stand"`
	Summary []domain.TicketOption `json:"summary"`
}

type SeatingMapResponse struct {
	Venue    string `json:"venue"`
	ImageURL string `json:"image_url"`
}

// PaymentSection is a permanently disabled payment method placeholder.
type PaymentSection struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

type ProvidersResponse struct {
	Providers []payment.ProviderInfo `json:"providers"`
	Cards     PaymentSection         `json:"cards"`
	Wallet    PaymentSection         `json:"wallet"`
	Notes     []string               `json:"notes"`
	Support   string                 `json:"support"`
}

type DispatchRequest struct {
	Provider string                 `json:"provider" binding:"required"`
	Payment  *domain.PaymentPayload `json:"payment"`
}

type DispatchResponse struct {
	Provider string `json:"provider"`
	DeepLink string `json:"deep_link"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
