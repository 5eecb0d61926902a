package payment

import (
	"fmt"
	"net/url"

	"github.com/matchday/matchday-go/internal/domain"
)

// Provider identifies a UPI app from the fixed payment-options set.
type Provider string

const (
	ProviderPhonePe   Provider = "phonepe"
	ProviderPaytm     Provider = "paytm"
	ProviderGooglePay Provider = "googlepay"
	// ProviderOther covers any installed UPI app via the generic scheme.
	ProviderOther Provider = "other"
)

// App-specific deep-link schemes. The Google Pay scheme is kept for
// completeness but never dispatched, see Dispatch.
const (
	schemePhonePe   = "phonepe://pay"
	schemePaytm     = "paytmmp://pay"
	schemeGooglePay = "gpay://upi/pay"
	schemeGeneric   = "upi://pay"
)

// GooglePayNotice is the static message shown instead of dispatching to
// Google Pay.
const GooglePayNotice = "Google Pay servers are currently down. Please try another payment method."

type Config struct {
	// MerchantVPA is the UPI virtual payment address collecting the
	// payment.
	MerchantVPA string
	// MerchantName is the payee display name embedded in the link.
	MerchantName string
}

type Service struct {
	cfg Config
}

func New(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// ProviderInfo describes one entry of the payment-options listing.
type ProviderInfo struct {
	ID        Provider `json:"id"`
	Name      string   `json:"name"`
	Available bool     `json:"available"`
	Notice    string   `json:"notice,omitempty"`
}

// Providers lists the fixed UPI app set in display order.
func (s *Service) Providers() []ProviderInfo {
	return []ProviderInfo{
		{ID: ProviderPhonePe, Name: "PhonePe", Available: true},
		{ID: ProviderPaytm, Name: "Paytm", Available: true},
		{ID: ProviderGooglePay, Name: "Google Pay", Available: false, Notice: GooglePayNotice},
		{ID: ProviderOther, Name: "Other UPI APP", Available: true},
	}
}

// Dispatch builds the deep link handed to the host environment for the
// chosen provider. The invocation is one-way: the link is returned to the
// caller to open, and no settlement or confirmation ever flows back.
//
// Returns payment.ErrProviderUnavailable for Google Pay, which is
// hardcoded to refuse, and payment.ErrUnknownProvider for ids outside the
// fixed set. A nil payload dispatches the canonical example payment.
func (s *Service) Dispatch(provider Provider, p *domain.PaymentPayload) (string, error) {
	const op = "service.payment.Dispatch"

	payload := domain.DefaultPaymentPayload()
	if p != nil {
		payload = *p
	}

	desc := fmt.Sprintf("Tickets for %s vs %s", payload.Team1, payload.Team2)

	switch provider {
	case ProviderPhonePe:
		return s.appLink(schemePhonePe, payload.Total, desc), nil
	case ProviderPaytm:
		return s.appLink(schemePaytm, payload.Total, desc), nil
	case ProviderGooglePay:
		return "", fmt.Errorf("%s: %w", op, ErrProviderUnavailable)
	case ProviderOther:
		return s.genericLink(payload.Total, desc), nil
	default:
		return "", fmt.Errorf("%s: %w", op, ErrUnknownProvider)
	}
}

func (s *Service) appLink(scheme string, amount int, desc string) string {
	return fmt.Sprintf("%s?pa=%s&pn=%s&am=%d&tn=%s&cu=INR",
		scheme, s.cfg.MerchantVPA, s.cfg.MerchantName, amount, url.QueryEscape(desc))
}

// genericLink builds the provider-agnostic UPI link. The parameter order
// differs from the app-specific links (tn before am) and is part of the
// observed wire format.
func (s *Service) genericLink(amount int, desc string) string {
	return fmt.Sprintf("%s?pa=%s&pn=%s&tn=%s&am=%d&cu=INR",
		schemeGeneric, s.cfg.MerchantVPA, s.cfg.MerchantName, url.QueryEscape(desc), amount)
}
