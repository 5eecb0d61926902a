package domain

import "math"

// GSTRate is the tax rate applied to the base amount.
const GSTRate = 0.18

// ServiceFee is a flat per-booking fee in currency minor-unit-agnostic
// whole rupees.
const ServiceFee = 75

// Charges is the derived price breakdown shown on confirmation. It is
// computed on demand and never stored.
type Charges struct {
	Base       int `json:"base"`
	GST        int `json:"gst"`
	ServiceFee int `json:"service_fee"`
	Total      int `json:"total"`
}

// ComputeCharges derives the breakdown for a unit price and quantity:
// base = price × quantity, GST = round(base × 0.18), plus the flat
// service fee. Rounding is half away from zero, so a 13.5 GST rounds to
// 14.
func ComputeCharges(price, quantity int) Charges {
	base := price * quantity
	gst := int(math.Round(float64(base) * GSTRate))

	return Charges{
		Base:       base,
		GST:        gst,
		ServiceFee: ServiceFee,
		Total:      base + gst + ServiceFee,
	}
}
