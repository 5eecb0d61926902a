package domain

// Team is one side of a scheduled match.
type Team struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Match is a scheduled fixture from the static season calendar.
// Date is a day-month-year string like "9-Apr-25"; Time is a local
// kick-off string like "7:30 PM".
type Match struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Team1 Team   `json:"team1"`
	Team2 Team   `json:"team2"`
	Venue string `json:"venue"`
}

// TicketType is an entry of the stand-grid price table.
type TicketType struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Available int    `json:"available"`
}

// TicketOption is an entry of the summary-buttons price table. It shares
// ids with TicketType but carries its own, lower prices and a blurb
// instead of an availability count.
type TicketOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

// MatchSummary is the match subset carried through the booking flow.
type MatchSummary struct {
	Team1 string `json:"team1"`
	Team2 string `json:"team2"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Venue string `json:"venue"`
}

// BookingPayload is handed from seat selection to confirmation. The price
// is a snapshot taken at quote time and is not re-checked later.
type BookingPayload struct {
	Match      MatchSummary `json:"match"`
	TicketType string       `json:"ticket_type"`
	Price      int          `json:"price"`
	Quantity   int          `json:"quantity"`
}

// Customer holds the contact fields collected on confirmation. Free text;
// only non-emptiness is enforced at the transport edge.
type Customer struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// PaymentPayload is the reduced booking snapshot handed to the payment
// screen.
type PaymentPayload struct {
	Team1      string   `json:"team1"`
	Team2      string   `json:"team2"`
	TicketType string   `json:"ticket_type"`
	Quantity   int      `json:"quantity"`
	Total      int      `json:"total"`
	Customer   Customer `json:"customer"`
}

// DefaultMatchSummary is substituted when a quote arrives without match
// context, so the flow always renders.
func DefaultMatchSummary() MatchSummary {
	return MatchSummary{
		Team1: "Gujarat Titans",
		Team2: "Rajasthan Royals",
		Date:  "9 April 2025",
		Time:  "7:30 PM IST",
		Venue: "Narendra Modi Stadium, Ahmedabad, Gujarat",
	}
}

// DefaultBookingPayload is substituted when confirmation is reached
// without a quote.
func DefaultBookingPayload() BookingPayload {
	return BookingPayload{
		Match:      DefaultMatchSummary(),
		TicketType: "Premium Stand",
		Price:      1999,
		Quantity:   1,
	}
}

// DefaultPaymentPayload is substituted when the payment screen is reached
// without a confirmed booking.
func DefaultPaymentPayload() PaymentPayload {
	return PaymentPayload{
		Team1:      "Gujarat Titans",
		Team2:      "Rajasthan Royals",
		TicketType: "Premium Stand",
		Quantity:   1,
		Total:      311,
	}
}
