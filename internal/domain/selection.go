package domain

// SelectionSource names the UI surface a ticket type was picked from.
// The two surfaces resolve prices against different tables, so the
// active selection must remember where it came from.
type SelectionSource string

const (
	SourceNone    SelectionSource = ""
	SourceGrid    SelectionSource = "grid"
	SourceButtons SelectionSource = "buttons"
)

// Selection is the tagged selection state of the seat-selection screen:
// nothing selected, a ticket id selected from the stand grid, or a ticket
// id selected from the summary buttons. The zero value is no selection.
type Selection struct {
	source   SelectionSource
	ticketID string
}

func NoSelection() Selection {
	return Selection{}
}

func GridSelection(ticketID string) Selection {
	return Selection{source: SourceGrid, ticketID: ticketID}
}

func ButtonSelection(ticketID string) Selection {
	return Selection{source: SourceButtons, ticketID: ticketID}
}

func (s Selection) Source() SelectionSource { return s.source }

// TicketID returns the selected ticket id, if any.
func (s Selection) TicketID() (string, bool) {
	return s.ticketID, s.source != SourceNone
}

// SelectFromGrid applies a click on the stand grid. A grid click always
// wins over a prior button selection of a different id and never
// deselects; clicking the id already selected from the buttons leaves the
// button selection in place.
func (s Selection) SelectFromGrid(ticketID string) Selection {
	if s.source == SourceButtons && ticketID == s.ticketID {
		return s
	}
	return GridSelection(ticketID)
}

// SelectFromButtons applies a click on a summary button. It overrides a
// grid selection of a different id, is a no-op on the id currently
// selected from the grid, and toggles off the id currently selected from
// the buttons. The grid/buttons asymmetry mirrors the shipped behavior.
func (s Selection) SelectFromButtons(ticketID string) Selection {
	if s.source == SourceGrid {
		if ticketID == s.ticketID {
			return s
		}
		return ButtonSelection(ticketID)
	}
	if s.source == SourceButtons && ticketID == s.ticketID {
		return NoSelection()
	}
	return ButtonSelection(ticketID)
}

// Quantity is a ticket count, floored at 1.
type Quantity int

// NewQuantity clamps n up to the minimum of 1.
func NewQuantity(n int) Quantity {
	if n < 1 {
		return 1
	}
	return Quantity(n)
}

func (q Quantity) Increment() Quantity {
	return q + 1
}

// Decrement lowers the count by one; decrementing from 1 is a no-op.
func (q Quantity) Decrement() Quantity {
	if q <= 1 {
		return 1
	}
	return q - 1
}
