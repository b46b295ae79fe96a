package selection

import (
	"booking-checkout/common/constant"
	"booking-checkout/model"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Store keeps one CheckoutState per (seller, event slug) pair. It is a
// convenience cache scoped to the browsing session: entries expire with
// the TTL and concurrent writers race last-write-wins.
type Store struct {
	KV  KV
	TTL time.Duration
}

func Key(sellerId, slug string) string {
	return fmt.Sprintf(constant.CheckoutStateKey, sellerId, slug)
}

func (s Store) Get(ctx context.Context, sellerId, slug string) (model.CheckoutState, bool, error) {
	raw, ok, err := s.KV.Get(ctx, Key(sellerId, slug))
	if err != nil || !ok {
		return model.CheckoutState{}, false, err
	}

	var state model.CheckoutState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		// a corrupt cache row is the same as an absent one
		return model.CheckoutState{}, false, nil
	}

	return state, true, nil
}

func (s Store) Set(ctx context.Context, sellerId, slug string, state model.CheckoutState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return s.KV.Set(ctx, Key(sellerId, slug), string(raw), s.TTL)
}

// DefaultBreakdown is the first-visit selection: one of the event's
// first ticket type, zero of the rest.
func DefaultBreakdown(ticketTypes []model.TicketType) []model.TicketBreakdownItem {
	breakdown := make([]model.TicketBreakdownItem, 0, len(ticketTypes))
	for i, tt := range ticketTypes {
		qty := 0
		if i == 0 {
			qty = 1
		}
		breakdown = append(breakdown, model.TicketBreakdownItem{
			Code:      tt.Code,
			Label:     tt.Label,
			Quantity:  qty,
			UnitPrice: tt.Price,
		})
	}
	return breakdown
}

// Reconcile reads stored quantities against the live catalog: rows
// whose code left the catalog are dropped, catalog types missing from
// the stored row come in at quantity zero, and label and price always
// come from the catalog, never from storage. Quantities never go
// negative, whatever the stored row says.
func Reconcile(stored []model.TicketBreakdownItem, ticketTypes []model.TicketType) model.CheckoutSelection {
	qtyByCode := make(map[string]int, len(stored))
	for _, row := range stored {
		qty := row.Quantity
		if qty < 0 {
			qty = 0
		}
		qtyByCode[row.Code] = qty
	}

	breakdown := make([]model.TicketBreakdownItem, 0, len(ticketTypes))
	for _, tt := range ticketTypes {
		breakdown = append(breakdown, model.TicketBreakdownItem{
			Code:      tt.Code,
			Label:     tt.Label,
			Quantity:  qtyByCode[tt.Code],
			UnitPrice: tt.Price,
		})
	}

	return model.CheckoutSelection{
		Breakdown:     breakdown,
		TotalQuantity: TotalQuantity(breakdown),
	}
}

func TotalQuantity(breakdown []model.TicketBreakdownItem) int {
	total := 0
	for _, row := range breakdown {
		if row.Quantity > 0 {
			total += row.Quantity
		}
	}
	return total
}

// SetQuantity clamps the requested quantity into [0, remainingSpots]
// and keeps the selection-wide sum within remaining spots too.
// remainingSpots of zero or less means unbounded. The returned
// selection is fully recomputed, never partially updated.
func SetQuantity(sel model.CheckoutSelection, code string, quantity, remainingSpots int) model.CheckoutSelection {
	breakdown := make([]model.TicketBreakdownItem, len(sel.Breakdown))
	copy(breakdown, sel.Breakdown)

	otherQty := 0
	for _, row := range breakdown {
		if row.Code != code && row.Quantity > 0 {
			otherQty += row.Quantity
		}
	}

	if quantity < 0 {
		quantity = 0
	}
	if remainingSpots > 0 {
		limit := remainingSpots - otherQty
		if limit < 0 {
			limit = 0
		}
		if quantity > limit {
			quantity = limit
		}
	}

	for i := range breakdown {
		if breakdown[i].Code == code {
			breakdown[i].Quantity = quantity
		}
	}

	return model.CheckoutSelection{
		Breakdown:     breakdown,
		TotalQuantity: TotalQuantity(breakdown),
	}
}

// Expand turns the breakdown into one attendee slot per unit of
// quantity, in catalog order with quantities repeated in place.
func Expand(breakdown []model.TicketBreakdownItem) []model.AttendeeSlot {
	slots := make([]model.AttendeeSlot, 0, TotalQuantity(breakdown))
	for _, row := range breakdown {
		for i := 0; i < row.Quantity; i++ {
			slots = append(slots, model.AttendeeSlot{
				Code:      row.Code,
				Label:     row.Label,
				UnitPrice: row.UnitPrice,
			})
		}
	}
	return slots
}

// RetainAttendees keeps typed form data by slot index when the
// breakdown changes: surviving slots keep their data, vanished slots
// drop theirs, new slots start empty. Dropped data is not resurrected
// when a slot comes back.
func RetainAttendees(existing []model.AttendeeFormData, slotCount int) []model.AttendeeFormData {
	attendees := make([]model.AttendeeFormData, slotCount)
	for i := 0; i < slotCount; i++ {
		if i < len(existing) {
			attendees[i] = existing[i]
		}
		if attendees[i].CustomAnswers == nil {
			attendees[i].CustomAnswers = map[string]string{}
		}
	}
	return attendees
}
