package model

// TicketBreakdownItem snapshots one ticket type of the event catalog
// together with the quantity currently selected for it. Code, label and
// unit price always come from the live catalog, only the quantity is
// user state.
type TicketBreakdownItem struct {
	Code      string  `json:"code"`
	Label     string  `json:"label"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type CheckoutSelection struct {
	Breakdown     []TicketBreakdownItem `json:"breakdown"`
	TotalQuantity int                   `json:"total_quantity"`
}

// AttendeeSlot is derived from the breakdown, one per unit of quantity,
// in catalog order with quantities repeated in place. It is never
// stored.
type AttendeeSlot struct {
	Code      string  `json:"code"`
	Label     string  `json:"label"`
	UnitPrice float64 `json:"unit_price"`
}

type AttendeeFormData struct {
	Name          string            `json:"name" validate:"required,max=100"`
	Email         string            `json:"email" validate:"required,email"`
	Phone         string            `json:"phone" validate:"required,max=20"`
	Instagram     string            `json:"instagram,omitempty" validate:"max=100"`
	CustomAnswers map[string]string `json:"custom_answers,omitempty"`
}
