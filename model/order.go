package model

const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusFailed   = "failed"
	OrderStatusRefunded = "refunded"
)

type Customer struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,max=20"`
}

type OrderAttendee struct {
	TicketCode string           `json:"ticket_code"`
	Form       AttendeeFormData `json:"form"`
}

type CreateOrderRequest struct {
	EventId         string                `json:"event_id"`
	ReturnUrl       string                `json:"return_url"`
	Customer        Customer              `json:"customer"`
	TicketBreakdown []TicketBreakdownItem `json:"ticket_breakdown"`
	Attendees       []OrderAttendee       `json:"attendees"`
	ExpectedTotal   float64               `json:"expected_total"`
	DiscountCode    string                `json:"discount_code,omitempty"`
}

type CreateOrderResponse struct {
	OrderId   string `json:"order_id"`
	SessionId string `json:"session_id,omitempty"`
	FreeRsvp  bool   `json:"free_rsvp,omitempty"`
}

type VerifyPaymentRequest struct {
	OrderId string `json:"order_id" validate:"required"`
}

type VerifyPaymentResponse struct {
	OrderId string `json:"order_id"`
	Status  string `json:"status"`
}

type OrderSummaryResponse struct {
	OrderId         string                `json:"order_id"`
	EventTitle      string                `json:"event_title"`
	StartsAt        string                `json:"starts_at"`
	EndsAt          string                `json:"ends_at"`
	Location        string                `json:"location,omitempty"`
	TicketBreakdown []TicketBreakdownItem `json:"ticket_breakdown"`
	DiscountCode    string                `json:"discount_code,omitempty"`
	TotalAmount     float64               `json:"total_amount"`
}
