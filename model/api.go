package model

type ErrorResponse struct {
	Error string `json:"error"`
	Data  any    `json:"data,omitempty"`
}

// CheckoutState is the per-(seller, slug) session record: the current
// selection plus the in-progress attendee forms and the applied
// discount, all of it cache-only UI state.
type CheckoutState struct {
	Selection CheckoutSelection  `json:"selection"`
	Attendees []AttendeeFormData `json:"attendees,omitempty"`
	Discount  *AppliedDiscount   `json:"discount,omitempty"`
}

type PriceBreakdown struct {
	EntryFee float64 `json:"entry_fee"`
	Discount float64 `json:"discount,omitempty"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type SetQuantityRequest struct {
	Code     string `json:"code" validate:"required"`
	Quantity int    `json:"quantity"`
}

type ApplyDiscountRequest struct {
	Code string `json:"code" validate:"required,max=50"`
}

type SaveAttendeesRequest struct {
	Attendees []AttendeeFormData `json:"attendees"`
}

type CheckoutStateResponse struct {
	Event     EventResponse      `json:"event"`
	Selection CheckoutSelection  `json:"selection"`
	Slots     []AttendeeSlot     `json:"slots"`
	Attendees []AttendeeFormData `json:"attendees"`
	Discount  *AppliedDiscount   `json:"discount,omitempty"`
	Pricing   PriceBreakdown     `json:"pricing"`
	Lines     []string           `json:"pricing_lines"`
}

type SubmitCheckoutRequest struct {
	Customer  Customer           `json:"customer"`
	Attendees []AttendeeFormData `json:"attendees" validate:"required,min=1"`
	ReturnUrl string             `json:"return_url" validate:"required,url"`
}

type SubmitCheckoutResponse struct {
	OrderId       string `json:"order_id"`
	RedirectUrl   string `json:"redirect_url,omitempty"`
	FreeConfirmed bool   `json:"free_confirmed,omitempty"`
}

type PaymentStatusResponse struct {
	OrderId string `json:"order_id,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type OrderSummaryViewResponse struct {
	OrderSummaryResponse
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	TotalFormatted string  `json:"total_formatted"`
}

type CheckoutCompletedEventMessage struct {
	OrderId     string  `json:"order_id"`
	EventId     string  `json:"event_id"`
	SellerId    string  `json:"seller_id"`
	TotalAmount float64 `json:"total_amount"`
	FreeRsvp    bool    `json:"free_rsvp"`
}

type PaymentSettledEventMessage struct {
	OrderId string `json:"order_id"`
	Status  string `json:"status"`
}
