package model

const (
	DiscountTypeFlat       = "flat"
	DiscountTypePercentage = "percentage"
)

type AppliedDiscount struct {
	Code           string  `json:"code"`
	Type           string  `json:"type"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	DiscountCodeId string  `json:"discount_code_id,omitempty"`
}

type ValidateDiscountRequest struct {
	Code    string                `json:"code" validate:"required,max=50"`
	EventId string                `json:"event_id" validate:"required"`
	Items   []TicketBreakdownItem `json:"items"`
}
