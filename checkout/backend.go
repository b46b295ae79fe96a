package checkout

import (
	"booking-checkout/model"
	"context"
)

// Backend is the slice of the remote booking API the checkout flow
// needs. outbound/bookingapi.Client is the production implementation.
type Backend interface {
	Event(ctx context.Context, sellerId, slug string) (model.EventResponse, error)
	ValidateDiscount(ctx context.Context, req model.ValidateDiscountRequest) (model.AppliedDiscount, error)
	CreateOrder(ctx context.Context, req model.CreateOrderRequest) (model.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, orderId string) (model.VerifyPaymentResponse, error)
	OrderSummary(ctx context.Context, orderId string) (model.OrderSummaryResponse, error)
}
