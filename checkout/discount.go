package checkout

import (
	"booking-checkout/common"
	"booking-checkout/common/constant"
	"booking-checkout/common/errs"
	"booking-checkout/common/otel"
	"booking-checkout/model"
	"booking-checkout/selection"
	"context"
	"log/slog"
	"net/http"
)

// ErrValidationPending is returned when a discount validation for the
// same checkout is already in flight. Reapplying is a no-op, never
// queued.
var ErrValidationPending = &errs.HttpError{
	Code:    http.StatusConflict,
	Message: "Discount validation already in progress",
}

// DiscountResolver applies and removes coupon codes. Validity is
// authoritative on the backend; a successful response is trusted for
// the current request only and is never cached.
type DiscountResolver struct {
	Backend Backend
	Store   selection.Store

	guards guardSet
}

// Apply validates code against the backend and, on success, replaces
// whatever discount was applied before (no stacking). A rejection is
// surfaced verbatim and leaves the existing discount untouched.
func (r *DiscountResolver) Apply(ctx context.Context, event model.EventResponse, state model.CheckoutState, code string) (model.CheckoutState, error) {
	guardKey := selection.Key(event.SellerId, event.Slug)
	if !r.guards.begin(guardKey) {
		return state, ErrValidationPending
	}
	defer r.guards.finish(guardKey, false)

	ctx, span := otel.Tracer.Start(ctx, "DiscountResolver.Apply")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	applied, err := r.Backend.ValidateDiscount(ctx, model.ValidateDiscountRequest{
		Code:    code,
		EventId: event.Id,
		Items:   state.Selection.Breakdown,
	})
	if err != nil {
		slog.InfoContext(ctx, "discount validation rejected", traceIdAttr,
			slog.String("code", code), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return state, err
	}

	state.Discount = &applied
	if err := r.Store.Set(ctx, event.SellerId, event.Slug, state); err != nil {
		slog.ErrorContext(ctx, "failed to persist applied discount", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return state, err
	}

	slog.InfoContext(ctx, "discount applied", traceIdAttr, slog.String("code", applied.Code))

	return state, nil
}

// Remove clears the applied discount; pricing recomputes with a zero
// discount from here on.
func (r *DiscountResolver) Remove(ctx context.Context, event model.EventResponse, state model.CheckoutState) (model.CheckoutState, error) {
	state.Discount = nil
	if err := r.Store.Set(ctx, event.SellerId, event.Slug, state); err != nil {
		return state, err
	}
	return state, nil
}
