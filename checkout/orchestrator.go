package checkout

import (
	"booking-checkout/common"
	"booking-checkout/common/constant"
	"booking-checkout/common/errs"
	"booking-checkout/common/otel"
	"booking-checkout/model"
	"booking-checkout/outbound/gateway"
	"booking-checkout/pricing"
	"booking-checkout/selection"
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go/jetstream"
)

type Phase string

const (
	PhaseIdle          Phase = "IDLE"
	PhaseValidating    Phase = "VALIDATING"
	PhaseSubmitting    Phase = "SUBMITTING"
	PhaseRedirecting   Phase = "REDIRECTING"
	PhaseFreeConfirmed Phase = "FREE_CONFIRMED"
	PhaseFailed        Phase = "FAILED"
)

var ErrSubmitInFlight = &errs.HttpError{
	Code:    http.StatusConflict,
	Message: "Checkout already submitting",
}

// Orchestrator drives one checkout attempt through
// IDLE → VALIDATING → SUBMITTING and into a terminal phase. Exactly one
// submission per checkout key is in flight; a second trigger while
// submitting is ignored. A failed attempt resets to IDLE with the
// selection and attendee data intact so the user can retry.
type Orchestrator struct {
	Backend   Backend
	Gateway   *gateway.Gateway
	Store     selection.Store
	Publisher jetstream.Publisher
	Validate  *validator.Validate

	TaxPercent float64

	guards guardSet
}

type SubmitInput struct {
	SellerId  string
	Slug      string
	Customer  model.Customer
	Attendees []model.AttendeeFormData
	ReturnUrl string
}

type SubmitOutcome struct {
	Phase       Phase
	OrderId     string
	RedirectUrl string
	SlotErrors  SlotErrors
}

func (o *Orchestrator) Submit(ctx context.Context, in SubmitInput) (SubmitOutcome, error) {
	guardKey := selection.Key(in.SellerId, in.Slug)
	if !o.guards.begin(guardKey) {
		return SubmitOutcome{Phase: PhaseSubmitting}, ErrSubmitInFlight
	}
	defer o.guards.finish(guardKey, false)

	ctx, span := otel.Tracer.Start(ctx, "Orchestrator.Submit")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "checkout submit received", traceIdAttr,
		slog.String("seller", in.SellerId), slog.String("slug", in.Slug))

	event, err := o.Backend.Event(ctx, in.SellerId, in.Slug)
	if err != nil {
		common.UtilSpanError(span, err)
		return SubmitOutcome{Phase: PhaseFailed}, err
	}

	state, found, err := o.Store.Get(ctx, in.SellerId, in.Slug)
	if err != nil {
		common.UtilSpanError(span, err)
		return SubmitOutcome{Phase: PhaseFailed}, err
	}

	// same first-visit fallback the GET endpoint applies, so a submit
	// against an untouched checkout prices the default selection the
	// user was shown
	if !found {
		state.Selection.Breakdown = selection.DefaultBreakdown(event.TicketTypes)
	}

	sel := selection.Reconcile(state.Selection.Breakdown, event.TicketTypes)
	slots := selection.Expand(sel.Breakdown)
	if len(slots) == 0 {
		return SubmitOutcome{Phase: PhaseIdle}, &errs.HttpError{Code: http.StatusBadRequest, Message: "No tickets selected"}
	}
	if len(in.Attendees) != len(slots) {
		return SubmitOutcome{Phase: PhaseIdle}, &errs.HttpError{
			Code:    http.StatusBadRequest,
			Message: "Attendee count does not match selected tickets",
			Data:    map[string]any{"expected": len(slots), "got": len(in.Attendees)},
		}
	}

	// persist typed data before anything can fail, a failed attempt must
	// not cost the user their forms
	state.Selection = sel
	state.Attendees = selection.RetainAttendees(in.Attendees, len(slots))
	if err := o.Store.Set(ctx, in.SellerId, in.Slug, state); err != nil {
		slog.WarnContext(ctx, "failed to persist checkout state before submit", traceIdAttr, slog.Any(constant.LogFieldErr, err))
	}

	if slotErrors := ValidateAttendees(o.Validate, state.Attendees, event.CustomQuestions); slotErrors != nil {
		slog.DebugContext(ctx, "attendee validation failed", traceIdAttr, slog.Int("slots_with_errors", len(slotErrors)))
		return SubmitOutcome{Phase: PhaseIdle, SlotErrors: slotErrors},
			&errs.HttpError{Code: http.StatusBadRequest, Message: "Validation failed", Data: slotErrors}
	}

	totals := pricing.ComputeTotals(sel.Breakdown, state.Discount, o.TaxPercent)

	req := model.CreateOrderRequest{
		EventId:         event.Id,
		ReturnUrl:       in.ReturnUrl,
		Customer:        in.Customer,
		TicketBreakdown: sel.Breakdown,
		Attendees:       buildOrderAttendees(slots, state.Attendees),
		ExpectedTotal:   totals.Total.InexactFloat64(),
	}
	if state.Discount != nil {
		req.DiscountCode = state.Discount.Code
	}

	resp, err := o.Backend.CreateOrder(ctx, req)
	if err != nil {
		slog.ErrorContext(ctx, "order creation failed", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return SubmitOutcome{Phase: PhaseFailed}, err
	}

	o.publishCompleted(ctx, event, resp, totals.Total.InexactFloat64())

	if resp.FreeRsvp {
		slog.InfoContext(ctx, "free rsvp confirmed", traceIdAttr, slog.String("order_id", resp.OrderId))
		return SubmitOutcome{Phase: PhaseFreeConfirmed, OrderId: resp.OrderId}, nil
	}

	redirect := o.Gateway.RedirectURL(resp.SessionId, appendOrderId(in.ReturnUrl, resp.OrderId))

	slog.InfoContext(ctx, "checkout redirecting to gateway", traceIdAttr,
		slog.String("order_id", resp.OrderId), slog.Any(constant.LogFieldResponse, resp))

	return SubmitOutcome{Phase: PhaseRedirecting, OrderId: resp.OrderId, RedirectUrl: redirect}, nil
}

func (o *Orchestrator) publishCompleted(ctx context.Context, event model.EventResponse, resp model.CreateOrderResponse, total float64) {
	// dashboards only, never fails the checkout
	_ = common.PublishActivity(ctx, o.Publisher, constant.SubjectCheckoutCompleted, model.CheckoutCompletedEventMessage{
		OrderId:     resp.OrderId,
		EventId:     event.Id,
		SellerId:    event.SellerId,
		TotalAmount: total,
		FreeRsvp:    resp.FreeRsvp,
	})
}

func buildOrderAttendees(slots []model.AttendeeSlot, attendees []model.AttendeeFormData) []model.OrderAttendee {
	out := make([]model.OrderAttendee, len(slots))
	for i, slot := range slots {
		out[i] = model.OrderAttendee{TicketCode: slot.Code, Form: attendees[i]}
	}
	return out
}

func appendOrderId(returnUrl, orderId string) string {
	u, err := url.Parse(returnUrl)
	if err != nil {
		return returnUrl
	}

	q := u.Query()
	q.Set("order_id", orderId)
	u.RawQuery = q.Encode()

	return u.String()
}
