package http

import (
	"booking-checkout/checkout"
	"booking-checkout/common"
	"booking-checkout/common/constant"
	"booking-checkout/common/errs"
	"booking-checkout/common/otel"
	"booking-checkout/model"
	"booking-checkout/pricing"
	"booking-checkout/selection"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/text/message"
)

type CheckoutHttp struct {
	Backend      checkout.Backend
	Store        selection.Store
	Resolver     *checkout.DiscountResolver
	Orchestrator *checkout.Orchestrator
	Validate     *validator.Validate

	InrCurrencyFormatter *message.Printer
	TaxPercent           float64
}

func RegisterCheckoutHttp(
	mux *http.ServeMux,
	cfg *viper.Viper,
	backend checkout.Backend,
	store selection.Store,
	resolver *checkout.DiscountResolver,
	orchestrator *checkout.Orchestrator,
	validate *validator.Validate,
	inrCurrencyFormatter *message.Printer,
) *CheckoutHttp {
	in := &CheckoutHttp{
		Backend:              backend,
		Store:                store,
		Resolver:             resolver,
		Orchestrator:         orchestrator,
		Validate:             validate,
		InrCurrencyFormatter: inrCurrencyFormatter,
		TaxPercent:           cfg.GetFloat64("pricing.tax_percent"),
	}

	mux.HandleFunc("GET /api/checkout/{seller}/{slug}", in.state)
	mux.HandleFunc("PUT /api/checkout/{seller}/{slug}/quantity", in.setQuantity)
	mux.HandleFunc("PUT /api/checkout/{seller}/{slug}/attendees", in.saveAttendees)
	mux.HandleFunc("POST /api/checkout/{seller}/{slug}/discount", in.applyDiscount)
	mux.HandleFunc("DELETE /api/checkout/{seller}/{slug}/discount", in.removeDiscount)
	mux.HandleFunc("POST /api/checkout/{seller}/{slug}/submit", in.submit)

	return in
}

// loadCheckout restores the session state for one (seller, slug) pair
// and reconciles it against the live catalog. Absence falls back to the
// default breakdown: one of the first ticket type.
func (in *CheckoutHttp) loadCheckout(ctx context.Context, seller, slug string) (model.EventResponse, model.CheckoutState, error) {
	event, err := in.Backend.Event(ctx, seller, slug)
	if err != nil {
		return model.EventResponse{}, model.CheckoutState{}, err
	}

	state, found, err := in.Store.Get(ctx, seller, slug)
	if err != nil {
		return model.EventResponse{}, model.CheckoutState{}, err
	}

	if !found {
		state.Selection.Breakdown = selection.DefaultBreakdown(event.TicketTypes)
	}

	state.Selection = selection.Reconcile(state.Selection.Breakdown, event.TicketTypes)
	state.Attendees = selection.RetainAttendees(state.Attendees, state.Selection.TotalQuantity)

	return event, state, nil
}

func (in *CheckoutHttp) stateResponse(event model.EventResponse, state model.CheckoutState) model.CheckoutStateResponse {
	totals := pricing.ComputeTotals(state.Selection.Breakdown, state.Discount, in.TaxPercent)

	return model.CheckoutStateResponse{
		Event:     event,
		Selection: state.Selection,
		Slots:     selection.Expand(state.Selection.Breakdown),
		Attendees: state.Attendees,
		Discount:  state.Discount,
		Pricing:   totals.Breakdown(),
		Lines:     totals.Lines(in.InrCurrencyFormatter),
	}
}

func (in *CheckoutHttp) state(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "CheckoutHttp.state")
	defer span.End()

	event, state, err := in.loadCheckout(ctx, r.PathValue("seller"), r.PathValue("slug"))
	if err != nil {
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, in.stateResponse(event, state))
}

func (in *CheckoutHttp) setQuantity(w http.ResponseWriter, r *http.Request) {
	var req model.SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "CheckoutHttp.setQuantity")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	seller, slug := r.PathValue("seller"), r.PathValue("slug")
	event, state, err := in.loadCheckout(ctx, seller, slug)
	if err != nil {
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	// full recomputation chain, never a partial total update
	state.Selection = selection.SetQuantity(state.Selection, req.Code, req.Quantity, event.SpotsAvailable)
	state.Attendees = selection.RetainAttendees(state.Attendees, state.Selection.TotalQuantity)

	if err := in.Store.Set(ctx, seller, slug, state); err != nil {
		slog.ErrorContext(ctx, "failed to persist selection", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	slog.DebugContext(ctx, "quantity updated", traceIdAttr,
		slog.String("code", req.Code), slog.Int("quantity", req.Quantity))

	writeJSONResponse(w, http.StatusOK, in.stateResponse(event, state))
}

func (in *CheckoutHttp) saveAttendees(w http.ResponseWriter, r *http.Request) {
	var req model.SaveAttendeesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "CheckoutHttp.saveAttendees")
	defer span.End()

	seller, slug := r.PathValue("seller"), r.PathValue("slug")
	event, state, err := in.loadCheckout(ctx, seller, slug)
	if err != nil {
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	state.Attendees = selection.RetainAttendees(req.Attendees, state.Selection.TotalQuantity)

	if err := in.Store.Set(ctx, seller, slug, state); err != nil {
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, in.stateResponse(event, state))
}

func (in *CheckoutHttp) applyDiscount(w http.ResponseWriter, r *http.Request) {
	var req model.ApplyDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "CheckoutHttp.applyDiscount")
	defer span.End()

	event, state, err := in.loadCheckout(ctx, r.PathValue("seller"), r.PathValue("slug"))
	if err != nil {
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	state, err = in.Resolver.Apply(ctx, event, state, req.Code)
	if err != nil {
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, in.stateResponse(event, state))
}

func (in *CheckoutHttp) removeDiscount(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "CheckoutHttp.removeDiscount")
	defer span.End()

	event, state, err := in.loadCheckout(ctx, r.PathValue("seller"), r.PathValue("slug"))
	if err != nil {
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	state, err = in.Resolver.Remove(ctx, event, state)
	if err != nil {
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, in.stateResponse(event, state))
}

func (in *CheckoutHttp) submit(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "CheckoutHttp.submit")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "checkout submit request", traceIdAttr, slog.Any(constant.LogFieldPayload, req.Customer.Email))

	outcome, err := in.Orchestrator.Submit(ctx, checkout.SubmitInput{
		SellerId:  r.PathValue("seller"),
		Slug:      r.PathValue("slug"),
		Customer:  req.Customer,
		Attendees: req.Attendees,
		ReturnUrl: req.ReturnUrl,
	})
	if err != nil {
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "checkout submit done", traceIdAttr,
		slog.String("phase", string(outcome.Phase)), slog.String("order_id", outcome.OrderId))

	writeJSONResponse(w, http.StatusOK, model.SubmitCheckoutResponse{
		OrderId:       outcome.OrderId,
		RedirectUrl:   outcome.RedirectUrl,
		FreeConfirmed: outcome.Phase == checkout.PhaseFreeConfirmed,
	})
}
