package http

import (
	"booking-checkout/checkout"
	"booking-checkout/common"
	"booking-checkout/common/otel"
	"booking-checkout/model"
	"booking-checkout/pricing"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"golang.org/x/text/message"
)

type OrderHttp struct {
	Backend checkout.Backend
	Poller  *checkout.Poller

	InrCurrencyFormatter *message.Printer
	TaxPercent           float64
}

func RegisterOrderHttp(
	mux *http.ServeMux,
	cfg *viper.Viper,
	backend checkout.Backend,
	poller *checkout.Poller,
	inrCurrencyFormatter *message.Printer,
) *OrderHttp {
	in := &OrderHttp{
		Backend:              backend,
		Poller:               poller,
		InrCurrencyFormatter: inrCurrencyFormatter,
		TaxPercent:           cfg.GetFloat64("pricing.tax_percent"),
	}

	mux.HandleFunc("GET /api/payments/status", in.status)
	mux.HandleFunc("GET /api/orders/{orderId}/summary", in.summary)

	return in
}

// status is the landing point of the gateway return URL. The order id
// arrives as a query parameter so its absence is representable, and
// maps to a terminal display state rather than a routing error.
func (in *OrderHttp) status(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "OrderHttp.status")
	defer span.End()

	result := in.Poller.Run(ctx, r.URL.Query().Get("order_id"))

	writeJSONResponse(w, http.StatusOK, result)
}

func (in *OrderHttp) summary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "OrderHttp.summary")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	orderId := r.PathValue("orderId")
	summary, err := in.Backend.OrderSummary(ctx, orderId)
	if err != nil {
		slog.WarnContext(ctx, "order summary lookup failed", traceIdAttr, slog.String("order_id", orderId))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	// reconstructed from the confirmed total, display only
	subtotal, tax := pricing.SubtotalFromTotal(decimal.NewFromFloat(summary.TotalAmount), in.TaxPercent)

	writeJSONResponse(w, http.StatusOK, model.OrderSummaryViewResponse{
		OrderSummaryResponse: summary,
		Subtotal:             subtotal.InexactFloat64(),
		Tax:                  tax.InexactFloat64(),
		TotalFormatted:       in.InrCurrencyFormatter.Sprintf("₹%.2f", summary.TotalAmount),
	})
}
