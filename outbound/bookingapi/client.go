package bookingapi

import (
	"booking-checkout/common"
	"booking-checkout/common/constant"
	"booking-checkout/common/errs"
	"booking-checkout/common/otel"
	"booking-checkout/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// Client is the thin HTTP client to the remote booking backend: event
// catalog, discount validation, order creation, payment verification
// and order summary. It owns no business rules, only transport and
// error mapping.
type Client struct {
	BaseURL string
	ApiKey  string
	Http    *http.Client
}

func NewClient(cfg *viper.Viper) *Client {
	return &Client{
		BaseURL: cfg.GetString("backend.base_url"),
		ApiKey:  cfg.GetString("backend.api_key"),
		Http: &http.Client{
			Timeout: cfg.GetDuration("backend.timeout"),
		},
	}
}

func (c *Client) Event(ctx context.Context, sellerId, slug string) (model.EventResponse, error) {
	var out model.EventResponse
	path := fmt.Sprintf("/api/events/%s/%s", url.PathEscape(sellerId), url.PathEscape(slug))
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) ValidateDiscount(ctx context.Context, req model.ValidateDiscountRequest) (model.AppliedDiscount, error) {
	var out model.AppliedDiscount
	err := c.do(ctx, http.MethodPost, "/api/discounts/validate", req, &out)
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (model.CreateOrderResponse, error) {
	var out model.CreateOrderResponse
	err := c.do(ctx, http.MethodPost, "/api/orders", req, &out)
	return out, err
}

func (c *Client) VerifyPayment(ctx context.Context, orderId string) (model.VerifyPaymentResponse, error) {
	var out model.VerifyPaymentResponse
	err := c.do(ctx, http.MethodPost, "/api/payments/verify", model.VerifyPaymentRequest{OrderId: orderId}, &out)
	return out, err
}

func (c *Client) OrderSummary(ctx context.Context, orderId string) (model.OrderSummaryResponse, error) {
	var out model.OrderSummaryResponse
	path := fmt.Sprintf("/api/orders/%s/summary", url.PathEscape(orderId))
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, span := otel.Tracer.Start(ctx, "bookingapi"+path)
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			common.UtilSpanError(span, err)
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		common.UtilSpanError(span, err)
		return err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.ApiKey)
	}

	start := time.Now()
	resp, err := c.Http.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "booking backend request failed", traceIdAttr,
			slog.String("path", path), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return err
	}
	defer resp.Body.Close()

	slog.DebugContext(ctx, "booking backend request done", traceIdAttr,
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		common.UtilSpanError(span, err)
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	httpErr := &errs.HttpError{Code: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var apiErr model.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
		httpErr.Message = apiErr.Error
		httpErr.Data = apiErr.Data
	}

	return httpErr
}
