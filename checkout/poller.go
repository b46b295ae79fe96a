package checkout

import (
	"booking-checkout/common"
	"booking-checkout/common/constant"
	"booking-checkout/common/errs"
	"booking-checkout/common/otel"
	"booking-checkout/model"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/redis/go-redis/v9"
)

const (
	StatusVerifying = "VERIFYING"
	StatusSuccess   = "SUCCESS"
	StatusPending   = "PENDING"
	StatusFailed    = "FAILED"
)

const (
	MsgMissingOrderId = "missing order id"
	MsgOrderNotFound  = "order not found"
	MsgVerifyError    = "could not verify payment, please try again"
	MsgPaymentFailed  = "payment failed or refunded"
)

const verifyOnceTTL = 15 * time.Second

// Poller issues exactly one verification request per order id and maps
// the backend's payment states onto the display state machine. The
// verdict is cached so page re-renders observe it instead of
// re-verifying; PENDING is not re-polled automatically, a re-check
// takes user navigation.
type Poller struct {
	Backend   Backend
	Cache     *redis.Client
	Publisher jetstream.Publisher

	ResultTTL time.Duration
}

func (p *Poller) Run(ctx context.Context, orderId string) model.PaymentStatusResponse {
	if orderId == "" {
		// terminal and non-retryable, distinct from a verification failure
		return model.PaymentStatusResponse{Status: StatusFailed, Message: MsgMissingOrderId}
	}

	ctx, span := otel.Tracer.Start(ctx, "Poller.Run")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	resultKey := fmt.Sprintf(constant.OrderVerifyResultKey, orderId)
	if cached, err := p.Cache.Get(ctx, resultKey).Result(); err == nil {
		var result model.PaymentStatusResponse
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			slog.DebugContext(ctx, "verification served from cache", traceIdAttr, slog.String("order_id", orderId))
			return result
		}
	}

	onceKey := fmt.Sprintf(constant.OrderVerifyOnceKey, orderId)
	acquired, err := p.Cache.SetNX(ctx, onceKey, true, verifyOnceTTL).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to set verification guard", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return model.PaymentStatusResponse{OrderId: orderId, Status: StatusFailed, Message: MsgVerifyError}
	}

	if !acquired {
		// another render already issued the request
		return model.PaymentStatusResponse{OrderId: orderId, Status: StatusVerifying}
	}

	resp, err := p.Backend.VerifyPayment(ctx, orderId)
	if err != nil {
		common.UtilSpanError(span, err)

		if errs.IsNotFound(err) {
			result := model.PaymentStatusResponse{OrderId: orderId, Status: StatusFailed, Message: MsgOrderNotFound}
			p.cacheResult(ctx, resultKey, result)
			return result
		}

		slog.ErrorContext(ctx, "payment verification failed", traceIdAttr,
			slog.String("order_id", orderId), slog.Any(constant.LogFieldErr, err))

		// release the guard so a user-driven retry can verify again
		if delErr := p.Cache.Del(ctx, onceKey).Err(); delErr != nil {
			slog.WarnContext(ctx, "failed to release verification guard", traceIdAttr, slog.Any(constant.LogFieldErr, delErr))
		}

		return model.PaymentStatusResponse{OrderId: orderId, Status: StatusFailed, Message: MsgVerifyError}
	}

	result := MapPaymentStatus(resp)
	p.cacheResult(ctx, resultKey, result)

	if result.Status == StatusSuccess {
		_ = common.PublishActivity(ctx, p.Publisher, constant.SubjectPaymentSettled, model.PaymentSettledEventMessage{
			OrderId: resp.OrderId,
			Status:  resp.Status,
		})
	}

	slog.InfoContext(ctx, "payment verified", traceIdAttr,
		slog.String("order_id", orderId), slog.String("status", result.Status))

	return result
}

// MapPaymentStatus maps the backend's order status onto the display
// state machine.
func MapPaymentStatus(resp model.VerifyPaymentResponse) model.PaymentStatusResponse {
	result := model.PaymentStatusResponse{OrderId: resp.OrderId}

	switch resp.Status {
	case model.OrderStatusPaid:
		result.Status = StatusSuccess
	case model.OrderStatusPending:
		result.Status = StatusPending
	case model.OrderStatusFailed, model.OrderStatusRefunded:
		result.Status = StatusFailed
		result.Message = MsgPaymentFailed
	default:
		result.Status = StatusFailed
		result.Message = MsgVerifyError
	}

	return result
}

func (p *Poller) cacheResult(ctx context.Context, key string, result model.PaymentStatusResponse) {
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}

	ttl := p.ResultTTL
	if ttl <= 0 {
		ttl = constant.OrderVerifyResultDefaultTTL
	}

	if err := p.Cache.Set(ctx, key, string(raw), ttl).Err(); err != nil {
		slog.WarnContext(ctx, "failed to cache verification result", slog.Any(constant.LogFieldErr, err))
	}
}
