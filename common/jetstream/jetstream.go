package jetstream

import (
	"booking-checkout/common/constant"
	"context"
	"github.com/nats-io/nats.go/jetstream"
)

func CreateActivityStream(ctx context.Context, js jetstream.JetStream) jetstream.Stream {
	cfg := jetstream.StreamConfig{
		Name:      constant.ActivityStreamName,
		Retention: jetstream.InterestPolicy,
		Subjects:  []string{constant.AllWildcard},
		MaxBytes:  5 * 1024 * 1024,
	}

	st, err := js.CreateOrUpdateStream(ctx, cfg)
	if err != nil {
		panic(err)
	}

	return st
}
