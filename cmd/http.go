package cmd

import (
	"booking-checkout/checkout"
	commonJetstream "booking-checkout/common/jetstream"
	"booking-checkout/common/otel"
	inboundHttp "booking-checkout/inbound/http"
	"booking-checkout/outbound/bookingapi"
	"booking-checkout/outbound/gateway"
	"booking-checkout/selection"
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func runHttpServerCmd(ctx context.Context) {
	cfg := newCfg("env")

	if endpoint := cfg.GetString("otel.endpoint"); endpoint != "" {
		shutdown, err := otel.InitTracerProvider(ctx, endpoint)
		if err != nil {
			log.Fatalln("unable to init tracer provider", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				slog.Error("tracer shutdown failed", slog.Any("error", err))
			}
		}()
	}

	validate := validator.New()

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	commonJetstream.CreateActivityStream(ctx, js)

	backend := bookingapi.NewClient(cfg)
	gw := gateway.New(cfg)

	store := selection.Store{
		KV:  selection.RedisKV{Client: cacheClient},
		TTL: cfg.GetDuration("selection.ttl"),
	}

	resolver := &checkout.DiscountResolver{
		Backend: backend,
		Store:   store,
	}

	orchestrator := &checkout.Orchestrator{
		Backend:    backend,
		Gateway:    gw,
		Store:      store,
		Publisher:  js,
		Validate:   validate,
		TaxPercent: cfg.GetFloat64("pricing.tax_percent"),
	}

	poller := &checkout.Poller{
		Backend:   backend,
		Cache:     cacheClient,
		Publisher: js,
		ResultTTL: cfg.GetDuration("order.verify_result_ttl"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		slog.DebugContext(r.Context(), "health check")
		w.WriteHeader(http.StatusOK)
	})

	inrCurrencyFormatter := message.NewPrinter(language.MustParse("en-IN"))

	inboundHttp.RegisterCheckoutHttp(mux, cfg, backend, store, resolver, orchestrator, validate, inrCurrencyFormatter)
	inboundHttp.RegisterOrderHttp(mux, cfg, backend, poller, inrCurrencyFormatter)

	timeoutMiddleware := inboundHttp.TimeoutMiddleware(20 * time.Second)
	corsMiddleware := inboundHttp.CorsMiddleware(cfg.GetString("server.cors_origin"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.GetInt("server.port")),
		Handler:           timeoutMiddleware(corsMiddleware(mux)),
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("unable to start server", err)
		}
	}()

	slog.Info("http server started")

	<-ctx.Done()

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatalln("unable to shutdown server", err)
	}

	slog.Info("http server stopped")
}
