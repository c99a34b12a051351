package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"

	"newsletter/internal/api"
	"newsletter/internal/api/handler"
	"newsletter/internal/auth"
	"newsletter/internal/config"
	"newsletter/internal/newsletter"
	"newsletter/internal/subscription"
	"newsletter/pkg/domain"
	"newsletter/pkg/logger"
	"newsletter/pkg/mailer/postmark"
	"newsletter/pkg/metrics"
)

// setupCounters wires the OpenTelemetry meter provider into the default
// Prometheus registry so that service counters show up on the metrics endpoint.
func setupCounters(ctx context.Context) *metrics.Counters {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		logger.Fatal(ctx, "could not create otel exporter", zap.Error(err))
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	counters, err := metrics.NewCounters(mp)
	if err != nil {
		logger.Fatal(ctx, "could not create metric counters", zap.Error(err))
	}

	return counters
}

func setupServer(ctx context.Context, deps api.Deps, cfg *config.Config) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the newsletter API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			counters := setupCounters(ctx)

			sender, err := domain.NewSubscriberEmail(cfg.Email.Sender)
			if err != nil {
				logger.Fatal(ctx, "invalid email sender in config", zap.Error(err))
			}
			mail := postmark.New(
				&http.Client{Timeout: cfg.Email.RequestTimeout},
				cfg.Email.BaseURL,
				sender,
				domain.NewSecret(cfg.Email.AuthToken))

			validator := auth.New(strg, auth.NewOptions(cfg))
			defer validator.Close()

			deps := api.Deps{
				Deps: handler.Deps{
					Subscription: subscription.New(strg, mail, counters, subscription.NewOptions(cfg)),
					Dispatcher:   newsletter.New(validator, strg, mail, counters),
					Validator:    validator,
				},
			}

			stopWebserver := setupServer(ctx, deps, cfg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
