package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	_ "orderboard/docs"
	"orderboard/pkg/api"
	"orderboard/pkg/board"
	"orderboard/pkg/config"
	"orderboard/pkg/logger"
	"orderboard/pkg/order"
	"orderboard/pkg/order/memory"
	redisstore "orderboard/pkg/order/redis"
	"orderboard/pkg/otel"
)

const serviceName = "orderboard"

// @title OrderBoard API
// @version 1.0
// @description Per-session order ledger with running item totals
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey SessionCookie
// @in header
// @name Cookie
func main() {
	cfg := config.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:          serviceName,
		Short:        "Serve the order ledger and its item totals over HTTP",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = config.DefaultConfigPath()
			}
			if cfgFile != "" && config.FileExists(cfgFile) {
				fc, err := config.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := config.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}
			if err := config.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := root.Flags()
	f.StringVar(&cfgPath, "config", "", "path to config file (default $HOME/.orderboard/config.toml)")
	f.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	f.StringVar(&cfg.TLSCert, "tls-cert", cfg.TLSCert, "TLS certificate file")
	f.StringVar(&cfg.TLSKey, "tls-key", cfg.TLSKey, "TLS key file")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	f.StringVar(&cfg.Store, "store", cfg.Store, "session store: memory or redis")
	f.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "redis address for the redis store")
	f.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "idle time before a session is discarded")
	f.BoolVar(&cfg.SeedDemo, "seed-demo", cfg.SeedDemo, "start new sessions with demo orders")
	f.StringVar(&cfg.OTelHost, "otel-host", cfg.OTelHost, "OTLP gRPC collector host:port")
	f.Float64Var(&cfg.OTelProbability, "otel-probability", cfg.OTelProbability, "trace sampling probability")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	level, _ := logger.ParseLevel(cfg.LogLevel)
	log := logger.New(os.Stdout, level, serviceName, otel.GetTraceID)
	defer log.Sync()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{
		ServiceName: serviceName,
		Host:        cfg.OTelHost,
		Probability: cfg.OTelProbability,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdown(context.Background())

	var repo order.Repository
	switch cfg.Store {
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		repo = redisstore.New(client, cfg.SessionTTL)
	default:
		repo = memory.New(cfg.SessionTTL)
	}

	svc := board.New(repo, log, board.WithDemoSeed(cfg.SeedDemo))
	router := api.NewRouter(api.Config{
		SessionTTL:   cfg.SessionTTL,
		SecureCookie: cfg.TLSCert != "",
	}, svc, log, tp.Tracer(serviceName))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", cfg.Addr, "store", cfg.Store, "tls", cfg.TLSCert != "")
		if cfg.TLSCert != "" {
			errc <- srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
			return
		}
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server closed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
