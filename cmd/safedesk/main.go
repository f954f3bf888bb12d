package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/safedesk/internal/config"
	"github.com/gabapcia/safedesk/internal/handlers/cli"
	"github.com/gabapcia/safedesk/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/safedesk/internal/infra/storage/redis"
	"github.com/gabapcia/safedesk/internal/pkg/logger"
	"github.com/gabapcia/safedesk/internal/pkg/resilience/retry"
	"github.com/gabapcia/safedesk/internal/pkg/telemetry"
	httptransport "github.com/gabapcia/safedesk/internal/pkg/transport/http"
	"github.com/gabapcia/safedesk/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/safedesk/internal/safe"
	"github.com/gabapcia/safedesk/internal/txstore"
)

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer shutdown(context.WithoutCancel(ctx))
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	store, err := redis.NewClient(ctx, redis.Options{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer store.Close()

	conn := jsonrpc.NewClient(cfg.RPC.Endpoint,
		httptransport.WithTimeout(cfg.RPC.Timeout),
		httptransport.WithRetryMax(cfg.RPC.RetryMax),
		httptransport.WithRetryWaitMin(cfg.RPC.RetryWaitMin),
		httptransport.WithRetryWaitMax(cfg.RPC.RetryWaitMax),
	)
	chain := ethereum.NewClient(conn)

	reads := retry.New(
		retry.WithAttempts(cfg.ReadAttempts),
		retry.WithRetryIf(ethereum.Retryable),
	)

	var (
		safeService = safe.New(chain, store, reads, safe.WithPrepareTimeout(cfg.PrepareTimeout))
		txService   = txstore.New(store)
	)

	return cli.Run(ctx, safeService, txService, chain)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
