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

	"github.com/goodnatureofminers/txprogress-backend/internal/ethereum"
	"github.com/goodnatureofminers/txprogress-backend/internal/ethereum/etherscan"
	"github.com/goodnatureofminers/txprogress-backend/internal/ethereum/rpcnode"
	"github.com/goodnatureofminers/txprogress-backend/internal/metrics"
	"github.com/goodnatureofminers/txprogress-backend/internal/service"
	"github.com/goodnatureofminers/txprogress-backend/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	providerEtherscan = "etherscan"
	providerRPC       = "rpc"
)

type config struct {
	Addr            string        `long:"addr" env:"API_GATEWAY_ADDR" description:"HTTP listen address" default:":4000"`
	Port            string        `long:"port" env:"PORT" description:"HTTP port, overrides the port of --addr"`
	Provider        string        `long:"provider" env:"TX_PROVIDER" description:"ledger data provider" choice:"etherscan" choice:"rpc" default:"etherscan"`
	EtherscanURL    string        `long:"etherscan-url" env:"ETHERSCAN_URL" description:"Etherscan V2 API endpoint" default:"https://api.etherscan.io/v2/api"`
	EtherscanAPIKey string        `long:"etherscan-api-key" env:"ETHERSCAN_API_KEY" description:"Etherscan API key"`
	ChainID         string        `long:"chain-id" env:"CHAIN_ID" description:"EVM chain id" default:"1"`
	EtherscanRPS    int           `long:"etherscan-rps" env:"ETHERSCAN_RPS" description:"Etherscan requests per second, 0 disables throttling" default:"5"`
	RPCURL          string        `long:"rpc-url" env:"ETH_RPC_URL" description:"Ethereum node URL for the rpc provider"`
	HTTPTimeout     time.Duration `long:"http-timeout" env:"PROVIDER_HTTP_TIMEOUT" description:"timeout for provider requests" default:"30s"`
	LookupMempool   bool          `long:"lookup-mempool" env:"LOOKUP_MEMPOOL" description:"report known transactions without a receipt as pending"`
	MaxTarget       uint64        `long:"max-target" env:"MAX_TARGET_CONFIRMATIONS" description:"largest accepted targetConfirmations" default:"10000"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to load .env file", zap.Error(err))
	}

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("api gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	caller, closeCaller, err := newCaller(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCaller()

	observed := ethereum.NewObservedCaller(caller, metrics.NewProviderClient(cfg.Provider, cfg.ChainID))
	resolver, err := service.NewStatusResolver(
		ethereum.NewProvider(observed, cfg.LookupMempool),
		metrics.NewStatusResolver(cfg.ChainID),
		logger.Named("resolver"),
	)
	if err != nil {
		return fmt.Errorf("init status resolver: %w", err)
	}

	handler := transport.NewStatusHandler(resolver, logger.Named("status"), cfg.MaxTarget)
	addr := listenAddr(cfg)
	s := &http.Server{
		Addr:              addr,
		Handler:           transport.NewRouter(handler, metrics.NewHTTPServer(), logger.Named("http")),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting HTTP server",
		zap.String("addr", addr),
		zap.String("provider", cfg.Provider),
		zap.String("chain_id", cfg.ChainID),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func newCaller(ctx context.Context, cfg config) (ethereum.Caller, func(), error) {
	switch cfg.Provider {
	case providerRPC:
		if cfg.RPCURL == "" {
			return nil, nil, errors.New("rpc url is required for the rpc provider")
		}
		dialCtx := ctx
		if cfg.HTTPTimeout > 0 {
			var cancel context.CancelFunc
			dialCtx, cancel = context.WithTimeout(ctx, cfg.HTTPTimeout)
			defer cancel()
		}
		c, err := rpcnode.Dial(dialCtx, cfg.RPCURL)
		if err != nil {
			return nil, nil, fmt.Errorf("init rpc node client: %w", err)
		}
		return c, c.Close, nil
	case providerEtherscan:
		c, err := etherscan.NewClient(etherscan.Config{
			BaseURL: cfg.EtherscanURL,
			APIKey:  cfg.EtherscanAPIKey,
			ChainID: cfg.ChainID,
			RPS:     cfg.EtherscanRPS,
			Timeout: cfg.HTTPTimeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("init etherscan client: %w", err)
		}
		return c, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

func listenAddr(cfg config) string {
	if cfg.Port != "" {
		return ":" + cfg.Port
	}
	return cfg.Addr
}
