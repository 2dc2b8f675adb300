package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/carverauto/integrations/pkg/kv"
	"github.com/carverauto/integrations/pkg/logger"
	"github.com/carverauto/integrations/pkg/seeder"
)

type seedConfig struct {
	environment     string
	dryRun          bool
	verify          bool
	natsURL         string
	natsUser        string
	natsPass        string
	natsCreds       string
	natsTLSCert     string
	natsTLSKey      string
	natsTLSCA       string
	natsInsecureTLS bool
	jsDomain        string
	bucket          string
	timeout         time.Duration
}

var errInvalidEnvironment = errors.New("environment must be one of dev, staging, prod")

func main() {
	cfg := parseFlags()

	if err := validateEnvironment(cfg.environment); err != nil {
		flag.Usage()
		log.Fatalf("catalog-seed: %v", err)
	}

	// Operational convention: failures are logged and summarized, not turned
	// into nonzero exit codes.
	if err := run(cfg); err != nil {
		log.Printf("ERROR: %v", err)
	}
}

func parseFlags() seedConfig {
	var cfg seedConfig

	flag.StringVar(&cfg.environment, "environment", os.Getenv("ENVIRONMENT"), "target environment (dev|staging|prod)")
	flag.StringVar(&cfg.environment, "e", os.Getenv("ENVIRONMENT"), "shorthand for -environment")
	flag.BoolVar(&cfg.dryRun, "dry-run", false, "log intended writes without touching storage")
	flag.BoolVar(&cfg.verify, "verify", false, "verify seeded data instead of seeding")

	flag.StringVar(&cfg.natsURL, "nats-url", getenvDefault("NATS_URL", "nats://localhost:4222"), "NATS server URL")
	flag.StringVar(&cfg.natsUser, "nats-user", os.Getenv("NATS_USER"), "NATS username")
	flag.StringVar(&cfg.natsPass, "nats-pass", os.Getenv("NATS_PASSWORD"), "NATS password")
	flag.StringVar(&cfg.natsCreds, "nats-creds", os.Getenv("NATS_CREDS"), "path to NATS creds file")
	flag.StringVar(&cfg.natsTLSCert, "nats-tls-cert", os.Getenv("NATS_TLS_CERT"), "path to TLS client certificate")
	flag.StringVar(&cfg.natsTLSKey, "nats-tls-key", os.Getenv("NATS_TLS_KEY"), "path to TLS client key")
	flag.StringVar(&cfg.natsTLSCA, "nats-tls-ca", os.Getenv("NATS_CA"), "path to TLS CA bundle")
	flag.BoolVar(&cfg.natsInsecureTLS, "nats-tls-insecure", false, "skip TLS verification (development only)")
	flag.StringVar(&cfg.jsDomain, "js-domain", os.Getenv("NATS_JS_DOMAIN"), "JetStream domain (optional)")

	flag.StringVar(&cfg.bucket, "bucket", getenvDefault("KV_BUCKET", kv.DefaultBucket), "KV bucket to seed")
	flag.DurationVar(&cfg.timeout, "timeout", 10*time.Second, "connect timeout")

	flag.Parse()

	return cfg
}

func validateEnvironment(env string) error {
	switch env {
	case "dev", "staging", "prod":
		return nil
	default:
		return fmt.Errorf("%w: got %q", errInvalidEnvironment, env)
	}
}

func run(cfg seedConfig) error {
	ctx := context.Background()

	zlog, err := logger.New(logger.DefaultConfig())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	runID := uuid.NewString()
	zlog.Info().
		Str("run_id", runID).
		Str("environment", cfg.environment).
		Str("bucket", cfg.bucket).
		Bool("dry_run", cfg.dryRun).
		Msg("catalog-seed starting")

	storeCfg := &kv.Config{
		NATSURL:        cfg.natsURL,
		Bucket:         cfg.bucket,
		Domain:         cfg.jsDomain,
		Username:       cfg.natsUser,
		Password:       cfg.natsPass,
		CredsFile:      cfg.natsCreds,
		TLSCertFile:    cfg.natsTLSCert,
		TLSKeyFile:     cfg.natsTLSKey,
		TLSCAFile:      cfg.natsTLSCA,
		InsecureTLS:    cfg.natsInsecureTLS,
		ConnectTimeout: cfg.timeout,
	}

	if err := storeCfg.Validate(); err != nil {
		return fmt.Errorf("invalid storage configuration: %w", err)
	}

	var store kv.KVStore

	if cfg.verify || !cfg.dryRun {
		store, err = kv.NewNatsStore(ctx, storeCfg)
		if err != nil {
			return fmt.Errorf("connect to storage: %w", err)
		}
		defer closeStore(store, zlog)
	}

	s := seeder.New(store, zlog)

	if cfg.verify {
		return runVerify(ctx, s, cfg)
	}

	return runSeed(ctx, s, cfg)
}

func runSeed(ctx context.Context, s *seeder.Seeder, cfg seedConfig) error {
	summary, err := s.SeedAll(ctx, cfg.dryRun)
	if err != nil {
		return err
	}

	summary.Render(os.Stdout)

	if !cfg.dryRun && summary.Errors == 0 {
		fmt.Println("\nRun with -verify to check seeded data")
	}

	return nil
}

func runVerify(ctx context.Context, s *seeder.Seeder, cfg seedConfig) error {
	fmt.Printf("Verifying %s (environment %s)\n", cfg.bucket, cfg.environment)

	report, err := s.Verify(ctx)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	report.Render(os.Stdout)

	return nil
}

func closeStore(store kv.KVStore, zlog logger.Logger) {
	if err := store.Close(); err != nil {
		zlog.Warn().Err(err).Msg("failed to close storage")
	}
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return fallback
}
