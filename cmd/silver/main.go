// Command silver runs the cleansing pass: it reads the raw extracts,
// applies the per-entity rules and fully replaces the cleansed datasets.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/thetascott/AWS-Data-Warehouse/internal/cli"
	"github.com/thetascott/AWS-Data-Warehouse/internal/config"
	"github.com/thetascott/AWS-Data-Warehouse/internal/silver"
	"github.com/thetascott/AWS-Data-Warehouse/internal/store"
)

func main() {
	verbose := flag.Bool("v", false, "enable verbose logs")
	flag.Parse()
	_ = verbose // unit stats are always logged; kept for symmetry with the other commands

	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		fatalf("%v", err)
	}
	if cfg.BronzeBucket == "" || cfg.SilverBucket == "" {
		fatalf("BRONZE_BUCKET and SILVER_BUCKET are required")
	}

	ctx := context.Background()
	closeMetrics := cli.InitMetrics(ctx, cfg, "silver", logger)
	defer closeMetrics()

	processing, err := cfg.Processing(time.Now())
	if err != nil {
		fatalf("%v", err)
	}

	start := time.Now()
	if err := run(ctx, cfg, processing, logger); err != nil {
		logger.Fatalf("%v", err)
	}
	logger.Printf("completed in %s", cli.Elapsed(start))
}

func run(ctx context.Context, cfg config.Config, processing time.Time, logger *log.Logger) error {
	bronze, err := store.New(ctx, store.Config{
		Kind:   cfg.StorageKind,
		Bucket: cfg.BronzeBucket,
		Region: cfg.AWSRegion,
	})
	if err != nil {
		return err
	}
	defer bronze.Close()

	silverStore, err := store.New(ctx, store.Config{
		Kind:   cfg.StorageKind,
		Bucket: cfg.SilverBucket,
		Region: cfg.AWSRegion,
	})
	if err != nil {
		return err
	}
	defer silverStore.Close()

	r := &silver.Runner{
		Bronze:     bronze,
		Silver:     silverStore,
		Processing: processing,
		Log:        logger,
	}

	_, err = r.Run(ctx)
	return err
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
