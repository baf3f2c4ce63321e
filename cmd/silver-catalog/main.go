// Command silver-catalog registers the six cleansed datasets as external
// Parquet tables. Silver schemas are fixed by the transformations, so no
// discovery happens here.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/thetascott/AWS-Data-Warehouse/internal/catalog"
	"github.com/thetascott/AWS-Data-Warehouse/internal/cli"
	"github.com/thetascott/AWS-Data-Warehouse/internal/config"
	"github.com/thetascott/AWS-Data-Warehouse/internal/silver"
)

func main() {
	verbose := flag.Bool("v", false, "enable verbose logs")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		fatalf("%v", err)
	}
	if cfg.SilverBucket == "" {
		fatalf("SILVER_BUCKET is required")
	}

	ctx := context.Background()
	closeMetrics := cli.InitMetrics(ctx, cfg, "silver-catalog", logger)
	defer closeMetrics()

	start := time.Now()
	if err := run(ctx, cfg, logger, *verbose); err != nil {
		logger.Fatalf("%v", err)
	}
	logger.Printf("completed in %s", cli.Elapsed(start))
}

func run(ctx context.Context, cfg config.Config, logger *log.Logger, verbose bool) error {
	cat, err := catalog.New(ctx, catalog.Config{
		Kind:   cfg.CatalogKind,
		Region: cfg.AWSRegion,
		Path:   cfg.CatalogPath,
	})
	if err != nil {
		return err
	}
	defer cat.Close()

	if err := cat.EnsureDatabase(ctx, cfg.SilverDatabase); err != nil {
		return err
	}

	for _, def := range silver.TableDefs(locationBase(cfg)) {
		if err := cat.ApplyTable(ctx, cfg.SilverDatabase, def); err != nil {
			return err
		}
		if verbose {
			logger.Printf("registered %s.%s at %s", cfg.SilverDatabase, def.Name, def.Location)
		} else {
			logger.Printf("registered %s.%s", cfg.SilverDatabase, def.Name)
		}
	}
	return nil
}

func locationBase(cfg config.Config) string {
	if cfg.StorageKind == "s3" {
		return "s3://" + cfg.SilverBucket
	}
	return strings.TrimSuffix(cfg.SilverBucket, "/")
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
