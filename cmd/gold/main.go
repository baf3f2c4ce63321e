// Command gold builds the presentation layer: it makes the cleansed
// datasets queryable through an external schema, then runs the curated-view
// script statement by statement against the warehouse.
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
	"github.com/thetascott/AWS-Data-Warehouse/internal/store"
	"github.com/thetascott/AWS-Data-Warehouse/internal/warehouse"
)

func main() {
	verbose := flag.Bool("v", false, "enable verbose logs")
	flag.Parse()
	_ = verbose // every statement is logged; kept for symmetry with the other commands

	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		fatalf("%v", err)
	}
	if cfg.ScriptsBucket == "" {
		fatalf("S3_SCRIPTS_BUCKET is required")
	}

	ctx := context.Background()
	closeMetrics := cli.InitMetrics(ctx, cfg, "gold", logger)
	defer closeMetrics()

	start := time.Now()
	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatalf("%v", err)
	}
	logger.Printf("completed in %s", cli.Elapsed(start))
}

func run(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	exec, err := warehouse.New(ctx, warehouse.Config{
		Kind:      cfg.WarehouseKind,
		Region:    cfg.AWSRegion,
		Workgroup: cfg.RedshiftWorkgroup,
		Database:  cfg.RedshiftDatabase,
		DSN:       cfg.WarehouseDSN,
	})
	if err != nil {
		return err
	}
	defer exec.Close()

	// The external-schema bridge into the metastore is a Redshift concept;
	// development targets query their own local tables instead.
	if cfg.WarehouseKind == "redshift" {
		stmt := externalSchemaSQL(cfg.SilverDatabase, cfg.RedshiftRoleARN)
		id, err := exec.Execute(ctx, stmt)
		if err != nil {
			return fmt.Errorf("ensure external schema: %w", err)
		}
		logger.Printf("external schema ensured (statement %s)", id)
	}

	scripts, err := store.New(ctx, store.Config{
		Kind:   cfg.StorageKind,
		Bucket: cfg.ScriptsBucket,
		Region: cfg.AWSRegion,
	})
	if err != nil {
		return err
	}
	defer scripts.Close()

	script, err := store.ReadAll(ctx, scripts, cfg.ScriptsKey)
	if err != nil {
		return fmt.Errorf("fetch script %s: %w", cfg.ScriptsKey, err)
	}

	n, err := warehouse.RunScript(ctx, exec, string(script), logger)
	if err != nil {
		return err
	}
	logger.Printf("curated views created (%d statements)", n)
	return nil
}

// externalSchemaSQL maps the cleansed datasets' metastore database into the
// warehouse as schema "silver", creating the external database on first use.
func externalSchemaSQL(silverDB, roleARN string) string {
	return fmt.Sprintf(`CREATE EXTERNAL SCHEMA IF NOT EXISTS silver
FROM DATA CATALOG
DATABASE '%s'
IAM_ROLE '%s'
CREATE EXTERNAL DATABASE IF NOT EXISTS`, silverDB, roleARN)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
