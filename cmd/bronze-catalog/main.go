// Command bronze-catalog registers every raw extract as an external CSV
// table, inferring each table's schema from a sample of its rows.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thetascott/AWS-Data-Warehouse/internal/catalog"
	"github.com/thetascott/AWS-Data-Warehouse/internal/cli"
	"github.com/thetascott/AWS-Data-Warehouse/internal/config"
	"github.com/thetascott/AWS-Data-Warehouse/internal/discover"
	"github.com/thetascott/AWS-Data-Warehouse/internal/store"
)

func main() {
	folders := flag.String("folders", "crm,erp", "comma-separated source folders to scan")
	verbose := flag.Bool("v", false, "enable verbose logs")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		fatalf("%v", err)
	}
	if cfg.BronzeBucket == "" {
		fatalf("BRONZE_BUCKET is required")
	}

	ctx := context.Background()
	closeMetrics := cli.InitMetrics(ctx, cfg, "bronze-catalog", logger)
	defer closeMetrics()

	start := time.Now()
	if err := run(ctx, cfg, strings.Split(*folders, ","), logger, *verbose); err != nil {
		logger.Fatalf("%v", err)
	}
	logger.Printf("completed in %s", cli.Elapsed(start))
}

func run(ctx context.Context, cfg config.Config, folders []string, logger *log.Logger, verbose bool) error {
	bronze, err := store.New(ctx, store.Config{
		Kind:   cfg.StorageKind,
		Bucket: cfg.BronzeBucket,
		Region: cfg.AWSRegion,
	})
	if err != nil {
		return err
	}
	defer bronze.Close()

	cat, err := catalog.New(ctx, catalog.Config{
		Kind:   cfg.CatalogKind,
		Region: cfg.AWSRegion,
		Path:   cfg.CatalogPath,
	})
	if err != nil {
		return err
	}
	defer cat.Close()

	if err := cat.EnsureDatabase(ctx, cfg.BronzeDatabase); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, folder := range folders {
		folder = strings.TrimSpace(folder)
		if folder == "" {
			continue
		}

		objs, err := bronze.List(ctx, folder+"/")
		if err != nil {
			return err
		}

		for _, obj := range objs {
			if !strings.HasSuffix(obj.Key, ".csv") {
				continue
			}
			key, folder := obj.Key, folder
			g.Go(func() error {
				return registerTable(ctx, bronze, cat, cfg, folder, key, logger, verbose)
			})
		}
	}
	return g.Wait()
}

// registerTable infers one extract's schema and registers it as an external
// table named after the file, located under its own dataset prefix.
func registerTable(ctx context.Context, bronze store.Store, cat catalog.Catalog, cfg config.Config, folder, key string, logger *log.Logger, verbose bool) error {
	data, err := store.ReadAll(ctx, bronze, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}

	cols, err := discover.Columns(data, cfg.SampleRows)
	if err != nil {
		return fmt.Errorf("discover %s: %w", key, err)
	}
	if len(cols) == 0 {
		logger.Printf("skipping %s: no header", key)
		return nil
	}

	name := strings.ToLower(strings.TrimSuffix(path.Base(key), ".csv"))
	def := catalog.TableDef{
		Name:     name,
		Columns:  make([]catalog.Column, 0, len(cols)),
		Location: locationBase(cfg) + "/" + folder + "/" + name + "/",
		Format:   catalog.FormatCSV,
	}
	for _, c := range cols {
		def.Columns = append(def.Columns, catalog.Column{Name: c.Name, Type: string(c.Type)})
	}

	if err := cat.ApplyTable(ctx, cfg.BronzeDatabase, def); err != nil {
		return err
	}
	if verbose {
		logger.Printf("registered %s.%s (%d columns) at %s", cfg.BronzeDatabase, name, len(def.Columns), def.Location)
	} else {
		logger.Printf("registered %s.%s", cfg.BronzeDatabase, name)
	}
	return nil
}

func locationBase(cfg config.Config) string {
	if cfg.StorageKind == "s3" {
		return "s3://" + cfg.BronzeBucket
	}
	return strings.TrimSuffix(cfg.BronzeBucket, "/")
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
