package silver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/thetascott/AWS-Data-Warehouse/internal/metrics"
	"github.com/thetascott/AWS-Data-Warehouse/internal/parquetio"
	"github.com/thetascott/AWS-Data-Warehouse/internal/rawcsv"
	"github.com/thetascott/AWS-Data-Warehouse/internal/store"
)

// Logger is the minimal logging surface the runner needs. *log.Logger
// satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// partName is the single output object written under each dataset prefix.
const partName = "part-00000.parquet"

// UnitResult reports one cleansing unit's outcome. A unit failure never
// aborts its siblings; callers inspect results after all units finish.
type UnitResult struct {
	Name  string
	Err   error
	Stats Stats
}

// Runner executes the six cleansing units: each reads one raw extract from
// the bronze store, applies its entity rules, and fully replaces the
// corresponding silver dataset with a single Parquet part object.
type Runner struct {
	Bronze     store.Store
	Silver     store.Store
	Processing time.Time // provenance stamp and future-date reference
	Log        Logger
}

// Run executes all units concurrently and waits for every one of them.
// The returned error is non-nil when at least one unit failed; per-unit
// detail is in the results, which are ordered deterministically.
func (r *Runner) Run(ctx context.Context) ([]UnitResult, error) {
	units := []struct {
		name string
		src  string
		run  func(context.Context, *Runner, string, string) (Stats, error)
	}{
		{"crm_cust_info", "crm/cust_info.csv", runUnit[Customer](TransformCustomers)},
		{"crm_prd_info", "crm/prd_info.csv", runUnit[Product](TransformProducts)},
		{"crm_sales_details", "crm/sales_details.csv", runUnit[SalesLine](TransformSales)},
		{"erp_cust_az12", "erp/CUST_AZ12.csv", runUnit[Demographic](TransformDemographics)},
		{"erp_loc_a101", "erp/LOC_A101.csv", runUnit[Location](TransformLocations)},
		{"erp_px_cat_g1v2", "erp/PX_CAT_G1V2.csv", runUnit[ProductCategory](TransformCategories)},
	}

	results := make([]UnitResult, len(units))
	var wg sync.WaitGroup
	for i, u := range units {
		wg.Add(1)
		go func() {
			defer wg.Done()

			start := time.Now()
			stats, err := u.run(ctx, r, u.name, u.src)
			results[i] = UnitResult{Name: u.name, Err: err, Stats: stats}

			tag := "unit:" + u.name
			if err != nil {
				r.Log.Printf("unit %s failed after %s: %v", u.name, time.Since(start).Round(time.Millisecond), err)
				metrics.Count("silver.unit.failures", 1, tag)
				return
			}
			r.Log.Printf("unit %s: rows_in=%d rows_out=%d dropped_key=%d nulled=%d null_order=%d in %s",
				u.name, stats.RowsIn, stats.RowsOut, stats.DroppedKey, stats.NulledVals, stats.NullOrder,
				time.Since(start).Round(time.Millisecond))
			metrics.Count("silver.unit.rows_in", float64(stats.RowsIn), tag)
			metrics.Count("silver.unit.rows_out", float64(stats.RowsOut), tag)
			metrics.Count("silver.unit.dropped_key", float64(stats.DroppedKey), tag)
			metrics.Count("silver.unit.nulled_values", float64(stats.NulledVals), tag)
			metrics.Observe("silver.unit.duration_seconds", time.Since(start).Seconds(), tag)
		}()
	}
	wg.Wait()

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return results, fmt.Errorf("%d of %d units failed", failed, len(units))
	}
	return results, nil
}

// runUnit adapts one entity transformation into the common unit shape:
// fetch the raw extract, transform, encode, replace the dataset prefix.
func runUnit[T any](transform func([]rawcsv.Row, time.Time) ([]T, Stats)) func(context.Context, *Runner, string, string) (Stats, error) {
	return func(ctx context.Context, r *Runner, name, src string) (Stats, error) {
		raw, err := store.ReadAll(ctx, r.Bronze, src)
		if err != nil {
			return Stats{}, fmt.Errorf("read %s: %w", src, err)
		}

		_, rows, err := rawcsv.ReadAll(raw)
		if err != nil {
			return Stats{}, fmt.Errorf("parse %s: %w", src, err)
		}

		records, stats := transform(rows, r.Processing)

		data, err := parquetio.Marshal(records)
		if err != nil {
			return stats, fmt.Errorf("encode %s: %w", name, err)
		}

		prefix := datasetPrefix(name)
		if err := store.ReplacePrefix(ctx, r.Silver, prefix, partName, data); err != nil {
			return stats, fmt.Errorf("publish %s: %w", name, err)
		}
		return stats, nil
	}
}

// datasetPrefix maps a unit name to its silver prefix: the first underscore
// separates the source system from the dataset (crm_cust_info → crm/cust_info).
func datasetPrefix(name string) string {
	for i, c := range name {
		if c == '_' {
			return name[:i] + "/" + name[i+1:]
		}
	}
	return name
}
