package silver

import (
	"time"

	"github.com/thetascott/AWS-Data-Warehouse/internal/rawcsv"
)

// TransformCategories cleanses erp_px_cat_g1v2 rows: a fixed column
// projection with a provenance stamp, no row filtering.
func TransformCategories(rows []rawcsv.Row, processing time.Time) ([]ProductCategory, Stats) {
	stats := Stats{RowsIn: len(rows)}
	loadedAt := processing.UnixMilli()

	out := make([]ProductCategory, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProductCategory{
			ID:          field(r, "id"),
			Category:    field(r, "cat"),
			Subcategory: field(r, "subcat"),
			Maintenance: field(r, "maintenance"),
			LoadedAt:    loadedAt,
		})
	}

	stats.RowsOut = len(out)
	return out, stats
}
