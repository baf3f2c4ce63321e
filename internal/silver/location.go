package silver

import (
	"strings"
	"time"

	"github.com/thetascott/AWS-Data-Warehouse/internal/rawcsv"
)

// TransformLocations cleanses erp_loc_a101 rows: the customer reference
// loses its hyphens so it joins against the CRM key, and the country token
// is normalized to a canonical name.
func TransformLocations(rows []rawcsv.Row, processing time.Time) ([]Location, Stats) {
	stats := Stats{RowsIn: len(rows)}
	loadedAt := processing.UnixMilli()

	out := make([]Location, 0, len(rows))
	for _, r := range rows {
		out = append(out, Location{
			CustomerRef: strings.ReplaceAll(field(r, "cid"), "-", ""),
			Country:     country(field(r, "cntry")),
			LoadedAt:    loadedAt,
		})
	}

	stats.RowsOut = len(out)
	return out, stats
}
