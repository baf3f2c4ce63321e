package silver

import (
	"strings"
	"time"

	"github.com/thetascott/AWS-Data-Warehouse/internal/rawcsv"
)

// demographicKeyPrefix is the source-system prefix some extracts prepend to
// the customer reference.
const demographicKeyPrefix = "NAS"

// TransformDemographics cleanses erp_cust_az12 rows: strips the legacy key
// prefix, nulls birth dates that lie in the future relative to the
// processing date, and maps gender tokens into the closed domain.
func TransformDemographics(rows []rawcsv.Row, processing time.Time) ([]Demographic, Stats) {
	stats := Stats{RowsIn: len(rows)}
	loadedAt := processing.UnixMilli()
	today := DaysOf(processing)

	out := make([]Demographic, 0, len(rows))
	for _, r := range rows {
		cid := field(r, "cid")
		cid = strings.TrimPrefix(cid, demographicKeyPrefix)

		bdate := dateField(r, "bdate")
		if bdate == nil && field(r, "bdate") != "" {
			stats.NulledVals++
		}
		if bdate != nil && *bdate > today {
			bdate = nil
			stats.NulledVals++
		}

		out = append(out, Demographic{
			CustomerRef: cid,
			BirthDate:   bdate,
			Gender:      genderToken(field(r, "gen")),
			LoadedAt:    loadedAt,
		})
	}

	stats.RowsOut = len(out)
	return out, stats
}
