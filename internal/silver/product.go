package silver

import (
	"strings"
	"time"

	"github.com/thetascott/AWS-Data-Warehouse/internal/dedup"
	"github.com/thetascott/AWS-Data-Warehouse/internal/rawcsv"
)

// prdKeyPrefixLen is the fixed length of the category prefix embedded in a
// raw product key; the remainder (after the separator) is the real key.
const prdKeyPrefixLen = 5

// TransformProducts cleanses crm_prd_info rows.
//
// The raw product key carries two facts: its first five characters are the
// category id (with "-" flattened to "_"), and everything from position
// seven onward is the product's own key. Versions of one product are strung
// into validity windows: each row ends the day before the next version
// starts, and the current version stays open-ended.
func TransformProducts(rows []rawcsv.Row, processing time.Time) ([]Product, Stats) {
	stats := Stats{RowsIn: len(rows)}
	loadedAt := processing.UnixMilli()

	out := make([]Product, 0, len(rows))
	for _, r := range rows {
		rawKey := field(r, "prd_key")

		catID := rawKey
		if len(catID) > prdKeyPrefixLen {
			catID = catID[:prdKeyPrefixLen]
		}
		catID = strings.ReplaceAll(catID, "-", "_")

		key := ""
		if len(rawKey) > prdKeyPrefixLen+1 {
			key = rawKey[prdKeyPrefixLen+1:]
		}

		cost := int32(0)
		if c := int32Field(r, "prd_cost"); c != nil {
			cost = *c
		}

		startDate := dateField(r, "prd_start_dt")
		if startDate == nil && field(r, "prd_start_dt") != "" {
			stats.NulledVals++
		}

		name := ""
		if n := trimmedPtr(r, "prd_nm"); n != nil {
			name = *n
		}

		out = append(out, Product{
			ID:         int32Field(r, "prd_id"),
			CategoryID: catID,
			Key:        key,
			Name:       name,
			Cost:       cost,
			Line:       productLine(field(r, "prd_line")),
			StartDate:  startDate,
			LoadedAt:   loadedAt,
		})
	}

	windowed, nullOrder := dedup.SuccessorWindow(out,
		func(p Product) string { return p.Key },
		func(p Product) (time.Time, bool) {
			if p.StartDate == nil {
				return time.Time{}, false
			}
			return TimeOfDays(*p.StartDate), true
		},
		func(p *Product, end time.Time) {
			p.EndDate = int32Ptr(DaysOf(end))
		},
	)
	stats.NullOrder = nullOrder
	stats.RowsOut = len(windowed)
	return windowed, stats
}
