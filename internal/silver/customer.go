package silver

import (
	"strconv"
	"time"

	"github.com/thetascott/AWS-Data-Warehouse/internal/dedup"
	"github.com/thetascott/AWS-Data-Warehouse/internal/rawcsv"
)

// TransformCustomers cleanses crm_cust_info rows.
//
// Rules, in order: trim name fields, map marital-status and gender codes,
// drop rows with a null customer id, then keep only the latest record per
// customer id by creation date. The provenance stamp is the processing date.
func TransformCustomers(rows []rawcsv.Row, processing time.Time) ([]Customer, Stats) {
	stats := Stats{RowsIn: len(rows)}
	loadedAt := processing.UnixMilli()

	out := make([]Customer, 0, len(rows))
	for _, r := range rows {
		id := int32Field(r, "cst_id")
		if id == nil {
			stats.DroppedKey++
			continue
		}

		createDate := dateField(r, "cst_create_date")
		if createDate == nil && field(r, "cst_create_date") != "" {
			stats.NulledVals++
		}

		out = append(out, Customer{
			ID:            *id,
			Key:           field(r, "cst_key"),
			FirstName:     trimmedPtr(r, "cst_firstname"),
			LastName:      trimmedPtr(r, "cst_lastname"),
			MaritalStatus: maritalStatus(field(r, "cst_marital_status")),
			Gender:        gender(field(r, "cst_gndr")),
			CreateDate:    createDate,
			LoadedAt:      loadedAt,
		})
	}

	deduped, nullOrder := dedup.LatestPerKey(out,
		func(c Customer) string { return strconv.FormatInt(int64(c.ID), 10) },
		func(c Customer) (time.Time, bool) {
			if c.CreateDate == nil {
				return time.Time{}, false
			}
			return TimeOfDays(*c.CreateDate), true
		},
	)
	stats.NullOrder = nullOrder
	stats.RowsOut = len(deduped)
	return deduped, stats
}
