package silver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thetascott/AWS-Data-Warehouse/internal/catalog"
)

// TestTableDefs verifies the fixed silver schemas: one Parquet table per
// unit, located under the matching dataset prefix, all stamped with the
// provenance column.
func TestTableDefs(t *testing.T) {
	t.Parallel()

	defs := TableDefs("s3://silver-bucket/")
	require.Len(t, defs, 6)

	byName := map[string]catalog.TableDef{}
	for _, d := range defs {
		byName[d.Name] = d

		require.Equal(t, catalog.FormatParquet, d.Format)
		last := d.Columns[len(d.Columns)-1]
		require.Equal(t, "dwh_create_date", last.Name)
		require.Equal(t, "timestamp", last.Type)
	}

	cust := byName["crm_cust_info"]
	require.Equal(t, "s3://silver-bucket/crm/cust_info/", cust.Location)
	require.Len(t, cust.Columns, 8)

	sales := byName["crm_sales_details"]
	require.Len(t, sales.Columns, 10)
	require.Equal(t, "s3://silver-bucket/crm/sales_details/", sales.Location)
}
