package silver

import (
	"strings"

	"github.com/thetascott/AWS-Data-Warehouse/internal/catalog"
)

// TableDefs returns the catalog definitions of the six cleansed datasets.
// Silver schemas are fixed: unlike bronze they are not discovered, because
// the transformations pin both the columns and their types. base is the
// store location the dataset prefixes hang off, e.g. "s3://silver-bucket".
func TableDefs(base string) []catalog.TableDef {
	base = strings.TrimSuffix(base, "/")

	tables := []struct {
		name string
		cols []catalog.Column
	}{
		{"crm_cust_info", []catalog.Column{
			{Name: "cst_id", Type: "int"},
			{Name: "cst_key", Type: "string"},
			{Name: "cst_firstname", Type: "string"},
			{Name: "cst_lastname", Type: "string"},
			{Name: "cst_marital_status", Type: "string"},
			{Name: "cst_gndr", Type: "string"},
			{Name: "cst_create_date", Type: "date"},
		}},
		{"crm_prd_info", []catalog.Column{
			{Name: "prd_id", Type: "int"},
			{Name: "cat_id", Type: "string"},
			{Name: "prd_key", Type: "string"},
			{Name: "prd_nm", Type: "string"},
			{Name: "prd_cost", Type: "int"},
			{Name: "prd_line", Type: "string"},
			{Name: "prd_start_dt", Type: "date"},
			{Name: "prd_end_dt", Type: "date"},
		}},
		{"crm_sales_details", []catalog.Column{
			{Name: "sls_ord_num", Type: "string"},
			{Name: "sls_prd_key", Type: "string"},
			{Name: "sls_cust_id", Type: "int"},
			{Name: "sls_order_dt", Type: "date"},
			{Name: "sls_ship_dt", Type: "date"},
			{Name: "sls_due_dt", Type: "date"},
			{Name: "sls_sales", Type: "int"},
			{Name: "sls_quantity", Type: "int"},
			{Name: "sls_price", Type: "int"},
		}},
		{"erp_cust_az12", []catalog.Column{
			{Name: "cid", Type: "string"},
			{Name: "bdate", Type: "date"},
			{Name: "gen", Type: "string"},
		}},
		{"erp_loc_a101", []catalog.Column{
			{Name: "cid", Type: "string"},
			{Name: "cntry", Type: "string"},
		}},
		{"erp_px_cat_g1v2", []catalog.Column{
			{Name: "id", Type: "string"},
			{Name: "cat", Type: "string"},
			{Name: "subcat", Type: "string"},
			{Name: "maintenance", Type: "string"},
		}},
	}

	defs := make([]catalog.TableDef, 0, len(tables))
	for _, t := range tables {
		cols := append(t.cols, catalog.Column{Name: "dwh_create_date", Type: "timestamp"})
		defs = append(defs, catalog.TableDef{
			Name:     t.name,
			Columns:  cols,
			Location: base + "/" + datasetPrefix(t.name) + "/",
			Format:   catalog.FormatParquet,
		})
	}
	return defs
}
