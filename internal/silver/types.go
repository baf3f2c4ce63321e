// Package silver implements the per-entity cleansing units that turn raw
// bronze extracts into normalized, deduplicated, typed silver records.
//
// Each unit is a pure transformation over untyped rows: null/blank guards,
// field normalization, derived fields, optional dedup/window derivation, and
// a provenance stamp. Units never reject malformed rows; a field that cannot
// be parsed becomes null and is counted as a data-quality signal.
package silver

import (
	"strconv"
	"strings"
	"time"

	"github.com/thetascott/AWS-Data-Warehouse/internal/rawcsv"
)

// Dates are stored the way the columnar output encodes them: days since the
// Unix epoch. Timestamps are epoch milliseconds.

// Customer is the cleansed crm_cust_info record.
type Customer struct {
	ID            int32   `parquet:"name=cst_id, type=INT32"`
	Key           string  `parquet:"name=cst_key, type=BYTE_ARRAY, convertedtype=UTF8"`
	FirstName     *string `parquet:"name=cst_firstname, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	LastName      *string `parquet:"name=cst_lastname, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	MaritalStatus string  `parquet:"name=cst_marital_status, type=BYTE_ARRAY, convertedtype=UTF8"`
	Gender        string  `parquet:"name=cst_gndr, type=BYTE_ARRAY, convertedtype=UTF8"`
	CreateDate    *int32  `parquet:"name=cst_create_date, type=INT32, convertedtype=DATE, repetitiontype=OPTIONAL"`
	LoadedAt      int64   `parquet:"name=dwh_create_date, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
}

// Product is the cleansed crm_prd_info record, including the derived
// category id and the successor-based validity window.
type Product struct {
	ID         *int32 `parquet:"name=prd_id, type=INT32, repetitiontype=OPTIONAL"`
	CategoryID string `parquet:"name=cat_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Key        string `parquet:"name=prd_key, type=BYTE_ARRAY, convertedtype=UTF8"`
	Name       string `parquet:"name=prd_nm, type=BYTE_ARRAY, convertedtype=UTF8"`
	Cost       int32  `parquet:"name=prd_cost, type=INT32"`
	Line       string `parquet:"name=prd_line, type=BYTE_ARRAY, convertedtype=UTF8"`
	StartDate  *int32 `parquet:"name=prd_start_dt, type=INT32, convertedtype=DATE, repetitiontype=OPTIONAL"`
	EndDate    *int32 `parquet:"name=prd_end_dt, type=INT32, convertedtype=DATE, repetitiontype=OPTIONAL"`
	LoadedAt   int64  `parquet:"name=dwh_create_date, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
}

// SalesLine is the cleansed crm_sales_details record with reconciled
// amount/price fields.
type SalesLine struct {
	OrderNumber string `parquet:"name=sls_ord_num, type=BYTE_ARRAY, convertedtype=UTF8"`
	ProductKey  string `parquet:"name=sls_prd_key, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerID  *int32 `parquet:"name=sls_cust_id, type=INT32, repetitiontype=OPTIONAL"`
	OrderDate   *int32 `parquet:"name=sls_order_dt, type=INT32, convertedtype=DATE, repetitiontype=OPTIONAL"`
	ShipDate    *int32 `parquet:"name=sls_ship_dt, type=INT32, convertedtype=DATE, repetitiontype=OPTIONAL"`
	DueDate     *int32 `parquet:"name=sls_due_dt, type=INT32, convertedtype=DATE, repetitiontype=OPTIONAL"`
	Sales       *int32 `parquet:"name=sls_sales, type=INT32, repetitiontype=OPTIONAL"`
	Quantity    *int32 `parquet:"name=sls_quantity, type=INT32, repetitiontype=OPTIONAL"`
	Price       *int32 `parquet:"name=sls_price, type=INT32, repetitiontype=OPTIONAL"`
	LoadedAt    int64  `parquet:"name=dwh_create_date, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
}

// Demographic is the cleansed erp_cust_az12 record.
type Demographic struct {
	CustomerRef string `parquet:"name=cid, type=BYTE_ARRAY, convertedtype=UTF8"`
	BirthDate   *int32 `parquet:"name=bdate, type=INT32, convertedtype=DATE, repetitiontype=OPTIONAL"`
	Gender      string `parquet:"name=gen, type=BYTE_ARRAY, convertedtype=UTF8"`
	LoadedAt    int64  `parquet:"name=dwh_create_date, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
}

// Location is the cleansed erp_loc_a101 record.
type Location struct {
	CustomerRef string `parquet:"name=cid, type=BYTE_ARRAY, convertedtype=UTF8"`
	Country     string `parquet:"name=cntry, type=BYTE_ARRAY, convertedtype=UTF8"`
	LoadedAt    int64  `parquet:"name=dwh_create_date, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
}

// ProductCategory is the cleansed erp_px_cat_g1v2 record: a projected column
// subset with a provenance stamp.
type ProductCategory struct {
	ID          string `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Category    string `parquet:"name=cat, type=BYTE_ARRAY, convertedtype=UTF8"`
	Subcategory string `parquet:"name=subcat, type=BYTE_ARRAY, convertedtype=UTF8"`
	Maintenance string `parquet:"name=maintenance, type=BYTE_ARRAY, convertedtype=UTF8"`
	LoadedAt    int64  `parquet:"name=dwh_create_date, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
}

// Stats accumulates per-unit data-quality signals. These are logged and
// exported as metrics, never turned into failures.
type Stats struct {
	RowsIn     int
	RowsOut    int
	DroppedKey int // rows dropped for a null natural key (customer only)
	NulledVals int // required derivations that could not be parsed
	NullOrder  int // dedup/window rows with a missing order value
}

const rawDateLayout = "2006-01-02"

// DaysOf converts a calendar date to epoch days.
func DaysOf(t time.Time) int32 {
	return int32(t.Unix() / 86400)
}

// TimeOfDays converts epoch days back to a UTC midnight time.
func TimeOfDays(d int32) time.Time {
	return time.Unix(int64(d)*86400, 0).UTC()
}

// field returns a raw column value with surrounding whitespace intact.
func field(row rawcsv.Row, col string) string { return row[col] }

// trimmedPtr trims a raw text field; a blank raw value is null.
func trimmedPtr(row rawcsv.Row, col string) *string {
	v := row[col]
	if v == "" {
		return nil
	}
	t := strings.TrimSpace(v)
	return &t
}

// int32Field parses a raw field as int32; blank or malformed is null.
func int32Field(row rawcsv.Row, col string) *int32 {
	v := strings.TrimSpace(row[col])
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return nil
	}
	out := int32(n)
	return &out
}

// dateField parses a raw YYYY-MM-DD field into epoch days; blank or
// malformed is null.
func dateField(row rawcsv.Row, col string) *int32 {
	v := strings.TrimSpace(row[col])
	if v == "" {
		return nil
	}
	t, err := time.Parse(rawDateLayout, v)
	if err != nil {
		return nil
	}
	d := DaysOf(t)
	return &d
}

func int32Ptr(v int32) *int32 { return &v }
