package silver

import (
	"strconv"
	"strings"
	"time"

	"github.com/thetascott/AWS-Data-Warehouse/internal/rawcsv"
)

// TransformSales cleanses crm_sales_details rows.
//
// Order/ship/due dates arrive as 8-digit-encoded integers; a zero or a value
// that is not exactly eight digits is invalid and becomes null. The amount
// and price are then reconciled in a fixed order: sales first (recomputed as
// quantity × |price| when null, non-positive, or inconsistent with that
// product), then price derived from the possibly-recomputed sales when null
// or non-positive. The derivation order is kept for compatibility with the
// upstream warehouse even where it looks quirky.
func TransformSales(rows []rawcsv.Row, processing time.Time) ([]SalesLine, Stats) {
	stats := Stats{RowsIn: len(rows)}
	loadedAt := processing.UnixMilli()

	out := make([]SalesLine, 0, len(rows))
	for _, r := range rows {
		line := SalesLine{
			OrderNumber: field(r, "sls_ord_num"),
			ProductKey:  field(r, "sls_prd_key"),
			CustomerID:  int32Field(r, "sls_cust_id"),
			OrderDate:   encodedDate(r, "sls_order_dt", &stats),
			ShipDate:    encodedDate(r, "sls_ship_dt", &stats),
			DueDate:     encodedDate(r, "sls_due_dt", &stats),
			Sales:       int32Field(r, "sls_sales"),
			Quantity:    int32Field(r, "sls_quantity"),
			Price:       int32Field(r, "sls_price"),
			LoadedAt:    loadedAt,
		}

		reconcile(&line)
		out = append(out, line)
	}

	stats.RowsOut = len(out)
	return out, stats
}

// reconcile enforces sales = quantity × |price| and price > 0, recomputing
// in that order. Null operands propagate: a recomputation whose inputs are
// null yields null rather than an error.
func reconcile(l *SalesLine) {
	product := mulAbs(l.Quantity, l.Price)

	if l.Sales == nil || *l.Sales <= 0 || (product != nil && *l.Sales != *product) {
		l.Sales = product
	}

	if l.Price == nil || *l.Price <= 0 {
		l.Price = div(l.Sales, l.Quantity)
	}
}

// mulAbs returns q × |p|, or null when either operand is null.
func mulAbs(q, p *int32) *int32 {
	if q == nil || p == nil {
		return nil
	}
	a := *p
	if a < 0 {
		a = -a
	}
	v := *q * a
	return &v
}

// div returns s / q, or null when either operand is null or q is zero.
func div(s, q *int32) *int32 {
	if s == nil || q == nil || *q == 0 {
		return nil
	}
	v := *s / *q
	return &v
}

// encodedDate decodes an 8-digit YYYYMMDD integer field. Zero, wrong-width,
// or unparseable values are invalid and become null, counted as a
// data-quality signal when the raw field was non-blank.
func encodedDate(r rawcsv.Row, col string, stats *Stats) *int32 {
	v := strings.TrimSpace(r[col])
	if v == "" {
		return nil
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n == 0 || len(v) != 8 {
		stats.NulledVals++
		return nil
	}

	t, err := time.Parse("20060102", v)
	if err != nil {
		stats.NulledVals++
		return nil
	}
	d := DaysOf(t)
	return &d
}
