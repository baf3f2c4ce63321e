package silver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thetascott/AWS-Data-Warehouse/internal/rawcsv"
)

// TestTransformSalesEncodedDates verifies the 8-digit date decoding and its
// invalid-value classes.
func TestTransformSalesEncodedDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		want     *int32
		wantNull int
	}{
		{"valid", "20240229", int32Ptr(days(t, "2024-02-29")), 0},
		{"blank is silent", "", nil, 0},
		{"zero", "0", nil, 1},
		{"wrong width", "202401", nil, 1},
		{"not a number", "2024-01x", nil, 1},
		{"impossible date", "20241340", nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, stats := TransformSales([]rawcsv.Row{
				{"sls_ord_num": "SO1", "sls_order_dt": tt.raw},
			}, testProcessing)
			require.Len(t, got, 1)
			if tt.want == nil {
				require.Nil(t, got[0].OrderDate)
			} else {
				require.NotNil(t, got[0].OrderDate)
				require.Equal(t, *tt.want, *got[0].OrderDate)
			}
			require.Equal(t, tt.wantNull, stats.NulledVals)
		})
	}
}

// TestTransformSalesReconciliation covers the amount/price repair rules:
// the stored amount is replaced when null, non-positive, or inconsistent
// with quantity × |price|, and the price is then derived from the repaired
// amount when it is itself null or non-positive.
func TestTransformSalesReconciliation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		row       rawcsv.Row
		wantSales *int32
		wantPrice *int32
	}{
		{
			"consistent kept",
			rawcsv.Row{"sls_quantity": "3", "sls_price": "10", "sls_sales": "30"},
			int32Ptr(30), int32Ptr(10),
		},
		{
			"inconsistent replaced",
			rawcsv.Row{"sls_quantity": "3", "sls_price": "10", "sls_sales": "999"},
			int32Ptr(30), int32Ptr(10),
		},
		{
			"negative price made positive via product",
			rawcsv.Row{"sls_quantity": "2", "sls_price": "-5", "sls_sales": ""},
			int32Ptr(10), int32Ptr(5),
		},
		{
			// zero price first drags the amount to the recomputed product,
			// then the derived price follows it
			"zero price cascades",
			rawcsv.Row{"sls_quantity": "3", "sls_price": "0", "sls_sales": "30"},
			int32Ptr(0), int32Ptr(0),
		},
		{
			"zero quantity gives null price",
			rawcsv.Row{"sls_quantity": "0", "sls_price": "", "sls_sales": "30"},
			int32Ptr(30), nil,
		},
		{
			"all null stays null",
			rawcsv.Row{"sls_quantity": "", "sls_price": "", "sls_sales": ""},
			nil, nil,
		},
		{
			"null price keeps positive sales",
			rawcsv.Row{"sls_quantity": "3", "sls_price": "", "sls_sales": "30"},
			int32Ptr(30), int32Ptr(10),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, _ := TransformSales([]rawcsv.Row{tt.row}, testProcessing)
			require.Len(t, got, 1)

			if tt.wantSales == nil {
				require.Nil(t, got[0].Sales)
			} else {
				require.NotNil(t, got[0].Sales)
				require.Equal(t, *tt.wantSales, *got[0].Sales)
			}
			if tt.wantPrice == nil {
				require.Nil(t, got[0].Price)
			} else {
				require.NotNil(t, got[0].Price)
				require.Equal(t, *tt.wantPrice, *got[0].Price)
			}
		})
	}
}

// TestTransformSalesPassthrough checks that identity and quantity columns
// survive untouched.
func TestTransformSalesPassthrough(t *testing.T) {
	t.Parallel()

	got, stats := TransformSales([]rawcsv.Row{
		{
			"sls_ord_num":  "SO43697",
			"sls_prd_key":  "BK-R93R-62",
			"sls_cust_id":  "21768",
			"sls_order_dt": "20101229",
			"sls_quantity": "1",
			"sls_price":    "3578",
			"sls_sales":    "3578",
		},
	}, testProcessing)
	require.Len(t, got, 1)

	require.Equal(t, "SO43697", got[0].OrderNumber)
	require.Equal(t, "BK-R93R-62", got[0].ProductKey)
	require.Equal(t, int32(21768), *got[0].CustomerID)
	require.Equal(t, int32(1), *got[0].Quantity)
	require.Equal(t, 1, stats.RowsIn)
	require.Equal(t, 1, stats.RowsOut)
}
