package silver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thetascott/AWS-Data-Warehouse/internal/rawcsv"
)

// TestTransformDemographics covers the key-prefix strip, future birth-date
// nulling and the gender token domain.
func TestTransformDemographics(t *testing.T) {
	t.Parallel()

	rows := []rawcsv.Row{
		{"cid": "NASAW00011000", "bdate": "1971-10-06", "gen": "Female"},
		{"cid": "AW00011001", "bdate": "2099-01-01", "gen": "m"},
		{"cid": "NASAW00011002", "bdate": "junk", "gen": "unknown"},
	}

	got, stats := TransformDemographics(rows, testProcessing)
	require.Len(t, got, 3)

	require.Equal(t, "AW00011000", got[0].CustomerRef)
	require.Equal(t, days(t, "1971-10-06"), *got[0].BirthDate)
	require.Equal(t, "Female", got[0].Gender)

	// Prefix strip only applies when present; future dates are nulled.
	require.Equal(t, "AW00011001", got[1].CustomerRef)
	require.Nil(t, got[1].BirthDate)
	require.Equal(t, "Male", got[1].Gender)

	require.Nil(t, got[2].BirthDate)
	require.Equal(t, "n/a", got[2].Gender)
	require.Equal(t, 2, stats.NulledVals)
}

// TestTransformDemographicsBirthdayToday verifies the boundary: a birth
// date equal to the processing date is kept.
func TestTransformDemographicsBirthdayToday(t *testing.T) {
	t.Parallel()

	got, stats := TransformDemographics([]rawcsv.Row{
		{"cid": "AW1", "bdate": testProcessing.Format("2006-01-02"), "gen": "F"},
	}, testProcessing)
	require.Len(t, got, 1)
	require.Equal(t, DaysOf(testProcessing), *got[0].BirthDate)
	require.Zero(t, stats.NulledVals)
}

// TestTransformLocations covers hyphen stripping and the country map,
// including its open passthrough edge.
func TestTransformLocations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cid, cntry  string
		wantRef     string
		wantCountry string
	}{
		{"germany", "AW-00011000", "DE", "AW00011000", "Germany"},
		{"us short", "AW-00011001", "US", "AW00011001", "United States"},
		{"us long", "AW00011002", "USA", "AW00011002", "United States"},
		{"blank", "AW-00011003", "", "AW00011003", "n/a"},
		{"passthrough", "AW-00011004", " France ", "AW00011004", "France"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, _ := TransformLocations([]rawcsv.Row{
				{"cid": tt.cid, "cntry": tt.cntry},
			}, testProcessing)
			require.Len(t, got, 1)
			require.Equal(t, tt.wantRef, got[0].CustomerRef)
			require.Equal(t, tt.wantCountry, got[0].Country)
		})
	}
}

// TestTransformCategories verifies the projection keeps every row and
// stamps provenance.
func TestTransformCategories(t *testing.T) {
	t.Parallel()

	got, stats := TransformCategories([]rawcsv.Row{
		{"id": "AC_HE", "cat": "Accessories", "subcat": "Helmets", "maintenance": "Yes"},
		{"id": "", "cat": "", "subcat": "", "maintenance": ""},
	}, testProcessing)
	require.Len(t, got, 2)

	require.Equal(t, "AC_HE", got[0].ID)
	require.Equal(t, "Helmets", got[0].Subcategory)
	require.Equal(t, testProcessing.UnixMilli(), got[0].LoadedAt)
	require.Equal(t, 2, stats.RowsIn)
	require.Equal(t, 2, stats.RowsOut)
}
