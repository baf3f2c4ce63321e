package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestLoadDefaults verifies the defaulted fields with a clean environment.
func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	require.Equal(t, "us-east-2", c.AWSRegion)
	require.Equal(t, "srs_bronze_db", c.BronzeDatabase)
	require.Equal(t, "srs_silver_db", c.SilverDatabase)
	require.Equal(t, "s3", c.StorageKind)
	require.Equal(t, "glue", c.CatalogKind)
	require.Equal(t, "redshift", c.WarehouseKind)
	require.Equal(t, "data-warehouse-wg", c.RedshiftWorkgroup)
	require.Equal(t, "Gold/ddl_gold.sql", c.ScriptsKey)
	require.Equal(t, 50, c.SampleRows)
}

// TestLoadOverrides verifies that environment values win over defaults.
func TestLoadOverrides(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("STORAGE_KIND", "local")
	t.Setenv("BRONZE_BUCKET", "/tmp/bronze")
	t.Setenv("SAMPLE_ROWS", "10")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "eu-west-1", c.AWSRegion)
	require.Equal(t, "local", c.StorageKind)
	require.Equal(t, "/tmp/bronze", c.BronzeBucket)
	require.Equal(t, 10, c.SampleRows)
}

// TestProcessing covers the default stamp, the override and a malformed
// override.
func TestProcessing(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 15, 17, 42, 3, 0, time.UTC)

	got, err := Config{}.Processing(now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = Config{ProcessingDate: "2024-12-31"}.Processing(now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), got)

	_, err = Config{ProcessingDate: "31/12/2024"}.Processing(now)
	require.Error(t, err)
}
