// Package config loads pipeline configuration from the environment. Every
// command shares one schema; unused fields are simply ignored by commands
// that do not need them.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-backed configuration for all pipeline commands.
type Config struct {
	AWSRegion string `envconfig:"AWS_REGION" default:"us-east-2"`

	// Lake buckets (or root directories with STORAGE_KIND=local).
	BronzeBucket string `envconfig:"BRONZE_BUCKET"`
	SilverBucket string `envconfig:"SILVER_BUCKET"`

	// Metastore databases.
	BronzeDatabase string `envconfig:"BRONZE_GLUE_DATABASE" default:"srs_bronze_db"`
	SilverDatabase string `envconfig:"SILVER_GLUE_DATABASE" default:"srs_silver_db"`

	// Backend selection.
	StorageKind   string `envconfig:"STORAGE_KIND" default:"s3"`
	CatalogKind   string `envconfig:"CATALOG_KIND" default:"glue"`
	CatalogPath   string `envconfig:"CATALOG_PATH"`
	WarehouseKind string `envconfig:"WAREHOUSE_KIND" default:"redshift"`

	// Warehouse targets.
	RedshiftWorkgroup string `envconfig:"REDSHIFT_WORKGROUP" default:"data-warehouse-wg"`
	RedshiftDatabase  string `envconfig:"REDSHIFT_DB" default:"datawarehouse"`
	RedshiftRoleARN   string `envconfig:"REDSHIFT_ROLE_ARN"`
	WarehouseDSN      string `envconfig:"WAREHOUSE_DSN"`

	// Curated-view script location.
	ScriptsBucket string `envconfig:"S3_SCRIPTS_BUCKET"`
	ScriptsKey    string `envconfig:"S3_SCRIPTS_KEY" default:"Gold/ddl_gold.sql"`

	// ProcessingDate overrides the provenance stamp (YYYY-MM-DD); empty
	// means today.
	ProcessingDate string `envconfig:"PROCESSING_DATE"`

	// SampleRows caps how many data rows schema discovery inspects.
	SampleRows int `envconfig:"SAMPLE_ROWS" default:"50"`

	// Metrics backend selection ("" disables, "datadog" enables).
	MetricsBackend string `envconfig:"METRICS_BACKEND"`
	MetricsTags    string `envconfig:"METRICS_TAGS"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// Processing resolves the provenance stamp: midnight UTC of the configured
// override date, or of today when unset.
func (c Config) Processing(now time.Time) (time.Time, error) {
	if c.ProcessingDate == "" {
		y, m, d := now.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", c.ProcessingDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("config: bad PROCESSING_DATE %q: %w", c.ProcessingDate, err)
	}
	return t, nil
}
