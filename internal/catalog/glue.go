package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/aws/aws-sdk-go-v2/service/glue/types"
)

func init() {
	Register("glue", newGlueCatalog)
}

type glueCatalog struct {
	client *glue.Client
}

func newGlueCatalog(ctx context.Context, cfg Config) (Catalog, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("glue catalog: load aws config: %w", err)
	}
	return &glueCatalog{client: glue.NewFromConfig(awsCfg)}, nil
}

func (g *glueCatalog) EnsureDatabase(ctx context.Context, name string) error {
	_, err := g.client.CreateDatabase(ctx, &glue.CreateDatabaseInput{
		DatabaseInput: &types.DatabaseInput{Name: aws.String(name)},
	})
	var exists *types.AlreadyExistsException
	if errors.As(err, &exists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create database %s: %w", name, err)
	}
	return nil
}

func (g *glueCatalog) ApplyTable(ctx context.Context, db string, def TableDef) error {
	if err := validate(def); err != nil {
		return err
	}

	input, err := tableInput(def)
	if err != nil {
		return err
	}

	_, err = g.client.CreateTable(ctx, &glue.CreateTableInput{
		DatabaseName: aws.String(db),
		TableInput:   input,
	})
	var exists *types.AlreadyExistsException
	if errors.As(err, &exists) {
		_, err = g.client.UpdateTable(ctx, &glue.UpdateTableInput{
			DatabaseName: aws.String(db),
			TableInput:   input,
		})
		if err != nil {
			return fmt.Errorf("update table %s.%s: %w", db, def.Name, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("create table %s.%s: %w", db, def.Name, err)
	}
	return nil
}

func (g *glueCatalog) Close() {}

func tableInput(def TableDef) (*types.TableInput, error) {
	cols := make([]types.Column, 0, len(def.Columns))
	for _, c := range def.Columns {
		cols = append(cols, types.Column{
			Name: aws.String(c.Name),
			Type: aws.String(c.Type),
		})
	}

	sd := &types.StorageDescriptor{
		Columns:  cols,
		Location: aws.String(def.Location),
	}
	params := map[string]string{
		"classification": def.Format,
	}

	switch def.Format {
	case FormatCSV:
		sd.InputFormat = aws.String("org.apache.hadoop.mapred.TextInputFormat")
		sd.OutputFormat = aws.String("org.apache.hadoop.hive.ql.io.HiveIgnoreKeyTextOutputFormat")
		sd.SerdeInfo = &types.SerDeInfo{
			SerializationLibrary: aws.String("org.apache.hadoop.hive.serde2.OpenCSVSerde"),
			Parameters: map[string]string{
				"separatorChar": ",",
				"quoteChar":     `"`,
			},
		}
		params["skip.header.line.count"] = "1"

	case FormatParquet:
		sd.InputFormat = aws.String("org.apache.hadoop.hive.ql.io.parquet.MapredParquetInputFormat")
		sd.OutputFormat = aws.String("org.apache.hadoop.hive.ql.io.parquet.MapredParquetOutputFormat")
		sd.SerdeInfo = &types.SerDeInfo{
			SerializationLibrary: aws.String("org.apache.hadoop.hive.ql.io.parquet.serde.ParquetHiveSerDe"),
		}

	default:
		return nil, fmt.Errorf("catalog: table %s has unsupported format %q", def.Name, def.Format)
	}

	return &types.TableInput{
		Name:              aws.String(def.Name),
		TableType:         aws.String("EXTERNAL_TABLE"),
		Parameters:        params,
		StorageDescriptor: sd,
	}, nil
}
