package warehouse

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/redshiftdata"
)

func init() {
	Register("redshift", newRedshiftExecutor)
}

// redshiftExecutor submits statements through the Redshift Data API, so no
// cluster connectivity or driver is needed. Submission is asynchronous;
// the returned id can be traced in the Redshift console.
type redshiftExecutor struct {
	client    *redshiftdata.Client
	workgroup string
	database  string
}

func newRedshiftExecutor(ctx context.Context, cfg Config) (Executor, error) {
	if cfg.Workgroup == "" {
		return nil, fmt.Errorf("redshift executor: missing workgroup")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("redshift executor: missing database")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("redshift executor: load aws config: %w", err)
	}

	return &redshiftExecutor{
		client:    redshiftdata.NewFromConfig(awsCfg),
		workgroup: cfg.Workgroup,
		database:  cfg.Database,
	}, nil
}

func (r *redshiftExecutor) Execute(ctx context.Context, stmt string) (string, error) {
	out, err := r.client.ExecuteStatement(ctx, &redshiftdata.ExecuteStatementInput{
		Sql:           aws.String(stmt),
		WorkgroupName: aws.String(r.workgroup),
		Database:      aws.String(r.database),
	})
	if err != nil {
		return "", fmt.Errorf("execute on %s/%s: %w", r.workgroup, r.database, err)
	}
	return aws.ToString(out.Id), nil
}

func (r *redshiftExecutor) Close() {}
