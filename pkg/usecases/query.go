package usecases

import (
	"context"
	"io"

	"github.com/kristinawk/bicimad-nearest/pkg/config"
	"github.com/kristinawk/bicimad-nearest/pkg/report"

	"go.uber.org/zap"
)

// QueryService answers interactive place lookups.
type QueryService struct {
	log     *zap.Logger
	cfg     *config.Config
	builder TableBuilder
}

func NewQueryService(log *zap.Logger, cfg *config.Config, builder TableBuilder) *QueryService {
	return &QueryService{
		log:     log,
		cfg:     cfg,
		builder: builder,
	}
}

// Table computes the report, or reads the last exported one when query_from_output is set.
func (q *QueryService) Table(ctx context.Context) (report.Table, error) {
	if q.cfg.QueryFromOutput {
		q.log.Info("reading exported report", zap.String("path", q.cfg.OutputPath))
		return report.ReadCSVFile(q.cfg.OutputPath)
	}
	return q.builder.BuildTable(ctx)
}

func (q *QueryService) Run(ctx context.Context, prompter report.Prompter, out io.Writer) error {
	table, err := q.Table(ctx)
	if err != nil {
		return err
	}
	return report.NewSession(table, prompter, out, q.log).Run()
}
