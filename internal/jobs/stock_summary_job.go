package jobs

import (
	"context"
	"log/slog"
	"time"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const stockSummaryTimeout = 30 * time.Second

type stockSummarizer interface {
	Handle(ctx context.Context, query queries.GetStockSummaryQuery) ([]queries.StatusTotal, error)
}

// StockSummaryJob periodically logs the number of units and the summed
// amount per status across all stocks.
type StockSummaryJob struct {
	handler  stockSummarizer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStockSummaryJob creates the job. schedule is a six field cron
// expression with seconds.
func NewStockSummaryJob(handler stockSummarizer, schedule string, logger *slog.Logger) *StockSummaryJob {
	return &StockSummaryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stock_summary_job"),
	}
}

func (j *StockSummaryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.tick); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Stock summary job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running summary to finish.
func (j *StockSummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Stock summary job stopped")
}

func (j *StockSummaryJob) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), stockSummaryTimeout)
	defer cancel()

	if err := j.run(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Stock summary job failed", "error", err)
	}
}

func (j *StockSummaryJob) run(ctx context.Context) error {
	totals, err := j.handler.Handle(ctx, queries.NewGetStockSummaryQuery(0))
	if err != nil {
		return err
	}

	var units, amount int64
	for _, t := range totals {
		units += t.Units
		amount += t.Amount
		j.logger.InfoContext(ctx, "stock summary",
			"status_id", t.StatusID,
			"status", t.StatusLabel,
			"units", t.Units,
			"amount", t.Amount,
		)
	}
	j.logger.InfoContext(ctx, "stock summary total", "units", units, "amount", amount)
	return nil
}
