package jobs

import (
	"context"
	"log/slog"

	"bundling/internal/core/application/usecases/queries"
	"bundling/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// OrderReportJob periodically logs a snapshot of the order book.
// Runs every minute and reports order counts and combined price totals.
type OrderReportJob struct {
	handler queries.GetAllOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderReportJob creates a new job for order book reporting.
// Uses GetAllOrdersQueryHandler to read totals without touching domain trees.
func NewOrderReportJob(handler queries.GetAllOrdersQueryHandler, logger *slog.Logger) *OrderReportJob {
	return &OrderReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_report_job"),
	}
}

// Start begins the order report job to run every minute.
func (j *OrderReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetAllOrdersQuery()

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order report job failed", "error", err)
			return
		}

		total := kernel.ZeroMoney()
		for _, o := range orders {
			total = total.Add(o.TotalPrice)
		}

		j.logger.InfoContext(ctx, "Order book report",
			"orders", len(orders),
			"combined_total", total.String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order report job started (running every minute)")
	return nil
}

// Stop stops the order report job.
func (j *OrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order report job stopped")
}
