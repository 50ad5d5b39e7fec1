package jobs

import (
	"context"
	"log/slog"

	"senderplus/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DeliveryReportJob periodically logs how many parcels sit in each
// lifecycle stage.
type DeliveryReportJob struct {
	handler queries.GetParcelStatusCountsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryReportJob creates a new job for the hourly delivery report.
func NewDeliveryReportJob(handler queries.GetParcelStatusCountsQueryHandler, logger *slog.Logger) *DeliveryReportJob {
	return &DeliveryReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "delivery_report_job"),
	}
}

// Start begins the delivery report job to run at the top of every hour.
func (j *DeliveryReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetParcelStatusCountsQuery()

		counts, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery report job failed", "error", err)
			return
		}

		attrs := make([]any, 0, len(counts)*2)
		for _, c := range counts {
			attrs = append(attrs, c.Status, c.Count)
		}
		j.logger.InfoContext(ctx, "Delivery pipeline report", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery report job started (running hourly)")
	return nil
}

// Stop stops the delivery report job.
func (j *DeliveryReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery report job stopped")
}
