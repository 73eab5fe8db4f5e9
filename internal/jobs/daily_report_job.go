package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/report"
	"kitchen/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultDailyReportSchedule fires at 00:05 every day.
	DefaultDailyReportSchedule = "0 5 0 * * *"
	DefaultReportsTopic        = "reports"

	dailyReportTimeout = time.Minute
)

type ReportBuilder interface {
	Handle(ctx context.Context, query queries.BuildReportQuery) (report.Report, error)
}

// DailyReportMessage is what displays receive on the reports topic.
type DailyReportMessage struct {
	Type              string         `json:"type"`
	Date              string         `json:"date"`
	TotalOrders       int            `json:"totalOrders"`
	TotalRevenue      string         `json:"totalRevenue"`
	AverageOrderValue string         `json:"averageOrderValue"`
	AvgPrepMinutes    string         `json:"avgPrepMinutes"`
	StatusCounts      map[string]int `json:"statusCounts"`
	TopItems          []string       `json:"topItems"`
	GeneratedAt       time.Time      `json:"generatedAt"`
}

func newDailyReportMessage(rep report.Report) DailyReportMessage {
	counts := make(map[string]int, len(rep.StatusCounts))
	for _, sc := range rep.StatusCounts {
		counts[sc.Status.String()] = sc.Count
	}
	top := make([]string, len(rep.TopItems))
	for i, item := range rep.TopItems {
		top[i] = item.Name
	}

	return DailyReportMessage{
		Type:              "daily-report",
		Date:              rep.Range.Start().Format(report.DateLayout),
		TotalOrders:       rep.TotalOrders,
		TotalRevenue:      rep.TotalRevenue.String(),
		AverageOrderValue: rep.AverageOrderValue.String(),
		AvgPrepMinutes:    rep.AvgPrepMinutes.StringFixed(1),
		StatusCounts:      counts,
		TopItems:          top,
		GeneratedAt:       rep.GeneratedAt,
	}
}

// DailyReportJob publishes yesterday's figures once a day.
type DailyReportJob struct {
	reports     ReportBuilder
	broadcaster ports.Broadcaster
	clock       kernel.Clock
	location    *time.Location
	schedule    string
	topic       string
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewDailyReportJob creates the job. schedule is a six-field cron expression
// evaluated in loc; an empty schedule or topic falls back to the defaults.
func NewDailyReportJob(
	reports ReportBuilder,
	broadcaster ports.Broadcaster,
	clock kernel.Clock,
	loc *time.Location,
	schedule string,
	topic string,
	logger *slog.Logger,
) *DailyReportJob {
	if loc == nil {
		loc = time.UTC
	}
	if schedule == "" {
		schedule = DefaultDailyReportSchedule
	}
	if topic == "" {
		topic = DefaultReportsTopic
	}

	return &DailyReportJob{
		reports:     reports,
		broadcaster: broadcaster,
		clock:       clock,
		location:    loc,
		schedule:    schedule,
		topic:       topic,
		cron:        cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		logger:      logger.With("component", "daily_report_job"),
	}
}

func (j *DailyReportJob) Name() string {
	return "daily report"
}

// Start registers the schedule and starts the cron runner.
func (j *DailyReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), dailyReportTimeout)
		defer cancel()

		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Daily report job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily report job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running report to finish.
func (j *DailyReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Daily report job stopped")
}

// Run builds the report of the day before now and publishes it.
func (j *DailyReportJob) Run(ctx context.Context) error {
	yesterday := j.clock.Now().In(j.location).AddDate(0, 0, -1)

	query, err := queries.NewBuildReportQuery(report.Daily, report.Day(yesterday, j.location))
	if err != nil {
		return err
	}

	rep, err := j.reports.Handle(ctx, query)
	if err != nil {
		return fmt.Errorf("build report for %s: %w", yesterday.Format(report.DateLayout), err)
	}

	if err = j.broadcaster.Publish(ctx, j.topic, newDailyReportMessage(rep)); err != nil {
		return fmt.Errorf("publish report for %s: %w", yesterday.Format(report.DateLayout), err)
	}

	j.logger.InfoContext(ctx, "Daily report published",
		"date", yesterday.Format(report.DateLayout),
		"total_orders", rep.TotalOrders,
		"total_revenue", rep.TotalRevenue.String(),
	)
	return nil
}
