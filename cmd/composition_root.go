package cmd

import (
	"log/slog"

	kitchenhttp "kitchen/internal/adapters/in/http"
	"kitchen/internal/adapters/out/export"
	"kitchen/internal/adapters/out/postgres"
	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/adapters/out/postgres/pgerr"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/core/ports"
	"kitchen/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	broadcaster ports.Broadcaster
	clock       kernel.Clock
	logger      *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, broadcaster ports.Broadcaster, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		broadcaster: broadcaster,
		clock:       kernel.NewSystemClock(),
		logger:      logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderNotifier() *commands.OrderNotifier {
	return commands.NewOrderNotifier(c.broadcaster, c.config.OrdersTopic, c.logger)
}

func (c *CompositionRoot) orderReader() queries.OrderReader {
	return orderrepo.NewGormOrderRepository(c.gormDB, orderrepo.WithReadRetries(pgerr.DefaultReadAttempts))
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(), postgres.NewSequenceCodeGenerator(c.gormDB), c.clock, c.orderNotifier(), c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.clock, c.orderNotifier())
}

func (c *CompositionRoot) CreateAddLineItemCommandHandler() commands.AddLineItemCommandHandler {
	return commands.NewAddLineItemCommandHandler(c.orderUoWFactory(), c.clock, c.orderNotifier())
}

func (c *CompositionRoot) CreateChangeLineItemStatusCommandHandler() commands.ChangeLineItemStatusCommandHandler {
	return commands.NewChangeLineItemStatusCommandHandler(c.orderUoWFactory(), c.clock, c.orderNotifier())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateBuildReportQueryHandler() queries.BuildReportQueryHandler {
	return queries.NewBuildReportQueryHandler(c.orderReader(), services.NewReportAggregator(), c.clock)
}

func (c *CompositionRoot) CreateExportReportQueryHandler() queries.ExportReportQueryHandler {
	return queries.NewExportReportQueryHandler(c.CreateBuildReportQueryHandler(), export.NewRenderer())
}

// CreateHTTPHandlers returns pointers so the command handlers' pointer
// receivers satisfy the HTTP interfaces.
func (c *CompositionRoot) CreateHTTPHandlers() kitchenhttp.Handlers {
	createOrder := c.CreateCreateOrderCommandHandler()
	updateStatus := c.CreateUpdateOrderStatusCommandHandler()
	addLineItem := c.CreateAddLineItemCommandHandler()
	changeLineItemStatus := c.CreateChangeLineItemStatusCommandHandler()

	return kitchenhttp.Handlers{
		CreateOrder:          &createOrder,
		UpdateOrderStatus:    &updateStatus,
		AddLineItem:          &addLineItem,
		ChangeLineItemStatus: &changeLineItemStatus,
		GetOrder:             c.CreateGetOrderQueryHandler(),
		ListOrders:           c.CreateListOrdersQueryHandler(),
		BuildReport:          c.CreateBuildReportQueryHandler(),
		ExportReport:         c.CreateExportReportQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	dailyReport := jobs.NewDailyReportJob(
		c.CreateBuildReportQueryHandler(),
		c.broadcaster,
		c.clock,
		c.config.Location(),
		c.config.DailyReportSchedule,
		c.config.ReportsTopic,
		c.logger,
	)
	return jobs.NewJobManager(c.logger, dailyReport)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
