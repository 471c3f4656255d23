package cmd

import (
	"log/slog"

	httpadapter "ordertrack/internal/adapters/in/http"
	inkafka "ordertrack/internal/adapters/in/kafka"
	outkafka "ordertrack/internal/adapters/out/kafka"
	"ordertrack/internal/adapters/out/notify"
	"ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/adapters/out/statusapi"
	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/jobs"
	"ordertrack/internal/notifications"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into application handlers. All dependency
// construction lives here so the rest of the code can stay constructor-driven.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	statusClient *statusapi.Client
	publisher    ports.TransitionPublisher
}

// NewCompositionRoot builds the root with shared singletons: the database
// handle, the status API client and the transition publisher.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.TransitionPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:       logger,
		statusClient: statusapi.NewClient(config.StatusAPIBaseURL, nil, logger),
		publisher:    publisher,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// CreateCreateOrderCommandHandler builds the order creation handler.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

// CreateUpdateOrderCommandHandler builds the status transition pipeline
// handler with its reconciler and publisher.
func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(
		c.orderUoWFactory(),
		c.statusClient,
		c.publisher,
		c.logger,
	)
}

// CreateDeleteOrderCommandHandler builds the soft delete handler.
func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

// CreateGetOrderByNumberQueryHandler builds the single order query handler.
func (c *CompositionRoot) CreateGetOrderByNumberQueryHandler() queries.GetOrderByNumberQueryHandler {
	return queries.NewGetOrderByNumberQueryHandler(c.gormDB)
}

// CreateListOrdersQueryHandler builds the order listing query handler.
func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the REST server over the command and query handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetOrderByNumberQueryHandler(),
		c.CreateListOrdersQueryHandler(),
	)
}

// CreateDispatcher builds the notification dispatcher with its transports.
func (c *CompositionRoot) CreateDispatcher() *notifications.Dispatcher {
	var mail notifications.MailSender
	if c.config.SMTPAddr != "" {
		mail = notify.NewSMTPSender(c.config.SMTPAddr, nil)
	}

	return notifications.NewDispatcher(
		notifications.Config{
			EmailEnabled:   c.config.EmailEnabled,
			EmailRecipient: c.config.EmailRecipient,
			FromAddress:    c.config.MailFrom,
			SMSEnabled:     c.config.SMSEnabled,
			SMSRecipient:   c.config.SMSRecipient,
		},
		mail,
		notify.NewLogSMSSender(c.logger),
		c.logger,
	)
}

// CreateTransitionConsumer builds the Kafka consumer that feeds transitions
// to the notification dispatcher.
func (c *CompositionRoot) CreateTransitionConsumer() (*inkafka.TransitionConsumer, error) {
	return inkafka.NewTransitionConsumer(
		[]string{c.config.KafkaHost},
		c.config.KafkaConsumerGroup,
		c.transitionsTopic(),
		c.CreateDispatcher(),
		c.logger,
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.statusClient, c.logger)
}

func (c *CompositionRoot) transitionsTopic() string {
	if c.config.KafkaTransitionsTopic != "" {
		return c.config.KafkaTransitionsTopic
	}
	return outkafka.DefaultTopic
}

// FuncOrderUoWFactory adapts a closure to the commands.OrderUoWFactory
// interface.
type FuncOrderUoWFactory func() commands.OrderUoW

// Create returns a new unit of work from the wrapped closure.
func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
