package cmd

import (
	"log/slog"
	"time"

	"ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/adapters/out/waba"
	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   waba.NewNotifier(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(
		c.orderUoWFactory(),
		c.notifier,
		c.config.PublicBaseURL,
		c.logger,
	)
}

func (c *CompositionRoot) CreateSubmitCsatCommandHandler() commands.SubmitCsatCommandHandler {
	return commands.NewSubmitCsatCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemindCsatCommandHandler() commands.RemindCsatCommandHandler {
	return commands.NewRemindCsatCommandHandler(
		c.orderUoWFactory(),
		c.notifier,
		c.config.PublicBaseURL,
		time.Duration(c.config.CsatReminderDelayMinutes)*time.Minute,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrdersByOwnerQueryHandler() queries.GetOrdersByOwnerQueryHandler {
	return queries.NewGetOrdersByOwnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateResolvePublicOrderQueryHandler() queries.ResolvePublicOrderQueryHandler {
	return queries.NewResolvePublicOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
