package cmd

import (
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
}

// NewCompositionRoot wires the persistence layer to the use cases.
// The publisher may be nil when the push channel is disabled.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.EventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

// UnitOfWorkFactory exposes the raw factory for callers that manage their
// own transaction boundaries, such as the dispatch job.
func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return &c.uowFactory
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateSyncConfirmedOrdersCommandHandler() commands.SyncConfirmedOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSyncConfirmedOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateTransitionDeliveryCommandHandler() commands.TransitionDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCloseDeliveryCommandHandler() commands.CloseDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateVerifyDriverCommandHandler() commands.VerifyDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateGoOnlineCommandHandler() commands.GoOnlineCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGoOnlineCommandHandler(f)
}

func (c *CompositionRoot) CreateGoOfflineCommandHandler() commands.GoOfflineCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGoOfflineCommandHandler(f)
}

func (c *CompositionRoot) CreateIngestLocationCommandHandler() commands.IngestLocationCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIngestLocationCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDriversQueryHandler() queries.GetAvailableDriversQueryHandler {
	return queries.NewGetAvailableDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindNearestDriverQueryHandler() queries.FindNearestDriverQueryHandler {
	return queries.NewFindNearestDriverQueryHandler(c.uowFactory.Create().DriverRepository())
}

func (c *CompositionRoot) CreateGetTrackingQueryHandler() queries.GetTrackingQueryHandler {
	return queries.NewGetTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryByOrderQueryHandler() queries.GetDeliveryByOrderQueryHandler {
	return queries.NewGetDeliveryByOrderQueryHandler(c.gormDB)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
