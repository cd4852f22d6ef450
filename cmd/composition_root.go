package cmd

import (
	"log/slog"

	httpadapter "github.com/spantra1997/SecondServe/internal/adapters/in/http"
	"github.com/spantra1997/SecondServe/internal/adapters/out/postgres"
	"github.com/spantra1997/SecondServe/internal/core/application/usecases/commands"
	"github.com/spantra1997/SecondServe/internal/core/application/usecases/queries"
	"github.com/spantra1997/SecondServe/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDonationCommandHandler() commands.CreateDonationCommandHandler {
	var f commands.DonationUoWFactory = FuncDonationUoWFactory(func() commands.DonationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDonationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateListDonationsQueryHandler() queries.ListDonationsQueryHandler {
	return queries.NewListDonationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDonationQueryHandler() queries.GetDonationQueryHandler {
	return queries.NewGetDonationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAvailableOrdersQueryHandler() queries.AvailableOrdersQueryHandler {
	return queries.NewAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePlatformStatsQueryHandler() queries.PlatformStatsQueryHandler {
	return queries.NewPlatformStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateImpactStatsQueryHandler() queries.ImpactStatsQueryHandler {
	return queries.NewImpactStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateRegisterUserCommandHandler(),
		c.CreateCreateDonationCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateAssignOrderCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.CreateListDonationsQueryHandler(),
		c.CreateGetDonationQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateAvailableOrdersQueryHandler(),
		c.CreatePlatformStatsQueryHandler(),
		c.CreateImpactStatsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateImpactStatsQueryHandler(),
		c.CreateListDonationsQueryHandler(),
		logger,
	)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncDonationUoWFactory func() commands.DonationUoW

func (f FuncDonationUoWFactory) Create() commands.DonationUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
