package cmd

import (
	"log/slog"

	httpadapter "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/postgres/referencerepo"
	"warehouse/internal/adapters/out/redis/referencecache"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/ports"
	"warehouse/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	refs       ports.ReferenceRepository
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters. A nil redisClient leaves reference
// lookups uncached.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	var refs ports.ReferenceRepository = referencerepo.NewGormReferenceRepository(gormDB)
	if redisClient != nil {
		refs = referencecache.New(refs, redisClient, cfg.RedisTTL, logger)
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		refs:       refs,
		logger:     logger,
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSaveUnitCommandHandler() *commands.SaveUnitCommandHandler {
	h := commands.NewSaveUnitCommandHandler(c.uow(), c.refs, c.logger)
	return &h
}

func (c *CompositionRoot) CreateMoveUnitCommandHandler() *commands.MoveUnitCommandHandler {
	h := commands.NewMoveUnitCommandHandler(c.uow(), c.refs, c.CreateSaveUnitCommandHandler(), c.logger)
	return &h
}

func (c *CompositionRoot) CreateDeleteUnitCommandHandler() *commands.DeleteUnitCommandHandler {
	h := commands.NewDeleteUnitCommandHandler(c.uow(), c.refs, c.logger)
	return &h
}

func (c *CompositionRoot) CreateRecordStatusChangeCommandHandler() *commands.RecordStatusChangeCommandHandler {
	h := commands.NewRecordStatusChangeCommandHandler(c.uow(), c.refs, c.logger)
	return &h
}

func (c *CompositionRoot) CreateAddCommentCommandHandler() *commands.AddCommentCommandHandler {
	h := commands.NewAddCommentCommandHandler(c.uow(), c.logger)
	return &h
}

func (c *CompositionRoot) CreateAssignUnitToOrderCommandHandler() *commands.AssignUnitToOrderCommandHandler {
	h := commands.NewAssignUnitToOrderCommandHandler(c.uow(), c.refs, c.logger)
	return &h
}

func (c *CompositionRoot) CreateChangeUnitStatusCommandHandler() *commands.ChangeUnitStatusCommandHandler {
	h := commands.NewChangeUnitStatusCommandHandler(
		c.uow(), c.refs, c.CreateRecordStatusChangeCommandHandler(), c.logger)
	return &h
}

func (c *CompositionRoot) CreateListUnitsQueryHandler() queries.ListUnitsQueryHandler {
	return queries.NewListUnitsQueryHandler(c.gormDB, c.cfg.UnitsPerPage)
}

func (c *CompositionRoot) CreateGetUnitQueryHandler() queries.GetUnitQueryHandler {
	return queries.NewGetUnitQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnitHistoryQueryHandler() queries.GetUnitHistoryQueryHandler {
	return queries.NewGetUnitHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAvailableStatusesQueryHandler() queries.ListAvailableStatusesQueryHandler {
	return queries.NewListAvailableStatusesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchBySerialQueryHandler() queries.SearchBySerialQueryHandler {
	return queries.NewSearchBySerialQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateConsumablesQueryHandler() queries.ConsumablesQueryHandler {
	return queries.NewConsumablesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockSummaryQueryHandler() queries.GetStockSummaryQueryHandler {
	return queries.NewGetStockSummaryQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the server with every use case.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		SaveUnit:           c.CreateSaveUnitCommandHandler(),
		MoveUnit:           c.CreateMoveUnitCommandHandler(),
		DeleteUnit:         c.CreateDeleteUnitCommandHandler(),
		RecordStatusChange: c.CreateRecordStatusChangeCommandHandler(),
		AddComment:         c.CreateAddCommentCommandHandler(),
		AssignToOrder:      c.CreateAssignUnitToOrderCommandHandler(),
		ChangeStatus:       c.CreateChangeUnitStatusCommandHandler(),

		ListUnits:       c.CreateListUnitsQueryHandler(),
		ExportUnits:     c.CreateListUnitsQueryHandler(),
		GetUnit:         c.CreateGetUnitQueryHandler(),
		GetHistory:      c.CreateGetUnitHistoryQueryHandler(),
		ListStatuses:    c.CreateListAvailableStatusesQueryHandler(),
		SearchBySerial:  c.CreateSearchBySerialQueryHandler(),
		Consumables:     c.CreateConsumablesQueryHandler(),
		GetStockSummary: c.CreateGetStockSummaryQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStockSummaryQueryHandler(), c.cfg.StockSummarySchedule, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
