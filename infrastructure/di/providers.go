package di

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lawmap/application/commands"
	"lawmap/application/commands/bus"
	commandhandlers "lawmap/application/commands/handlers"
	"lawmap/application/ports"
	"lawmap/application/queries"
	querybus "lawmap/application/queries/bus"
	queryhandlers "lawmap/application/queries/handlers"
	"lawmap/domain/corpus"
	"lawmap/infrastructure/config"
	"lawmap/infrastructure/persistence/file"
	"lawmap/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	return zapCfg.Build()
}

// ProvideCorpus loads the embedded law corpus
func ProvideCorpus() (*corpus.Corpus, error) {
	return corpus.Load()
}

// ProvideMetrics creates the metrics collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("lawmap")
}

// ProvideStore opens the file-backed document store
func ProvideStore(cfg *config.Config, logger *zap.Logger, metrics *observability.Collector) (*file.Store, error) {
	return file.NewStore(cfg.DataFilePath(), logger, metrics)
}

// ProvideDocumentStore exposes the store through its port
func ProvideDocumentStore(store *file.Store) ports.DocumentStore {
	return store
}

// ProvideWatcher creates the document file watcher
func ProvideWatcher(store *file.Store, logger *zap.Logger) (*file.Watcher, error) {
	return file.NewWatcher(store, logger)
}

// CommandHandlerAdapter adapts specific command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// adapt wraps a typed handler function into a bus handler with logging
func adapt[C bus.Command](logger *zap.Logger, fn func(context.Context, C) error) bus.CommandHandler {
	adapter := &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			typed, ok := cmd.(C)
			if !ok {
				return fmt.Errorf("invalid command type %T", cmd)
			}
			return fn(ctx, typed)
		},
	}
	return bus.Chain(adapter, bus.LoggingMiddleware(logger))
}

// ProvideCommandBus creates a command bus with all handlers registered
func ProvideCommandBus(
	store ports.DocumentStore,
	c *corpus.Corpus,
	metrics *observability.Collector,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()

	createReg := commandhandlers.NewCreateRegulationHandler(store, logger)
	updateReg := commandhandlers.NewUpdateRegulationHandler(store, logger)
	deleteReg := commandhandlers.NewDeleteRegulationHandler(store, logger)
	commandBus.Register(commands.CreateRegulationCommand{}, adapt(logger, createReg.Handle))
	commandBus.Register(commands.UpdateRegulationCommand{}, adapt(logger, updateReg.Handle))
	commandBus.Register(commands.DeleteRegulationCommand{}, adapt(logger, deleteReg.Handle))

	createLink := commandhandlers.NewCreateLinkHandler(store, c, logger)
	updateLink := commandhandlers.NewUpdateLinkHandler(store, logger)
	deleteLink := commandhandlers.NewDeleteLinkHandler(store, logger)
	commandBus.Register(commands.CreateLinkCommand{}, adapt(logger, createLink.Handle))
	commandBus.Register(commands.UpdateLinkCommand{}, adapt(logger, updateLink.Handle))
	commandBus.Register(commands.DeleteLinkCommand{}, adapt(logger, deleteLink.Handle))

	createNote := commandhandlers.NewCreateNoteHandler(store, c, logger)
	updateNote := commandhandlers.NewUpdateNoteHandler(store, logger)
	deleteNote := commandhandlers.NewDeleteNoteHandler(store, logger)
	commandBus.Register(commands.CreateNoteCommand{}, adapt(logger, createNote.Handle))
	commandBus.Register(commands.UpdateNoteCommand{}, adapt(logger, updateNote.Handle))
	commandBus.Register(commands.DeleteNoteCommand{}, adapt(logger, deleteNote.Handle))

	themeHandler := commandhandlers.NewThemeHandler(store, c, logger)
	commandBus.Register(commands.CreateThemeCommand{}, adapt(logger, themeHandler.HandleCreate))
	commandBus.Register(commands.UpdateThemeCommand{}, adapt(logger, themeHandler.HandleUpdate))
	commandBus.Register(commands.DeleteThemeCommand{}, adapt(logger, themeHandler.HandleDelete))
	commandBus.Register(commands.AddSectionCommand{}, adapt(logger, themeHandler.HandleAddSection))
	commandBus.Register(commands.RemoveSectionCommand{}, adapt(logger, themeHandler.HandleRemoveSection))
	commandBus.Register(commands.AssignArticleCommand{}, adapt(logger, themeHandler.HandleAssignArticle))
	commandBus.Register(commands.RemoveArticleCommand{}, adapt(logger, themeHandler.HandleRemoveArticle))

	importHandler := commandhandlers.NewImportDataHandler(store, metrics, logger)
	commandBus.Register(commands.ImportDataCommand{}, adapt(logger, importHandler.Handle))

	return commandBus
}

// askAdapt wraps a typed query handler into a bus handler
func askAdapt[Q querybus.Query, R any](fn func(context.Context, Q) (R, error)) querybus.QueryHandler {
	return querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
		typed, ok := query.(Q)
		if !ok {
			return nil, fmt.Errorf("invalid query type %T", query)
		}
		result, err := fn(ctx, typed)
		if err != nil {
			return nil, err
		}
		return result, nil
	})
}

// ProvideQueryBus creates a query bus with all handlers registered
func ProvideQueryBus(
	store ports.DocumentStore,
	c *corpus.Corpus,
	cfg *config.Config,
	metrics *observability.Collector,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	queryBus.Register(queries.ListCategoriesQuery{},
		askAdapt(queryhandlers.NewListCategoriesHandler(c).Handle))
	queryBus.Register(queries.ListArticlesQuery{},
		askAdapt(queryhandlers.NewListArticlesHandler(c, store, logger).Handle))
	queryBus.Register(queries.GetArticleQuery{},
		askAdapt(queryhandlers.NewGetArticleHandler(c, store, logger).Handle))
	queryBus.Register(queries.ListRegulationsQuery{},
		askAdapt(queryhandlers.NewListRegulationsHandler(store).Handle))
	queryBus.Register(queries.ListLinksQuery{},
		askAdapt(queryhandlers.NewListLinksHandler(store).Handle))
	queryBus.Register(queries.ListNotesQuery{},
		askAdapt(queryhandlers.NewListNotesHandler(store).Handle))
	queryBus.Register(queries.ListThemesQuery{},
		askAdapt(queryhandlers.NewListThemesHandler(store).Handle))
	queryBus.Register(queries.GetStatsQuery{},
		askAdapt(queryhandlers.NewGetStatsHandler(c, store).Handle))
	queryBus.Register(queries.GetGraphDataQuery{},
		askAdapt(queryhandlers.NewGetGraphDataHandler(c, store, cfg.LayoutOptions(), cfg.Layout.Seed, logger).Handle))
	queryBus.Register(queries.ExportDataQuery{},
		askAdapt(queryhandlers.NewExportDataHandler(store, metrics, logger).Handle))

	return queryBus
}
