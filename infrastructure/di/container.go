package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"lawmap/application/commands/bus"
	"lawmap/application/ports"
	querybus "lawmap/application/queries/bus"
	"lawmap/domain/corpus"
	"lawmap/infrastructure/config"
	"lawmap/infrastructure/persistence/file"
	"lawmap/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Corpus     *corpus.Corpus
	Store      *file.Store
	Watcher    *file.Watcher
	DocStore   ports.DocumentStore
	CommandBus *bus.CommandBus
	QueryBus   *querybus.QueryBus
	Metrics    *observability.Collector
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideCorpus,
	ProvideMetrics,
	ProvideStore,
	ProvideDocumentStore,
	ProvideWatcher,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// Shutdown releases resources held by the container
func (c *Container) Shutdown() {
	if c.Watcher != nil {
		c.Watcher.Stop()
	}
	_ = c.Logger.Sync()
}
