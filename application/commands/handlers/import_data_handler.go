package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lawmap/application/commands"
	"lawmap/application/ports"
	"lawmap/domain/userdata"
	"lawmap/pkg/observability"
)

// ImportDataHandler handles backup import commands
type ImportDataHandler struct {
	store   ports.DocumentStore
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewImportDataHandler creates a new import data handler
func NewImportDataHandler(store ports.DocumentStore, metrics *observability.Collector, logger *zap.Logger) *ImportDataHandler {
	return &ImportDataHandler{store: store, metrics: metrics, logger: logger}
}

// Handle executes the import command. The payload is parsed and validated
// before the document is touched: a malformed backup leaves the current
// state exactly as it was.
func (h *ImportDataHandler) Handle(ctx context.Context, cmd commands.ImportDataCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	incoming, err := userdata.ParseImport(cmd.Payload)
	if err != nil {
		return err
	}

	err = h.store.Update(func(doc *userdata.Document) error {
		merged, mergeErr := userdata.Import(*doc, incoming, cmd.Strategy)
		if mergeErr != nil {
			return mergeErr
		}
		*doc = merged
		return nil
	})
	if err != nil {
		return err
	}

	h.metrics.ImportsTotal.WithLabelValues(string(cmd.Strategy)).Inc()
	h.logger.Info("backup imported",
		zap.String("strategy", string(cmd.Strategy)),
		zap.Int("regulations", len(incoming.Regulations)),
		zap.Int("links", len(incoming.Links)),
		zap.Int("notes", len(incoming.Notes)),
		zap.Int("themes", len(incoming.Themes)))
	return nil
}
