package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lawmap/application/ports"
	"lawmap/application/queries"
	apperrors "lawmap/pkg/errors"
	"lawmap/pkg/observability"
	"lawmap/pkg/utils"
)

// ExportDataHandler handles backup export queries
type ExportDataHandler struct {
	store   ports.DocumentStore
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewExportDataHandler creates a new export data handler
func NewExportDataHandler(store ports.DocumentStore, metrics *observability.Collector, logger *zap.Logger) *ExportDataHandler {
	return &ExportDataHandler{store: store, metrics: metrics, logger: logger}
}

// Handle executes the export query. The exportedAt stamp goes into the
// serialized copy only; the stored document keeps its own state.
func (h *ExportDataHandler) Handle(ctx context.Context, query queries.ExportDataQuery) (*queries.ExportDataResult, error) {
	doc := h.store.View()
	doc.ExportedAt = utils.NowRFC3339()

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to serialize backup")
	}

	h.metrics.ExportsTotal.Inc()
	h.logger.Info("backup exported",
		zap.Int("regulations", len(doc.Regulations)),
		zap.Int("bytes", len(payload)))

	return &queries.ExportDataResult{
		Filename: fmt.Sprintf("lawmap_backup_%s.json", time.Now().Format("2006-01-02")),
		Payload:  payload,
	}, nil
}
