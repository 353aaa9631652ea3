package handlers

import (
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"lawmap/application/commands"
	"lawmap/application/commands/bus"
	"lawmap/application/queries"
	querybus "lawmap/application/queries/bus"
	"lawmap/domain/userdata"
	"lawmap/pkg/common"
)

// backups can outgrow regular request bodies
const maxImportBytes = 16 << 20

// BackupHandler handles backup export and import HTTP requests
type BackupHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *BackupHandler {
	return &BackupHandler{commandBus: commandBus, queryBus: queryBus, logger: logger}
}

// Export handles GET /backup/export, serving the document as a download
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.ExportDataQuery{})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	export, ok := result.(*queries.ExportDataResult)
	if !ok {
		common.RespondError(w, http.StatusInternalServerError, "INTERNAL", "unexpected export result")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(export.Payload); err != nil {
		h.logger.Error("failed to write export payload", zap.Error(err))
	}
}

// Import handles POST /backup/import. The body is the raw backup file; the
// strategy query parameter selects replace, merge or append (default merge).
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	strategy := userdata.ImportStrategy(r.URL.Query().Get("strategy"))
	if strategy == "" {
		strategy = userdata.StrategyMerge
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "failed to read request body")
		return
	}

	cmd := commands.ImportDataCommand{
		Payload:  payload,
		Strategy: strategy,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"strategy": string(strategy)})
}
