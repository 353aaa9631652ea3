package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"lawmap/application/queries"
	querybus "lawmap/application/queries/bus"
	"lawmap/pkg/common"
)

// GraphHandler serves the laid-out relationship graph and workspace stats
type GraphHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{queryBus: queryBus, logger: logger}
}

// GetGraphData handles GET /graph-data. An optional seed parameter pins the
// layout for reproducible positions.
func (h *GraphHandler) GetGraphData(w http.ResponseWriter, r *http.Request) {
	var query queries.GetGraphDataQuery
	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			common.RespondError(w, http.StatusBadRequest, "VALIDATION", "seed must be an integer")
			return
		}
		query.Seed = seed
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// GetStats handles GET /stats
func (h *GraphHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetStatsQuery{})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
