package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lawmap/application/commands"
	"lawmap/application/commands/bus"
	"lawmap/application/queries"
	querybus "lawmap/application/queries/bus"
	"lawmap/pkg/common"
	"lawmap/pkg/utils"
)

const maxBodyBytes = 1 << 20

// RegulationHandler handles company regulation HTTP requests
type RegulationHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewRegulationHandler creates a new regulation handler
func NewRegulationHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *RegulationHandler {
	return &RegulationHandler{commandBus: commandBus, queryBus: queryBus, logger: logger}
}

// CreateRegulationRequest represents the request body for creating a regulation
type CreateRegulationRequest struct {
	Category        string `json:"category" validate:"required,max=100"`
	ReferenceNumber string `json:"referenceNumber" validate:"max=100"`
	Title           string `json:"title" validate:"required,max=200"`
	Description     string `json:"description" validate:"max=5000"`
}

// UpdateRegulationRequest represents the request body for updating a regulation
type UpdateRegulationRequest struct {
	Category        *string `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	ReferenceNumber *string `json:"referenceNumber,omitempty" validate:"omitempty,max=100"`
	Title           *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=5000"`
}

// CreateRegulation handles POST /regulations
func (h *RegulationHandler) CreateRegulation(w http.ResponseWriter, r *http.Request) {
	var req CreateRegulationRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.CreateRegulationCommand{
		RegulationID:    uuid.New().String(),
		Category:        req.Category,
		ReferenceNumber: req.ReferenceNumber,
		Title:           req.Title,
		Description:     req.Description,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]string{"id": cmd.RegulationID})
}

// ListRegulations handles GET /regulations with an optional category filter
func (h *RegulationHandler) ListRegulations(w http.ResponseWriter, r *http.Request) {
	query := queries.ListRegulationsQuery{
		Category: r.URL.Query().Get("category"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// UpdateRegulation handles PUT /regulations/{regulationID}
func (h *RegulationHandler) UpdateRegulation(w http.ResponseWriter, r *http.Request) {
	var req UpdateRegulationRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.UpdateRegulationCommand{
		RegulationID:    chi.URLParam(r, "regulationID"),
		Category:        req.Category,
		ReferenceNumber: req.ReferenceNumber,
		Title:           req.Title,
		Description:     req.Description,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"id": cmd.RegulationID})
}

// DeleteRegulation handles DELETE /regulations/{regulationID}
func (h *RegulationHandler) DeleteRegulation(w http.ResponseWriter, r *http.Request) {
	cmd := commands.DeleteRegulationCommand{
		RegulationID: chi.URLParam(r, "regulationID"),
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
