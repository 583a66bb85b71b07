package expense

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lbianchi/splitchain/internal/group"
	"github.com/lbianchi/splitchain/internal/ledger"
	"github.com/lbianchi/splitchain/pkg/response"
)

// Handler handles HTTP requests for expense operations
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for expense endpoints, mounted under a group
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)

	return r
}

// Create handles POST /groups/{id}/expenses
// @Summary      Record an expense
// @Description  Append an expense to a group; an empty split set divides among all members
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        request body CreateExpenseRequest true "Expense to record"
// @Success      201 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /groups/{id}/expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	e, currency, err := h.service.Create(r.Context(), groupID, &req)
	if err != nil {
		var unknownErr *ledger.UnknownMemberError
		switch {
		case errors.Is(err, group.ErrGroupNotFound):
			response.NotFound(w, err.Error())
		case errors.As(err, &unknownErr):
			response.UnprocessableEntity(w, err.Error())
		case errors.Is(err, ErrNonPositiveAmount), errors.Is(err, ErrEmptyDescription), errors.Is(err, ErrGroupClosed):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to record expense")
		}
		return
	}

	response.JSON(w, http.StatusCreated, e.ToResponse(currency))
}

// List handles GET /groups/{id}/expenses
// @Summary      List group expenses
// @Tags         expenses
// @Produce      json
// @Param        id path string true "Group ID"
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/expenses [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	expenses, currency, err := h.service.ListByGroupID(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list expenses")
		return
	}

	resps := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		resps[i] = e.ToResponse(currency)
	}

	response.JSON(w, http.StatusOK, resps)
}
