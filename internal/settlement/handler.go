package settlement

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lbianchi/splitchain/internal/group"
	"github.com/lbianchi/splitchain/internal/ledger"
	"github.com/lbianchi/splitchain/pkg/response"
)

// Handler handles HTTP requests for the computed ledger views
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Balances handles GET /groups/{id}/balances
// @Summary      Get group balances
// @Description  Recompute every member's net balance from the full expense and payment history
// @Tags         settlements
// @Produce      json
// @Param        id path string true "Group ID"
// @Success      200 {object} response.APIResponse{data=BalancesResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/balances [get]
func (h *Handler) Balances(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	resp, err := h.service.GroupBalances(r.Context(), groupID)
	if err != nil {
		h.writeError(w, err, "Failed to compute balances")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// Suggestions handles GET /groups/{id}/settlements
// @Summary      Get settlement suggestions
// @Description  Plan the transfers that would bring every balance to zero
// @Tags         settlements
// @Produce      json
// @Param        id path string true "Group ID"
// @Success      200 {object} response.APIResponse{data=SuggestionsResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/settlements [get]
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	resp, err := h.service.Suggestions(r.Context(), groupID)
	if err != nil {
		h.writeError(w, err, "Failed to compute settlements")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	var unknownErr *ledger.UnknownMemberError
	switch {
	case errors.Is(err, group.ErrGroupNotFound):
		response.NotFound(w, err.Error())
	case errors.As(err, &unknownErr):
		// A stored record references a nickname outside the member list:
		// data integrity fault, not a caller error.
		response.UnprocessableEntity(w, err.Error())
	default:
		response.InternalError(w, fallback)
	}
}
