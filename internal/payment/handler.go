package payment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lbianchi/splitchain/internal/group"
	"github.com/lbianchi/splitchain/internal/ledger"
	"github.com/lbianchi/splitchain/pkg/response"
)

// Handler handles HTTP requests for payment operations
type Handler struct {
	service *Service
}

// NewHandler creates a new payment handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for payment endpoints, mounted under a group
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)

	return r
}

// Create handles POST /groups/{id}/payments
// @Summary      Record a payment
// @Description  Append a settlement payment, optionally with on-chain metadata
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        request body CreatePaymentRequest true "Payment to record"
// @Success      201 {object} response.APIResponse{data=PaymentResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /groups/{id}/payments [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.Create(r.Context(), groupID, &req)
	if err != nil {
		var unknownErr *ledger.UnknownMemberError
		switch {
		case errors.Is(err, group.ErrGroupNotFound):
			response.NotFound(w, err.Error())
		case errors.As(err, &unknownErr):
			response.UnprocessableEntity(w, err.Error())
		case errors.Is(err, ErrNonPositiveAmount), errors.Is(err, ErrSelfPayment),
			errors.Is(err, ErrBadCryptoAmount), errors.Is(err, ErrGroupClosed):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to record payment")
		}
		return
	}

	response.JSON(w, http.StatusCreated, p.ToResponse())
}

// List handles GET /groups/{id}/payments
// @Summary      List group payments
// @Tags         payments
// @Produce      json
// @Param        id path string true "Group ID"
// @Success      200 {object} response.APIResponse{data=[]PaymentResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/payments [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	payments, err := h.service.ListByGroupID(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list payments")
		return
	}

	resps := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		resps[i] = p.ToResponse()
	}

	response.JSON(w, http.StatusOK, resps)
}
