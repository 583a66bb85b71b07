package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lbianchi/splitchain/pkg/response"
)

// Handler handles HTTP requests for profile operations
type Handler struct {
	service *Service
}

// NewHandler creates a new profile handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for profile endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Register)
	r.Get("/{wallet}", h.GetByWallet)
	r.Get("/nickname/{nickname}", h.GetByNickname)
	r.Put("/{wallet}", h.Update)

	return r
}

// Register handles POST /profiles
// @Summary      Register a profile
// @Description  Link a wallet address to a unique nickname
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request body RegisterProfileRequest true "Profile registration request"
// @Success      201 {object} response.APIResponse{data=ProfileResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /profiles [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidWallet), errors.Is(err, ErrInvalidNickname):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrNicknameTaken), errors.Is(err, ErrWalletAlreadyExists):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to register profile")
		}
		return
	}

	response.JSON(w, http.StatusCreated, p.ToResponse())
}

// GetByWallet handles GET /profiles/{wallet}
// @Summary      Get profile by wallet
// @Tags         profiles
// @Produce      json
// @Param        wallet path string true "Wallet address"
// @Success      200 {object} response.APIResponse{data=ProfileResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /profiles/{wallet} [get]
func (h *Handler) GetByWallet(w http.ResponseWriter, r *http.Request) {
	wallet := chi.URLParam(r, "wallet")

	p, err := h.service.GetByWallet(r.Context(), wallet)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get profile")
		return
	}

	response.JSON(w, http.StatusOK, p.ToResponse())
}

// GetByNickname handles GET /profiles/nickname/{nickname}
func (h *Handler) GetByNickname(w http.ResponseWriter, r *http.Request) {
	nickname := chi.URLParam(r, "nickname")

	p, err := h.service.GetByNickname(r.Context(), nickname)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get profile")
		return
	}

	response.JSON(w, http.StatusOK, p.ToResponse())
}

// Update handles PUT /profiles/{wallet}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	wallet := chi.URLParam(r, "wallet")

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.UpdateNickname(r.Context(), wallet, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrProfileNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidNickname):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrNicknameTaken):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to update profile")
		}
		return
	}

	response.JSON(w, http.StatusOK, p.ToResponse())
}
