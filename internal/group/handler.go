package group

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lbianchi/splitchain/pkg/middleware"
	"github.com/lbianchi/splitchain/pkg/response"
)

// Handler handles HTTP requests for group operations
type Handler struct {
	service *Service
}

// NewHandler creates a new group handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /groups
// @Summary      Create a new group
// @Description  Create a group with an initial member set; the creator joins first
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        request body CreateGroupRequest true "Group creation request"
// @Param        nickname query string true "Creator nickname"
// @Success      201 {object} response.APIResponse{data=GroupResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /groups [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	wallet, ok := middleware.GetWallet(r.Context())
	if !ok {
		response.Unauthorized(w, "X-Wallet-Address header required")
		return
	}
	nickname := r.URL.Query().Get("nickname")

	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	g, members, err := h.service.Create(r.Context(), wallet, nickname, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCurrency), errors.Is(err, ErrInvalidNickname):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to create group")
		}
		return
	}

	resp := g.ToResponse()
	resp.Members = make([]*MemberResponse, len(members))
	for i, m := range members {
		resp.Members[i] = m.ToResponse()
	}

	response.JSON(w, http.StatusCreated, resp)
}

// GetByID handles GET /groups/{id}
// @Summary      Get group by ID
// @Description  Get a group with all its members
// @Tags         groups
// @Produce      json
// @Param        id path string true "Group ID"
// @Success      200 {object} response.APIResponse{data=GroupResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	g, members, err := h.service.GetByIDWithMembers(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get group")
		return
	}

	resp := g.ToResponse()
	resp.Members = make([]*MemberResponse, len(members))
	for i, m := range members {
		resp.Members[i] = m.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

// List handles GET /groups?nickname=...
// @Summary      List groups for a nickname
// @Tags         groups
// @Produce      json
// @Param        nickname query string true "Member nickname"
// @Success      200 {object} response.APIResponse{data=[]GroupResponse}
// @Router       /groups [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	nickname := r.URL.Query().Get("nickname")
	if nickname == "" {
		response.BadRequest(w, "nickname query parameter required")
		return
	}

	groups, err := h.service.ListByNickname(r.Context(), nickname)
	if err != nil {
		response.InternalError(w, "Failed to list groups")
		return
	}

	resps := make([]*GroupResponse, len(groups))
	for i, g := range groups {
		resps[i] = g.ToResponse()
	}

	response.JSON(w, http.StatusOK, resps)
}

// AddMember handles POST /groups/{id}/members
// @Summary      Add member to group
// @Description  Add a nickname to an open group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        request body AddMemberRequest true "Member to add"
// @Success      201 {object} response.APIResponse{data=MemberResponse}
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /groups/{id}/members [post]
func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	m, err := h.service.AddMember(r.Context(), groupID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrGroupNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrMemberAlreadyExists):
			response.Conflict(w, err.Error())
		case errors.Is(err, ErrGroupClosed), errors.Is(err, ErrInvalidNickname):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to add member")
		}
		return
	}

	response.JSON(w, http.StatusCreated, m.ToResponse())
}

// Close handles POST /groups/{id}/close
// @Summary      Close a settled group
// @Description  Close a group once all balances are zero, recording optional NFT mint metadata
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        request body CloseGroupRequest false "Mint metadata"
// @Success      200 {object} response.APIResponse{data=GroupResponse}
// @Failure      409 {object} response.APIResponse
// @Router       /groups/{id}/close [post]
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	wallet, ok := middleware.GetWallet(r.Context())
	if !ok {
		response.Unauthorized(w, "X-Wallet-Address header required")
		return
	}

	var req CloseGroupRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}
	}

	g, err := h.service.Close(r.Context(), groupID, wallet, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrGroupNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNotOwner):
			response.Unauthorized(w, err.Error())
		case errors.Is(err, ErrGroupClosed), errors.Is(err, ErrGroupNotSettled):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to close group")
		}
		return
	}

	response.JSON(w, http.StatusOK, g.ToResponse())
}
