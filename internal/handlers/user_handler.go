package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sarjithrm/quoraUpgradProject/internal/dto"
	"github.com/sarjithrm/quoraUpgradProject/internal/middleware"
	"github.com/sarjithrm/quoraUpgradProject/internal/services"
	"github.com/sarjithrm/quoraUpgradProject/utils/response"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "REQ-001", "Invalid request body")
		return
	}

	user, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, dto.SignupUserResponse{
		ID:     user.UUID.String(),
		Status: "USER SUCCESSFULLY REGISTERED",
	})
}

// Signin authenticates Basic credentials and returns the fresh access
// token in the access-token response header; the body carries only the
// user id and a status message.
func (h *UserHandler) Signin(w http.ResponseWriter, r *http.Request) {
	username, password := middleware.BasicCredentials(r)

	userAuth, user, err := h.service.Authenticate(r.Context(), username, password)
	if err != nil {
		response.AppError(w, err)
		return
	}

	w.Header().Set("access-token", userAuth.AccessToken)
	response.JSON(w, http.StatusOK, dto.SigninResponse{
		ID:      user.UUID.String(),
		Message: "SIGNED IN SUCCESSFULLY",
	})
}

func (h *UserHandler) Signout(w http.ResponseWriter, r *http.Request) {
	accessToken := middleware.BearerToken(r)

	user, err := h.service.SignOut(r.Context(), accessToken)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.SignoutResponse{
		ID:      user.UUID.String(),
		Message: "SIGNED OUT SUCCESSFULLY",
	})
}
