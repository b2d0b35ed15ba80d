package handlers

import (
	"net/http"

	"github.com/sarjithrm/quoraUpgradProject/internal/dto"
	"github.com/sarjithrm/quoraUpgradProject/internal/middleware"
	"github.com/sarjithrm/quoraUpgradProject/internal/services"
	"github.com/sarjithrm/quoraUpgradProject/utils/response"
)

type AdminHandler struct {
	service *services.UserService
}

func NewAdminHandler(service *services.UserService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	accessToken := middleware.BearerToken(r)
	userUUID := r.PathValue("userId")

	user, err := h.service.DeleteUser(r.Context(), accessToken, userUUID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.UserDeleteResponse{
		ID:     user.UUID.String(),
		Status: "USER SUCCESSFULLY DELETED",
	})
}
