package handlers

import (
	"net/http"

	"github.com/sarjithrm/quoraUpgradProject/internal/dto"
	"github.com/sarjithrm/quoraUpgradProject/internal/middleware"
	"github.com/sarjithrm/quoraUpgradProject/internal/services"
	"github.com/sarjithrm/quoraUpgradProject/utils/response"
)

type CommonHandler struct {
	service *services.UserService
}

func NewCommonHandler(service *services.UserService) *CommonHandler {
	return &CommonHandler{service: service}
}

func (h *CommonHandler) UserProfile(w http.ResponseWriter, r *http.Request) {
	accessToken := middleware.BearerToken(r)
	userUUID := r.PathValue("userId")

	user, err := h.service.GetUserProfile(r.Context(), accessToken, userUUID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.UserDetailsResponse{
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		UserName:      user.Username,
		EmailAddress:  user.Email,
		Country:       user.Country,
		AboutMe:       user.AboutMe,
		Dob:           user.Dob,
		ContactNumber: user.ContactNumber,
	})
}
