package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sarjithrm/quoraUpgradProject/internal/dto"
	"github.com/sarjithrm/quoraUpgradProject/internal/middleware"
	"github.com/sarjithrm/quoraUpgradProject/internal/services"
	"github.com/sarjithrm/quoraUpgradProject/utils/response"
)

type AnswerHandler struct {
	service *services.AnswerService
}

func NewAnswerHandler(service *services.AnswerService) *AnswerHandler {
	return &AnswerHandler{service: service}
}

func (h *AnswerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "REQ-001", "Invalid request body")
		return
	}

	answer, err := h.service.CreateAnswer(r.Context(), middleware.BearerToken(r), r.PathValue("questionId"), req.Answer)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.AnswerResponse{
		ID:     answer.UUID.String(),
		Status: "ANSWER CREATED",
	})
}

func (h *AnswerHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req dto.AnswerEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "REQ-001", "Invalid request body")
		return
	}

	answer, err := h.service.EditAnswer(r.Context(), middleware.BearerToken(r), r.PathValue("answerId"), req.Content)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.AnswerResponse{
		ID:     answer.UUID.String(),
		Status: "ANSWER EDITED",
	})
}

func (h *AnswerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	answer, err := h.service.DeleteAnswer(r.Context(), middleware.BearerToken(r), r.PathValue("answerId"))
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.AnswerResponse{
		ID:     answer.UUID.String(),
		Status: "ANSWER DELETED",
	})
}

func (h *AnswerHandler) AllForQuestion(w http.ResponseWriter, r *http.Request) {
	answers, err := h.service.GetAnswersForQuestion(r.Context(), middleware.BearerToken(r), r.PathValue("questionId"))
	if err != nil {
		response.AppError(w, err)
		return
	}

	details := make([]dto.AnswerDetailsResponse, 0, len(answers))
	for _, a := range answers {
		details = append(details, dto.AnswerDetailsResponse{
			ID:              a.UUID.String(),
			QuestionContent: a.QuestionContent,
			AnswerContent:   a.Ans,
		})
	}
	response.JSON(w, http.StatusOK, details)
}
