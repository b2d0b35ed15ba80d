package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sarjithrm/quoraUpgradProject/internal/dto"
	"github.com/sarjithrm/quoraUpgradProject/internal/middleware"
	"github.com/sarjithrm/quoraUpgradProject/internal/models"
	"github.com/sarjithrm/quoraUpgradProject/internal/services"
	"github.com/sarjithrm/quoraUpgradProject/utils/response"
)

type QuestionHandler struct {
	service *services.QuestionService
}

func NewQuestionHandler(service *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "REQ-001", "Invalid request body")
		return
	}

	question, err := h.service.CreateQuestion(r.Context(), middleware.BearerToken(r), req.Content)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, dto.QuestionResponse{
		ID:     question.UUID.String(),
		Status: "QUESTION CREATED",
	})
}

func (h *QuestionHandler) All(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.GetAllQuestions(r.Context(), middleware.BearerToken(r))
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, questionDetails(questions))
}

func (h *QuestionHandler) AllByUser(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.GetAllQuestionsByUser(r.Context(), middleware.BearerToken(r), r.PathValue("userId"))
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, questionDetails(questions))
}

func (h *QuestionHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req dto.QuestionEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "REQ-001", "Invalid request body")
		return
	}

	question, err := h.service.EditQuestion(r.Context(), middleware.BearerToken(r), r.PathValue("questionId"), req.Content)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.QuestionResponse{
		ID:     question.UUID.String(),
		Status: "QUESTION EDITED",
	})
}

func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	question, err := h.service.DeleteQuestion(r.Context(), middleware.BearerToken(r), r.PathValue("questionId"))
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.QuestionResponse{
		ID:     question.UUID.String(),
		Status: "QUESTION DELETED",
	})
}

func questionDetails(questions []models.Question) []dto.QuestionDetailsResponse {
	details := make([]dto.QuestionDetailsResponse, 0, len(questions))
	for _, q := range questions {
		details = append(details, dto.QuestionDetailsResponse{
			ID:      q.UUID.String(),
			Content: q.Content,
		})
	}
	return details
}
