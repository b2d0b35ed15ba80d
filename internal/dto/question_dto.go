package dto

type QuestionRequest struct {
	Content string `json:"content"`
}

type QuestionEditRequest struct {
	Content string `json:"content"`
}

type QuestionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type QuestionDetailsResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}
