package dto

type AnswerRequest struct {
	Answer string `json:"answer"`
}

type AnswerEditRequest struct {
	Content string `json:"content"`
}

type AnswerResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type AnswerDetailsResponse struct {
	ID              string `json:"id"`
	QuestionContent string `json:"questionContent"`
	AnswerContent   string `json:"answerContent"`
}
