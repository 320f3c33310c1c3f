package dto

// QuestionResponse is the next quiz question. Available is false when no
// question could be drawn for the current settings.
// @Description Quiz question
type QuestionResponse struct {
	SessionID string       `json:"session_id"`
	Available bool         `json:"available"`
	Message   string       `json:"message,omitempty"`
	Question  *QuestionDTO `json:"question,omitempty"`
	Asked     int          `json:"asked"`
	Mode      string       `json:"mode"`
}

// QuestionDTO is a question without its correct answer.
type QuestionDTO struct {
	ID       string   `json:"id"`
	Prompt   string   `json:"question"`
	Answers  []string `json:"answers"`
	ItemID   string   `json:"item_id"`
	Category string   `json:"category"`
}

// CheckAnswerRequest submits an answer to a question of a session.
// @Description Request body for checking an answer
type CheckAnswerRequest struct {
	SessionID  string `json:"session_id"`
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// CheckAnswerResponse is the feedback for a submitted answer.
type CheckAnswerResponse struct {
	Correct       bool   `json:"correct"`
	Heading       string `json:"heading"`
	Message       string `json:"message"`
	CorrectAnswer string `json:"correct_answer"`
	Summary       string `json:"summary"`
	ItemID        string `json:"item_id,omitempty"`
}
