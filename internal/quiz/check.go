package quiz

import (
	"fmt"

	"art-atlas/internal/domain"
)

// NoNotesMessage replaces the item summary when it has none.
const NoNotesMessage = "No further notes available."

// Feedback is the outcome of answering a question.
type Feedback struct {
	Correct       bool   `json:"correct"`
	Heading       string `json:"heading"`
	Message       string `json:"message"`
	CorrectAnswer string `json:"correctAnswer"`
	Summary       string `json:"summary"`
	ItemID        string `json:"itemId,omitempty"`
}

// Check compares the selected answer with the question's correct answer.
// The comparison is exact.
func Check(q *domain.Question, selected string) Feedback {
	fb := Feedback{
		Correct:       selected == q.CorrectAnswer,
		CorrectAnswer: q.CorrectAnswer,
		Summary:       NoNotesMessage,
		ItemID:        q.ItemID(),
	}
	if q.Item != nil && q.Item.Notes != "" {
		fb.Summary = q.Item.Notes
	}
	if fb.Correct {
		fb.Heading = "Correct!"
		fb.Message = fmt.Sprintf("The correct answer is indeed %q.", q.CorrectAnswer)
	} else {
		fb.Heading = "Incorrect."
		fb.Message = fmt.Sprintf("The correct answer is %q.", q.CorrectAnswer)
	}
	return fb
}
