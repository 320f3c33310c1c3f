package domain

import "time"

// QuestionCategory is the kind of multiple-choice question being asked.
type QuestionCategory string

const (
	CategoryDate            QuestionCategory = "date"
	CategoryArtist          QuestionCategory = "artist"
	CategoryMedium          QuestionCategory = "medium"
	CategoryMovement        QuestionCategory = "movement"
	CategoryPhilosophy      QuestionCategory = "philosophy"
	CategoryAesthetics      QuestionCategory = "aesthetics"
	CategoryCulturalContext QuestionCategory = "cultural_context"
	CategorySymbolism       QuestionCategory = "symbolism"
)

// QuestionCategories lists every category in draw order.
var QuestionCategories = []QuestionCategory{
	CategoryDate,
	CategoryArtist,
	CategoryMedium,
	CategoryMovement,
	CategoryPhilosophy,
	CategoryAesthetics,
	CategoryCulturalContext,
	CategorySymbolism,
}

// FieldBased reports whether the question is derived from the item's own attributes.
func (c QuestionCategory) FieldBased() bool {
	switch c {
	case CategoryDate, CategoryArtist, CategoryMedium, CategoryMovement:
		return true
	default:
		return false
	}
}

// Question is one generated multiple-choice question.
// Answers is a permutation of CorrectAnswer plus Distractors.
type Question struct {
	ID            string           `json:"id"`
	Category      QuestionCategory `json:"category"`
	Prompt        string           `json:"question"`
	CorrectAnswer string           `json:"correctAnswer"`
	Distractors   []string         `json:"distractors"`
	Answers       []string         `json:"answers"`
	Item          *ArtItem         `json:"-"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// ItemID returns the id of the item the question was drawn from.
func (q *Question) ItemID() string {
	if q.Item == nil {
		return ""
	}
	return q.Item.ID
}
