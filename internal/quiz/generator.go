// Package quiz generates multiple-choice questions about art items.
package quiz

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"art-atlas/internal/domain"
)

// DefaultMaxAttempts bounds the draw-and-reject loop of Next.
const DefaultMaxAttempts = 50

const maxDistractors = 3

// NoQuestionsMessage is shown in place of a question when none can be drawn.
const NoQuestionsMessage = "No questions available with the current settings."

// ErrNoQuestions is returned when the pool is empty or every attempt was rejected.
var ErrNoQuestions = errors.New("no questions available")

// Mode selects which items are eligible for questions.
type Mode int

const (
	ModeAll Mode = iota
	// ModeExam restricts the pool to items flagged as likely exam material.
	ModeExam
)

// Generator draws questions from an item pool. It is safe for concurrent use.
type Generator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	maxAttempts int
	now         func() time.Time
}

// NewGenerator returns a generator drawing from rng. A nil rng is seeded
// from the runtime; maxAttempts <= 0 uses DefaultMaxAttempts.
func NewGenerator(rng *rand.Rand, maxAttempts int) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{rng: rng, maxAttempts: maxAttempts, now: time.Now}
}

// Eligible applies the mode to the pool, keeping input order.
func Eligible(items []domain.ArtItem, mode Mode) []domain.ArtItem {
	if mode != ModeExam {
		return items
	}
	out := make([]domain.ArtItem, 0, len(items))
	for _, it := range items {
		if it.LikelyExam {
			out = append(out, it)
		}
	}
	return out
}

// Next draws a category and an item at random and builds a question. Draws
// that cannot produce a question with at least one distractor are rejected
// and redrawn, up to the generator's attempt limit.
func (g *Generator) Next(items []domain.ArtItem, mode Mode) (*domain.Question, error) {
	pool := Eligible(items, mode)
	if len(pool) == 0 {
		return nil, ErrNoQuestions
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		category := domain.QuestionCategories[g.rng.IntN(len(domain.QuestionCategories))]
		item := &pool[g.rng.IntN(len(pool))]

		q, ok := g.build(pool, item, category)
		if !ok {
			continue
		}
		q.Answers = g.shuffle(append([]string{q.CorrectAnswer}, q.Distractors...))
		q.CreatedAt = g.now()
		return q, nil
	}
	return nil, ErrNoQuestions
}

func (g *Generator) build(pool []domain.ArtItem, item *domain.ArtItem, c domain.QuestionCategory) (*domain.Question, bool) {
	if c.FieldBased() {
		correct := fieldValue(item, c)
		if correct == "" {
			return nil, false
		}
		distractors := g.fieldDistractors(pool, c, correct)
		if len(distractors) == 0 {
			return nil, false
		}
		return &domain.Question{
			Category:      c,
			Prompt:        strings.ReplaceAll(fieldPrompts[c], titlePlaceholder, item.Title),
			CorrectAnswer: correct,
			Distractors:   distractors,
			Item:          item,
		}, true
	}

	bank := templateBank[c]
	if len(bank) == 0 {
		return nil, false
	}
	prompt, correct, distractors := bank[g.rng.IntN(len(bank))].render(item.Title)
	return &domain.Question{
		Category:      c,
		Prompt:        prompt,
		CorrectAnswer: correct,
		Distractors:   distractors,
		Item:          item,
	}, true
}

// fieldDistractors collects up to three distinct values of the same field
// from the pool, excluding the correct answer.
func (g *Generator) fieldDistractors(pool []domain.ArtItem, c domain.QuestionCategory, correct string) []string {
	candidates := make([]string, 0, len(pool))
	for i := range pool {
		v := fieldValue(&pool[i], c)
		if v != "" && v != correct {
			candidates = append(candidates, v)
		}
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	seen := make(map[string]struct{}, maxDistractors)
	out := make([]string, 0, maxDistractors)
	for _, v := range candidates {
		if len(out) == maxDistractors {
			break
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (g *Generator) shuffle(answers []string) []string {
	g.rng.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
	})
	return answers
}
