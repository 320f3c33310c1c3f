package service

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"art-atlas/internal/adapter"
	"art-atlas/internal/domain"
	"art-atlas/internal/dto"
	"art-atlas/internal/quiz"
	"art-atlas/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuizService(items []domain.ArtItem) QuizSessionService {
	return NewQuizSessionService(items, quiz.NewGenerator(rand.New(rand.NewPCG(7, 11)), 0), adapter.NewMemoryCache(), 0)
}

func TestQuizSessionService_Next(t *testing.T) {
	ctx := context.Background()
	svc := newTestQuizService(testDataset().Items)

	first, err := svc.Next(ctx, "", quiz.ModeAll)
	require.NoError(t, err)
	require.True(t, first.Available)
	assert.True(t, util.IsULID(first.SessionID))
	assert.Equal(t, 1, first.Asked)
	assert.Equal(t, "all", first.Mode)
	require.NotNil(t, first.Question)
	assert.True(t, util.IsULID(first.Question.ID))
	assert.GreaterOrEqual(t, len(first.Question.Answers), 2)

	second, err := svc.Next(ctx, first.SessionID, quiz.ModeExam)
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, second.SessionID, "known sessions are reused")
	assert.Equal(t, 2, second.Asked)
	assert.Equal(t, "exam", second.Mode)
	assert.Contains(t, []string{"nok", "mask"}, second.Question.ItemID)

	other, err := svc.Next(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV", quiz.ModeAll)
	require.NoError(t, err)
	assert.NotEqual(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", other.SessionID, "unknown sessions get a fresh id")
	assert.Equal(t, 1, other.Asked)
}

func TestQuizSessionService_Next_NoQuestions(t *testing.T) {
	ctx := context.Background()
	items := testDataset().Items
	for i := range items {
		items[i].LikelyExam = false
	}
	svc := newTestQuizService(items)

	resp, err := svc.Next(ctx, "", quiz.ModeExam)
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Nil(t, resp.Question)
	assert.Equal(t, quiz.NoQuestionsMessage, resp.Message)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, 0, resp.Asked)
}

func TestQuizSessionService_Check(t *testing.T) {
	ctx := context.Background()
	svc := newTestQuizService(testDataset().Items)
	next, err := svc.Next(ctx, "", quiz.ModeAll)
	require.NoError(t, err)

	// exactly one of the offered answers is correct
	correct := 0
	for _, a := range next.Question.Answers {
		fb, err := svc.Check(ctx, &dto.CheckAnswerRequest{
			SessionID:  next.SessionID,
			QuestionID: next.Question.ID,
			Answer:     a,
		})
		require.NoError(t, err)
		assert.Equal(t, next.Question.ItemID, fb.ItemID)
		assert.NotEmpty(t, fb.Summary)
		if fb.Correct {
			correct++
			assert.Equal(t, a, fb.CorrectAnswer)
			assert.Equal(t, "Correct!", fb.Heading)
		} else {
			assert.Equal(t, "Incorrect.", fb.Heading)
		}
	}
	assert.Equal(t, 1, correct)

	t.Run("UnknownSession", func(t *testing.T) {
		_, err := svc.Check(ctx, &dto.CheckAnswerRequest{SessionID: "nope", QuestionID: next.Question.ID})
		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, domain.CodeNotFound, domainErr.Code)
	})

	t.Run("UnknownQuestion", func(t *testing.T) {
		_, err := svc.Check(ctx, &dto.CheckAnswerRequest{SessionID: next.SessionID, QuestionID: "nope"})
		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, domain.CodeQuestionNotFound, domainErr.Code)
	})
}

func TestQuizSessionService_Export(t *testing.T) {
	ctx := context.Background()
	svc := newTestQuizService(testDataset().Items)

	t.Run("EmptySession", func(t *testing.T) {
		err := svc.Export(ctx, &bytes.Buffer{}, "")
		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
		assert.Equal(t, NoQuestionsGeneratedMessage, domainErr.Message)
	})

	t.Run("Log", func(t *testing.T) {
		first, err := svc.Next(ctx, "", quiz.ModeAll)
		require.NoError(t, err)
		for i := 0; i < 4; i++ {
			_, err := svc.Next(ctx, first.SessionID, quiz.ModeAll)
			require.NoError(t, err)
		}

		var buf bytes.Buffer
		require.NoError(t, svc.Export(ctx, &buf, first.SessionID))
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 6)
		assert.Equal(t, "Question,Correct Answer,Possible Answers", lines[0])
	})
}

func TestQuizSessionService_IdleSessionsExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	sessions := adapter.NewMemoryCacheWithClock(func() time.Time { return now })
	svc := NewQuizSessionService(testDataset().Items, quiz.NewGenerator(rand.New(rand.NewPCG(7, 11)), 0), sessions, 30*time.Minute)

	old, err := svc.Next(ctx, "", quiz.ModeAll)
	require.NoError(t, err)
	for i := 0; i < 500; i++ {
		_, err := svc.Next(ctx, "", quiz.ModeAll)
		require.NoError(t, err)
	}
	assert.Equal(t, 501, sessions.Len())

	// activity within the TTL keeps a session alive
	now = now.Add(20 * time.Minute)
	kept, err := svc.Next(ctx, old.SessionID, quiz.ModeAll)
	require.NoError(t, err)
	assert.Equal(t, old.SessionID, kept.SessionID)
	assert.Equal(t, 2, kept.Asked)

	now = now.Add(25 * time.Minute)
	_, err = svc.Next(ctx, "", quiz.ModeAll)
	require.NoError(t, err)
	assert.Equal(t, 2, sessions.Len(), "idle sessions are reclaimed")

	_, err = svc.Check(ctx, &dto.CheckAnswerRequest{SessionID: old.SessionID, QuestionID: kept.Question.ID, Answer: "x"})
	require.NoError(t, err)

	now = now.Add(time.Hour)
	_, err = svc.Check(ctx, &dto.CheckAnswerRequest{SessionID: old.SessionID, QuestionID: kept.Question.ID, Answer: "x"})
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
}

func TestQuizSessionService_StoreUnavailable(t *testing.T) {
	ctx := context.Background()
	sessions := new(MockCache)
	sessions.On("Get", ctx, "quiz_session_01ARZ3NDEKTSV4RRFFQ69G5FAV").Return("", errors.New("dial tcp: connection refused"))
	svc := NewQuizSessionService(testDataset().Items, quiz.NewGenerator(rand.New(rand.NewPCG(7, 11)), 0), sessions, time.Minute)

	_, err := svc.Next(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV", quiz.ModeAll)
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeStoreUnavailable, domainErr.Code)
	sessions.AssertExpectations(t)
}
