package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"art-atlas/internal/domain"
	"art-atlas/internal/dto"
	"art-atlas/internal/middleware"
	"art-atlas/internal/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSessionID  = "01HGZ8VNRYXS8QKNJV5GRWPWDQ"
	testQuestionID = "01HGZ8VNRYXS8QKNJV5GRWPWDR"
)

func TestQuizHandler_NextQuestion(t *testing.T) {
	app, m := newTestApp()

	t.Run("NewSession", func(t *testing.T) {
		m.quiz.NextFunc = func(_ context.Context, sessionID string, mode quiz.Mode) (*dto.QuestionResponse, error) {
			assert.Empty(t, sessionID)
			assert.Equal(t, quiz.ModeAll, mode)
			return &dto.QuestionResponse{
				SessionID: testSessionID, Available: true, Asked: 1, Mode: "all",
				Question: &dto.QuestionDTO{ID: testQuestionID, Prompt: "Who?", Answers: []string{"a", "b"}},
			}, nil
		}
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/quiz/next", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, testSessionID, resp.Header.Get(middleware.SessionHeader))
		body := decode[dto.QuestionResponse](t, resp.Body)
		assert.True(t, body.Available)
		assert.Equal(t, "Who?", body.Question.Prompt)
	})

	t.Run("ExamMode", func(t *testing.T) {
		m.quiz.NextFunc = func(_ context.Context, sessionID string, mode quiz.Mode) (*dto.QuestionResponse, error) {
			assert.Equal(t, testSessionID, sessionID)
			assert.Equal(t, quiz.ModeExam, mode)
			return &dto.QuestionResponse{SessionID: sessionID, Message: quiz.NoQuestionsMessage, Mode: "exam"}, nil
		}
		req := httptest.NewRequest(http.MethodGet, "/api/quiz/next?exam=true", nil)
		req.Header.Set(middleware.SessionHeader, testSessionID)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decode[dto.QuestionResponse](t, resp.Body)
		assert.False(t, body.Available)
		assert.Equal(t, quiz.NoQuestionsMessage, body.Message)
	})

	t.Run("MalformedSession", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/quiz/next", nil)
		req.Header.Set(middleware.SessionHeader, "not-a-ulid")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestQuizHandler_CheckAnswer(t *testing.T) {
	app, m := newTestApp()

	post := func(body interface{}) *http.Response {
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/api/quiz/check", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("Correct", func(t *testing.T) {
		m.quiz.CheckFunc = func(_ context.Context, req *dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error) {
			assert.Equal(t, testQuestionID, req.QuestionID)
			assert.Equal(t, "Nok", req.Answer)
			return &dto.CheckAnswerResponse{Correct: true, Heading: "Correct!", CorrectAnswer: "Nok"}, nil
		}
		resp := post(dto.CheckAnswerRequest{SessionID: testSessionID, QuestionID: testQuestionID, Answer: "Nok"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, decode[dto.CheckAnswerResponse](t, resp.Body).Correct)
	})

	t.Run("MissingFields", func(t *testing.T) {
		resp := post(dto.CheckAnswerRequest{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decode[middleware.ValidationErrorResponse](t, resp.Body)
		assert.Len(t, body.Errors, 3)
	})

	t.Run("UnknownQuestion", func(t *testing.T) {
		m.quiz.CheckFunc = func(_ context.Context, req *dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error) {
			return nil, domain.NewQuestionNotFoundError(req.QuestionID)
		}
		resp := post(dto.CheckAnswerRequest{SessionID: testSessionID, QuestionID: testQuestionID, Answer: "x"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/quiz/check", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestQuizHandler_ExportQuiz(t *testing.T) {
	app, m := newTestApp()

	t.Run("Empty", func(t *testing.T) {
		m.quiz.ExportFunc = func(_ context.Context, w io.Writer, sessionID string) error {
			return domain.NewInvalidInputError("No questions have been generated yet.")
		}
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/quiz/export.csv", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "No questions have been generated yet.", decode[middleware.ErrorResponse](t, resp.Body).Message)
	})

	t.Run("CSV", func(t *testing.T) {
		m.quiz.ExportFunc = func(_ context.Context, w io.Writer, sessionID string) error {
			assert.Equal(t, testSessionID, sessionID)
			_, err := io.WriteString(w, "Question,Correct Answer,Possible Answers\n")
			return err
		}
		req := httptest.NewRequest(http.MethodGet, "/api/quiz/export.csv", nil)
		req.Header.Set(middleware.SessionHeader, testSessionID)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Disposition"), quiz.ExportFilename)
	})
}
