package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"art-atlas/internal/cache"
	"art-atlas/internal/domain"
	"art-atlas/internal/dto"
	"art-atlas/internal/logger"
	"art-atlas/internal/quiz"
	"art-atlas/internal/util"

	"go.uber.org/zap"
)

// NoQuestionsGeneratedMessage is returned when exporting an empty session.
const NoQuestionsGeneratedMessage = "No questions have been generated yet."

// DefaultSessionTTL is how long an idle quiz session is kept.
const DefaultSessionTTL = 2 * time.Hour

// QuizSessionService draws questions for quiz sessions and keeps the log of
// every question asked in a session. Sessions idle for longer than the TTL
// are dropped.
type QuizSessionService interface {
	Next(ctx context.Context, sessionID string, mode quiz.Mode) (*dto.QuestionResponse, error)
	Check(ctx context.Context, req *dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error)
	Export(ctx context.Context, w io.Writer, sessionID string) error
}

// loggedQuestion is a question as stored in the session log. The item is
// kept by id and resolved against the dataset on read.
type loggedQuestion struct {
	*domain.Question
	ItemID string `json:"itemId"`
}

// quizSession is the growing log of one session.
type quizSession struct {
	Questions []loggedQuestion `json:"questions"`
}

type quizSessionService struct {
	items     []domain.ArtItem
	byID      map[string]*domain.ArtItem
	generator *quiz.Generator
	cache     domain.Cache
	ttl       time.Duration

	// serializes read-modify-write of session logs within the process
	mu sync.Mutex
}

// NewQuizSessionService creates a session service drawing from items and
// keeping session logs in sessions. A non-positive ttl uses DefaultSessionTTL.
func NewQuizSessionService(items []domain.ArtItem, generator *quiz.Generator, sessions domain.Cache, ttl time.Duration) QuizSessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	byID := make(map[string]*domain.ArtItem, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}
	return &quizSessionService{
		items:     items,
		byID:      byID,
		generator: generator,
		cache:     sessions,
		ttl:       ttl,
	}
}

func modeName(mode quiz.Mode) string {
	if mode == quiz.ModeExam {
		return "exam"
	}
	return "all"
}

// load returns the stored session, or nil when it does not exist or expired.
func (s *quizSessionService) load(ctx context.Context, id string) (*quizSession, error) {
	if id == "" {
		return nil, nil
	}
	data, err := s.cache.Get(ctx, cache.QuizSessionKey(id))
	if errors.Is(err, domain.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStoreUnavailableError(err)
	}
	var sess quizSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		logger.Get().Error("Corrupt quiz session", zap.String("session_id", id), zap.Error(err))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to decode quiz session %s", id), err)
	}
	for _, q := range sess.Questions {
		q.Item = s.byID[q.ItemID]
	}
	return &sess, nil
}

// save writes the session back, restarting its idle timer.
func (s *quizSessionService) save(ctx context.Context, id string, sess *quizSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return domain.NewInternalError("failed to encode quiz session", err)
	}
	if err := s.cache.Set(ctx, cache.QuizSessionKey(id), string(data), s.ttl); err != nil {
		return domain.NewStoreUnavailableError(err)
	}
	return nil
}

func (s *quizSessionService) Next(ctx context.Context, sessionID string, mode quiz.Mode) (*dto.QuestionResponse, error) {
	q, err := s.generator.Next(s.items, mode)
	if err != nil && !errors.Is(err, quiz.ErrNoQuestions) {
		return nil, domain.NewInternalError("Failed to generate question", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		sessionID = util.NewULID()
		sess = &quizSession{Questions: []loggedQuestion{}}
		logger.Get().Debug("Opened quiz session", zap.String("session_id", sessionID))
	}

	resp := &dto.QuestionResponse{SessionID: sessionID, Mode: modeName(mode)}
	if q != nil {
		q.ID = util.NewULID()
		sess.Questions = append(sess.Questions, loggedQuestion{Question: q, ItemID: q.ItemID()})
	}
	if err := s.save(ctx, sessionID, sess); err != nil {
		return nil, err
	}
	resp.Asked = len(sess.Questions)

	if q == nil {
		resp.Message = quiz.NoQuestionsMessage
		logger.Get().Info("No question available",
			zap.String("session_id", sessionID),
			zap.String("mode", resp.Mode),
		)
		return resp, nil
	}

	resp.Available = true
	resp.Question = &dto.QuestionDTO{
		ID:       q.ID,
		Prompt:   q.Prompt,
		Answers:  q.Answers,
		ItemID:   q.ItemID(),
		Category: string(q.Category),
	}
	return resp, nil
}

func (s *quizSessionService) Check(ctx context.Context, req *dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error) {
	sess, err := s.load(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, domain.NewNotFoundError("Quiz session not found").WithContext("session_id", req.SessionID)
	}

	var q *domain.Question
	for _, lq := range sess.Questions {
		if lq.ID == req.QuestionID {
			q = lq.Question
			break
		}
	}
	if q == nil {
		return nil, domain.NewQuestionNotFoundError(req.QuestionID)
	}

	fb := quiz.Check(q, req.Answer)
	return &dto.CheckAnswerResponse{
		Correct:       fb.Correct,
		Heading:       fb.Heading,
		Message:       fb.Message,
		CorrectAnswer: fb.CorrectAnswer,
		Summary:       fb.Summary,
		ItemID:        fb.ItemID,
	}, nil
}

func (s *quizSessionService) Export(ctx context.Context, w io.Writer, sessionID string) error {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess == nil || len(sess.Questions) == 0 {
		return domain.NewInvalidInputError(NoQuestionsGeneratedMessage)
	}

	questions := make([]*domain.Question, len(sess.Questions))
	for i, lq := range sess.Questions {
		questions[i] = lq.Question
	}
	if err := quiz.WriteCSV(w, questions); err != nil {
		return domain.NewInternalError("Failed to export quiz", err)
	}
	return nil
}
