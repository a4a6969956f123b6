package service

import (
	"context"
	"errors"
	"time"

	"assessment-service/internal/evaluation"
	"assessment-service/internal/models"
	"assessment-service/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrQuestionNotFound = errors.New("question not found")

type TestService struct {
	QuestionRepo *repository.QuestionRepository
	AnswerRepo   *repository.AnswerRepository
	Scorer       *evaluation.Scorer
}

func NewTestService(questionRepo *repository.QuestionRepository, answerRepo *repository.AnswerRepository, scorer *evaluation.Scorer) *TestService {
	return &TestService{QuestionRepo: questionRepo, AnswerRepo: answerRepo, Scorer: scorer}
}

func (s *TestService) ListQuestions(ctx context.Context) ([]models.TestQuestion, error) {
	return s.QuestionRepo.FindAllActive(ctx)
}

func (s *TestService) GetQuestion(ctx context.Context, id string) (*models.TestQuestion, error) {
	return s.QuestionRepo.FindByID(ctx, id)
}

// SubmitAnswer scores a raw submission against its question and upserts the
// answer row. The score is written here, at submission time, and is only ever
// replaced by a resubmission.
func (s *TestService) SubmitAnswer(ctx context.Context, userID, questionID, rawAnswer string) (*models.TestAnswer, error) {
	question, err := s.QuestionRepo.FindByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	judgment := s.Scorer.Score(question, rawAnswer)

	answer := &models.TestAnswer{
		UserID:      userID,
		QuestionID:  questionID,
		Answer:      rawAnswer,
		Score:       &judgment.Score,
		Feedback:    judgment.Feedback,
		SubmittedAt: time.Now(),
	}
	if err := s.AnswerRepo.Upsert(ctx, answer); err != nil {
		return nil, err
	}
	return answer, nil
}

// GetAnswer returns the user's saved answer for a question, nil when the
// question has not been answered yet.
func (s *TestService) GetAnswer(ctx context.Context, userID, questionID string) (*models.TestAnswer, error) {
	answer, err := s.AnswerRepo.FindByUserAndQuestion(ctx, userID, questionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return answer, nil
}
