package service

import (
	"context"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// QuestionService covers the admin side of the question catalog; user-facing
// reads go through TestService.
type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.TestQuestion) error {
	question.IsActive = true
	return s.Repo.Create(ctx, question)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, update map[string]any) error {
	return s.Repo.Update(ctx, id, bson.M(update))
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
