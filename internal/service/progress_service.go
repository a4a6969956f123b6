package service

import (
	"context"
	"errors"
	"log"

	"assessment-service/internal/models"
	"assessment-service/internal/progress"
	"assessment-service/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProgressReport is the full progress view: the freshly recorded snapshot,
// the per-band checklist breakdown, and the snapshot history (newest first).
type ProgressReport struct {
	Current   models.ProgressRecord       `json:"current"`
	Breakdown []progress.CategoryProgress `json:"breakdown"`
	History   []models.ProgressRecord     `json:"history"`
}

type ProgressService struct {
	ItemRepo     *repository.ChecklistItemRepository
	ResultRepo   *repository.ChecklistResultRepository
	QuestionRepo *repository.QuestionRepository
	AnswerRepo   *repository.AnswerRepository
	ProgressRepo *repository.ProgressRepository
	UserRepo     *repository.UserRepository
}

func NewProgressService(
	itemRepo *repository.ChecklistItemRepository,
	resultRepo *repository.ChecklistResultRepository,
	questionRepo *repository.QuestionRepository,
	answerRepo *repository.AnswerRepository,
	progressRepo *repository.ProgressRepository,
	userRepo *repository.UserRepository,
) *ProgressService {
	return &ProgressService{
		ItemRepo:     itemRepo,
		ResultRepo:   resultRepo,
		QuestionRepo: questionRepo,
		AnswerRepo:   answerRepo,
		ProgressRepo: progressRepo,
		UserRepo:     userRepo,
	}
}

// GenerateReport recomputes the user's progress from their full checklist and
// test history, appends a new snapshot, and refreshes the user's level labels.
func (s *ProgressService) GenerateReport(ctx context.Context, userID string) (*ProgressReport, error) {
	items, err := s.ItemRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	results, err := s.ResultRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	answers, err := s.AnswerRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	questions, err := s.QuestionRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	previous, err := s.ProgressRepo.FindLatestByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		previous = nil
	}

	record := progress.Aggregate(len(items), results, buildOutcomes(answers, questions), previous)
	record.UserID = userID
	if err := s.ProgressRepo.Create(ctx, &record); err != nil {
		return nil, err
	}

	if err := s.UserRepo.UpdateLevels(ctx, userID, record.TechLevel, record.BizLevel); err != nil {
		// The snapshot is already recorded; a stale label is not worth
		// failing the whole report over.
		log.Printf("failed to update levels for user %s: %v", userID, err)
	}

	history, err := s.ProgressRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProgressReport{
		Current:   record,
		Breakdown: progress.Breakdown(models.LevelBands, items, results),
		History:   history,
	}, nil
}

// buildOutcomes pairs each answer's score with its question's max score.
// Answers whose question is missing from the active catalog are dropped.
func buildOutcomes(answers []models.TestAnswer, questions []models.TestQuestion) []progress.TestOutcome {
	maxScores := make(map[string]int, len(questions))
	for _, q := range questions {
		maxScores[q.ID] = q.MaxScore
	}

	outcomes := make([]progress.TestOutcome, 0, len(answers))
	for _, answer := range answers {
		maxScore, ok := maxScores[answer.QuestionID]
		if !ok {
			continue
		}
		outcomes = append(outcomes, progress.TestOutcome{
			Score:    answer.ScoreValue(),
			MaxScore: maxScore,
		})
	}
	return outcomes
}
