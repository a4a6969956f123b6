package service

import (
	"context"
	"errors"
	"time"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

type ChecklistService struct {
	ItemRepo   *repository.ChecklistItemRepository
	ResultRepo *repository.ChecklistResultRepository
}

func NewChecklistService(itemRepo *repository.ChecklistItemRepository, resultRepo *repository.ChecklistResultRepository) *ChecklistService {
	return &ChecklistService{ItemRepo: itemRepo, ResultRepo: resultRepo}
}

func (s *ChecklistService) ListItems(ctx context.Context) ([]models.ChecklistItem, error) {
	return s.ItemRepo.FindAllActive(ctx)
}

// SaveResult upserts the user's state for one item and stamps the save time.
func (s *ChecklistService) SaveResult(ctx context.Context, result *models.ChecklistResult) error {
	result.CheckedAt = time.Now()
	return s.ResultRepo.Upsert(ctx, result)
}

// GetResult returns the user's saved state for an item. A missing row comes
// back as an unchecked result with empty notes rather than an error.
func (s *ChecklistService) GetResult(ctx context.Context, userID, itemID string) (*models.ChecklistResult, error) {
	result, err := s.ResultRepo.FindByUserAndItem(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.ChecklistResult{UserID: userID, ItemID: itemID}, nil
		}
		return nil, err
	}
	return result, nil
}
