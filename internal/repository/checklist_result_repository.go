package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChecklistResultRepository struct {
	Col *mongo.Collection
}

func NewChecklistResultRepository(db *mongo.Database) *ChecklistResultRepository {
	return &ChecklistResultRepository{Col: db.Collection("checklist_results")}
}

// Upsert writes the result for a (user, item) pair, creating the row on first
// save and replacing the checked state and notes on every save after that.
func (r *ChecklistResultRepository) Upsert(ctx context.Context, result *models.ChecklistResult) error {
	filter := bson.M{"user_id": result.UserID, "item_id": result.ItemID}
	update := bson.M{"$set": bson.M{
		"user_id":    result.UserID,
		"item_id":    result.ItemID,
		"is_checked": result.IsChecked,
		"notes":      result.Notes,
		"checked_at": result.CheckedAt,
	}}
	_, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *ChecklistResultRepository) FindByUser(ctx context.Context, userID string) ([]models.ChecklistResult, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.ChecklistResult
	for cur.Next(ctx) {
		var result models.ChecklistResult
		if err := cur.Decode(&result); err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *ChecklistResultRepository) FindByUserAndItem(ctx context.Context, userID, itemID string) (*models.ChecklistResult, error) {
	var result models.ChecklistResult
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "item_id": itemID}).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
