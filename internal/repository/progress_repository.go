package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProgressRepository stores evaluation snapshots. The collection is
// append-only: Create is the only write.
type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("progress_records")}
}

func (r *ProgressRepository) Create(ctx context.Context, record *models.ProgressRecord) error {
	_, err := r.Col.InsertOne(ctx, record)
	return err
}

func (r *ProgressRepository) FindByUser(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.ProgressRecord
	for cur.Next(ctx) {
		var record models.ProgressRecord
		if err := cur.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *ProgressRepository) FindLatestByUser(ctx context.Context, userID string) (*models.ProgressRecord, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "recorded_at", Value: -1}})
	var record models.ProgressRecord
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
