package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChecklistItemRepository struct {
	Col *mongo.Collection
}

func NewChecklistItemRepository(db *mongo.Database) *ChecklistItemRepository {
	return &ChecklistItemRepository{Col: db.Collection("checklist_items")}
}

func (r *ChecklistItemRepository) FindAllActive(ctx context.Context) ([]models.ChecklistItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "level", Value: 1}, {Key: "order", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var items []models.ChecklistItem
	for cur.Next(ctx) {
		var item models.ChecklistItem
		if err := cur.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ChecklistItemRepository) FindByID(ctx context.Context, id string) (*models.ChecklistItem, error) {
	var item models.ChecklistItem
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ChecklistItemRepository) FindByTitle(ctx context.Context, title string) (*models.ChecklistItem, error) {
	var item models.ChecklistItem
	err := r.Col.FindOne(ctx, bson.M{"title": title}).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ChecklistItemRepository) CountActive(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"is_active": true})
}

func (r *ChecklistItemRepository) Create(ctx context.Context, item *models.ChecklistItem) error {
	_, err := r.Col.InsertOne(ctx, item)
	return err
}

func (r *ChecklistItemRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *ChecklistItemRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_active": false}})
	return err
}
