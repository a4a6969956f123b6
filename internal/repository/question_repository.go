package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("test_questions")}
}

func (r *QuestionRepository) FindAllActive(ctx context.Context) ([]models.TestQuestion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "level", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.TestQuestion
	for cur.Next(ctx) {
		var q models.TestQuestion
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.TestQuestion, error) {
	var question models.TestQuestion
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) FindByTitle(ctx context.Context, title string) (*models.TestQuestion, error) {
	var question models.TestQuestion
	err := r.Col.FindOne(ctx, bson.M{"title": title}).Decode(&question)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) FindByLevel(ctx context.Context, level string) ([]models.TestQuestion, error) {
	cur, err := r.Col.Find(ctx, bson.M{"level": level, "is_active": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.TestQuestion
	for cur.Next(ctx) {
		var q models.TestQuestion
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.TestQuestion) error {
	_, err := r.Col.InsertOne(ctx, question)
	return err
}

func (r *QuestionRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_active": false}})
	return err
}
