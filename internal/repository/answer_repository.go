package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AnswerRepository struct {
	Col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{Col: db.Collection("test_answers")}
}

// Upsert writes the answer for a (user, question) pair. A resubmission
// replaces the answer text, score and feedback of the existing row.
func (r *AnswerRepository) Upsert(ctx context.Context, answer *models.TestAnswer) error {
	filter := bson.M{"user_id": answer.UserID, "question_id": answer.QuestionID}
	update := bson.M{"$set": bson.M{
		"user_id":      answer.UserID,
		"question_id":  answer.QuestionID,
		"answer":       answer.Answer,
		"score":        answer.Score,
		"feedback":     answer.Feedback,
		"submitted_at": answer.SubmittedAt,
	}}
	_, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *AnswerRepository) FindByUser(ctx context.Context, userID string) ([]models.TestAnswer, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var answers []models.TestAnswer
	for cur.Next(ctx) {
		var a models.TestAnswer
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}

func (r *AnswerRepository) FindByUserAndQuestion(ctx context.Context, userID, questionID string) (*models.TestAnswer, error) {
	var answer models.TestAnswer
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "question_id": questionID}).Decode(&answer)
	if err != nil {
		return nil, err
	}
	return &answer, nil
}
