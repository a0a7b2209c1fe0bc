package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro-serving/internal/models"
)

type ReviewRepo struct {
	Coll *mongo.Collection
}

func NewReviewRepo(db *mongo.Database) *ReviewRepo {
	return &ReviewRepo{Coll: db.Collection(ReviewCollection)}
}

func (r *ReviewRepo) List(ctx context.Context) ([]models.Review, error) {
	cur, err := r.Coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	reviews := []models.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
