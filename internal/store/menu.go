package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro-serving/internal/models"
)

type MenuRepo struct {
	Coll *mongo.Collection
}

func NewMenuRepo(db *mongo.Database) *MenuRepo {
	return &MenuRepo{Coll: db.Collection(MenuCollection)}
}

func (r *MenuRepo) List(ctx context.Context) ([]models.MenuItem, error) {
	cur, err := r.Coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	items := []models.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepo) Insert(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	item.ID = primitive.NewObjectID()
	if _, err := r.Coll.InsertOne(ctx, item); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (r *MenuRepo) Delete(ctx context.Context, id string) (int64, error) {
	oid, ok := parseID(id)
	if !ok {
		return 0, nil
	}

	res, err := r.Coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
