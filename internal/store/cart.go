package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro-serving/internal/models"
)

type CartRepo struct {
	Coll *mongo.Collection
}

func NewCartRepo(db *mongo.Database) *CartRepo {
	return &CartRepo{Coll: db.Collection(CartCollection)}
}

func (r *CartRepo) Insert(ctx context.Context, item models.CartItem) (models.CartItem, error) {
	item.ID = primitive.NewObjectID()
	if _, err := r.Coll.InsertOne(ctx, item); err != nil {
		return models.CartItem{}, err
	}
	return item, nil
}

func (r *CartRepo) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cur, err := r.Coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}

	items := []models.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepo) Delete(ctx context.Context, id string) (int64, error) {
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

// DeleteMany removes the cart items listed on a payment. Unparseable ids are
// skipped, and re-running with the same set is a no-op, so cleanup can be
// retried safely.
func (r *CartRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, ok := parseID(id); ok {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return 0, nil
	}

	res, err := r.Coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
