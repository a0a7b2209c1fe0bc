package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro-serving/internal/models"
)

type PaymentRepo struct {
	Coll *mongo.Collection
}

func NewPaymentRepo(db *mongo.Database) *PaymentRepo {
	return &PaymentRepo{Coll: db.Collection(PaymentCollection)}
}

func (r *PaymentRepo) Insert(ctx context.Context, payment models.Payment) (models.Payment, error) {
	payment.ID = primitive.NewObjectID()
	if _, err := r.Coll.InsertOne(ctx, payment); err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

func (r *PaymentRepo) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cur, err := r.Coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}

	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// MarkCartCleared records that the cart items listed on the payment were
// removed. A payment left with cart_cleared=false marks an interrupted
// cleanup.
func (r *PaymentRepo) MarkCartCleared(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"cart_cleared": true}})
	return err
}
