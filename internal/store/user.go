package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro-serving/internal/models"
)

type UserRepo struct {
	Coll *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{Coll: db.Collection(UserCollection)}
}

// FindByEmail returns nil without an error when no user exists.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) Insert(ctx context.Context, user models.User) (models.User, error) {
	user.ID = primitive.NewObjectID()
	if _, err := r.Coll.InsertOne(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	cur, err := r.Coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) (int64, error) {
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

// Promote escalates a user to the admin role. Roles never demote.
func (r *UserRepo) Promote(ctx context.Context, id string) (int64, error) {
	oid, ok := parseID(id)
	if !ok {
		return 0, nil
	}

	res, err := r.Coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"role": "admin"}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *UserRepo) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := r.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == "admin", nil
}
