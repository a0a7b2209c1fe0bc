package store

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MenuCollection    = "menu"
	ReviewCollection  = "reviews"
	CartCollection    = "carts"
	UserCollection    = "users"
	PaymentCollection = "payments"
)

// parseID converts a path identifier to an ObjectID. An unparseable id is
// treated as referring to nothing, so deletes on it become zero-effect.
func parseID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
