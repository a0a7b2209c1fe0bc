package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name"          json:"name"`
	Recipe   string             `bson:"recipe"        json:"recipe"`
	Image    string             `bson:"image"         json:"image"`
	Category string             `bson:"category"      json:"category"`
	Price    float64            `bson:"price"         json:"price"`
}

type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name"          json:"name"`
	Details string             `bson:"details"       json:"details"`
	Rating  float64            `bson:"rating"        json:"rating"`
}

type CartItem struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuID string             `bson:"menu_id"       json:"menu_id"`
	Email  string             `bson:"email"         json:"email"`
	Name   string             `bson:"name"          json:"name"`
	Image  string             `bson:"image"         json:"image"`
	Price  float64            `bson:"price"         json:"price"`
}

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"  json:"_id,omitempty"`
	Name  string             `bson:"name"           json:"name"`
	Email string             `bson:"email"          json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"  json:"_id,omitempty"`
	Email         string             `bson:"email"          json:"email"`
	Price         float64            `bson:"price"          json:"price"`
	TransactionID string             `bson:"transaction_id" json:"transaction_id"`
	CartIDs       []string           `bson:"cart_ids"       json:"cart_ids"`
	MenuItemIDs   []string           `bson:"menu_item_ids"  json:"menu_item_ids"`
	Status        string             `bson:"status"         json:"status"`
	Date          time.Time          `bson:"date"           json:"date"`
	CartCleared   bool               `bson:"cart_cleared"   json:"cart_cleared"`
}

type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Payments  int64   `json:"payments"`
	Revenue   float64 `json:"revenue"`
}

type CategoryStat struct {
	Category string  `bson:"category" json:"category"`
	Quantity int64   `bson:"quantity" json:"quantity"`
	Revenue  float64 `bson:"revenue"  json:"revenue"`
}
