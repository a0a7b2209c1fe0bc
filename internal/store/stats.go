package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro-serving/internal/models"
)

type StatsRepo struct {
	Users    *mongo.Collection
	Menu     *mongo.Collection
	Payments *mongo.Collection
}

func NewStatsRepo(db *mongo.Database) *StatsRepo {
	return &StatsRepo{
		Users:    db.Collection(UserCollection),
		Menu:     db.Collection(MenuCollection),
		Payments: db.Collection(PaymentCollection),
	}
}

// AdminStats returns estimated collection counts plus the revenue sum over
// all payments. Counts are not a point-in-time snapshot.
func (r *StatsRepo) AdminStats(ctx context.Context) (models.AdminStats, error) {
	users, err := r.Users.EstimatedDocumentCount(ctx)
	if err != nil {
		return models.AdminStats{}, err
	}
	menuItems, err := r.Menu.EstimatedDocumentCount(ctx)
	if err != nil {
		return models.AdminStats{}, err
	}
	payments, err := r.Payments.EstimatedDocumentCount(ctx)
	if err != nil {
		return models.AdminStats{}, err
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	cur, err := r.Payments.Aggregate(ctx, pipeline)
	if err != nil {
		return models.AdminStats{}, err
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return models.AdminStats{}, err
	}

	revenue := 0.0
	if len(rows) > 0 {
		revenue = rows[0].Total
	}

	return models.AdminStats{
		Users:     users,
		MenuItems: menuItems,
		Payments:  payments,
		Revenue:   revenue,
	}, nil
}

// OrderStats expands every payment's purchased menu item references, joins
// them to the catalog and groups by category. References that match no
// catalog entry drop out of the result.
func (r *StatsRepo) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$menu_item_ids"}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "menuItemID", Value: bson.D{{Key: "$toObjectId", Value: "$menu_item_ids"}}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: MenuCollection},
			{Key: "localField", Value: "menuItemID"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItems"},
		}}},
		bson.D{{Key: "$unwind", Value: "$menuItems"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: 1},
			{Key: "revenue", Value: 1},
		}}},
	}

	cur, err := r.Payments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	stats := []models.CategoryStat{}
	if err := cur.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
