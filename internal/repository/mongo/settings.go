package mongo

import (
	"context"

	"github.com/julimen5/cocos-challenge/internal/repository/mongo/structs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettingsRepository struct {
	conn       *mongo.Client
	collection *mongo.Collection
}

func NewSettingsRepository(conn *mongo.Client) *SettingsRepository {
	collection := conn.Database("settings").Collection("tickers")

	return &SettingsRepository{conn: conn, collection: collection}
}

// Load returns mongo.ErrNoDocuments when the ticker has no settings document;
// callers fall back to permissive defaults in that case.
func (r *SettingsRepository) Load(ticker string) (*structs.Settings, error) {
	var result structs.Settings

	if err := r.collection.FindOne(context.TODO(), bson.D{{Key: "ticker", Value: ticker}}).Decode(&result); err != nil {
		return &result, err
	}

	return &result, nil
}

// UpdateStatus upserts so a ticker can be disabled before it ever had a
// settings document.
func (r *SettingsRepository) UpdateStatus(ticker string, status structs.TickerStatus) error {
	_, err := r.collection.UpdateOne(
		context.TODO(),
		bson.D{{Key: "ticker", Value: ticker}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status.ToString()}}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *SettingsRepository) UpdateMaxOrderSize(ticker string, maxOrderSize float64) error {
	_, err := r.collection.UpdateOne(
		context.TODO(),
		bson.D{{Key: "ticker", Value: ticker}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "max_order_size", Value: maxOrderSize}}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}

	return nil
}
