package repository

import (
	"context"
	"fmt"

	"github.com/MiniPekkaaa/MiniApp/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ordersCollection = "Orders"

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) OrderRepository {
	return &mongoRepository{
		collection: db.Collection(ordersCollection),
	}
}

// Insert writes the order as a single document keyed by its id. The _id
// uniqueness constraint makes a duplicate insert fail instead of silently
// overwriting, which is what gives retried submissions at-most-once
// semantics.
func (m *mongoRepository) Insert(ctx context.Context, order *domain.Order) error {
	_, err := m.collection.InsertOne(ctx, order)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateOrder
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

// RecentByOrganization returns the organization's latest orders, newest
// first. No orders is an empty slice, not an error.
func (m *mongoRepository) RecentByOrganization(ctx context.Context, organizationID string, limit int64) ([]domain.Order, error) {
	filter := bson.M{"organization_id": organizationID}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := m.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}

func (m *mongoRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "organization_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}
