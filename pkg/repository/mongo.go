package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/example/storefront/pkg/config"
)

// MongoRepository keeps an audit trail of placed orders, written
// best-effort after the relational transaction commits.
type MongoRepository struct {
	client   *mongo.Client
	database *mongo.Database
	config   *config.MongoDBConfig
}

func NewMongoRepository(cfg *config.MongoDBConfig) (*MongoRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	return &MongoRepository{
		client:   client,
		database: client.Database(cfg.Database),
		config:   cfg,
	}, nil
}

func (m *MongoRepository) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *MongoRepository) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// OrderAudit records one successful create-order call.
type OrderAudit struct {
	ID              string    `bson:"_id,omitempty"`
	OrderID         uint      `bson:"order_id"`
	Phone           string    `bson:"phone"`
	TotalAmount     float64   `bson:"total_amount"`
	DiscountPercent float64   `bson:"discount_percent"`
	ItemCount       int       `bson:"item_count"`
	CreatedAt       time.Time `bson:"created_at"`
}

func (m *MongoRepository) RecordOrderPlaced(ctx context.Context, audit *OrderAudit) error {
	collection := m.database.Collection(m.config.Collection)
	audit.CreatedAt = time.Now()
	_, err := collection.InsertOne(ctx, audit)
	return err
}
