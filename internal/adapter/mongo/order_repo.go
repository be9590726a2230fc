package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatemaDiba/BiteShare-backend/internal/app/config"
	"github.com/fatemaDiba/BiteShare-backend/internal/domain/entity"
	"github.com/fatemaDiba/BiteShare-backend/internal/query"
	"github.com/fatemaDiba/BiteShare-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const orderCollectionName = "orders"

var orderSortFields = map[string]string{
	"foodName":     "food_name",
	"totalPrice":   "total_price",
	"quantity":     "quantity",
	"status":       "status",
	"deliveryDate": "delivery_date",
	"orderDate":    "order_date",
}

type orderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(client *mongo.Client, cfg config.MongoDBConfig) repository.OrderRepository {
	return &orderRepository{
		collection: client.Database(cfg.Database).Collection(orderCollectionName),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) (string, error) {
	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}
	objectID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted ID to ObjectID")
	}
	return objectID.Hex(), nil
}

func (r *orderRepository) GetByID(ctx context.Context, orderID string) (*entity.Order, error) {
	objID, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format: %w", repository.ErrNotFound)
	}

	var order entity.Order
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", orderID, err)
	}
	return &order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) error {
	objID, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return fmt.Errorf("invalid order ID format: %w", repository.ErrNotFound)
	}

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to update status of order %s: %w", orderID, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *orderRepository) List(ctx context.Context, desc query.Descriptor) (*repository.ListOrdersResult, error) {
	filter := bson.M{}
	if desc.OwnerEmail != "" {
		filter["owner_email"] = desc.OwnerEmail
	}
	if desc.Status != "" {
		filter["status"] = desc.Status
	}

	findOptions := options.Find().
		SetSkip(int64(desc.Skip)).
		SetLimit(int64(desc.PageSize)).
		SetSort(orderSort(desc))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []entity.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode listed orders: %w", err)
	}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	return &repository.ListOrdersResult{
		Orders:   orders,
		PageInfo: query.Paginate(totalCount, desc.Page, desc.PageSize),
	}, nil
}

func (r *orderRepository) ListByOwnerBetween(ctx context.Context, ownerEmail string, from, to time.Time) ([]entity.Order, error) {
	filter := bson.M{
		"owner_email": ownerEmail,
		"order_date":  bson.M{"$gte": from, "$lt": to},
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "order_date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for %s: %w", ownerEmail, err)
	}
	defer cursor.Close(ctx)

	var orders []entity.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode listed orders: %w", err)
	}
	return orders, nil
}

func orderSort(desc query.Descriptor) bson.D {
	field, ok := orderSortFields[desc.SortBy]
	if !ok {
		return bson.D{{Key: "order_date", Value: -1}}
	}
	order := -1
	if desc.SortOrder == query.SortAscending {
		order = 1
	}
	return bson.D{{Key: field, Value: order}}
}
