package mongo

import (
	"context"
	"fmt"

	"github.com/fatemaDiba/BiteShare-backend/internal/app/config"
	"github.com/fatemaDiba/BiteShare-backend/internal/domain/entity"
	"github.com/fatemaDiba/BiteShare-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const requestCollectionName = "requests"

type requestRepository struct {
	collection *mongo.Collection
}

func NewRequestRepository(client *mongo.Client, cfg config.MongoDBConfig) repository.RequestRepository {
	return &requestRepository{
		collection: client.Database(cfg.Database).Collection(requestCollectionName),
	}
}

func (r *requestRepository) Create(ctx context.Context, request *entity.Request) (string, error) {
	res, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	objectID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted ID to ObjectID")
	}
	return objectID.Hex(), nil
}

func (r *requestRepository) ListByRequester(ctx context.Context, requesterEmail string) ([]entity.Request, error) {
	filter := bson.M{"requester_email": requesterEmail}
	findOptions := options.Find().SetSort(bson.D{{Key: "requested_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests for %s: %w", requesterEmail, err)
	}
	defer cursor.Close(ctx)

	var requests []entity.Request
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode listed requests: %w", err)
	}
	return requests, nil
}
