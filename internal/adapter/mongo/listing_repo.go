package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/fatemaDiba/BiteShare-backend/internal/app/config"
	"github.com/fatemaDiba/BiteShare-backend/internal/domain/entity"
	"github.com/fatemaDiba/BiteShare-backend/internal/query"
	"github.com/fatemaDiba/BiteShare-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listingCollectionName = "listings"

// listingSortFields maps the browse-surface sort names onto bson fields.
// Unknown names fall back to the default newest-first ordering.
var listingSortFields = map[string]string{
	"foodName":   "food_name",
	"price":      "price",
	"quantity":   "quantity",
	"location":   "location",
	"expiryDate": "expiry_date",
	"createdAt":  "created_at",
}

type listingRepository struct {
	collection *mongo.Collection
}

func NewListingRepository(client *mongo.Client, cfg config.MongoDBConfig) repository.ListingRepository {
	return &listingRepository{
		collection: client.Database(cfg.Database).Collection(listingCollectionName),
	}
}

func (r *listingRepository) Create(ctx context.Context, listing *entity.Listing) (string, error) {
	res, err := r.collection.InsertOne(ctx, listing)
	if err != nil {
		return "", fmt.Errorf("failed to create listing: %w", err)
	}
	objectID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted ID to ObjectID")
	}
	return objectID.Hex(), nil
}

func (r *listingRepository) GetByID(ctx context.Context, listingID string) (*entity.Listing, error) {
	objID, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return nil, fmt.Errorf("invalid listing ID format: %w", repository.ErrNotFound)
	}

	var listing entity.Listing
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get listing by ID %s: %w", listingID, err)
	}
	return &listing, nil
}

func (r *listingRepository) Update(ctx context.Context, params repository.UpdateListingParams) error {
	objID, err := primitive.ObjectIDFromHex(params.ListingID)
	if err != nil {
		return fmt.Errorf("invalid listing ID format: %w", repository.ErrUpdateFailed)
	}

	update := bson.M{"$set": bson.M{
		"food_name":   params.FoodName,
		"description": params.Description,
		"image_url":   params.ImageURL,
		"location":    params.Location,
		"quantity":    params.Quantity,
		"price":       params.Price,
		"expiry_date": params.ExpiryDate,
	}}

	opts := options.Update().SetUpsert(params.Upsert)
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update, opts)
	if err != nil {
		return fmt.Errorf("failed to update listing %s: %w", params.ListingID, err)
	}
	return nil
}

func (r *listingRepository) UpdateStatus(ctx context.Context, listingID string, status entity.ListingStatus) error {
	objID, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return fmt.Errorf("invalid listing ID format: %w", repository.ErrUpdateFailed)
	}

	update := bson.M{"$set": bson.M{"status": status}}
	opts := options.Update().SetUpsert(true)
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update, opts)
	if err != nil {
		return fmt.Errorf("failed to update status of listing %s: %w", listingID, err)
	}
	return nil
}

func (r *listingRepository) Delete(ctx context.Context, listingID string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return 0, nil
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete listing %s: %w", listingID, err)
	}
	return res.DeletedCount, nil
}

func (r *listingRepository) List(ctx context.Context, desc query.Descriptor) (*repository.ListListingsResult, error) {
	filter := listingFilter(desc)

	findOptions := options.Find().
		SetSkip(int64(desc.Skip)).
		SetLimit(int64(desc.PageSize)).
		SetSort(listingSort(desc))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []entity.Listing
	if err = cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listed listings: %w", err)
	}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}

	return &repository.ListListingsResult{
		Listings: listings,
		PageInfo: query.Paginate(totalCount, desc.Page, desc.PageSize),
	}, nil
}

func listingFilter(desc query.Descriptor) bson.M {
	filter := bson.M{}
	if desc.Status != "" {
		filter["status"] = desc.Status
	}
	if desc.OwnerEmail != "" {
		filter["owner_email"] = desc.OwnerEmail
	}
	if desc.Location != "" {
		filter["location"] = containsPattern(desc.Location)
	}
	if desc.Search != "" {
		pattern := containsPattern(desc.Search)
		filter["$or"] = bson.A{
			bson.M{"food_name": pattern},
			bson.M{"location": pattern},
		}
	}
	return filter
}

func listingSort(desc query.Descriptor) bson.D {
	field, ok := listingSortFields[desc.SortBy]
	if !ok {
		return bson.D{{Key: "created_at", Value: -1}}
	}
	order := -1
	if desc.SortOrder == query.SortAscending {
		order = 1
	}
	return bson.D{{Key: field, Value: order}}
}

func containsPattern(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
