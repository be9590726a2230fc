package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatemaDiba/BiteShare-backend/internal/domain/entity"
	"github.com/fatemaDiba/BiteShare-backend/internal/platform/logger"
	"github.com/fatemaDiba/BiteShare-backend/internal/query"
	"github.com/fatemaDiba/BiteShare-backend/internal/repository"
)

type CreateListingParams struct {
	OwnerEmail  string
	OwnerName   string
	FoodName    string
	Description string
	ImageURL    string
	Location    string
	Quantity    int
	Price       float64
	ExpiryDate  time.Time
}

// FeaturedCache caches the homepage's featured-listings page.
type FeaturedCache interface {
	Get(ctx context.Context) ([]entity.Listing, error)
	Set(ctx context.Context, listings []entity.Listing, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// ListingService is the read side of the marketplace plus listing creation.
// Browsing goes raw params -> query.Build -> store.
type ListingService interface {
	Browse(ctx context.Context, rawParams map[string]string) (*repository.ListListingsResult, error)
	Featured(ctx context.Context) ([]entity.Listing, error)
	Create(ctx context.Context, params CreateListingParams) (*entity.Listing, error)
	GetByID(ctx context.Context, listingID string) (*entity.Listing, error)
	OwnListings(ctx context.Context, ownerEmail string, rawParams map[string]string) (*repository.ListListingsResult, error)
	RequestsByRequester(ctx context.Context, requesterEmail string) ([]entity.Request, error)
}

type listingService struct {
	listingRepo   repository.ListingRepository
	requestRepo   repository.RequestRepository
	featuredCache FeaturedCache
	featuredLimit int
	featuredTTL   time.Duration
	log           logger.Logger
}

func NewListingService(
	listingRepo repository.ListingRepository,
	requestRepo repository.RequestRepository,
	featuredCache FeaturedCache,
	featuredLimit int,
	featuredTTL time.Duration,
	log logger.Logger,
) ListingService {
	return &listingService{
		listingRepo:   listingRepo,
		requestRepo:   requestRepo,
		featuredCache: featuredCache,
		featuredLimit: featuredLimit,
		featuredTTL:   featuredTTL,
		log:           log,
	}
}

func (s *listingService) Browse(ctx context.Context, rawParams map[string]string) (*repository.ListListingsResult, error) {
	desc := query.Build(rawParams, query.DefaultListingPageSize)

	result, err := s.listingRepo.List(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("failed to browse listings: %w", err)
	}
	return result, nil
}

// Featured serves the newest available listings, read through the redis
// cache. Cache faults degrade to the store.
func (s *listingService) Featured(ctx context.Context) ([]entity.Listing, error) {
	cached, err := s.featuredCache.Get(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.log.Warnf("Featured listings cache read failed, falling back to store: %v", err)
	}

	desc := query.Descriptor{
		Status:    string(entity.ListingStatusAvailable),
		SortOrder: query.SortDescending,
		Page:      1,
		PageSize:  s.featuredLimit,
	}
	result, err := s.listingRepo.List(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("failed to load featured listings: %w", err)
	}

	if err := s.featuredCache.Set(ctx, result.Listings, s.featuredTTL); err != nil {
		s.log.Warnf("Failed to cache featured listings: %v", err)
	}
	return result.Listings, nil
}

func (s *listingService) Create(ctx context.Context, params CreateListingParams) (*entity.Listing, error) {
	s.log.Infof("Creating listing %q for %s", params.FoodName, params.OwnerEmail)

	listing, err := entity.NewListing(
		params.OwnerEmail,
		params.OwnerName,
		params.FoodName,
		params.Description,
		params.ImageURL,
		params.Location,
		params.Quantity,
		params.Price,
		params.ExpiryDate,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	listingID, err := s.listingRepo.Create(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("failed to save listing: %w", err)
	}
	listing.ID = listingID

	if err := s.featuredCache.Invalidate(ctx); err != nil {
		s.log.Warnf("Failed to invalidate featured listings cache: %v", err)
	}

	s.log.Infof("Listing %s created for %s", listingID, params.OwnerEmail)
	return listing, nil
}

func (s *listingService) GetByID(ctx context.Context, listingID string) (*entity.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve listing %s: %w", listingID, err)
	}
	return listing, nil
}

func (s *listingService) OwnListings(ctx context.Context, ownerEmail string, rawParams map[string]string) (*repository.ListListingsResult, error) {
	desc := query.Build(rawParams, query.DefaultListingPageSize)
	desc.OwnerEmail = ownerEmail

	result, err := s.listingRepo.List(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings of %s: %w", ownerEmail, err)
	}
	return result, nil
}

func (s *listingService) RequestsByRequester(ctx context.Context, requesterEmail string) ([]entity.Request, error) {
	requests, err := s.requestRepo.ListByRequester(ctx, requesterEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests of %s: %w", requesterEmail, err)
	}
	return requests, nil
}
