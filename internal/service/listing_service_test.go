package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fatemaDiba/BiteShare-backend/internal/domain/entity"
	"github.com/fatemaDiba/BiteShare-backend/internal/platform/logger"
	"github.com/fatemaDiba/BiteShare-backend/internal/query"
	"github.com/fatemaDiba/BiteShare-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFeaturedCache struct {
	mock.Mock
}

func (m *MockFeaturedCache) Get(ctx context.Context) ([]entity.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Listing), args.Error(1)
}

func (m *MockFeaturedCache) Set(ctx context.Context, listings []entity.Listing, ttl time.Duration) error {
	args := m.Called(ctx, listings, ttl)
	return args.Error(0)
}

func (m *MockFeaturedCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type listingFixture struct {
	listingRepo *MockListingRepository
	requestRepo *MockRequestRepository
	cache       *MockFeaturedCache
	svc         ListingService
}

func newListingFixture() *listingFixture {
	f := &listingFixture{
		listingRepo: new(MockListingRepository),
		requestRepo: new(MockRequestRepository),
		cache:       new(MockFeaturedCache),
	}
	f.svc = NewListingService(f.listingRepo, f.requestRepo, f.cache, 6, 5*time.Minute, logger.NoOp{})
	return f
}

func TestBrowse_BuildsDescriptorFromRawParams(t *testing.T) {
	f := newListingFixture()
	f.listingRepo.On("List", mock.Anything, mock.MatchedBy(func(desc query.Descriptor) bool {
		return desc.Search == "apple" &&
			desc.Location == "town" &&
			desc.PageSize == query.DefaultListingPageSize &&
			desc.Page == 2 &&
			desc.Skip == 12
	})).Return(&repository.ListListingsResult{}, nil)

	_, err := f.svc.Browse(context.Background(), map[string]string{
		"search":   "apple",
		"location": "town",
		"page":     "2",
	})

	require.NoError(t, err)
	f.listingRepo.AssertExpectations(t)
}

func TestFeatured_CacheHitSkipsStore(t *testing.T) {
	f := newListingFixture()
	cached := []entity.Listing{{ID: "listing-1", FoodName: "Apples"}}
	f.cache.On("Get", mock.Anything).Return(cached, nil)

	listings, err := f.svc.Featured(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, listings)
	f.listingRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestFeatured_CacheMissLoadsAndCaches(t *testing.T) {
	f := newListingFixture()
	loaded := []entity.Listing{{ID: "listing-1"}, {ID: "listing-2"}}
	f.cache.On("Get", mock.Anything).Return(nil, repository.ErrNotFound)
	f.listingRepo.On("List", mock.Anything, mock.MatchedBy(func(desc query.Descriptor) bool {
		return desc.Status == string(entity.ListingStatusAvailable) && desc.PageSize == 6 && desc.Page == 1
	})).Return(&repository.ListListingsResult{Listings: loaded}, nil)
	f.cache.On("Set", mock.Anything, loaded, 5*time.Minute).Return(nil)

	listings, err := f.svc.Featured(context.Background())

	require.NoError(t, err)
	assert.Equal(t, loaded, listings)
	f.cache.AssertExpectations(t)
}

func TestFeatured_CacheFaultFallsBackToStore(t *testing.T) {
	f := newListingFixture()
	loaded := []entity.Listing{{ID: "listing-1"}}
	f.cache.On("Get", mock.Anything).Return(nil, errors.New("redis unreachable"))
	f.listingRepo.On("List", mock.Anything, mock.Anything).Return(&repository.ListListingsResult{Listings: loaded}, nil)
	f.cache.On("Set", mock.Anything, loaded, 5*time.Minute).Return(errors.New("redis unreachable"))

	listings, err := f.svc.Featured(context.Background())

	require.NoError(t, err)
	assert.Equal(t, loaded, listings)
}

func TestCreateListing_InvalidDataFailsValidation(t *testing.T) {
	f := newListingFixture()

	_, err := f.svc.Create(context.Background(), CreateListingParams{
		OwnerEmail: "donor@example.com",
		FoodName:   "",
	})

	assert.ErrorIs(t, err, ErrValidation)
	f.listingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateListing_SuccessInvalidatesFeaturedCache(t *testing.T) {
	f := newListingFixture()
	f.listingRepo.On("Create", mock.Anything, mock.Anything).Return("listing-1", nil)
	f.cache.On("Invalidate", mock.Anything).Return(nil)

	listing, err := f.svc.Create(context.Background(), CreateListingParams{
		OwnerEmail: "donor@example.com",
		OwnerName:  "Donor",
		FoodName:   "Apples",
		Location:   "Springfield",
		Quantity:   5,
		ExpiryDate: time.Now().AddDate(0, 0, 3),
	})

	require.NoError(t, err)
	assert.Equal(t, "listing-1", listing.ID)
	assert.Equal(t, entity.ListingStatusAvailable, listing.Status)
	f.cache.AssertCalled(t, "Invalidate", mock.Anything)
}

func TestOwnListings_ScopesToOwner(t *testing.T) {
	f := newListingFixture()
	f.listingRepo.On("List", mock.Anything, mock.MatchedBy(func(desc query.Descriptor) bool {
		return desc.OwnerEmail == "donor@example.com"
	})).Return(&repository.ListListingsResult{}, nil)

	_, err := f.svc.OwnListings(context.Background(), "donor@example.com", map[string]string{})

	require.NoError(t, err)
	f.listingRepo.AssertExpectations(t)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newListingFixture()
	f.listingRepo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	_, err := f.svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestRequestsByRequester(t *testing.T) {
	f := newListingFixture()
	requests := []entity.Request{{ID: "request-1", ListingID: "listing-1"}}
	f.requestRepo.On("ListByRequester", mock.Anything, "taker@example.com").Return(requests, nil)

	got, err := f.svc.RequestsByRequester(context.Background(), "taker@example.com")

	require.NoError(t, err)
	assert.Equal(t, requests, got)
}
