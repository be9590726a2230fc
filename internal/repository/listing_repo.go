package repository

import (
	"context"
	"time"

	"github.com/fatemaDiba/BiteShare-backend/internal/domain/entity"
	"github.com/fatemaDiba/BiteShare-backend/internal/query"
)

// UpdateListingParams carries the full replaceable field set of a listing.
// Upsert makes the store create the document when the id matches nothing,
// mirroring the explicit-upsert flag on the underlying store call.
type UpdateListingParams struct {
	ListingID   string
	FoodName    string
	Description string
	ImageURL    string
	Location    string
	Quantity    int
	Price       float64
	ExpiryDate  time.Time
	Upsert      bool
}

type ListListingsResult struct {
	Listings []entity.Listing
	PageInfo query.PageInfo
}

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) (string, error)
	GetByID(ctx context.Context, listingID string) (*entity.Listing, error)
	Update(ctx context.Context, params UpdateListingParams) error
	// UpdateStatus applies the status unconditionally (last-writer-wins) with
	// upsert semantics, so re-applying an already-set status is not an error.
	UpdateStatus(ctx context.Context, listingID string, status entity.ListingStatus) error
	// Delete reports how many documents were removed; deleting an absent id
	// is not an error.
	Delete(ctx context.Context, listingID string) (int64, error)
	List(ctx context.Context, desc query.Descriptor) (*ListListingsResult, error)
}
