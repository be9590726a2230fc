package entity

import (
	"errors"
	"time"
)

type ListingStatus string

const (
	ListingStatusAvailable ListingStatus = "available"
	ListingStatusRequested ListingStatus = "requested"
)

// Listing is a donor-posted surplus food item. Its status only ever moves
// from available to requested; it never flips back automatically.
type Listing struct {
	ID          string        `bson:"_id,omitempty"`
	OwnerEmail  string        `bson:"owner_email"`
	OwnerName   string        `bson:"owner_name"`
	FoodName    string        `bson:"food_name"`
	Description string        `bson:"description,omitempty"`
	ImageURL    string        `bson:"image_url,omitempty"`
	Quantity    int           `bson:"quantity"`
	Price       float64       `bson:"price,omitempty"`
	Location    string        `bson:"location"`
	ExpiryDate  time.Time     `bson:"expiry_date"`
	Status      ListingStatus `bson:"status"`
	CreatedAt   time.Time     `bson:"created_at"`
}

func NewListing(ownerEmail, ownerName, foodName, description, imageURL, location string, quantity int, price float64, expiryDate time.Time) (*Listing, error) {
	if ownerEmail == "" {
		return nil, errors.New("owner email cannot be empty")
	}
	if foodName == "" {
		return nil, errors.New("food name cannot be empty")
	}
	if quantity < 0 {
		return nil, errors.New("quantity cannot be negative")
	}
	if price < 0 {
		return nil, errors.New("price cannot be negative")
	}
	return &Listing{
		OwnerEmail:  ownerEmail,
		OwnerName:   ownerName,
		FoodName:    foodName,
		Description: description,
		ImageURL:    imageURL,
		Quantity:    quantity,
		Price:       price,
		Location:    location,
		ExpiryDate:  expiryDate,
		Status:      ListingStatusAvailable,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// IsExpired compares at day granularity: a listing expiring today is still
// requestable, one whose expiry day is strictly before today is not.
func (l *Listing) IsExpired(now time.Time) bool {
	return DayOf(l.ExpiryDate).Before(DayOf(now))
}

// DayOf strips the time-of-day component in UTC.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two instants fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

// Request is a recipient's claim against a single listing. It is append-only
// and immutable once written.
type Request struct {
	ID             string    `bson:"_id,omitempty"`
	ListingID      string    `bson:"listing_id"`
	RequesterEmail string    `bson:"requester_email"`
	Note           string    `bson:"note,omitempty"`
	RequestedAt    time.Time `bson:"requested_at"`
}

func NewRequest(listingID, requesterEmail, note string) (*Request, error) {
	if listingID == "" {
		return nil, errors.New("listing ID cannot be empty")
	}
	if requesterEmail == "" {
		return nil, errors.New("requester email cannot be empty")
	}
	return &Request{
		ListingID:      listingID,
		RequesterEmail: requesterEmail,
		Note:           note,
		RequestedAt:    time.Now().UTC(),
	}, nil
}
