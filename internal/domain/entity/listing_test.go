package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListing_IsExpired_DayGranularity(t *testing.T) {
	now := time.Date(2026, 8, 23, 0, 1, 0, 0, time.UTC)

	yesterdayLate := Listing{ExpiryDate: time.Date(2026, 8, 22, 23, 59, 0, 0, time.UTC)}
	assert.True(t, yesterdayLate.IsExpired(now))

	todayEarly := Listing{ExpiryDate: time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)}
	assert.False(t, todayEarly.IsExpired(now))

	tomorrow := Listing{ExpiryDate: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)}
	assert.False(t, tomorrow.IsExpired(now))
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 8, 23, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 23, 21, 30, 0, 0, time.UTC)
	nextDay := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, nextDay))
}

func TestNewListing_Validation(t *testing.T) {
	expiry := time.Now().AddDate(0, 0, 3)

	listing, err := NewListing("donor@example.com", "Donor", "Apples", "", "", "Springfield", 5, 0, expiry)
	require.NoError(t, err)
	assert.Equal(t, ListingStatusAvailable, listing.Status)
	assert.False(t, listing.CreatedAt.IsZero())

	_, err = NewListing("", "Donor", "Apples", "", "", "Springfield", 5, 0, expiry)
	assert.Error(t, err)

	_, err = NewListing("donor@example.com", "Donor", "", "", "", "Springfield", 5, 0, expiry)
	assert.Error(t, err)

	_, err = NewListing("donor@example.com", "Donor", "Apples", "", "", "Springfield", -1, 0, expiry)
	assert.Error(t, err)
}

func TestNewRequest_Validation(t *testing.T) {
	request, err := NewRequest("listing-1", "taker@example.com", "after 6pm please")
	require.NoError(t, err)
	assert.Equal(t, "listing-1", request.ListingID)
	assert.False(t, request.RequestedAt.IsZero())

	_, err = NewRequest("", "taker@example.com", "")
	assert.Error(t, err)

	_, err = NewRequest("listing-1", "", "")
	assert.Error(t, err)
}
