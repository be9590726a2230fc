package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/fatemaDiba/BiteShare-backend/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	to      []string
	subject string
	html    string
	text    string
	err     error
}

func (f *fakeSender) Send(ctx context.Context, to []string, subject, bodyHTML, bodyText string) error {
	f.to = to
	f.subject = subject
	f.html = bodyHTML
	f.text = bodyText
	return f.err
}

func TestNotifyFoodRequested_RendersBothBodies(t *testing.T) {
	sender := &fakeSender{}
	d := NewEmailDispatcher(sender, logger.NoOp{})

	res := d.NotifyFoodRequested(context.Background(), FoodRequestedDetails{
		OwnerEmail:     "donor@example.com",
		OwnerName:      "Donor",
		FoodName:       "Apples",
		RequesterEmail: "taker@example.com",
		Note:           "after 6pm please",
		RequestedAt:    "2026-08-23 10:00 UTC",
	})

	require.True(t, res.Success)
	assert.NotEmpty(t, res.MessageID)
	assert.Equal(t, []string{"donor@example.com"}, sender.to)
	assert.Contains(t, sender.subject, "Apples")
	assert.Contains(t, sender.html, "taker@example.com")
	assert.Contains(t, sender.html, "after 6pm please")
	assert.Contains(t, sender.text, "after 6pm please")
}

func TestNotifyFoodRequested_OmitsEmptyNote(t *testing.T) {
	sender := &fakeSender{}
	d := NewEmailDispatcher(sender, logger.NoOp{})

	res := d.NotifyFoodRequested(context.Background(), FoodRequestedDetails{
		OwnerEmail:     "donor@example.com",
		OwnerName:      "Donor",
		FoodName:       "Apples",
		RequesterEmail: "taker@example.com",
		RequestedAt:    "2026-08-23 10:00 UTC",
	})

	require.True(t, res.Success)
	assert.NotContains(t, sender.html, "Note from the requester")
	assert.NotContains(t, sender.text, "Note from the requester")
}

func TestNotifyFoodRequested_SendFailureContained(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp: connection refused")}
	d := NewEmailDispatcher(sender, logger.NoOp{})

	res := d.NotifyFoodRequested(context.Background(), FoodRequestedDetails{
		OwnerEmail:     "donor@example.com",
		FoodName:       "Apples",
		RequesterEmail: "taker@example.com",
	})

	assert.False(t, res.Success)
	assert.NotEmpty(t, res.MessageID)
	assert.Error(t, res.Err)
}

func TestNotifyBulkOrder_SubstitutesFields(t *testing.T) {
	sender := &fakeSender{}
	d := NewEmailDispatcher(sender, logger.NoOp{})

	res := d.NotifyBulkOrder(context.Background(), BulkOrderDetails{
		OwnerEmail:      "donor@example.com",
		OwnerName:       "Donor",
		FoodName:        "Rice 25kg",
		CustomerName:    "Buyer",
		CustomerEmail:   "buyer@example.com",
		Quantity:        10,
		TotalPrice:      "150.00",
		DeliveryDate:    "2026-09-01",
		DeliveryAddress: "12 Main St",
	})

	require.True(t, res.Success)
	assert.Contains(t, sender.subject, "Rice 25kg")
	assert.Contains(t, sender.html, "12 Main St")
	assert.Contains(t, sender.html, "150.00")
	assert.Contains(t, sender.text, "Quantity: 10")
	assert.NotContains(t, sender.html, "Order notes")
}

func TestNotifyBulkOrder_IncludesNotesWhenPresent(t *testing.T) {
	sender := &fakeSender{}
	d := NewEmailDispatcher(sender, logger.NoOp{})

	res := d.NotifyBulkOrder(context.Background(), BulkOrderDetails{
		OwnerEmail:      "donor@example.com",
		FoodName:        "Rice 25kg",
		CustomerEmail:   "buyer@example.com",
		Quantity:        10,
		TotalPrice:      "150.00",
		DeliveryDate:    "2026-09-01",
		DeliveryAddress: "12 Main St",
		Notes:           "leave at the gate",
	})

	require.True(t, res.Success)
	assert.Contains(t, sender.html, "leave at the gate")
	assert.Contains(t, sender.text, "leave at the gate")
}
