package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatemaDiba/BiteShare-backend/internal/adapter/nats"
	"github.com/fatemaDiba/BiteShare-backend/internal/domain/entity"
	"github.com/fatemaDiba/BiteShare-backend/internal/notifier"
	"github.com/fatemaDiba/BiteShare-backend/internal/platform/logger"
	"github.com/fatemaDiba/BiteShare-backend/internal/repository"
)

const (
	natsSubjectListingRequested   = "listing.requested"
	natsSubjectOrderPlaced        = "order.placed"
	natsSubjectOrderStatusUpdated = "order.status.updated"
)

type PlaceOrderParams struct {
	ListingID       string
	OwnerEmail      string
	OwnerName       string
	FoodName        string
	CustomerName    string
	CustomerEmail   string
	Quantity        int
	TotalPrice      float64
	DeliveryDate    time.Time
	DeliveryAddress string
	Notes           string
}

type UpdateListingParams struct {
	FoodName    string
	Description string
	ImageURL    string
	Location    string
	Quantity    int
	Price       float64
	ExpiryDate  time.Time
}

// FulfillmentService owns every state transition of the marketplace: a
// listing moving from available to requested, bulk orders being placed and
// advanced, listings being rewritten or removed. Each mutation commits first
// and then notifies; the notification never blocks or fails the caller.
type FulfillmentService interface {
	RequestFood(ctx context.Context, listingID, requesterEmail, note string) (string, error)
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (string, error)
	UpdateListing(ctx context.Context, listingID string, fields UpdateListingParams) error
	UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) error
	DeleteListing(ctx context.Context, listingID string) (bool, error)
}

type fulfillmentService struct {
	listingRepo  repository.ListingRepository
	requestRepo  repository.RequestRepository
	orderRepo    repository.OrderRepository
	dispatcher   notifier.Dispatcher
	msgPublisher nats.MessagePublisher
	log          logger.Logger
}

func NewFulfillmentService(
	listingRepo repository.ListingRepository,
	requestRepo repository.RequestRepository,
	orderRepo repository.OrderRepository,
	dispatcher notifier.Dispatcher,
	msgPublisher nats.MessagePublisher,
	log logger.Logger,
) FulfillmentService {
	return &fulfillmentService{
		listingRepo:  listingRepo,
		requestRepo:  requestRepo,
		orderRepo:    orderRepo,
		dispatcher:   dispatcher,
		msgPublisher: msgPublisher,
		log:          log,
	}
}

type listingRequestedEvent struct {
	RequestID      string    `json:"request_id"`
	ListingID      string    `json:"listing_id"`
	RequesterEmail string    `json:"requester_email"`
	RequestedAt    time.Time `json:"requested_at"`
}

type orderPlacedEvent struct {
	OrderID       string  `json:"order_id"`
	ListingID     string  `json:"listing_id"`
	CustomerEmail string  `json:"customer_email"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"total_price"`
}

type orderStatusUpdatedEvent struct {
	OrderID string             `json:"order_id"`
	Status  entity.OrderStatus `json:"status"`
}

// RequestFood validates, appends a request record, flips the listing to
// requested, then notifies the donor. The request insert and the status flip
// are two independent writes with no compensating rollback; a flip failure
// fails the call but leaves the request behind. The flip itself is an upsert
// with last-writer-wins semantics, so re-requesting an already-requested
// listing succeeds and concurrent requests both go through.
func (s *fulfillmentService) RequestFood(ctx context.Context, listingID, requesterEmail, note string) (string, error) {
	s.log.Infof("Requesting listing %s for %s", listingID, requesterEmail)

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrListingNotFound
		}
		return "", fmt.Errorf("failed to retrieve listing %s: %w", listingID, err)
	}

	if requesterEmail == listing.OwnerEmail {
		s.log.Warnf("Owner %s attempted to request their own listing %s", requesterEmail, listingID)
		return "", fmt.Errorf("%w: cannot request own food", ErrInvalidOperation)
	}

	if listing.IsExpired(time.Now()) {
		return "", fmt.Errorf("%w: listing %s expired on %s", ErrListingExpired, listingID, listing.ExpiryDate.Format("2006-01-02"))
	}

	request, err := entity.NewRequest(listingID, requesterEmail, note)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	requestID, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return "", fmt.Errorf("failed to save request: %w", err)
	}

	if err := s.listingRepo.UpdateStatus(ctx, listingID, entity.ListingStatusRequested); err != nil {
		return "", fmt.Errorf("failed to mark listing %s as requested: %w", listingID, err)
	}

	s.publishEvent(ctx, natsSubjectListingRequested, listingRequestedEvent{
		RequestID:      requestID,
		ListingID:      listingID,
		RequesterEmail: requesterEmail,
		RequestedAt:    request.RequestedAt,
	})

	details := notifier.FoodRequestedDetails{
		OwnerEmail:     listing.OwnerEmail,
		OwnerName:      listing.OwnerName,
		FoodName:       listing.FoodName,
		RequesterEmail: requesterEmail,
		Note:           note,
		RequestedAt:    request.RequestedAt.Format("2006-01-02 15:04 MST"),
	}
	s.dispatch(func(ctx context.Context) notifier.Result {
		return s.dispatcher.NotifyFoodRequested(ctx, details)
	})

	s.log.Infof("Listing %s requested by %s, request %s", listingID, requesterEmail, requestID)
	return requestID, nil
}

func (s *fulfillmentService) PlaceOrder(ctx context.Context, params PlaceOrderParams) (string, error) {
	s.log.Infof("Placing bulk order for listing %s by %s", params.ListingID, params.CustomerEmail)

	if params.Quantity <= 0 {
		return "", fmt.Errorf("%w: quantity is required", ErrValidation)
	}
	if params.DeliveryDate.IsZero() {
		return "", fmt.Errorf("%w: delivery date is required", ErrValidation)
	}
	if params.DeliveryAddress == "" {
		return "", fmt.Errorf("%w: delivery address is required", ErrValidation)
	}

	if params.OwnerEmail == params.CustomerEmail {
		s.log.Warnf("Owner %s attempted to order their own listing %s", params.CustomerEmail, params.ListingID)
		return "", fmt.Errorf("%w: cannot order own food", ErrInvalidOperation)
	}

	order, err := entity.NewOrder(
		params.ListingID,
		params.OwnerEmail,
		params.OwnerName,
		params.FoodName,
		params.CustomerName,
		params.CustomerEmail,
		params.DeliveryAddress,
		params.Notes,
		params.Quantity,
		params.TotalPrice,
		params.DeliveryDate,
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	orderID, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return "", fmt.Errorf("failed to save order: %w", err)
	}

	s.publishEvent(ctx, natsSubjectOrderPlaced, orderPlacedEvent{
		OrderID:       orderID,
		ListingID:     params.ListingID,
		CustomerEmail: params.CustomerEmail,
		Quantity:      params.Quantity,
		TotalPrice:    params.TotalPrice,
	})

	details := notifier.BulkOrderDetails{
		OwnerEmail:      params.OwnerEmail,
		OwnerName:       params.OwnerName,
		FoodName:        params.FoodName,
		CustomerName:    params.CustomerName,
		CustomerEmail:   params.CustomerEmail,
		Quantity:        params.Quantity,
		TotalPrice:      fmt.Sprintf("%.2f", params.TotalPrice),
		DeliveryDate:    params.DeliveryDate.Format("2006-01-02"),
		DeliveryAddress: params.DeliveryAddress,
		Notes:           params.Notes,
	}
	s.dispatch(func(ctx context.Context) notifier.Result {
		return s.dispatcher.NotifyBulkOrder(ctx, details)
	})

	s.log.Infof("Order %s placed for listing %s by %s", orderID, params.ListingID, params.CustomerEmail)
	return orderID, nil
}

// UpdateListing rejects a write whose fields are semantically identical to
// the stored record (expiry compared at day granularity) with ErrNoChange.
// Otherwise it persists with upsert semantics.
func (s *fulfillmentService) UpdateListing(ctx context.Context, listingID string, fields UpdateListingParams) error {
	s.log.Infof("Updating listing %s", listingID)

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrListingNotFound
		}
		return fmt.Errorf("failed to retrieve listing %s: %w", listingID, err)
	}

	if unchanged(listing, fields) {
		return fmt.Errorf("%w: listing %s", ErrNoChange, listingID)
	}

	err = s.listingRepo.Update(ctx, repository.UpdateListingParams{
		ListingID:   listingID,
		FoodName:    fields.FoodName,
		Description: fields.Description,
		ImageURL:    fields.ImageURL,
		Location:    fields.Location,
		Quantity:    fields.Quantity,
		Price:       fields.Price,
		ExpiryDate:  fields.ExpiryDate,
		Upsert:      true,
	})
	if err != nil {
		return fmt.Errorf("failed to update listing %s: %w", listingID, err)
	}

	s.log.Infof("Listing %s updated", listingID)
	return nil
}

func unchanged(listing *entity.Listing, fields UpdateListingParams) bool {
	return listing.FoodName == fields.FoodName &&
		listing.Description == fields.Description &&
		listing.ImageURL == fields.ImageURL &&
		listing.Location == fields.Location &&
		listing.Quantity == fields.Quantity &&
		listing.Price == fields.Price &&
		entity.SameDay(listing.ExpiryDate, fields.ExpiryDate)
}

func (s *fulfillmentService) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) error {
	s.log.Infof("Updating status of order %s to %s", orderID, status)

	if !entity.KnownOrderStatus(status) {
		return fmt.Errorf("%w: unknown order status %q", ErrValidation, status)
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to update status of order %s: %w", orderID, err)
	}

	s.publishEvent(ctx, natsSubjectOrderStatusUpdated, orderStatusUpdatedEvent{
		OrderID: orderID,
		Status:  status,
	})

	s.log.Infof("Order %s status updated to %s", orderID, status)
	return nil
}

// DeleteListing is idempotent: deleting an absent id is not an error here.
// The returned flag lets the routing layer surface zero-effect as 404.
func (s *fulfillmentService) DeleteListing(ctx context.Context, listingID string) (bool, error) {
	s.log.Infof("Deleting listing %s", listingID)

	deleted, err := s.listingRepo.Delete(ctx, listingID)
	if err != nil {
		return false, fmt.Errorf("failed to delete listing %s: %w", listingID, err)
	}
	return deleted > 0, nil
}

func (s *fulfillmentService) publishEvent(ctx context.Context, subject string, event interface{}) {
	if err := s.msgPublisher.Publish(ctx, subject, event); err != nil {
		s.log.Warnf("Failed to publish %s event: %v", subject, err)
	}
}

// dispatch launches a notification without the caller waiting on it. The
// goroutine gets a fresh context: a launched dispatch runs to completion or
// failure regardless of the triggering call's lifetime, and its outcome is
// only ever logged.
func (s *fulfillmentService) dispatch(send func(ctx context.Context) notifier.Result) {
	go func() {
		if res := send(context.Background()); !res.Success {
			s.log.Warnf("Notification dispatch %s failed: %v", res.MessageID, res.Err)
		}
	}()
}
