package entity

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// KnownOrderStatus reports whether s is one of the four order states.
// Transitions between known states are deliberately unconstrained.
func KnownOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is a bulk purchase of a listing's quantity with delivery logistics.
// Orders are retained indefinitely; there is no deletion path.
type Order struct {
	ID              string      `bson:"_id,omitempty"`
	ListingID       string      `bson:"listing_id"`
	OwnerEmail      string      `bson:"owner_email"`
	OwnerName       string      `bson:"owner_name"`
	FoodName        string      `bson:"food_name"`
	CustomerName    string      `bson:"customer_name"`
	CustomerEmail   string      `bson:"customer_email"`
	Quantity        int         `bson:"quantity"`
	TotalPrice      float64     `bson:"total_price"`
	DeliveryDate    time.Time   `bson:"delivery_date"`
	DeliveryAddress string      `bson:"delivery_address"`
	Notes           string      `bson:"notes,omitempty"`
	Status          OrderStatus `bson:"status"`
	OrderDate       time.Time   `bson:"order_date"`
	UpdatedAt       time.Time   `bson:"updated_at"`
}

func NewOrder(listingID, ownerEmail, ownerName, foodName, customerName, customerEmail, deliveryAddress, notes string, quantity int, totalPrice float64, deliveryDate time.Time) (*Order, error) {
	if listingID == "" {
		return nil, errors.New("listing ID cannot be empty")
	}
	if customerEmail == "" {
		return nil, errors.New("customer email cannot be empty")
	}
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	if totalPrice < 0 {
		return nil, errors.New("total price cannot be negative")
	}
	now := time.Now().UTC()
	return &Order{
		ListingID:       listingID,
		OwnerEmail:      ownerEmail,
		OwnerName:       ownerName,
		FoodName:        foodName,
		CustomerName:    customerName,
		CustomerEmail:   customerEmail,
		Quantity:        quantity,
		TotalPrice:      totalPrice,
		DeliveryDate:    deliveryDate,
		DeliveryAddress: deliveryAddress,
		Notes:           notes,
		Status:          OrderStatusPending,
		OrderDate:       now,
		UpdatedAt:       now,
	}, nil
}
