package repository

import (
	"context"
	"time"

	"github.com/fatemaDiba/BiteShare-backend/internal/domain/entity"
	"github.com/fatemaDiba/BiteShare-backend/internal/query"
)

type ListOrdersResult struct {
	Orders   []entity.Order
	PageInfo query.PageInfo
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) (string, error)
	GetByID(ctx context.Context, orderID string) (*entity.Order, error)
	// UpdateStatus writes the status and updated timestamp unconditionally;
	// returns ErrNotFound when no document matched.
	UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) error
	List(ctx context.Context, desc query.Descriptor) (*ListOrdersResult, error)
	// ListByOwnerBetween returns a donor's orders with order_date in
	// [from, to), newest first. Used by the monthly report.
	ListByOwnerBetween(ctx context.Context, ownerEmail string, from, to time.Time) ([]entity.Order, error)
}
