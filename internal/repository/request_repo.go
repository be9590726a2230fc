package repository

import (
	"context"

	"github.com/fatemaDiba/BiteShare-backend/internal/domain/entity"
)

// RequestRepository is append-only: requests are never updated or deleted.
type RequestRepository interface {
	Create(ctx context.Context, request *entity.Request) (string, error)
	ListByRequester(ctx context.Context, requesterEmail string) ([]entity.Request, error)
}
