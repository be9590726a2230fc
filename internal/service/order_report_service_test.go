package service

import (
	"context"
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

func TestListOrders_ScopesToOwnerWithOrderDefaults(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewOrderReportService(orderRepo, logger.NoOp{})

	orderRepo.On("List", mock.Anything, mock.MatchedBy(func(desc query.Descriptor) bool {
		return desc.OwnerEmail == "donor@example.com" && desc.PageSize == query.DefaultOrderPageSize
	})).Return(&repository.ListOrdersResult{}, nil)

	_, err := svc.ListOrders(context.Background(), "donor@example.com", map[string]string{})

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestMonthlyReport_RejectsBadMonth(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewOrderReportService(orderRepo, logger.NoOp{})

	_, err := svc.MonthlyReport(context.Background(), "donor@example.com", "August 2026")

	assert.ErrorIs(t, err, ErrValidation)
	orderRepo.AssertNotCalled(t, "ListByOwnerBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMonthlyReport_AggregatesMonth(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewOrderReportService(orderRepo, logger.NoOp{})

	orders := []entity.Order{
		{ID: "order-1", Status: entity.OrderStatusPending, TotalPrice: 100},
		{ID: "order-2", Status: entity.OrderStatusDelivered, TotalPrice: 50},
		{ID: "order-3", Status: entity.OrderStatusDelivered, TotalPrice: 25},
		{ID: "order-4", Status: entity.OrderStatusCancelled, TotalPrice: 999},
	}

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	orderRepo.On("ListByOwnerBetween", mock.Anything, "donor@example.com", from, to).Return(orders, nil)

	report, err := svc.MonthlyReport(context.Background(), "donor@example.com", "2026-08")

	require.NoError(t, err)
	assert.Equal(t, 4, report.TotalOrders)
	// Cancelled orders do not count toward revenue.
	assert.Equal(t, 175.0, report.TotalRevenue)
	assert.Equal(t, 1, report.StatusCounts[entity.OrderStatusPending])
	assert.Equal(t, 2, report.StatusCounts[entity.OrderStatusDelivered])
	assert.Equal(t, 1, report.StatusCounts[entity.OrderStatusCancelled])
}
