package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fatemaDiba/BiteShare-backend/internal/domain/entity"
	"github.com/fatemaDiba/BiteShare-backend/internal/platform/logger"
	"github.com/fatemaDiba/BiteShare-backend/internal/query"
	"github.com/fatemaDiba/BiteShare-backend/internal/repository"
)

const monthLayout = "2006-01"

// OrderReport summarizes a donor's orders for one calendar month.
type OrderReport struct {
	OwnerEmail   string
	Month        string
	TotalOrders  int
	TotalRevenue float64
	StatusCounts map[entity.OrderStatus]int
	Orders       []entity.Order
}

type OrderReportService interface {
	ListOrders(ctx context.Context, ownerEmail string, rawParams map[string]string) (*repository.ListOrdersResult, error)
	MonthlyReport(ctx context.Context, ownerEmail, month string) (*OrderReport, error)
}

type orderReportService struct {
	orderRepo repository.OrderRepository
	log       logger.Logger
}

func NewOrderReportService(orderRepo repository.OrderRepository, log logger.Logger) OrderReportService {
	return &orderReportService{
		orderRepo: orderRepo,
		log:       log,
	}
}

func (s *orderReportService) ListOrders(ctx context.Context, ownerEmail string, rawParams map[string]string) (*repository.ListOrdersResult, error) {
	desc := query.Build(rawParams, query.DefaultOrderPageSize)
	desc.OwnerEmail = ownerEmail

	result, err := s.orderRepo.List(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders of %s: %w", ownerEmail, err)
	}
	return result, nil
}

// MonthlyReport aggregates a donor's orders whose order date falls inside the
// given YYYY-MM month.
func (s *orderReportService) MonthlyReport(ctx context.Context, ownerEmail, month string) (*OrderReport, error) {
	s.log.Infof("Generating order report for %s, month %s", ownerEmail, month)

	from, err := time.ParseInLocation(monthLayout, month, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: month must be in YYYY-MM format", ErrValidation)
	}
	to := from.AddDate(0, 1, 0)

	orders, err := s.orderRepo.ListByOwnerBetween(ctx, ownerEmail, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders for report: %w", err)
	}

	report := &OrderReport{
		OwnerEmail:   ownerEmail,
		Month:        month,
		TotalOrders:  len(orders),
		StatusCounts: make(map[entity.OrderStatus]int),
		Orders:       orders,
	}
	for _, order := range orders {
		report.StatusCounts[order.Status]++
		if order.Status != entity.OrderStatusCancelled {
			report.TotalRevenue += order.TotalPrice
		}
	}

	return report, nil
}
