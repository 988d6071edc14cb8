package usecases

import (
	"context"
	"fmt"

	"officetools/internal/application/order/dto"
	"officetools/internal/domain/order"
	vo "officetools/internal/domain/order/valueobjects"
	"officetools/internal/shared/constants"
	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
)

type ListOrdersQuery struct {
	Status   string
	Email    string
	Page     int
	PageSize int
}

type ListOrdersResult struct {
	Orders   []*dto.OrderDTO
	Total    int64
	Page     int
	PageSize int
}

type ListOrdersUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewListOrdersUseCase(orderRepo order.Repository, logger logger.Interface) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo, logger: logger}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, query ListOrdersQuery) (*ListOrdersResult, error) {
	filter := order.ListFilter{
		Email:    query.Email,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 || filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.DefaultPageSize
	}

	if query.Status != "" {
		status := vo.OrderStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status filter", query.Status)
		}
		filter.Status = status
	}

	orders, total, err := uc.orderRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list orders", "error", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return &ListOrdersResult{
		Orders:   dto.ToOrderDTOList(orders),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
