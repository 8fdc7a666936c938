package service

import (
	"context"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/repository"
)

type receiptService struct {
	receiptRepo  repository.ReceiptRepository
	customerRepo repository.CustomerRepository
}

func NewReceiptService(receiptRepo repository.ReceiptRepository, customerRepo repository.CustomerRepository) ReceiptService {
	return &receiptService{receiptRepo: receiptRepo, customerRepo: customerRepo}
}

func (s *receiptService) ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Receipt, int32, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.receiptRepo.ListByCustomer(ctx, customerID, page, pageSize)
}
