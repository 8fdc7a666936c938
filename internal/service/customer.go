package service

import (
	"context"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Create(ctx context.Context, c *domain.Customer) error {
	if err := domain.ValidateNationalID(c.NationalID); err != nil {
		return err
	}
	c.Active = true
	return s.customerRepo.Create(ctx, c)
}

func (s *customerService) Get(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

// FindByNationalID validates the document shape before touching the
// repository; a malformed id never reaches the lookup.
func (s *customerService) FindByNationalID(ctx context.Context, nationalID string) (*domain.Customer, error) {
	if err := domain.ValidateNationalID(nationalID); err != nil {
		return nil, err
	}
	return s.customerRepo.GetByNationalID(ctx, nationalID)
}

func (s *customerService) Update(ctx context.Context, c *domain.Customer) error {
	if _, err := s.customerRepo.GetByID(ctx, c.ID); err != nil {
		return err
	}
	return s.customerRepo.Update(ctx, c)
}

func (s *customerService) Deactivate(ctx context.Context, id int32) error {
	c, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	c.Active = false
	return s.customerRepo.Update(ctx, c)
}

func (s *customerService) List(ctx context.Context, activeOnly bool, page, pageSize int32) ([]domain.Customer, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.customerRepo.List(ctx, activeOnly, page, pageSize)
}
