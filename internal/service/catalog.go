package service

import (
	"context"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/repository"
)

type catalogService struct {
	equipmentRepo repository.EquipmentRepository
	planRepo      repository.PlanRepository
}

func NewCatalogService(equipmentRepo repository.EquipmentRepository, planRepo repository.PlanRepository) CatalogService {
	return &catalogService{equipmentRepo: equipmentRepo, planRepo: planRepo}
}

func (s *catalogService) AddEquipment(ctx context.Context, item *domain.EquipmentItem) error {
	if item.StockQuantity < 0 || item.UnitPricePerDayCents < 0 {
		return domain.ErrInvalidQuantity
	}
	return s.equipmentRepo.Create(ctx, item)
}

func (s *catalogService) UpdateEquipment(ctx context.Context, item *domain.EquipmentItem) error {
	if _, err := s.equipmentRepo.GetByID(ctx, item.ID); err != nil {
		return err
	}
	return s.equipmentRepo.Update(ctx, item)
}

func (s *catalogService) GetEquipment(ctx context.Context, id int32) (*domain.EquipmentItem, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

func (s *catalogService) ListEquipment(ctx context.Context, activeOnly bool) ([]domain.EquipmentItem, error) {
	return s.equipmentRepo.List(ctx, activeOnly)
}

func (s *catalogService) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	return s.planRepo.ListPlans(ctx, true)
}

func (s *catalogService) GetPlan(ctx context.Context, id int32) (*domain.Plan, error) {
	return s.planRepo.GetPlan(ctx, id)
}

func (s *catalogService) ListInstructors(ctx context.Context, tier domain.PlanTier) ([]domain.Instructor, error) {
	return s.planRepo.ListInstructors(ctx, tier)
}

func (s *catalogService) ListSlots(ctx context.Context, instructorID int32) ([]domain.ScheduleSlot, error) {
	if _, err := s.planRepo.GetInstructor(ctx, instructorID); err != nil {
		return nil, err
	}
	return s.planRepo.ListSlots(ctx, instructorID)
}
