package service

import (
	"context"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/repository"
)

type productUnitService struct {
	unitRepo repository.ProductUnitRepository
}

func NewProductUnitService(unitRepo repository.ProductUnitRepository) ProductUnitService {
	return &productUnitService{unitRepo: unitRepo}
}

func (s *productUnitService) Create(ctx context.Context, input ProductUnitInput) (*domain.ProductUnit, error) {
	status := input.Status
	if status == "" {
		status = domain.ProductUnitStatusAvailable
	}
	u := &domain.ProductUnit{
		Type:         input.Type,
		SerialNumber: input.SerialNumber,
		Status:       status,
		Notes:        input.Notes,
	}
	if err := s.unitRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *productUnitService) Get(ctx context.Context, id int64) (*domain.ProductUnit, error) {
	return s.unitRepo.GetByID(ctx, id)
}

func (s *productUnitService) GetBySerial(ctx context.Context, serialNumber string) (*domain.ProductUnit, error) {
	return s.unitRepo.GetBySerial(ctx, serialNumber)
}

func (s *productUnitService) List(ctx context.Context, filter domain.ProductUnitFilter, page, pageSize int) ([]domain.ProductUnit, int, error) {
	return s.unitRepo.List(ctx, filter, page, pageSize)
}

func (s *productUnitService) Update(ctx context.Context, id int64, input ProductUnitInput) (*domain.ProductUnit, error) {
	u, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Type != "" {
		u.Type = input.Type
	}
	if input.SerialNumber != "" {
		u.SerialNumber = input.SerialNumber
	}
	if input.Status != "" {
		u.Status = input.Status
	}
	u.Notes = input.Notes
	if err := s.unitRepo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *productUnitService) SetStatus(ctx context.Context, id int64, status domain.ProductUnitStatus) (*domain.ProductUnit, error) {
	u, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Status = status
	if err := s.unitRepo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *productUnitService) Deactivate(ctx context.Context, id int64) (*domain.ProductUnit, error) {
	return s.setActive(ctx, id, false)
}

func (s *productUnitService) Reactivate(ctx context.Context, id int64) (*domain.ProductUnit, error) {
	return s.setActive(ctx, id, true)
}

func (s *productUnitService) setActive(ctx context.Context, id int64, active bool) (*domain.ProductUnit, error) {
	u, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Active = active
	if err := s.unitRepo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
