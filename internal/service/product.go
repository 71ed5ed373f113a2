package service

import (
	"context"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/repository"
)

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if input.InitialQuantity < 0 {
		return nil, domain.ErrQuantityMustBePositive
	}
	p := &domain.Product{
		Name:              input.Name,
		Type:              input.Type,
		Description:       input.Description,
		Notes:             input.Notes,
		TotalQuantity:     input.InitialQuantity,
		AvailableQuantity: input.InitialQuantity,
	}
	if err := s.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) List(ctx context.Context, filter domain.ProductFilter, page, pageSize int) ([]domain.Product, int, error) {
	return s.productRepo.List(ctx, filter, page, pageSize)
}

// Update patches descriptive fields without re-validating the bucket
// invariant. Only a change to the total quantity itself is checked: the new
// total must cover the counts currently rented, in repair and available is
// adjusted by the difference.
func (s *productService) Update(ctx context.Context, id int64, input UpdateProductInput) (*domain.Product, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Type != nil {
		p.Type = *input.Type
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Notes != nil {
		p.Notes = *input.Notes
	}
	if input.TotalQuantity != nil && *input.TotalQuantity != p.TotalQuantity {
		used := p.RentedQuantity + p.InRepairQuantity
		if *input.TotalQuantity < used {
			return nil, domain.ErrTotalQuantityBelowUsed
		}
		p.AvailableQuantity = *input.TotalQuantity - used
		p.TotalQuantity = *input.TotalQuantity
	}
	if err := s.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) Deactivate(ctx context.Context, id int64) (*domain.Product, error) {
	return s.setActive(ctx, id, false)
}

func (s *productService) Reactivate(ctx context.Context, id int64) (*domain.Product, error) {
	return s.setActive(ctx, id, true)
}

func (s *productService) setActive(ctx context.Context, id int64, active bool) (*domain.Product, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Active = active
	if err := s.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) AddStock(ctx context.Context, id int64, qty int) (*domain.Product, error) {
	return s.transfer(ctx, id, qty, s.productRepo.AddStock, nil)
}

func (s *productService) Retire(ctx context.Context, id int64, qty int) (*domain.Product, error) {
	return s.transfer(ctx, id, qty, s.productRepo.Retire, domain.ErrNotEnoughAvailableQuantity)
}

func (s *productService) SendToRepair(ctx context.Context, id int64, qty int) (*domain.Product, error) {
	return s.transfer(ctx, id, qty, s.productRepo.SendToRepair, domain.ErrNotEnoughAvailableQuantity)
}

func (s *productService) MarkRepaired(ctx context.Context, id int64, qty int) (*domain.Product, error) {
	return s.transfer(ctx, id, qty, s.productRepo.MarkRepaired, domain.ErrNotEnoughInRepairQuantity)
}

// transfer runs one conditional bucket movement and disambiguates a failed
// guard: a missing product surfaces as not-found, anything else as the
// operation's insufficient-quantity error.
func (s *productService) transfer(ctx context.Context, id int64, qty int,
	op func(context.Context, int64, int) (bool, error), insufficient error) (*domain.Product, error) {
	if qty <= 0 {
		return nil, domain.ErrQuantityMustBePositive
	}
	ok, err := op(ctx, id, qty)
	if err != nil {
		return nil, err
	}
	if !ok {
		if _, err := s.productRepo.GetByID(ctx, id); err != nil {
			return nil, err
		}
		if insufficient == nil {
			insufficient = domain.ErrNotEnoughAvailableQuantity
		}
		return nil, insufficient
	}
	return s.productRepo.GetByID(ctx, id)
}
