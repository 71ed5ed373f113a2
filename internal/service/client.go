package service

import (
	"context"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/repository"
)

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) Create(ctx context.Context, input ClientInput) (*domain.Client, error) {
	c := &domain.Client{
		Name:             input.Name,
		CodeSportmaniacs: input.CodeSportmaniacs,
		Email:            input.Email,
		Phone:            input.Phone,
		Notes:            input.Notes,
	}
	if err := s.clientRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) GetBySportmaniacsCode(ctx context.Context, code int64) (*domain.Client, error) {
	return s.clientRepo.GetByCodeSportmaniacs(ctx, code)
}

// List accepts "true", "false" or "all"; anything else defaults to active
// clients only.
func (s *clientService) List(ctx context.Context, active string) ([]domain.Client, error) {
	switch active {
	case "all":
		return s.clientRepo.List(ctx, nil)
	case "false":
		f := false
		return s.clientRepo.List(ctx, &f)
	default:
		t := true
		return s.clientRepo.List(ctx, &t)
	}
}

func (s *clientService) Update(ctx context.Context, id int64, input ClientInput) (*domain.Client, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = input.Name
	c.CodeSportmaniacs = input.CodeSportmaniacs
	c.Email = input.Email
	c.Phone = input.Phone
	c.Notes = input.Notes
	if err := s.clientRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clientService) Deactivate(ctx context.Context, id int64) (*domain.Client, error) {
	return s.setActive(ctx, id, false)
}

func (s *clientService) Reactivate(ctx context.Context, id int64) (*domain.Client, error) {
	return s.setActive(ctx, id, true)
}

func (s *clientService) setActive(ctx context.Context, id int64, active bool) (*domain.Client, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Active = active
	if err := s.clientRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
