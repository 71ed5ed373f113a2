package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"timing-rental-backend/internal/domain"
)

func TestUserService_Deactivate(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewUserService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(3)).Return(&domain.User{
		ID:     3,
		Email:  "old@example.com",
		Role:   domain.UserRoleUser,
		Active: true,
	}, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == 3 && !u.Active
	})).Return(nil).Once()

	user, err := svc.Deactivate(ctx, 3)

	assert.NoError(t, err)
	assert.False(t, user.Active)
	repo.AssertExpectations(t)
}

func TestUserService_Deactivate_NotFound(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewUserService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrUserNotFound).Once()

	_, err := svc.Deactivate(ctx, 99)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
