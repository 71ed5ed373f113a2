package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"timing-rental-backend/internal/domain"
)

func activeClient(id int64) *domain.Client {
	return &domain.Client{ID: id, Name: "Marathon Valencia", Active: true}
}

func TestRentalService_Create_WithProducts(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	reg.clients.On("GetByID", ctx, int64(5)).Return(activeClient(5), nil)
	reg.products.On("GetByID", ctx, int64(1)).Return(&domain.Product{
		ID: 1, TotalQuantity: 50, AvailableQuantity: 50,
	}, nil).Once()
	reg.products.On("RentQuantity", ctx, int64(1), 4).Return(true, nil).Once()
	reg.rentals.On("Create", ctx, mock.MatchedBy(func(rt *domain.Rental) bool {
		return rt.Status == domain.RentalStatusActive &&
			len(rt.Products) == 1 &&
			rt.Products[0].ProductID == 1 && rt.Products[0].Quantity == 4
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Rental).ID = 42
	}).Return(nil).Once()
	reg.rentals.On("GetDetail", ctx, int64(42)).Return(&domain.Rental{
		ID: 42, ClientID: 5, Status: domain.RentalStatusActive,
		Products: []domain.RentalProduct{{ProductID: 1, Quantity: 4}},
	}, nil).Once()

	rental, err := svc.Create(ctx, CreateRentalInput{
		ClientID:        5,
		StartDate:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ExpectedEndDate: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		Products:        []RentalProductInput{{ProductID: 1, Quantity: 4}},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), rental.ID)
	assert.Equal(t, domain.RentalStatusActive, rental.Status)
	reg.assertExpectations(t)
}

func TestRentalService_Create_NotEnoughProductQuantity(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	reg.clients.On("GetByID", ctx, int64(5)).Return(activeClient(5), nil)
	reg.products.On("GetByID", ctx, int64(1)).Return(&domain.Product{
		ID: 1, TotalQuantity: 50, AvailableQuantity: 50,
	}, nil).Once()

	_, err := svc.Create(ctx, CreateRentalInput{
		ClientID: 5,
		Products: []RentalProductInput{{ProductID: 1, Quantity: 999}},
	})

	assert.ErrorIs(t, err, domain.ErrNotEnoughProductQuantity)
	reg.products.AssertNotCalled(t, "RentQuantity", mock.Anything, mock.Anything, mock.Anything)
	reg.rentals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRentalService_Create_QuantityMustBePositive(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	reg.clients.On("GetByID", ctx, int64(5)).Return(activeClient(5), nil)

	_, err := svc.Create(ctx, CreateRentalInput{
		ClientID: 5,
		Products: []RentalProductInput{{ProductID: 1, Quantity: 0}},
	})

	assert.ErrorIs(t, err, domain.ErrQuantityMustBePositive)
}

func TestRentalService_Create_ClientNotFound(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	reg.clients.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrClientNotFound)

	_, err := svc.Create(ctx, CreateRentalInput{ClientID: 99})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestRentalService_Create_DeviceNotAvailable(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	reg.clients.On("GetByID", ctx, int64(5)).Return(activeClient(5), nil)
	reg.devices.On("GetByIDs", ctx, []int64{7}).Return([]domain.Device{
		{ID: 7, AvailableForRental: true, OperationalStatus: domain.OperationalStatusRented},
	}, nil).Once()

	_, err := svc.Create(ctx, CreateRentalInput{
		ClientID:  5,
		DeviceIDs: []int64{7},
	})

	assert.ErrorIs(t, err, domain.ErrDeviceNotAvailable)
	reg.devices.AssertNotCalled(t, "SetOperationalStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestRentalService_Create_DeviceNotAvailableForRental(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	reg.clients.On("GetByID", ctx, int64(5)).Return(activeClient(5), nil)
	reg.devices.On("GetByIDs", ctx, []int64{7}).Return([]domain.Device{
		{ID: 7, AvailableForRental: false, OperationalStatus: domain.OperationalStatusAvailable},
	}, nil).Once()

	_, err := svc.Create(ctx, CreateRentalInput{ClientID: 5, DeviceIDs: []int64{7}})
	assert.ErrorIs(t, err, domain.ErrDeviceNotAvailableForRental)
}

func TestRentalService_Create_DeviceMissing(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	reg.clients.On("GetByID", ctx, int64(5)).Return(activeClient(5), nil)
	reg.devices.On("GetByIDs", ctx, []int64{7, 8}).Return([]domain.Device{
		{ID: 7, AvailableForRental: true, OperationalStatus: domain.OperationalStatusAvailable},
	}, nil).Once()

	_, err := svc.Create(ctx, CreateRentalInput{ClientID: 5, DeviceIDs: []int64{7, 8}})
	assert.ErrorIs(t, err, domain.ErrDeviceNotFound)
}

func TestRentalService_Create_ProductUnitNotAvailable(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	reg.clients.On("GetByID", ctx, int64(5)).Return(activeClient(5), nil)
	reg.productUnits.On("GetByIDs", ctx, []int64{3}).Return([]domain.ProductUnit{
		{ID: 3, Status: domain.ProductUnitStatusInRepair},
	}, nil).Once()

	_, err := svc.Create(ctx, CreateRentalInput{ClientID: 5, ProductUnitIDs: []int64{3}})
	assert.ErrorIs(t, err, domain.ErrProductUnitNotAvailable)
	reg.productUnits.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestRentalService_Create_InvalidChipRange(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	reg.clients.On("GetByID", ctx, int64(5)).Return(activeClient(5), nil)
	reg.chipTypes.On("GetByIDs", ctx, []int64{2}).Return([]domain.ChipType{{ID: 2, Name: "TRITON"}}, nil).Once()

	_, err := svc.Create(ctx, CreateRentalInput{
		ClientID:   5,
		ChipRanges: []ChipRangeInput{{ChipTypeID: 2, RangeStart: 500, RangeEnd: 10}},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidChipRange)
	reg.rentals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRentalService_Create_ChipTypeNotFound(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	reg.clients.On("GetByID", ctx, int64(5)).Return(activeClient(5), nil)
	reg.chipTypes.On("GetByIDs", ctx, []int64{2}).Return([]domain.ChipType{}, nil).Once()

	_, err := svc.Create(ctx, CreateRentalInput{
		ClientID:   5,
		ChipRanges: []ChipRangeInput{{ChipTypeID: 2, RangeStart: 1, RangeEnd: 10}},
	})

	assert.ErrorIs(t, err, domain.ErrChipTypeNotFound)
}

func TestRentalService_Return_ReleasesEverything(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	held := &domain.Rental{
		ID:       42,
		ClientID: 5,
		Status:   domain.RentalStatusActive,
		Devices:  []domain.RentalDevice{{DeviceID: 7}},
		Products: []domain.RentalProduct{{ProductID: 1, Quantity: 4}},
		ProductUnits: []domain.RentalProductUnit{
			{ProductUnitID: 3},
		},
		ChipRanges: []domain.RentalChipRange{{ChipTypeID: 2, RangeStart: 1, RangeEnd: 10}},
	}

	reg.rentals.On("GetByID", ctx, int64(42)).Return(held, nil).Once()
	reg.devices.On("SetOperationalStatus", ctx, []int64{7}, domain.OperationalStatusAvailable).Return(nil).Once()
	reg.products.On("ReturnQuantity", ctx, int64(1), 4).Return(true, nil).Once()
	reg.productUnits.On("SetStatus", ctx, []int64{3}, domain.ProductUnitStatusAvailable).Return(nil).Once()
	reg.rentals.On("Update", ctx, mock.MatchedBy(func(rt *domain.Rental) bool {
		return rt.Status == domain.RentalStatusReturned && rt.ActualEndDate != nil
	})).Return(nil).Once()
	reg.rentals.On("GetDetail", ctx, int64(42)).Return(&domain.Rental{
		ID: 42, Status: domain.RentalStatusReturned,
	}, nil).Once()

	rental, err := svc.Return(ctx, 42)

	assert.NoError(t, err)
	assert.Equal(t, domain.RentalStatusReturned, rental.Status)
	reg.assertExpectations(t)
}

func TestRentalService_Cancel_NoActualEndDate(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	held := &domain.Rental{ID: 42, Status: domain.RentalStatusActive}
	reg.rentals.On("GetByID", ctx, int64(42)).Return(held, nil).Once()
	reg.rentals.On("Update", ctx, mock.MatchedBy(func(rt *domain.Rental) bool {
		return rt.Status == domain.RentalStatusCancelled && rt.ActualEndDate == nil
	})).Return(nil).Once()
	reg.rentals.On("GetDetail", ctx, int64(42)).Return(&domain.Rental{
		ID: 42, Status: domain.RentalStatusCancelled,
	}, nil).Once()

	rental, err := svc.Cancel(ctx, 42)

	assert.NoError(t, err)
	assert.Equal(t, domain.RentalStatusCancelled, rental.Status)
}

func TestRentalService_Close_AlreadyClosed(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	reg.rentals.On("GetByID", ctx, int64(42)).Return(&domain.Rental{
		ID: 42, Status: domain.RentalStatusReturned,
	}, nil).Twice()

	_, err := svc.Return(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrRentalNotActive)

	_, err = svc.Cancel(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrRentalNotActive)

	reg.devices.AssertNotCalled(t, "SetOperationalStatus", mock.Anything, mock.Anything, mock.Anything)
	reg.products.AssertNotCalled(t, "ReturnQuantity", mock.Anything, mock.Anything, mock.Anything)
	reg.rentals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRentalService_Update_OnlyWhileActive(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	reg.rentals.On("GetByID", ctx, int64(42)).Return(&domain.Rental{
		ID: 42, Status: domain.RentalStatusCancelled,
	}, nil).Once()

	notes := "late pickup"
	_, err := svc.Update(ctx, 42, UpdateRentalInput{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrRentalNotActive)
	reg.rentals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func tritonChipType() *domain.ChipType {
	return &domain.ChipType{
		ID:          2,
		Name:        "TRITON",
		DisplayName: "Triton",
		SequenceData: []domain.SequenceItem{
			{Chip: 1, Code: "A1"},
			{Chip: 2, Code: "A2"},
			{Chip: 3, Code: "A3"},
		},
	}
}

func TestRentalService_ChipSequence_SlicesInclusive(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	reg.rentals.On("GetDetail", ctx, int64(42)).Return(&domain.Rental{
		ID: 42,
		ChipRanges: []domain.RentalChipRange{
			{ChipTypeID: 2, RangeStart: 1, RangeEnd: 2, ChipType: tritonChipType()},
		},
	}, nil).Once()

	ranges, err := svc.ChipSequence(ctx, 42)

	assert.NoError(t, err)
	assert.Len(t, ranges, 1)
	assert.Equal(t, "TRITON", ranges[0].ChipType)
	assert.Equal(t, []domain.SequenceItem{{Chip: 1, Code: "A1"}, {Chip: 2, Code: "A2"}}, ranges[0].Sequence)
}

func TestRentalService_ChipSequence_EmptyWithoutRanges(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	reg.rentals.On("GetDetail", ctx, int64(42)).Return(&domain.Rental{ID: 42}, nil).Once()

	ranges, err := svc.ChipSequence(ctx, 42)
	assert.NoError(t, err)
	assert.Empty(t, ranges)
	assert.NotNil(t, ranges)
}

func TestRentalService_ChipFile(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	reg.rentals.On("GetDetail", ctx, int64(42)).Return(&domain.Rental{
		ID:        42,
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Client:    &domain.Client{ID: 5, Name: "Marathon  Valencia 2026!"},
		ChipRanges: []domain.RentalChipRange{
			{ChipTypeID: 2, RangeStart: 1, RangeEnd: 2, ChipType: tritonChipType()},
		},
	}, nil).Once()

	filename, data, err := svc.ChipFile(ctx, 42, 2)

	assert.NoError(t, err)
	assert.Equal(t, "marathon-valencia-2026-20260301-triton-rent.csv", filename)
	assert.Equal(t, "Chip,Code\n1,A1\n2,A2\n", string(data))
}

func TestRentalService_ChipFile_ChipTypeNotInRental(t *testing.T) {
	reg := newMockRegistry()
	svc := NewRentalService(reg)
	ctx := context.Background()

	reg.rentals.On("GetDetail", ctx, int64(42)).Return(&domain.Rental{
		ID:     42,
		Client: &domain.Client{ID: 5, Name: "Club"},
	}, nil).Once()

	_, _, err := svc.ChipFile(ctx, 42, 9)
	assert.ErrorIs(t, err, domain.ErrChipTypeNotInRental)
}
