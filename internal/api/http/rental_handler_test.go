package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/service"
)

type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) Create(ctx context.Context, input service.CreateRentalInput) (*domain.Rental, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) Get(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) List(ctx context.Context, filter domain.RentalFilter, page, pageSize int) ([]domain.Rental, int, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Rental), args.Int(1), args.Error(2)
}

func (m *MockRentalService) Update(ctx context.Context, id int64, input service.UpdateRentalInput) (*domain.Rental, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) Return(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) Cancel(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) ChipSequence(ctx context.Context, id int64) ([]domain.ChipSequenceRange, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChipSequenceRange), args.Error(1)
}

func (m *MockRentalService) ChipFile(ctx context.Context, rentalID, chipTypeID int64) (string, []byte, error) {
	args := m.Called(ctx, rentalID, chipTypeID)
	return args.String(0), args.Get(1).([]byte), args.Error(2)
}

func newRentalTestRouter(svc service.RentalService) *mux.Router {
	h := &rentalHandler{rentalSvc: svc}
	r := mux.NewRouter()
	r.HandleFunc("/rentals/{id}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/rentals/{id}/return", h.returnRental).Methods(http.MethodPost)
	r.HandleFunc("/rentals/{id}/chip-file/{chipTypeId}", h.chipFile).Methods(http.MethodGet)
	return r
}

func TestRentalHandler_ChipFile_Download(t *testing.T) {
	svc := new(MockRentalService)
	router := newRentalTestRouter(svc)

	svc.On("ChipFile", mock.Anything, int64(5), int64(2)).
		Return("marathon-valencia-20260301-triton-rent.csv", []byte("Chip,Code\n1,A1\n"), nil).Once()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rentals/5/chip-file/2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="marathon-valencia-20260301-triton-rent.csv"`,
		rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "Chip,Code\n1,A1\n", rec.Body.String())
	svc.AssertExpectations(t)
}

func TestRentalHandler_ChipFile_ChipTypeNotOnRental(t *testing.T) {
	svc := new(MockRentalService)
	router := newRentalTestRouter(svc)

	svc.On("ChipFile", mock.Anything, int64(5), int64(9)).
		Return("", []byte(nil), domain.ErrChipTypeNotInRental).Once()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rentals/5/chip-file/9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CHIP_TYPE_NOT_IN_RENTAL")
}

func TestRentalHandler_Return_NotActive(t *testing.T) {
	svc := new(MockRentalService)
	router := newRentalTestRouter(svc)

	svc.On("Return", mock.Anything, int64(5)).Return(nil, domain.ErrRentalNotActive).Once()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rentals/5/return", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "RENTAL_NOT_ACTIVE")
}

func TestRentalHandler_Get_BadID(t *testing.T) {
	svc := new(MockRentalService)
	router := newRentalTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rentals/0", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
