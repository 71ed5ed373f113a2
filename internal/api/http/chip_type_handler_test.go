package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/service"
)

type MockChipTypeService struct {
	mock.Mock
}

func (m *MockChipTypeService) Create(ctx context.Context, input service.ChipTypeInput) (*domain.ChipType, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChipType), args.Error(1)
}

func (m *MockChipTypeService) Get(ctx context.Context, id int64) (*domain.ChipType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChipType), args.Error(1)
}

func (m *MockChipTypeService) List(ctx context.Context) ([]domain.ChipType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChipType), args.Error(1)
}

func (m *MockChipTypeService) Update(ctx context.Context, id int64, input service.ChipTypeInput) (*domain.ChipType, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChipType), args.Error(1)
}

func (m *MockChipTypeService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockChipTypeService) UploadSequence(ctx context.Context, id int64, file io.Reader) (*domain.ChipType, int, error) {
	args := m.Called(ctx, id, file)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).(*domain.ChipType), args.Int(1), args.Error(2)
}

func (m *MockChipTypeService) GetSequence(ctx context.Context, id int64) ([]domain.SequenceItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SequenceItem), args.Error(1)
}

func (m *MockChipTypeService) GetSequenceRange(ctx context.Context, id int64, start, end int) ([]domain.SequenceItem, error) {
	args := m.Called(ctx, id, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SequenceItem), args.Error(1)
}

func newChipTypeTestRouter(svc service.ChipTypeService) *mux.Router {
	h := &chipTypeHandler{chipTypeSvc: svc}
	r := mux.NewRouter()
	r.HandleFunc("/chip-types/{id}/sequence", h.sequence).Methods(http.MethodGet)
	return r
}

func TestChipTypeHandler_Sequence_FullWithoutRange(t *testing.T) {
	svc := new(MockChipTypeService)
	router := newChipTypeTestRouter(svc)

	svc.On("GetSequence", mock.Anything, int64(2)).Return([]domain.SequenceItem{
		{Chip: 1, Code: "A1"}, {Chip: 2, Code: "A2"}, {Chip: 3, Code: "A3"},
	}, nil).Once()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chip-types/2/sequence", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "A3")
	svc.AssertNotCalled(t, "GetSequenceRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	svc.AssertExpectations(t)
}

func TestChipTypeHandler_Sequence_RangeWhenBothParamsGiven(t *testing.T) {
	svc := new(MockChipTypeService)
	router := newChipTypeTestRouter(svc)

	svc.On("GetSequenceRange", mock.Anything, int64(2), 1, 2).Return([]domain.SequenceItem{
		{Chip: 1, Code: "A1"}, {Chip: 2, Code: "A2"},
	}, nil).Once()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chip-types/2/sequence?start=1&end=2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "A3")
	svc.AssertNotCalled(t, "GetSequence", mock.Anything, mock.Anything)
	svc.AssertExpectations(t)
}
