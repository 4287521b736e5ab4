package daycatalog

import (
	"batch-schedule-service/internal/app/models"
	"batch-schedule-service/internal/pkg/constvars"
	"batch-schedule-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockDayCatalogRepository struct {
	mock.Mock
}

func (m *MockDayCatalogRepository) FindAll(ctx context.Context) ([]models.WeekDay, error) {
	args := m.Called(ctx)
	days, _ := args.Get(0).([]models.WeekDay)
	return days, args.Error(1)
}

func (m *MockDayCatalogRepository) UpsertMany(ctx context.Context, days []models.WeekDay) error {
	args := m.Called(ctx, days)
	return args.Error(0)
}

var weekDays = []models.WeekDay{
	{ID: "sun", Label: "Sunday", Order: 7},
	{ID: "mon", Label: "Monday", Order: 1},
	{ID: "tue", Label: "Tuesday", Order: 2},
	{ID: "wed", Label: "Wednesday", Order: 3},
	{ID: "thu", Label: "Thursday", Order: 4},
	{ID: "fri", Label: "Friday", Order: 5},
	{ID: "sat", Label: "Saturday", Order: 6},
}

func TestDayCatalogUsecase(t *testing.T) {
	t.Run("Loads the catalog once", func(t *testing.T) {
		repo := new(MockDayCatalogRepository)
		repo.On("FindAll", mock.Anything).Return(weekDays, nil).Once()
		usecase := NewDayCatalogUsecase(repo, zap.NewNop())

		first, err := usecase.FindAll(context.Background())
		require.NoError(t, err)
		_, err = usecase.Catalog(context.Background())
		require.NoError(t, err)

		require.Len(t, first, 7)
		assert.Equal(t, "mon", first[0].ID, "days should be in canonical order")
		assert.Equal(t, "sun", first[6].ID)
		repo.AssertNumberOfCalls(t, "FindAll", 1)
	})

	t.Run("Incomplete reference data is an internal error", func(t *testing.T) {
		repo := new(MockDayCatalogRepository)
		repo.On("FindAll", mock.Anything).Return(weekDays[:5], nil)
		usecase := NewDayCatalogUsecase(repo, zap.NewNop())

		_, err := usecase.Catalog(context.Background())

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})

	t.Run("Failed load is retried", func(t *testing.T) {
		repo := new(MockDayCatalogRepository)
		repo.On("FindAll", mock.Anything).Return(nil, errors.New("mongo down")).Once()
		repo.On("FindAll", mock.Anything).Return(weekDays, nil).Once()
		usecase := NewDayCatalogUsecase(repo, zap.NewNop())

		_, err := usecase.Catalog(context.Background())
		assert.Error(t, err)

		catalog, err := usecase.Catalog(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 7, catalog.Len())
	})
}

func TestDayCatalogController_FindAll(t *testing.T) {
	repo := new(MockDayCatalogRepository)
	repo.On("FindAll", mock.Anything).Return(weekDays, nil)
	controller := NewDayCatalogController(zap.NewNop(), NewDayCatalogUsecase(repo, zap.NewNop()), 5*time.Second)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/days", nil)
	rr := httptest.NewRecorder()
	controller.FindAll(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			ID    string `json:"id"`
			Order int    `json:"order"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 7)
	assert.Equal(t, 1, body.Data[0].Order)
}
