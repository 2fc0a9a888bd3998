package service

import (
	"context"
	"strings"
	"testing"

	"billboard-locations/internal/jsexport"
	"billboard-locations/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLocationRepository is a mock implementation of the LocationRepository interface
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) ListLocations(ctx context.Context, filter models.Filter) ([]models.Location, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Location), args.Error(1)
}

func (m *MockLocationRepository) FindNearestLocation(ctx context.Context, lat float64, lon float64) (*models.Location, error) {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(*models.Location), args.Error(1)
}

var paragon = models.Location{
	ID:            1,
	Name:          "สยามพารากอน",
	Province:      "กรุงเทพมหานคร",
	Region:        models.RegionCentral,
	Latitude:      13.7462,
	Longitude:     100.5347,
	Size:          models.SizeXLarge,
	Dimensions:    "12x8",
	Address:       "สยามพารากอน",
	Description:   "จอ LED 12x8 ตั้งอยู่สยามพารากอน จังหวัดกรุงเทพมหานคร",
	Traffic:       models.TrafficVeryHigh,
	ViewersPerDay: 3500000,
}

func TestLocationService_List(t *testing.T) {
	tests := []struct {
		name          string
		filter        models.Filter
		callsRepo     bool
		mockLocations []models.Location
		mockError     error
		expected      []models.Location
		expectedErr   error
		expectError   bool
	}{
		{
			name:          "no filter",
			callsRepo:     true,
			mockLocations: []models.Location{paragon},
			expected:      []models.Location{paragon},
		},
		{
			name:          "valid filter",
			filter:        models.Filter{Region: models.RegionCentral, Size: models.SizeXLarge, Traffic: models.TrafficVeryHigh},
			callsRepo:     true,
			mockLocations: []models.Location{paragon},
			expected:      []models.Location{paragon},
		},
		{
			name:        "unknown region",
			filter:      models.Filter{Region: "bangkok"},
			expectError: true,
			expectedErr: ErrInvalidFilter,
		},
		{
			name:        "unknown size",
			filter:      models.Filter{Size: "huge"},
			expectError: true,
			expectedErr: ErrInvalidFilter,
		},
		{
			name:        "unknown traffic",
			filter:      models.Filter{Traffic: "extreme"},
			expectError: true,
			expectedErr: ErrInvalidFilter,
		},
		{
			name:          "repository error",
			callsRepo:     true,
			mockLocations: []models.Location(nil),
			mockError:     assert.AnError,
			expectError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockRepo := new(MockLocationRepository)
			service := NewLocationService(mockRepo, jsexport.Options{})

			if tt.callsRepo {
				mockRepo.On("ListLocations", mock.Anything, tt.filter).Return(tt.mockLocations, tt.mockError)
			}

			// Execute
			result, err := service.List(context.Background(), tt.filter)

			// Assert
			if tt.expectError {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLocationService_Nearest(t *testing.T) {
	tests := []struct {
		name         string
		lat          float64
		lon          float64
		callsRepo    bool
		mockLocation *models.Location
		mockError    error
		expected     *models.Location
		expectError  bool
	}{
		{
			name:        "latitude out of range",
			lat:         91,
			lon:         100,
			expectError: true,
		},
		{
			name:        "longitude out of range",
			lat:         13,
			lon:         -181,
			expectError: true,
		},
		{
			name:         "found",
			lat:          13.745,
			lon:          100.535,
			callsRepo:    true,
			mockLocation: &paragon,
			expected:     &paragon,
		},
		{
			name:         "nothing nearby",
			lat:          13.745,
			lon:          100.535,
			callsRepo:    true,
			mockLocation: nil,
			expected:     nil,
		},
		{
			name:         "repository error",
			lat:          13.745,
			lon:          100.535,
			callsRepo:    true,
			mockLocation: nil,
			mockError:    assert.AnError,
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockLocationRepository)
			service := NewLocationService(mockRepo, jsexport.Options{})

			if tt.callsRepo {
				mockRepo.On("FindNearestLocation", mock.Anything, tt.lat, tt.lon).Return(tt.mockLocation, tt.mockError)
			}

			result, err := service.Nearest(context.Background(), tt.lat, tt.lon)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLocationService_Script(t *testing.T) {
	mockRepo := new(MockLocationRepository)
	service := NewLocationService(mockRepo, jsexport.Options{Variable: "screens", Source: "media.xlsx"})

	mockRepo.On("ListLocations", mock.Anything, models.Filter{}).Return([]models.Location{paragon}, nil)

	script, err := service.Script(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(script), "// PP Cloud Media"))
	assert.Contains(t, string(script), "const screens = [\n")
	assert.Contains(t, string(script), `name: "สยามพารากอน",`)
	mockRepo.AssertExpectations(t)
}
