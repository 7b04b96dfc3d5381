package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"places-api/internal/models"
	"places-api/internal/service"
	"places-api/internal/store"
)

// MockPostalService is a mock implementation of the PostalService interface
type MockPostalService struct {
	mock.Mock
}

func (m *MockPostalService) Lookup(code string) ([]models.PostalRecord, error) {
	args := m.Called(code)
	return args.Get(0).([]models.PostalRecord), args.Error(1)
}

func (m *MockPostalService) Search(f service.PostalFilter) []models.PostalRecord {
	return m.Called(f).Get(0).([]models.PostalRecord)
}

func (m *MockPostalService) Nearby(lat, lng, radiusKm float64) []models.PostalResult {
	return m.Called(lat, lng, radiusKm).Get(0).([]models.PostalResult)
}

func (m *MockPostalService) States() []string {
	return m.Called().Get(0).([]string)
}

func (m *MockPostalService) Districts(state string) ([]string, error) {
	args := m.Called(state)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPostalService) Count() int {
	return m.Called().Int(0)
}

func TestPostalHandler_Lookup(t *testing.T) {
	records := []models.PostalRecord{{Pincode: "500001", OfficeName: "Hyderabad GPO"}}

	tests := []struct {
		name           string
		code           string
		mockRecords    []models.PostalRecord
		mockError      error
		expectedStatus int
	}{
		{
			name:           "found",
			code:           "500001",
			mockRecords:    records,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing",
			code:           "999999",
			mockRecords:    nil,
			mockError:      fmt.Errorf("service: pincode %q: %w", "999999", store.ErrNotFound),
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockPostalService)
			mockSvc.On("Lookup", tt.code).Return(tt.mockRecords, tt.mockError)
			h := NewPostalHandler(mockSvc, 50)

			w := performRequest(t, http.MethodGet, "/pincode/"+tt.code, nil, h.Lookup, gin.Param{Key: "pincode", Value: tt.code})

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusNotFound {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Contains(t, body["error"], tt.code)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestPostalHandler_Search(t *testing.T) {
	mockSvc := new(MockPostalService)
	mockSvc.On("Count").Return(5)
	mockSvc.On("Search", service.PostalFilter{
		Pincode:  "5000",
		State:    "telangana",
		District: "hyderabad",
		Office:   "gpo",
	}).Return([]models.PostalRecord{{Pincode: "500001", OfficeName: "Hyderabad GPO"}})
	h := NewPostalHandler(mockSvc, 50)

	w := performRequest(t, http.MethodGet,
		"/pincode/search?pincode=5000&state=telangana&district=hyderabad&office=gpo",
		nil, h.Search)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestPostalHandler_Nearby_InvalidCoords(t *testing.T) {
	mockSvc := new(MockPostalService)
	h := NewPostalHandler(mockSvc, 50)

	w := performRequest(t, http.MethodGet, "/pincode/nearby?lat=north&lng=78.0", nil, h.Nearby)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Nearby")
}

func TestPostalHandler_Districts(t *testing.T) {
	mockSvc := new(MockPostalService)
	mockSvc.On("Districts", "telangana").Return([]string{"Hyderabad", "Warangal"}, nil)
	h := NewPostalHandler(mockSvc, 50)

	w := performRequest(t, http.MethodGet, "/pincode/states/telangana/districts", nil, h.Districts, gin.Param{Key: "state", Value: "telangana"})

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []any{"Hyderabad", "Warangal"}, body["districts"])
	mockSvc.AssertExpectations(t)
}

func TestPostalHandler_Districts_Missing(t *testing.T) {
	mockSvc := new(MockPostalService)
	mockSvc.On("Districts", "atlantis").Return([]string(nil), fmt.Errorf("service: state %q: %w", "atlantis", store.ErrNotFound))
	h := NewPostalHandler(mockSvc, 50)

	w := performRequest(t, http.MethodGet, "/pincode/states/atlantis/districts", nil, h.Districts, gin.Param{Key: "state", Value: "atlantis"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
