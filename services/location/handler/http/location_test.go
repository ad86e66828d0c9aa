package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/locationd/services/location/live"
	"github.com/piresc/locationd/services/location/mocks"
	"github.com/piresc/locationd/services/location/models"
	"github.com/piresc/locationd/services/location/usecase"
)

func newRequest(t *testing.T, method, target string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	e := echo.New()
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestNewLocationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockUC, handler.locationUC)
}

func TestLocationHandler_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	mockUC.EXPECT().Status(gomock.Any()).Return(&models.Status{
		AuthorizationStatus:     models.AuthorizationAuthorizedAlways,
		LocationServicesEnabled: true,
	}, nil)

	rec, c := newRequest(t, http.MethodGet, "/v1/location/status", nil)
	require.NoError(t, handler.GetStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success bool          `json:"success"`
		Data    models.Status `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, models.AuthorizationAuthorizedAlways, body.Data.AuthorizationStatus)
	assert.Contains(t, rec.Body.String(), `"authorization_status":"authorizedAlways"`)
}

func TestLocationHandler_MonitorRegion(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*mocks.MockLocationUC)
		expectedStatus int
	}{
		{
			name: "Success",
			requestBody: map[string]interface{}{
				"identifier":     "home",
				"center":         map[string]interface{}{"latitude": -6.175392, "longitude": 106.827153},
				"radius":         150,
				"notify_on_exit": false,
			},
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					MonitorRegion(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, region models.Region) error {
						assert.Equal(t, "home", region.Identifier)
						assert.Equal(t, models.RegionCircular, region.Kind)
						assert.True(t, region.NotifyOnEntry)
						assert.False(t, region.NotifyOnExit)
						require.NotNil(t, region.Radius)
						assert.Equal(t, 150.0, *region.Radius)
						return nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Invalid body",
			requestBody:    "not an object",
			mockSetup:      func(mockUC *mocks.MockLocationUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Invalid region",
			requestBody: map[string]interface{}{"identifier": "home"},
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					MonitorRegion(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("%w: radius", usecase.ErrInvalidRegion))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Client closed",
			requestBody: map[string]interface{}{"identifier": "home", "radius": 10},
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().MonitorRegion(gomock.Any(), gomock.Any()).Return(live.ErrClosed)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockLocationUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewLocationHandler(mockUC)

			rec, c := newRequest(t, http.MethodPost, "/v1/location/regions", tt.requestBody)
			require.NoError(t, handler.MonitorRegion(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestLocationHandler_StopMonitoringRegion(t *testing.T) {
	tests := []struct {
		name           string
		regionID       string
		mockSetup      func(*mocks.MockLocationUC)
		expectedStatus int
	}{
		{
			name:     "Success",
			regionID: "home",
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().StopMonitoringRegion(gomock.Any(), "home").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:     "Not monitored",
			regionID: "work",
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					StopMonitoringRegion(gomock.Any(), "work").
					Return(fmt.Errorf("%w: work", usecase.ErrRegionNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Missing id",
			regionID:       "",
			mockSetup:      func(mockUC *mocks.MockLocationUC) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockLocationUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewLocationHandler(mockUC)

			rec, c := newRequest(t, http.MethodDelete, "/v1/location/regions/"+tt.regionID, nil)
			c.SetParamNames("id")
			c.SetParamValues(tt.regionID)

			require.NoError(t, handler.StopMonitoringRegion(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestLocationHandler_StartTracking(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"Success", nil, http.StatusOK},
		{"Not authorized", fmt.Errorf("%w: denied", usecase.ErrNotAuthorized), http.StatusForbidden},
		{"Services disabled", usecase.ErrServicesDisabled, http.StatusServiceUnavailable},
		{"Unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockLocationUC(ctrl)
			mockUC.EXPECT().StartTracking(gomock.Any()).Return(tt.err)
			handler := NewLocationHandler(mockUC)

			rec, c := newRequest(t, http.MethodPost, "/v1/location/tracking/start", nil)
			require.NoError(t, handler.StartTracking(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestLocationHandler_StopTracking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	mockUC.EXPECT().StopTracking(gomock.Any()).Return(nil)
	handler := NewLocationHandler(mockUC)

	rec, c := newRequest(t, http.MethodPost, "/v1/location/tracking/stop", nil)
	require.NoError(t, handler.StopTracking(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLocationHandler_RequestAuthorization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	mockUC.EXPECT().RequestAuthorization(gomock.Any(), true).Return(nil)
	handler := NewLocationHandler(mockUC)

	rec, c := newRequest(t, http.MethodPost, "/v1/location/authorization", AuthorizationRequest{Always: true})
	require.NoError(t, handler.RequestAuthorization(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestLocationHandler_RefreshLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	mockUC.EXPECT().RefreshLocation(gomock.Any()).Return(nil)
	handler := NewLocationHandler(mockUC)

	rec, c := newRequest(t, http.MethodPost, "/v1/location/refresh", nil)
	require.NoError(t, handler.RefreshLocation(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestLocationHandler_Configure(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockLocationUC(ctrl)
		mockUC.EXPECT().
			Configure(gomock.Any(), models.ServiceConfiguration{
				DistanceFilter: models.Ptr(25.0),
				ActivityType:   models.Ptr(models.ActivityFitness),
			}).
			Return(nil)
		handler := NewLocationHandler(mockUC)

		rec, c := newRequest(t, http.MethodPut, "/v1/location/configuration", map[string]interface{}{
			"distance_filter": 25,
			"activity_type":   "fitness",
		})
		require.NoError(t, handler.Configure(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Empty configuration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler := NewLocationHandler(mocks.NewMockLocationUC(ctrl))

		rec, c := newRequest(t, http.MethodPut, "/v1/location/configuration", map[string]interface{}{})
		require.NoError(t, handler.Configure(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
