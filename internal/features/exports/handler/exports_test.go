package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dockyard/internal/features/dock/domain"
	dockservice "dockyard/internal/features/dock/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Load(ctx context.Context, trailerID string) (string, error) {
	args := m.Called(ctx, trailerID)
	return args.String(0), args.Error(1)
}

func (m *MockExportService) Daily(ctx context.Context, date string) (string, error) {
	args := m.Called(ctx, date)
	return args.String(0), args.Error(1)
}

func (m *MockExportService) Schedule(ctx context.Context, date string) (string, error) {
	args := m.Called(ctx, date)
	return args.String(0), args.Error(1)
}

func (m *MockExportService) Recent() string {
	return m.Called().String(0)
}

func (m *MockExportService) LinesTemplate() string {
	return m.Called().String(0)
}

func setupApp(svc *MockExportService) *fiber.App {
	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Header: "X-Ray-ID"}))
	NewExportHandler(svc).Register(app)
	return app
}

func TestExportHandler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(*MockExportService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Load",
			path: "/exports/trailers/T100/load.csv",
			setup: func(m *MockExportService) {
				m.On("Load", mock.Anything, "T100").Return("T100AR,A,3,DAL,P, ,AR,20240501,T100,1\n", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "T100AR,A,3,DAL,P, ,AR,20240501,T100,1\n",
		},
		{
			name: "DailyWithDate",
			path: "/exports/daily.csv?date=2024-05-01",
			setup: func(m *MockExportService) {
				m.On("Daily", mock.Anything, "2024-05-01").Return("x\n", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "x\n",
		},
		{
			name: "ScheduleNotLoggedIn",
			path: "/exports/schedule.csv",
			setup: func(m *MockExportService) {
				m.On("Schedule", mock.Anything, "").Return("", dockservice.ErrNotAuthenticated)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "LoadUnknownTrailer",
			path: "/exports/trailers/NOPE/load.csv",
			setup: func(m *MockExportService) {
				m.On("Load", mock.Anything, "NOPE").Return("", domain.ErrUnknownTrailer)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "Recent",
			path: "/exports/recent.csv",
			setup: func(m *MockExportService) {
				m.On("Recent").Return("Trailer, Scheduled Date, Scheduled Time, Carrier\n")
			},
			wantStatus: http.StatusOK,
			wantBody:   "Trailer, Scheduled Date, Scheduled Time, Carrier\n",
		},
		{
			name: "LinesTemplate",
			path: "/exports/templates/shipment-lines.csv",
			setup: func(m *MockExportService) {
				m.On("LinesTemplate").Return("item,quantity,ip\n")
			},
			wantStatus: http.StatusOK,
			wantBody:   "item,quantity,ip\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockExportService)
			tt.setup(svc)
			app := setupApp(svc)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, string(body))
				assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
				assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
			} else {
				var errResp ErrorResponse
				require.NoError(t, json.Unmarshal(body, &errResp))
				assert.NotEmpty(t, errResp.RayID)
			}
			svc.AssertExpectations(t)
		})
	}
}
