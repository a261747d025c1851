package v1_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	v1 "github.com/connaissance/fest-api/internal/api/handler/v1"
	"github.com/connaissance/fest-api/internal/domain"
	"github.com/connaissance/fest-api/internal/service"
)

type mockEventService struct {
	mock.Mock
}

func (m *mockEventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]domain.Event)
	return events, args.Error(1)
}

func (m *mockEventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) CreateEvent(ctx context.Context, draft domain.EventDraft) (domain.Event, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) UpdateEvent(ctx context.Context, id uint, patch domain.EventPatch) (domain.Event, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) DeleteEvent(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockRegistrationService struct {
	mock.Mock
}

func (m *mockRegistrationService) Register(ctx context.Context, reg domain.Registration) (domain.Participant, error) {
	args := m.Called(ctx, reg)
	return args.Get(0).(domain.Participant), args.Error(1)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(method, path, body string, register func(r *gin.Engine)) *httptest.ResponseRecorder {
	r := gin.New()
	register(r)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestEventHandler_ListFailureIs500(t *testing.T) {
	svc := new(mockEventService)
	svc.On("ListEvents", mock.Anything).Return(nil, errors.New("db is gone"))

	w := serve(http.MethodGet, "/api/events", "", func(r *gin.Engine) {
		r.GET("/api/events", v1.NewEventHandler(svc).HandleGetEvents)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestEventHandler_GetPassesParsedID(t *testing.T) {
	svc := new(mockEventService)
	svc.On("GetEvent", mock.Anything, uint(7)).Return(domain.Event{ID: 7, Name: "RoboWars"}, nil)

	w := serve(http.MethodGet, "/api/events/7", "", func(r *gin.Engine) {
		r.GET("/api/events/:id", v1.NewEventHandler(svc).HandleGetEvent)
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"RoboWars"`)
	svc.AssertExpectations(t)
}

func TestEventHandler_NonNumericIDNeverReachesService(t *testing.T) {
	svc := new(mockEventService)

	w := serve(http.MethodDelete, "/api/events/0", "", func(r *gin.Engine) {
		r.DELETE("/api/events/:id", v1.NewEventHandler(svc).HandleDeleteEvent)
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertNotCalled(t, "DeleteEvent", mock.Anything, mock.Anything)
}

func TestEventHandler_CreateMapsBody(t *testing.T) {
	svc := new(mockEventService)
	svc.On("CreateEvent", mock.Anything, mock.MatchedBy(func(d domain.EventDraft) bool {
		return d.Name == "Drone Racing" && d.Date != nil && *d.Date == "2026-03-17" && d.Rules == nil
	})).Return(domain.Event{ID: 1, Name: "Drone Racing"}, nil)

	w := serve(http.MethodPost, "/api/events", `{"name":"Drone Racing","date":"2026-03-17"}`, func(r *gin.Engine) {
		r.POST("/api/events", v1.NewEventHandler(svc).HandleCreateEvent)
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestRegistrationHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"field", &domain.FieldError{Field: "email"}, http.StatusBadRequest, `{"error":"email is required"}`},
		{"unexpected", errors.New("disk full"), http.StatusInternalServerError, `{"error":"Internal Server Error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockRegistrationService)
			svc.On("Register", mock.Anything, mock.Anything).Return(domain.Participant{}, tt.err)

			w := serve(http.MethodPost, "/api/register", `{"name":"Asha"}`, func(r *gin.Engine) {
				r.POST("/api/register", v1.NewRegistrationHandler(svc).HandleRegister)
			})

			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestRegistrationHandler_EventIDAsString(t *testing.T) {
	svc := new(mockRegistrationService)
	svc.On("Register", mock.Anything, domain.Registration{
		Name: "Asha", Email: "a@x.in", Phone: "1", College: "NIT", EventID: 3,
	}).Return(domain.Participant{ID: 1, EventID: 3}, nil)

	w := serve(http.MethodPost, "/api/register",
		`{"name":"Asha","email":"a@x.in","phone":"1","college":"NIT","event_id":"3"}`,
		func(r *gin.Engine) {
			r.POST("/api/register", v1.NewRegistrationHandler(svc).HandleRegister)
		})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Registration successful!"`)
	svc.AssertExpectations(t)
}

func TestEventHandler_UpdateMissingEventSkipsBody(t *testing.T) {
	svc := new(mockEventService)
	svc.On("GetEvent", mock.Anything, uint(9)).Return(domain.Event{}, service.ErrEventNotFound)

	w := serve(http.MethodPut, "/api/events/9", `{"name":`, func(r *gin.Engine) {
		r.PUT("/api/events/:id", v1.NewEventHandler(svc).HandleUpdateEvent)
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Event not found"}`, w.Body.String())
	svc.AssertNotCalled(t, "UpdateEvent", mock.Anything, mock.Anything, mock.Anything)
}
