package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"onelastevent/internal/handler"
	"onelastevent/internal/model"
	"onelastevent/internal/service/mocks"
	apperrors "onelastevent/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupEventTestRouter(mockService *mocks.MockEventService) *gin.Engine {
	router := newTestRouter()
	handler.NewEventHandler(mockService).RegisterRoutes(router)
	return router
}

func TestCreateEvent(t *testing.T) {
	organizerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
			Return(&model.Event{ID: uuid.New(), Title: "Go Conference", Status: model.EventStatusDraft}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/events", model.CreateEventRequest{
			Title:    "Go Conference",
			Capacity: 100,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, asUser(req, organizerID, model.RoleOrganizer))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - anonymous rejected", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/events", model.CreateEventRequest{
			Title:    "Go Conference",
			Capacity: 100,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Failed - missing title", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/events", map[string]interface{}{"capacity": 10})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, asUser(req, organizerID, model.RoleOrganizer))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetEvent(t *testing.T) {
	t.Run("Success - public access", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		eventID := uuid.New()
		mockService.EXPECT().Get(mock.Anything, mock.Anything, eventID).
			Return(&model.Event{ID: eventID, Status: model.EventStatusPublished}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/events/"+eventID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - EVENT_NOT_FOUND", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		eventID := uuid.New()
		mockService.EXPECT().Get(mock.Anything, mock.Anything, eventID).
			Return(nil, apperrors.ErrEventNotFound).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/events/"+eventID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "EVENT_NOT_FOUND")
	})

	t.Run("Failed - invalid id", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		req := createJSONHTTPRequest("GET", "/api/v1/events/not-a-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPublishEvent(t *testing.T) {
	organizerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		eventID := uuid.New()
		mockService.EXPECT().Publish(mock.Anything, mock.Anything, eventID).
			Return(&model.Event{ID: eventID, Status: model.EventStatusPublished}, nil).Once()

		req := createJSONHTTPRequest("PUT", "/api/v1/events/"+eventID.String()+"/publish", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, asUser(req, organizerID, model.RoleOrganizer))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - INCOMPLETE_EVENT", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		eventID := uuid.New()
		mockService.EXPECT().Publish(mock.Anything, mock.Anything, eventID).
			Return(nil, apperrors.ErrIncompleteEvent).Once()

		req := createJSONHTTPRequest("PUT", "/api/v1/events/"+eventID.String()+"/publish", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, asUser(req, organizerID, model.RoleOrganizer))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "INCOMPLETE_EVENT")
	})

	t.Run("Failed - NOT_OWNER", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		eventID := uuid.New()
		mockService.EXPECT().Publish(mock.Anything, mock.Anything, eventID).
			Return(nil, apperrors.ErrNotOwner).Once()

		req := createJSONHTTPRequest("PUT", "/api/v1/events/"+eventID.String()+"/publish", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, asUser(req, organizerID, model.RoleOrganizer))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestListEvents(t *testing.T) {
	t.Run("Success with pagination metadata", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).
			Return([]*model.Event{{ID: uuid.New(), Status: model.EventStatusPublished}}, 1, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/events?page=1&limit=10", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "pagination")
	})
}
