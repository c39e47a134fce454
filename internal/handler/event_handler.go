package handler

import (
	"context"
	"net/http"
	"time"

	"onelastevent/internal/model"
	"onelastevent/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events", h.ListEvents)
		router.GET("events/:id", h.GetEvent)
	}

	authed := r.Group("/api/v1", RequireIdentity())
	{
		authed.POST("events", h.CreateEvent)
		authed.PATCH("events/:id", h.UpdateEvent)
		authed.PUT("events/:id/publish", h.PublishEvent)
		authed.PUT("events/:id/unpublish", h.UnpublishEvent)
		authed.PUT("events/:id/cancel", h.CancelEvent)
		authed.PUT("events/:id/image", h.UploadImage)
	}
}

// ListEventsQuery 公開列表的查詢參數
type ListEventsQuery struct {
	Status      *model.EventStatus `form:"status"`
	OrganizerID *uuid.UUID         `form:"organizer_id"`
	Search      string             `form:"search"`
	MinPrice    *float64           `form:"min_price"`
	MaxPrice    *float64           `form:"max_price"`
	From        *time.Time         `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To          *time.Time         `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Page        int                `form:"page"`
	Limit       int                `form:"limit"`
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	var query ListEventsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	params := model.ListEventsParams{
		Status:      query.Status,
		OrganizerID: query.OrganizerID,
		Search:      query.Search,
		MinPrice:    query.MinPrice,
		MaxPrice:    query.MaxPrice,
		From:        query.From,
		To:          query.To,
		Page:        query.Page,
		Limit:       query.Limit,
	}
	params.Normalize()

	events, total, err := h.service.List(c, optionalRequester(c), params)
	if err != nil {
		respondError(c, err, "ListEvents")
		return
	}

	responses := make([]*model.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, event.ToResponse())
	}

	respondSuccess(c, paginated(responses, total, params.Page, params.Limit), http.StatusOK)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	event, err := h.service.Get(c, optionalRequester(c), id)
	if err != nil {
		respondError(c, err, "GetEvent")
		return
	}

	respondSuccess(c, event.ToResponse(), http.StatusOK)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	requester, _ := RequesterFrom(c)

	var req model.CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.Create(c, requester, &req)
	if err != nil {
		respondError(c, err, "CreateEvent")
		return
	}

	respondSuccess(c, created.ToResponse(), http.StatusCreated)
}

// UpdateEventRequest 部分更新請求，只帶要改的欄位
type UpdateEventRequest struct {
	Title         *string    `json:"title" binding:"omitempty,max=255"`
	Description   *string    `json:"description"`
	Location      *string    `json:"location"`
	StartDatetime *time.Time `json:"start_datetime"`
	EndDatetime   *time.Time `json:"end_datetime"`
	Capacity      *int       `json:"capacity" binding:"omitempty,min=1"`
	Price         *float64   `json:"price" binding:"omitempty,min=0"`
	Currency      *string    `json:"currency" binding:"omitempty,len=3"`
	Tags          []string   `json:"tags"`
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	requester, _ := RequesterFrom(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	updated, err := h.service.Update(c, requester, id, model.UpdateEventParams{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		Capacity:      req.Capacity,
		Price:         req.Price,
		Currency:      req.Currency,
		Tags:          req.Tags,
	})
	if err != nil {
		respondError(c, err, "UpdateEvent")
		return
	}

	respondSuccess(c, updated.ToResponse(), http.StatusOK)
}

func (h *EventHandler) PublishEvent(c *gin.Context) {
	h.transition(c, "PublishEvent", h.service.Publish)
}

func (h *EventHandler) UnpublishEvent(c *gin.Context) {
	h.transition(c, "UnpublishEvent", h.service.Unpublish)
}

func (h *EventHandler) CancelEvent(c *gin.Context) {
	h.transition(c, "CancelEvent", h.service.Cancel)
}

// UploadImageRequest 活動主圖連結
type UploadImageRequest struct {
	ImageURL string `json:"image_url" binding:"required,url"`
}

func (h *EventHandler) UploadImage(c *gin.Context) {
	requester, _ := RequesterFrom(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UploadImageRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	updated, err := h.service.UploadImage(c, requester, id, req.ImageURL)
	if err != nil {
		respondError(c, err, "UploadImage")
		return
	}

	respondSuccess(c, updated.ToResponse(), http.StatusOK)
}

// transition 三個生命週期端點共用的骨架
func (h *EventHandler) transition(c *gin.Context, operation string, fn func(ctx context.Context, requester model.Requester, id uuid.UUID) (*model.Event, error)) {
	requester, _ := RequesterFrom(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	event, err := fn(c, requester, id)
	if err != nil {
		respondError(c, err, operation)
		return
	}

	respondSuccess(c, event.ToResponse(), http.StatusOK)
}
