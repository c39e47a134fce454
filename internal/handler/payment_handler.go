package handler

import (
	"net/http"

	"onelastevent/internal/model"
	"onelastevent/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(service service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.Engine) {
	// 金流端回調不走身份驗證
	r.POST("/api/v1/webhooks/payments", h.ProviderWebhook)

	authed := r.Group("/api/v1", RequireIdentity())
	{
		authed.POST("events/:id/payments", h.InitializePayment)
		authed.GET("events/:id/payments", h.ListByEvent)
		authed.GET("events/:id/revenue", h.EventRevenue)
		authed.GET("payments/:id", h.GetPayment)
		authed.POST("payments/:id/complete", h.CompletePayment)
		authed.POST("payments/:id/refund", h.RefundPayment)
		authed.GET("users/me/payments", h.ListMyPayments)
	}
}

// InitializePayment 對付費活動開啟付款流程，回傳金流端握手資訊
func (h *PaymentHandler) InitializePayment(c *gin.Context) {
	requester, _ := RequesterFrom(c)

	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	init, err := h.service.Initialize(c, requester.ID, eventID)
	if err != nil {
		respondError(c, err, "InitializePayment")
		return
	}

	respondSuccess(c, init, http.StatusCreated)
}

// CompletePayment 模擬金流端扣款結果（開發與測試用）
func (h *PaymentHandler) CompletePayment(c *gin.Context) {
	requester, _ := RequesterFrom(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req model.CompleteMockPaymentRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	updated, err := h.service.CompleteMock(c, requester, id, req.SimulateFailure)
	if err != nil {
		respondError(c, err, "CompletePayment")
		return
	}

	respondSuccess(c, updated, http.StatusOK)
}

// ProviderWebhook 金流端回調。重複投遞與未知事件都回 200，
// 避免金流端無限重送；格式不對才回 400。
func (h *PaymentHandler) ProviderWebhook(c *gin.Context) {
	var event model.ProviderEvent
	if err := BindJson(c, &event); err != nil {
		return
	}

	if err := h.service.HandleProviderCallback(c, &event); err != nil {
		respondError(c, err, "ProviderWebhook")
		return
	}

	respondSuccess(c, gin.H{"received": true}, http.StatusOK)
}

func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	requester, _ := RequesterFrom(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	refunded, err := h.service.Refund(c, requester, id)
	if err != nil {
		respondError(c, err, "RefundPayment")
		return
	}

	respondSuccess(c, refunded, http.StatusOK)
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	requester, _ := RequesterFrom(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	payment, err := h.service.GetStatus(c, requester, id)
	if err != nil {
		respondError(c, err, "GetPayment")
		return
	}

	respondSuccess(c, payment, http.StatusOK)
}

func (h *PaymentHandler) ListMyPayments(c *gin.Context) {
	requester, _ := RequesterFrom(c)

	payments, err := h.service.ListByUser(c, requester, requester.ID)
	if err != nil {
		respondError(c, err, "ListMyPayments")
		return
	}

	respondSuccess(c, payments, http.StatusOK)
}

func (h *PaymentHandler) EventRevenue(c *gin.Context) {
	requester, _ := RequesterFrom(c)

	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	revenue, err := h.service.EventRevenue(c, requester, eventID)
	if err != nil {
		respondError(c, err, "EventRevenue")
		return
	}

	respondSuccess(c, revenue, http.StatusOK)
}

func (h *PaymentHandler) ListByEvent(c *gin.Context) {
	requester, _ := RequesterFrom(c)

	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	payments, err := h.service.ListByEvent(c, requester, eventID)
	if err != nil {
		respondError(c, err, "ListByEvent")
		return
	}

	respondSuccess(c, payments, http.StatusOK)
}
