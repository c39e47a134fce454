package handler

import (
	"net/http"

	"onelastevent/internal/model"
	"onelastevent/internal/service"

	"github.com/gin-gonic/gin"
)

type InscriptionHandler struct {
	registrations service.RegistrationService
	inscriptions  service.InscriptionService
}

func NewInscriptionHandler(registrations service.RegistrationService, inscriptions service.InscriptionService) *InscriptionHandler {
	return &InscriptionHandler{
		registrations: registrations,
		inscriptions:  inscriptions,
	}
}

func (h *InscriptionHandler) RegisterRoutes(r *gin.Engine) {
	authed := r.Group("/api/v1", RequireIdentity())
	{
		authed.POST("events/:id/register", h.Register)
		authed.GET("events/:id/inscriptions", h.ListByEvent)
		authed.GET("inscriptions/:id", h.GetInscription)
		authed.PUT("inscriptions/:id/cancel", h.CancelInscription)
		authed.GET("users/me/inscriptions", h.ListMyInscriptions)
	}
}

// Register 報名統一入口：免費活動直接確認，付費活動回付款握手資訊
func (h *InscriptionHandler) Register(c *gin.Context) {
	requester, _ := RequesterFrom(c)

	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.registrations.Register(c, requester, eventID)
	if err != nil {
		respondError(c, err, "Register")
		return
	}

	respondSuccess(c, result, http.StatusCreated)
}

func (h *InscriptionHandler) GetInscription(c *gin.Context) {
	requester, _ := RequesterFrom(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	inscription, err := h.inscriptions.GetByID(c, requester, id)
	if err != nil {
		respondError(c, err, "GetInscription")
		return
	}

	respondSuccess(c, inscription, http.StatusOK)
}

func (h *InscriptionHandler) CancelInscription(c *gin.Context) {
	requester, _ := RequesterFrom(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	cancelled, err := h.registrations.Cancel(c, requester, id)
	if err != nil {
		respondError(c, err, "CancelInscription")
		return
	}

	respondSuccess(c, cancelled, http.StatusOK)
}

// ListInscriptionsQuery 我的報名列表查詢參數
type ListInscriptionsQuery struct {
	Status *model.InscriptionStatus `form:"status"`
	Page   int                      `form:"page"`
	Limit  int                      `form:"limit"`
}

func (h *InscriptionHandler) ListMyInscriptions(c *gin.Context) {
	requester, _ := RequesterFrom(c)

	var query ListInscriptionsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	params := model.ListInscriptionsParams{
		Status: query.Status,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	params.Normalize()

	inscriptions, total, err := h.inscriptions.ListByUser(c, requester, requester.ID, params)
	if err != nil {
		respondError(c, err, "ListMyInscriptions")
		return
	}

	respondSuccess(c, paginated(inscriptions, total, params.Page, params.Limit), http.StatusOK)
}

func (h *InscriptionHandler) ListByEvent(c *gin.Context) {
	requester, _ := RequesterFrom(c)

	eventID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	inscriptions, err := h.inscriptions.ListByEvent(c, requester, eventID)
	if err != nil {
		respondError(c, err, "ListByEvent")
		return
	}

	respondSuccess(c, inscriptions, http.StatusOK)
}
