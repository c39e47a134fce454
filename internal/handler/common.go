package handler

import (
	"errors"
	"net/http"

	apperrors "onelastevent/pkg/app_errors"
	"onelastevent/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  "INVALID_INPUT",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  "INVALID_INPUT",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  "INVALID_INPUT",
		})
		return err
	}
	return nil
}

type errorMapping struct {
	status  int
	code    string
	message string
}

// 每個哨兵錯誤對應一組穩定的 HTTP 狀態與錯誤碼，客戶端依 code 分流
var errorMappings = map[error]errorMapping{
	apperrors.ErrEventNotFound:       {http.StatusNotFound, "EVENT_NOT_FOUND", "Event not found"},
	apperrors.ErrInscriptionNotFound: {http.StatusNotFound, "INSCRIPTION_NOT_FOUND", "Inscription not found"},
	apperrors.ErrPaymentNotFound:     {http.StatusNotFound, "PAYMENT_NOT_FOUND", "Payment not found"},
	apperrors.ErrUserNotFound:        {http.StatusNotFound, "USER_NOT_FOUND", "User not found"},
	apperrors.ErrNotOwner:            {http.StatusForbidden, "NOT_OWNER", "You do not own this resource"},
	apperrors.ErrEventCancelled:      {http.StatusConflict, "EVENT_CANCELLED", "Event is cancelled"},
	apperrors.ErrAlreadyPublished:    {http.StatusConflict, "ALREADY_PUBLISHED", "Event is already published"},
	apperrors.ErrNotPublished:        {http.StatusConflict, "NOT_PUBLISHED", "Event is not published"},
	apperrors.ErrIncompleteEvent:     {http.StatusUnprocessableEntity, "INCOMPLETE_EVENT", "Event is missing required fields to publish"},
	apperrors.ErrAlreadyRegistered:   {http.StatusConflict, "ALREADY_REGISTERED", "Already registered for this event"},
	apperrors.ErrAlreadyCancelled:    {http.StatusConflict, "ALREADY_CANCELLED", "Inscription is already cancelled"},
	apperrors.ErrEventFull:           {http.StatusConflict, "EVENT_FULL", "Event is full"},
	apperrors.ErrEventNotAvailable:   {http.StatusConflict, "EVENT_NOT_AVAILABLE", "Event is not available for registration"},
	apperrors.ErrEventIsFree:         {http.StatusConflict, "EVENT_IS_FREE", "Event is free, no payment required"},
	apperrors.ErrPaymentNotPending:   {http.StatusConflict, "PAYMENT_NOT_PENDING", "Payment is not pending"},
	apperrors.ErrCannotRefund:        {http.StatusConflict, "CANNOT_REFUND", "Payment cannot be refunded"},
	apperrors.ErrProcessorFailure:    {http.StatusBadGateway, "PROCESSOR_FAILURE", "Payment processor failure"},
	apperrors.ErrInvalidInput:        {http.StatusBadRequest, "INVALID_INPUT", "Invalid request format"},
}

func respondError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	for sentinel, mapping := range errorMappings {
		if errors.Is(err, sentinel) {
			log.Warn(mapping.message)
			c.JSON(mapping.status, gin.H{
				"error": mapping.message,
				"code":  mapping.code,
			})
			return
		}
	}

	log.Error("Unexpected error")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
		"code":  "INTERNAL_ERROR",
	})
}

func respondSuccess(c *gin.Context, data interface{}, statusCode int) {
	if data != nil {
		c.JSON(statusCode, data)
	} else {
		c.Status(statusCode)
	}
}

// parseUUIDParam 解析路徑中的 UUID 參數，格式錯誤時直接回 400
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name,
			"code":  "INVALID_INPUT",
		})
		return uuid.Nil, false
	}
	return id, true
}

// paginated 帶分頁中繼資料的列表響應
func paginated(items interface{}, total, page, limit int) gin.H {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return gin.H{
		"items": items,
		"pagination": gin.H{
			"total":       total,
			"page":        page,
			"limit":       limit,
			"total_pages": totalPages,
		},
	}
}
