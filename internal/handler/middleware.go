package handler

import (
	"net/http"

	"onelastevent/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requesterContextKey = "requester"

	// 身份由上游閘道驗證後以 header 傳入，本服務只做解析
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// IdentityMiddleware 解析上游傳入的身份 header，放進 gin context。
// 沒有 header 時視為匿名，是否放行由各端點決定。
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawID := c.GetHeader(HeaderUserID)
		if rawID == "" {
			c.Next()
			return
		}

		id, err := uuid.Parse(rawID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid identity header",
				"code":  "INVALID_IDENTITY",
			})
			return
		}

		role := model.Role(c.GetHeader(HeaderUserRole))
		if role == "" {
			role = model.RoleParticipant
		}

		c.Set(requesterContextKey, model.Requester{ID: id, Role: role})
		c.Next()
	}
}

// RequireIdentity 擋下匿名請求
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := RequesterFrom(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "UNAUTHENTICATED",
			})
			return
		}
		c.Next()
	}
}

// RequesterFrom 取出已解析的請求者身份
func RequesterFrom(c *gin.Context) (model.Requester, bool) {
	value, exists := c.Get(requesterContextKey)
	if !exists {
		return model.Requester{}, false
	}
	requester, ok := value.(model.Requester)
	return requester, ok
}

// optionalRequester 匿名時回傳 nil，供公開端點的可見性判斷使用
func optionalRequester(c *gin.Context) *model.Requester {
	if requester, ok := RequesterFrom(c); ok {
		return &requester
	}
	return nil
}
