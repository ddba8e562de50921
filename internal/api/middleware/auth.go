package middleware

import (
	"context"
	"strings"

	"foodgram-go/internal/api/response"
	"foodgram-go/pkg/logger"
	"foodgram-go/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextKeyUserID = "currentUserID"
	ContextKeyToken  = "currentToken"
)

// RevocationChecker 查询令牌是否已注销
type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// AuthRequired 要求请求携带有效 Token；revoked 为 nil 时不检查注销状态
func AuthRequired(tokens *utils.TokenManager, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "缺少认证令牌")
			return
		}

		if authenticate(c, tokens, revoked, token) {
			c.Next()
		}
	}
}

// AuthOptional 携带 Token 时校验并注入身份，未携带时按匿名用户处理
func AuthOptional(tokens *utils.TokenManager, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" || authenticate(c, tokens, revoked, token) {
			c.Next()
		}
	}
}

// authenticate 校验失败时已写入错误响应并终止请求
func authenticate(c *gin.Context, tokens *utils.TokenManager, revoked RevocationChecker, token string) bool {
	claims, err := tokens.Parse(token)
	if err != nil {
		response.Unauthorized(c, "无效或过期的认证令牌")
		return false
	}

	if revoked != nil {
		isRevoked, err := revoked.IsRevoked(c.Request.Context(), token)
		if err != nil {
			logger.Error("Failed to check token revocation", zap.Error(err))
			response.InternalError(c, "认证服务暂不可用")
			return false
		}
		if isRevoked {
			response.Unauthorized(c, "认证令牌已注销")
			return false
		}
	}

	c.Set(ContextKeyUserID, claims.UserID)
	c.Set(ContextKeyToken, token)
	return true
}

// GetCurrentUserID 从 Gin Context 中获取当前登录用户 ID
func GetCurrentUserID(c *gin.Context) (int64, bool) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := val.(int64)
	return userID, ok
}

// ViewerID 当前请求者 ID，匿名为 0
func ViewerID(c *gin.Context) int64 {
	userID, _ := GetCurrentUserID(c)
	return userID
}

// GetCurrentToken 获取当前请求使用的原始 Token
func GetCurrentToken(c *gin.Context) string {
	return c.GetString(ContextKeyToken)
}

// extractToken 从 Authorization 头中提取 Token，兼容 Bearer 与 Token 前缀
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "bearer") && !strings.EqualFold(parts[0], "token") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
