package middleware

import (
	"foodgram-go/internal/api/response"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery 捕获 panic，记录堆栈并返回统一的 500 错误
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			logger.Error("Panic recovered",
				zap.Any("error", rec),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Int64("user_id", ViewerID(c)),
				zap.Stack("stack"),
			)

			// 响应已开始写出时只能中断连接
			if c.Writer.Written() {
				c.Abort()
				return
			}
			response.InternalError(c, "服务器内部错误")
		}()

		c.Next()
	}
}
