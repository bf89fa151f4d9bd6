package middleware

import (
	"strings"

	"revsplit/errors"
	"revsplit/response"
	"revsplit/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware xử lý authentication
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		auth, err := services.AuthContextFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == auth.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Lưu capability object vào context cho controllers
		c.Set("auth", auth)
		c.Set("userID", auth.UserID)
		c.Set("userRole", auth.Role)
		c.Next()
	}
}

// GetAuthContext lấy AuthorizationContext đã được middleware dựng sẵn
func GetAuthContext(c *gin.Context) (services.AuthorizationContext, bool) {
	value, exists := c.Get("auth")
	if !exists {
		return services.AuthorizationContext{}, false
	}
	auth, ok := value.(services.AuthorizationContext)
	return auth, ok
}

// ErrorHandler xử lý lỗi
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Kiểm tra lỗi
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			if appErr, ok := err.(*errors.AppError); ok {
				response.Error(c, 0, appErr.Message)
				return
			}

			response.ServerError(c)
		}
	}
}
