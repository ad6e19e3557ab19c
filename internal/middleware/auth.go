package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hackxperience/hackxperience/db"
	"github.com/hackxperience/hackxperience/internal/auth"
	"github.com/hackxperience/hackxperience/internal/models"
	"github.com/hackxperience/hackxperience/internal/types"
)

type AuthenticatedAdmin struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := extractToken(ctx)

		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		token, err := auth.VerifyJWT(tokenString)

		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		adminIDFloat, ok := claims["admin_id"].(float64)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin ID in token claims"})
			return
		}

		adminID := uint(adminIDFloat)

		var admin models.AdminUser

		if err := db.DB.Where("id = ?", adminID).First(&admin).Error; err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin not found"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedAdmin{
			ID:    admin.ID,
			Email: admin.Email,
		})
		ctx.Next()
	}
}

// The login handler issues the token as an httpOnly cookie; API clients may
// also send it as a bearer header.
func extractToken(ctx *gin.Context) string {
	authHeader := ctx.GetHeader("Authorization")

	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	if cookie, err := ctx.Cookie("token"); err == nil {
		return cookie
	}

	return ""
}
