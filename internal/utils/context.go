package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/hackxperience/hackxperience/internal/middleware"
	"github.com/hackxperience/hackxperience/internal/types"
)

func GetCurrentAdmin(ctx *gin.Context) (middleware.AuthenticatedAdmin, error) {
	admin, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedAdmin{}, fmt.Errorf("Admin not authenticated")
	}

	authenticatedAdmin, ok := admin.(middleware.AuthenticatedAdmin)

	if !ok {
		return middleware.AuthenticatedAdmin{}, fmt.Errorf("Invalid admin type in context")
	}

	return authenticatedAdmin, nil
}
