package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hackxperience/hackxperience/db"
)

func HealthCheck(c *gin.Context) {
	database := "ok"

	if sqlDB, err := db.DB.DB(); err != nil || sqlDB.Ping() != nil {
		database = "unreachable"
	}

	c.JSON(200, gin.H{
		"status":    "ok",
		"database":  database,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
