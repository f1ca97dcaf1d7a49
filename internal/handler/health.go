package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/infra"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports DB and Redis connectivity. Redis is optional: with no client
// it reports "disabled" and does not fail the check. Never exposes credentials.
func Health(db *gorm.DB, rdb *redis.Client, mailer *infra.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "disabled"
		var dlq map[string]int64
		if rdb != nil {
			redisStatus = "connected"
			if rdb.Ping(ctx).Err() != nil {
				redisStatus = "error"
			} else if stats, err := worker.DLQStats(ctx, rdb); err == nil {
				dlq = stats
			}
		}

		smtpStatus := "disabled"
		if mailer.Configured() {
			smtpStatus = mailer.Breaker().State().String()
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus == "error" {
			status = http.StatusServiceUnavailable
		}

		body := gin.H{
			"ok":    status == http.StatusOK,
			"db":    dbStatus,
			"redis": redisStatus,
			"smtp":  smtpStatus,
		}
		if dlq != nil {
			body["dlq"] = dlq
		}
		c.JSON(status, body)
	}
}
