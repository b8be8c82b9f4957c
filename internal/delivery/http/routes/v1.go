package routes

import (
	"mentor-match/internal/config"
	"mentor-match/internal/database"
	v1 "mentor-match/internal/delivery/http/routes/v1"
	"mentor-match/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, logger *zap.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, redis, logger)
}
