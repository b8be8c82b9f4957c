package v1

import (
	"mentor-match/internal/config"
	"mentor-match/internal/database"
	"mentor-match/internal/delivery/http/handler"
	"mentor-match/internal/infrastructure/cache"
	"mentor-match/internal/infrastructure/similarity"
	"mentor-match/internal/repository"
	"mentor-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, logger *zap.Logger) {
	if r == nil {
		return
	}

	members := repository.NewPostgresMemberRepository(db)
	connections := repository.NewPostgresConnectionRepository(db)

	var sim usecase.SimilarityProvider = similarity.Noop{}
	if cfg.Semantic.BaseURL != "" {
		sim = similarity.NewClient(cfg.Semantic.BaseURL, cfg.Semantic.Timeout)
	}

	var matchCache usecase.MatchCache
	var invalidator usecase.ConnectionInvalidator
	if redis != nil {
		matchCache = redis
		invalidator = redis
	}

	matchUC := usecase.NewMatchUsecase(
		members,
		sim,
		matchCache,
		logger,
		cfg.Matching.Workers,
		cfg.Matching.CacheTTL,
		cfg.Semantic.Timeout,
	)
	connectionUC := usecase.NewConnectionUsecase(members, connections, invalidator, logger)

	handler.NewMatchHandler(matchUC).RegisterRoutes(r)
	handler.NewConnectionHandler(connectionUC).RegisterRoutes(r)
}
