package main

import (
	"context"
	"os"

	"go.uber.org/zap"
	dbadapter "yatube/internal/adapters/database"
	"yatube/internal/adapters/httpapi"
	redisadapter "yatube/internal/adapters/redis"
	storageadapter "yatube/internal/adapters/storage"
	"yatube/internal/config"
	"yatube/internal/core/comment"
	commentapp "yatube/internal/core/comment/service"
	feedapp "yatube/internal/core/feed/service"
	"yatube/internal/core/follower"
	followerapp "yatube/internal/core/follower/service"
	"yatube/internal/core/group"
	groupapp "yatube/internal/core/group/service"
	"yatube/internal/core/post"
	postapp "yatube/internal/core/post/service"
	"yatube/internal/core/user"
	userapp "yatube/internal/core/user/service"
	"yatube/internal/workers"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&comment.Comment{},
		&follower.Follower{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("Database migrations completed")

	config.InitRedis()
	defer closeResources(config.Logger)

	userRepo := dbadapter.NewUserRepositoryDatabase()
	groupRepo := dbadapter.NewGroupRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	commentRepo := dbadapter.NewCommentRepositoryDatabase()
	followerRepo := dbadapter.NewFollowerRepositoryDatabase()
	feedRepo := dbadapter.NewFeedRepositoryDatabase()
	pageCache := redisadapter.NewPageCacheRedis(config.RedisClient)
	fileStore := storageadapter.NewLocalFileStore(config.MediaRoot())

	jwtKey := []byte(os.Getenv("JWT_SECRET"))
	userSvc := userapp.NewUserService(userRepo, jwtKey)
	groupSvc := groupapp.NewGroupService(groupRepo)
	postSvc := postapp.NewPostService(postRepo)
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo)
	followerSvc := followerapp.NewFollowerService(followerRepo)
	feedSvc := feedapp.NewFeedService(feedRepo)

	renderer, err := httpapi.NewRenderer("web/templates/*.tmpl")
	if err != nil {
		config.Logger.Fatal("Error loading templates:", zap.Error(err))
	}

	r := httpapi.SetupRoutes(
		renderer,
		userSvc,
		postSvc,
		commentSvc,
		followerSvc,
		feedSvc,
		groupSvc,
		pageCache,
		fileStore,
		jwtKey,
		config.MediaRoot(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	statsWorker := workers.NewStatsWorker(postRepo, userRepo, followerRepo, config.StatsInterval(), config.Logger)
	go statsWorker.Run(ctx)

	config.Logger.Info("App is running...")
	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
