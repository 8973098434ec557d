package testutil

import (
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v8"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"yatube/internal/config"
	"yatube/internal/core/comment"
	"yatube/internal/core/follower"
	"yatube/internal/core/group"
	"yatube/internal/core/post"
	"yatube/internal/core/user"
)

// SetupDB points config.DB at a migrated in-memory sqlite database named
// after the test, so tests stay isolated without a MySQL server.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&comment.Comment{},
		&follower.Follower{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	prev := config.DB
	config.DB = db
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
		config.DB = prev
	})
	return db
}

// SetupRedis starts a miniredis instance and returns a client bound to it.
func SetupRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

// InitLogger makes config.Logger safe to use from tests.
func InitLogger(t *testing.T) {
	t.Helper()
	if config.Logger == nil {
		config.InitLogger()
	}
}
