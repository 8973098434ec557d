package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"
	"yatube/internal/adapters/httpapi/middleware"
	cachePort "yatube/internal/ports/cache"
	commentPort "yatube/internal/ports/comment"
	feedPort "yatube/internal/ports/feed"
	groupPort "yatube/internal/ports/group"
	postPort "yatube/internal/ports/post"
	storagePort "yatube/internal/ports/storage"
	userPort "yatube/internal/ports/user"
)

// Inbound ports for the controllers; the concrete services are injected from
// main.

type UserUseCase interface {
	Register(ctx context.Context, firstName, lastName, username, email, password string) (*userPort.UserDTO, error)
	Login(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	GetByUsername(ctx context.Context, username string) (*userPort.UserDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID, text, groupID, imagePath string) (*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, postID, text, groupID string) (*postPort.PostDTO, error)
	GetPost(ctx context.Context, postID string) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, postID string) error
}

type CommentUseCase interface {
	CreateComment(ctx context.Context, postID, authorID, text string) (*commentPort.CommentDTO, error)
	CommentsForPost(ctx context.Context, postID string) ([]*commentPort.CommentDTO, error)
}

type FollowerUseCase interface {
	Follow(ctx context.Context, userID, authorID string) error
	Unfollow(ctx context.Context, userID, authorID string) error
	IsFollowing(ctx context.Context, userID, authorID string) (bool, error)
}

type FeedUseCase interface {
	SiteFeed(ctx context.Context, page int) (*feedPort.PageDTO, error)
	GroupFeed(ctx context.Context, groupID string, page int) (*feedPort.PageDTO, error)
	ProfileFeed(ctx context.Context, authorID string, page int) (*feedPort.PageDTO, error)
	FollowFeed(ctx context.Context, userID string, page int) (*feedPort.PageDTO, error)
}

type GroupUseCase interface {
	GetBySlug(ctx context.Context, slug string) (*groupPort.GroupDTO, error)
	ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error)
}

// SetupRoutes wires the controllers behind the URL layout of the site.
func SetupRoutes(
	renderer *Renderer,
	userUC UserUseCase,
	postUC PostUseCase,
	commentUC CommentUseCase,
	followerUC FollowerUseCase,
	feedUC FeedUseCase,
	groupUC GroupUseCase,
	pageCache cachePort.PageCache,
	fileStore storagePort.FileStore,
	jwtKey []byte,
	mediaRoot string,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.SessionUser(jwtKey))

	fc := NewFeedController(feedUC, groupUC, userUC, followerUC, pageCache, renderer)
	pc := NewPostController(postUC, commentUC, groupUC, fileStore, renderer)
	uc := NewUserController(userUC, renderer)

	r.GET("/", fc.Index)
	r.GET("/group/:slug/", fc.GroupPosts)
	r.GET("/profile/:username/", fc.Profile)
	r.GET("/posts/:id/", pc.Detail)

	auth := middleware.LoginRequired()
	r.GET("/create/", auth, pc.CreateForm)
	r.POST("/create/", auth, pc.Create)
	r.GET("/posts/:id/edit/", auth, pc.EditForm)
	r.POST("/posts/:id/edit/", auth, pc.Edit)
	r.POST("/posts/:id/comment/", auth, pc.AddComment)
	r.GET("/follow/", auth, fc.FollowIndex)
	r.GET("/profile/:username/follow/", auth, fc.Follow)
	r.GET("/profile/:username/unfollow/", auth, fc.Unfollow)

	r.GET("/auth/signup/", uc.SignupForm)
	r.POST("/auth/signup/", uc.Signup)
	r.GET("/auth/login/", uc.LoginForm)
	r.POST("/auth/login/", uc.Login)
	r.GET("/auth/logout/", uc.Logout)

	r.Static("/media", mediaRoot)

	r.NoRoute(func(c *gin.Context) {
		renderNotFound(c, renderer)
	})

	return r
}
