package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"yatube/internal/config"
	"yatube/internal/core/errs"
	cachePort "yatube/internal/ports/cache"
)

type FeedController struct {
	feeds     FeedUseCase
	groups    GroupUseCase
	users     UserUseCase
	followers FollowerUseCase
	cache     cachePort.PageCache
	renderer  *Renderer
}

func NewFeedController(
	feeds FeedUseCase,
	groups GroupUseCase,
	users UserUseCase,
	followers FollowerUseCase,
	cache cachePort.PageCache,
	renderer *Renderer,
) *FeedController {
	return &FeedController{
		feeds:     feeds,
		groups:    groups,
		users:     users,
		followers: followers,
		cache:     cache,
		renderer:  renderer,
	}
}

// Index serves the site feed through the rendered-page cache. Entries live
// for the configured TTL and are not invalidated by writes, so a freshly
// deleted post may stay on the page until the entry expires.
func (ctl *FeedController) Index(c *gin.Context) {
	ctx := c.Request.Context()
	page := pageParam(c)
	key := fmt.Sprintf("index:%d", page)

	if body, ok, err := ctl.cache.Get(ctx, key); err == nil && ok {
		c.Data(http.StatusOK, contentTypeHTML, body)
		return
	} else if err != nil {
		config.Logger.Warn("page cache read failed", zap.Error(err))
	}

	pg, err := ctl.feeds.SiteFeed(ctx, page)
	if err != nil {
		config.Logger.Error("site feed failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	// Out-of-range requests clamp to the last page; re-key on the clamped
	// number so every such request shares one cache entry.
	if pg.Number != page {
		key = fmt.Sprintf("index:%d", pg.Number)
		if body, ok, err := ctl.cache.Get(ctx, key); err == nil && ok {
			c.Data(http.StatusOK, contentTypeHTML, body)
			return
		}
	}

	body, err := ctl.renderer.Render("index.tmpl", gin.H{
		"Title": "Latest updates on the site",
		"Page":  pg,
	})
	if err != nil {
		config.Logger.Error("template render failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	if err := ctl.cache.Set(ctx, key, body, config.CacheTTL()); err != nil {
		config.Logger.Warn("page cache write failed", zap.Error(err))
	}
	c.Data(http.StatusOK, contentTypeHTML, body)
}

func (ctl *FeedController) GroupPosts(c *gin.Context) {
	ctx := c.Request.Context()

	g, err := ctl.groups.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		renderNotFound(c, ctl.renderer)
		return
	}

	pg, err := ctl.feeds.GroupFeed(ctx, g.ID, pageParam(c))
	if err != nil {
		config.Logger.Error("group feed failed", zap.String("slug", g.Slug), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	renderHTML(c, ctl.renderer, http.StatusOK, "group_list.tmpl", gin.H{
		"Title":   fmt.Sprintf("Posts of community %s", g.Title),
		"Group":   g,
		"Page":    pg,
		"Session": sessionFrom(c),
	})
}

// Profile shows an author's feed plus whether the visitor follows them. The
// flag is always false for anonymous visitors and for the author themself.
func (ctl *FeedController) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	author, err := ctl.users.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		renderNotFound(c, ctl.renderer)
		return
	}

	pg, err := ctl.feeds.ProfileFeed(ctx, author.ID, pageParam(c))
	if err != nil {
		config.Logger.Error("profile feed failed", zap.String("username", author.Username), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	session := sessionFrom(c)
	following := false
	if session.Authenticated() {
		following, err = ctl.followers.IsFollowing(ctx, session.UserID, author.ID)
		if err != nil {
			config.Logger.Warn("follow lookup failed", zap.Error(err))
		}
	}

	renderHTML(c, ctl.renderer, http.StatusOK, "profile.tmpl", gin.H{
		"Title":     fmt.Sprintf("Profile of %s", author.Username),
		"Author":    author,
		"Page":      pg,
		"Following": following,
		"Session":   session,
	})
}

// FollowIndex is the feed of posts by authors the visitor follows.
func (ctl *FeedController) FollowIndex(c *gin.Context) {
	ctx := c.Request.Context()
	session := sessionFrom(c)

	pg, err := ctl.feeds.FollowFeed(ctx, session.UserID, pageParam(c))
	if err != nil {
		config.Logger.Error("follow feed failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	renderHTML(c, ctl.renderer, http.StatusOK, "follow.tmpl", gin.H{
		"Title":   "Posts of authors you follow",
		"Page":    pg,
		"Session": session,
	})
}

func (ctl *FeedController) Follow(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.Param("username")

	author, err := ctl.users.GetByUsername(ctx, username)
	if err != nil {
		renderNotFound(c, ctl.renderer)
		return
	}

	session := sessionFrom(c)
	if err := ctl.followers.Follow(ctx, session.UserID, author.ID); err != nil {
		// Self-follow and double-follow end up here; the profile page is
		// the right answer either way.
		if !errors.Is(err, errs.ErrConflict) {
			config.Logger.Error("follow failed", zap.String("author", username), zap.Error(err))
		}
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", username))
}

func (ctl *FeedController) Unfollow(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.Param("username")

	author, err := ctl.users.GetByUsername(ctx, username)
	if err != nil {
		renderNotFound(c, ctl.renderer)
		return
	}

	session := sessionFrom(c)
	if err := ctl.followers.Unfollow(ctx, session.UserID, author.ID); err != nil {
		config.Logger.Error("unfollow failed", zap.String("author", username), zap.Error(err))
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", username))
}
