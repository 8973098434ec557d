package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"yatube/internal/config"
	"yatube/internal/core/access"
	"yatube/internal/core/errs"
	storagePort "yatube/internal/ports/storage"
)

type PostController struct {
	posts    PostUseCase
	comments CommentUseCase
	groups   GroupUseCase
	files    storagePort.FileStore
	renderer *Renderer
}

func NewPostController(
	posts PostUseCase,
	comments CommentUseCase,
	groups GroupUseCase,
	files storagePort.FileStore,
	renderer *Renderer,
) *PostController {
	return &PostController{
		posts:    posts,
		comments: comments,
		groups:   groups,
		files:    files,
		renderer: renderer,
	}
}

func (ctl *PostController) Detail(c *gin.Context) {
	ctl.renderDetail(c, "")
}

func (ctl *PostController) renderDetail(c *gin.Context, commentError string) {
	ctx := c.Request.Context()

	p, err := ctl.posts.GetPost(ctx, c.Param("id"))
	if err != nil {
		renderNotFound(c, ctl.renderer)
		return
	}

	comments, err := ctl.comments.CommentsForPost(ctx, p.ID)
	if err != nil {
		config.Logger.Error("comment list failed", zap.String("postID", p.ID), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	renderHTML(c, ctl.renderer, http.StatusOK, "post_detail.tmpl", gin.H{
		"Title":        "Post",
		"Post":         p,
		"Comments":     comments,
		"CommentError": commentError,
		"Session":      sessionFrom(c),
	})
}

func (ctl *PostController) CreateForm(c *gin.Context) {
	ctl.renderCreateForm(c, "", "", "")
}

func (ctl *PostController) renderCreateForm(c *gin.Context, text, groupID, formError string) {
	groups, err := ctl.groups.ListGroups(c.Request.Context())
	if err != nil {
		config.Logger.Warn("group list failed", zap.Error(err))
	}
	renderHTML(c, ctl.renderer, http.StatusOK, "create_post.tmpl", gin.H{
		"Title":     "New post",
		"Groups":    groups,
		"Text":      text,
		"GroupID":   groupID,
		"FormError": formError,
		"IsEdit":    false,
		"Session":   sessionFrom(c),
	})
}

// Create handles the post form. Validation failures re-render the form with
// inline feedback; success redirects to the author's profile.
func (ctl *PostController) Create(c *gin.Context) {
	ctx := c.Request.Context()
	session := sessionFrom(c)

	text := c.PostForm("text")
	groupID := c.PostForm("group")

	imagePath := ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			config.Logger.Warn("image open failed", zap.Error(err))
		} else {
			defer src.Close()
			imagePath, err = ctl.files.Save(file.Filename, src)
			if err != nil {
				config.Logger.Error("image save failed", zap.Error(err))
				ctl.renderCreateForm(c, text, groupID, "Could not save the image, try again")
				return
			}
		}
	}

	if _, err := ctl.posts.CreatePost(ctx, session.UserID, text, groupID, imagePath); err != nil {
		if errors.Is(err, errs.ErrValidation) {
			ctl.renderCreateForm(c, text, groupID, "Text must not be empty")
			return
		}
		config.Logger.Error("create post failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", session.Username))
}

func (ctl *PostController) EditForm(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := ctl.posts.GetPost(ctx, c.Param("id"))
	if err != nil {
		renderNotFound(c, ctl.renderer)
		return
	}

	// Non-authors get the read-only detail page instead of an error.
	if !access.CanEdit(sessionFrom(c), p) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%s/", p.ID))
		return
	}

	groups, err := ctl.groups.ListGroups(ctx)
	if err != nil {
		config.Logger.Warn("group list failed", zap.Error(err))
	}

	groupID := ""
	if p.Group != nil {
		groupID = p.Group.ID
	}

	renderHTML(c, ctl.renderer, http.StatusOK, "create_post.tmpl", gin.H{
		"Title":   "Edit post",
		"Post":    p,
		"Groups":  groups,
		"Text":    p.Text,
		"GroupID": groupID,
		"IsEdit":  true,
		"Session": sessionFrom(c),
	})
}

func (ctl *PostController) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := ctl.posts.GetPost(ctx, c.Param("id"))
	if err != nil {
		renderNotFound(c, ctl.renderer)
		return
	}

	session := sessionFrom(c)
	if !access.CanEdit(session, p) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%s/", p.ID))
		return
	}

	text := c.PostForm("text")
	groupID := c.PostForm("group")

	if _, err := ctl.posts.UpdatePost(ctx, p.ID, text, groupID); err != nil {
		if errors.Is(err, errs.ErrValidation) {
			groups, _ := ctl.groups.ListGroups(ctx)
			renderHTML(c, ctl.renderer, http.StatusOK, "create_post.tmpl", gin.H{
				"Title":     "Edit post",
				"Post":      p,
				"Groups":    groups,
				"Text":      text,
				"GroupID":   groupID,
				"FormError": "Text must not be empty",
				"IsEdit":    true,
				"Session":   session,
			})
			return
		}
		config.Logger.Error("update post failed", zap.String("postID", p.ID), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%s/", p.ID))
}

func (ctl *PostController) AddComment(c *gin.Context) {
	ctx := c.Request.Context()
	session := sessionFrom(c)
	postID := c.Param("id")

	if _, err := ctl.comments.CreateComment(ctx, postID, session.UserID, c.PostForm("text")); err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			ctl.renderDetail(c, "Text must not be empty")
		case errors.Is(err, errs.ErrNotFound):
			renderNotFound(c, ctl.renderer)
		default:
			config.Logger.Error("create comment failed", zap.String("postID", postID), zap.Error(err))
			c.String(http.StatusInternalServerError, "internal error")
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%s/", postID))
}
