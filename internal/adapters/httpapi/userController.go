package httpapi

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/core/errs"
)

type UserController struct {
	users    UserUseCase
	renderer *Renderer
}

func NewUserController(users UserUseCase, renderer *Renderer) *UserController {
	return &UserController{users: users, renderer: renderer}
}

const cookieLifetime = 24 * 60 * 60 // seconds, matches the token lifetime

func (ctl *UserController) SignupForm(c *gin.Context) {
	renderHTML(c, ctl.renderer, http.StatusOK, "signup.tmpl", gin.H{
		"Title":    "Sign up",
		"Username": "",
		"Email":    "",
		"Session":  sessionFrom(c),
	})
}

func (ctl *UserController) Signup(c *gin.Context) {
	_, err := ctl.users.Register(
		c.Request.Context(),
		c.PostForm("first_name"),
		c.PostForm("last_name"),
		c.PostForm("username"),
		c.PostForm("email"),
		c.PostForm("password"),
	)
	if err != nil {
		message := "Could not sign up, try again"
		if errors.Is(err, errs.ErrValidation) {
			message = "Username and password are required"
		} else if errors.Is(err, errs.ErrConflict) {
			message = "Username or email already taken"
		}
		renderHTML(c, ctl.renderer, http.StatusOK, "signup.tmpl", gin.H{
			"Title":     "Sign up",
			"FormError": message,
			"Username":  c.PostForm("username"),
			"Email":     c.PostForm("email"),
			"Session":   sessionFrom(c),
		})
		return
	}

	c.Redirect(http.StatusFound, "/auth/login/")
}

func (ctl *UserController) LoginForm(c *gin.Context) {
	renderHTML(c, ctl.renderer, http.StatusOK, "login.tmpl", gin.H{
		"Title":   "Log in",
		"Next":    c.Query("next"),
		"Session": sessionFrom(c),
	})
}

func (ctl *UserController) Login(c *gin.Context) {
	res, err := ctl.users.Login(c.Request.Context(), c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		renderHTML(c, ctl.renderer, http.StatusOK, "login.tmpl", gin.H{
			"Title":     "Log in",
			"FormError": "Invalid username or password",
			"Next":      c.PostForm("next"),
			"Session":   sessionFrom(c),
		})
		return
	}

	c.SetCookie(middleware.CookieName, res.Token, cookieLifetime, "/", "", false, true)

	c.Redirect(http.StatusFound, safeNext(c.PostForm("next")))
}

// safeNext keeps post-login redirects on-site. Only local paths pass;
// anything absolute or protocol-relative ("//evil.example.com", "/\evil")
// falls back to the feed.
func safeNext(next string) string {
	if next == "" || next[0] != '/' {
		return "/"
	}
	if strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	if u, err := url.Parse(next); err != nil || u.Host != "" || u.Scheme != "" {
		return "/"
	}
	return next
}

func (ctl *UserController) Logout(c *gin.Context) {
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
