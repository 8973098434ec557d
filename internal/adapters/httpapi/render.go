package httpapi

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"yatube/internal/config"
	"yatube/internal/core/access"
)

const contentTypeHTML = "text/html; charset=utf-8"

// Renderer renders templates into a buffer so pages can be cached as bytes
// before they are written to the response.
type Renderer struct {
	tpl *template.Template
}

func NewRenderer(glob string) (*Renderer, error) {
	tpl, err := template.New("").Funcs(template.FuncMap{
		"date": func(t time.Time) string { return t.Format("2 Jan 2006 15:04") },
	}).ParseGlob(glob)
	if err != nil {
		return nil, err
	}
	return &Renderer{tpl: tpl}, nil
}

func (r *Renderer) Render(name string, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderHTML(c *gin.Context, r *Renderer, status int, name string, data gin.H) {
	body, err := r.Render(name, data)
	if err != nil {
		config.Logger.Error("template render failed", zap.String("template", name), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Data(status, contentTypeHTML, body)
}

func renderNotFound(c *gin.Context, r *Renderer) {
	renderHTML(c, r, http.StatusNotFound, "404.tmpl", gin.H{
		"Title":   "Page not found",
		"Session": sessionFrom(c),
	})
}

// sessionFrom rebuilds the access-control session the auth middleware left on
// the context. Anonymous requests yield the zero Session.
func sessionFrom(c *gin.Context) access.Session {
	s := access.Session{}
	if id, ok := c.Get("userID"); ok {
		s.UserID, _ = id.(string)
	}
	if name, ok := c.Get("username"); ok {
		s.Username, _ = name.(string)
	}
	return s
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
