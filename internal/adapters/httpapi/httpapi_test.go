package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"yatube/internal/adapters/database"
	"yatube/internal/adapters/httpapi/middleware"
	redisadapter "yatube/internal/adapters/redis"
	storageadapter "yatube/internal/adapters/storage"
	"yatube/internal/config"
	commentEntity "yatube/internal/core/comment"
	commentapp "yatube/internal/core/comment/service"
	feedapp "yatube/internal/core/feed/service"
	followerapp "yatube/internal/core/follower/service"
	groupapp "yatube/internal/core/group/service"
	postEntity "yatube/internal/core/post"
	postapp "yatube/internal/core/post/service"
	userapp "yatube/internal/core/user/service"
	"yatube/internal/testutil"
)

var testJWTKey = []byte("test-secret")

type env struct {
	router *gin.Engine
	users  *userapp.UserService
	posts  *postapp.PostService
	cache  *redisadapter.PageCacheRedis
}

func setup(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	testutil.InitLogger(t)
	testutil.SetupDB(t)
	_, client := testutil.SetupRedis(t)

	userRepo := database.NewUserRepositoryDatabase()
	postRepo := database.NewPostRepositoryDatabase()

	userSvc := userapp.NewUserService(userRepo, testJWTKey)
	postSvc := postapp.NewPostService(postRepo)
	commentSvc := commentapp.NewCommentService(database.NewCommentRepositoryDatabase(), postRepo)
	followerSvc := followerapp.NewFollowerService(database.NewFollowerRepositoryDatabase())
	feedSvc := feedapp.NewFeedService(database.NewFeedRepositoryDatabase())
	groupSvc := groupapp.NewGroupService(database.NewGroupRepositoryDatabase())
	pageCache := redisadapter.NewPageCacheRedis(client)
	fileStore := storageadapter.NewLocalFileStore(t.TempDir())

	renderer, err := NewRenderer("../../../web/templates/*.tmpl")
	if err != nil {
		t.Fatalf("load templates: %v", err)
	}

	router := SetupRoutes(
		renderer,
		userSvc,
		postSvc,
		commentSvc,
		followerSvc,
		feedSvc,
		groupSvc,
		pageCache,
		fileStore,
		testJWTKey,
		t.TempDir(),
	)

	return &env{router: router, users: userSvc, posts: postSvc, cache: pageCache}
}

// signup registers a user and returns a valid session cookie for them.
func (e *env) signup(t *testing.T, username string) *http.Cookie {
	t.Helper()
	ctx := context.Background()

	if _, err := e.users.Register(ctx, "Test", "User", username, username+"@example.com", "password"); err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	res, err := e.users.Login(ctx, username, "password")
	if err != nil {
		t.Fatalf("login %s: %v", username, err)
	}
	return &http.Cookie{Name: middleware.CookieName, Value: res.Token}
}

func (e *env) get(t *testing.T, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *env) postForm(t *testing.T, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func countPosts(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := config.DB.Model(&postEntity.Post{}).Count(&count).Error; err != nil {
		t.Fatalf("count posts: %v", err)
	}
	return count
}

func TestHomepage(t *testing.T) {
	e := setup(t)
	if w := e.get(t, "/", nil); w.Code != http.StatusOK {
		t.Errorf("GET / = %d, want 200", w.Code)
	}
}

func TestUnknownPageIs404(t *testing.T) {
	e := setup(t)
	if w := e.get(t, "/unexistent-page/", nil); w.Code != http.StatusNotFound {
		t.Errorf("GET /unexistent-page/ = %d, want 404", w.Code)
	}
}

func TestUnknownGroupIs404(t *testing.T) {
	e := setup(t)
	if w := e.get(t, "/group/no-such-slug/", nil); w.Code != http.StatusNotFound {
		t.Errorf("GET unknown group = %d, want 404", w.Code)
	}
}

func TestCreateRedirectsAnonymousToLogin(t *testing.T) {
	e := setup(t)

	w := e.get(t, "/create/", nil)
	if w.Code != http.StatusFound {
		t.Fatalf("GET /create/ = %d, want 302", w.Code)
	}
	want := "/auth/login/?" + url.Values{"next": {"/create/"}}.Encode()
	if loc := w.Header().Get("Location"); loc != want {
		t.Errorf("Location = %q, want %q", loc, want)
	}

	// A POST from an anonymous client must not write anything either.
	w = e.postForm(t, "/create/", url.Values{"text": {"smuggled"}}, nil)
	if w.Code != http.StatusFound || !strings.HasPrefix(w.Header().Get("Location"), "/auth/login/") {
		t.Errorf("anonymous POST /create/ = %d -> %q, want login redirect", w.Code, w.Header().Get("Location"))
	}
	if got := countPosts(t); got != 0 {
		t.Errorf("post count = %d, want 0 after anonymous attempt", got)
	}
}

func TestCreatePost(t *testing.T) {
	e := setup(t)
	cookie := e.signup(t, "auth")

	w := e.postForm(t, "/create/", url.Values{"text": {"my first post"}}, cookie)
	if w.Code != http.StatusFound {
		t.Fatalf("POST /create/ = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/profile/auth/" {
		t.Errorf("Location = %q, want /profile/auth/", loc)
	}
	if got := countPosts(t); got != 1 {
		t.Errorf("post count = %d, want 1", got)
	}
}

func TestCreatePostEmptyTextShowsFormError(t *testing.T) {
	e := setup(t)
	cookie := e.signup(t, "auth")

	w := e.postForm(t, "/create/", url.Values{"text": {"   "}}, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /create/ with empty text = %d, want 200 re-render", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Text must not be empty") {
		t.Error("form error message missing from re-rendered form")
	}
	if got := countPosts(t); got != 0 {
		t.Errorf("post count = %d, want 0", got)
	}
}

func TestEditRedirectsAnonymousToLogin(t *testing.T) {
	e := setup(t)
	cookie := e.signup(t, "auth")

	w := e.postForm(t, "/create/", url.Values{"text": {"a post"}}, cookie)
	if w.Code != http.StatusFound {
		t.Fatalf("create: %d", w.Code)
	}
	post := latestPost(t)

	w = e.get(t, "/posts/"+post.ID.String()+"/edit/", nil)
	if w.Code != http.StatusFound {
		t.Fatalf("anonymous edit = %d, want 302", w.Code)
	}
	want := "/auth/login/?" + url.Values{"next": {"/posts/" + post.ID.String() + "/edit/"}}.Encode()
	if loc := w.Header().Get("Location"); loc != want {
		t.Errorf("Location = %q, want %q", loc, want)
	}
}

func TestEditByNonAuthorRedirectsToDetail(t *testing.T) {
	e := setup(t)
	author := e.signup(t, "auth")
	stranger := e.signup(t, "nonauthor")

	if w := e.postForm(t, "/create/", url.Values{"text": {"original text"}}, author); w.Code != http.StatusFound {
		t.Fatalf("create: %d", w.Code)
	}
	post := latestPost(t)

	w := e.postForm(t, "/posts/"+post.ID.String()+"/edit/", url.Values{"text": {"hijacked"}}, stranger)
	if w.Code != http.StatusFound {
		t.Fatalf("non-author edit = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/posts/"+post.ID.String()+"/" {
		t.Errorf("Location = %q, want post detail", loc)
	}

	var after postEntity.Post
	if err := config.DB.First(&after, "id = ?", post.ID).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if after.Text != "original text" {
		t.Errorf("text = %q, want unchanged", after.Text)
	}
}

func TestEditByAuthor(t *testing.T) {
	e := setup(t)
	author := e.signup(t, "auth")

	if w := e.postForm(t, "/create/", url.Values{"text": {"before"}}, author); w.Code != http.StatusFound {
		t.Fatalf("create: %d", w.Code)
	}
	post := latestPost(t)

	w := e.postForm(t, "/posts/"+post.ID.String()+"/edit/", url.Values{"text": {"after"}}, author)
	if w.Code != http.StatusFound {
		t.Fatalf("author edit = %d, want 302", w.Code)
	}

	var after postEntity.Post
	if err := config.DB.First(&after, "id = ?", post.ID).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if after.Text != "after" {
		t.Errorf("text = %q, want %q", after.Text, "after")
	}
}

func TestCommentRequiresLogin(t *testing.T) {
	e := setup(t)
	author := e.signup(t, "auth")

	if w := e.postForm(t, "/create/", url.Values{"text": {"a post"}}, author); w.Code != http.StatusFound {
		t.Fatalf("create: %d", w.Code)
	}
	post := latestPost(t)

	w := e.postForm(t, "/posts/"+post.ID.String()+"/comment/", url.Values{"text": {"anon comment"}}, nil)
	if w.Code != http.StatusFound || !strings.HasPrefix(w.Header().Get("Location"), "/auth/login/") {
		t.Errorf("anonymous comment = %d -> %q, want login redirect", w.Code, w.Header().Get("Location"))
	}

	var count int64
	if err := config.DB.Model(&commentEntity.Comment{}).Count(&count).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}
	if count != 0 {
		t.Errorf("comment count = %d, want 0", count)
	}
}

func TestAddComment(t *testing.T) {
	e := setup(t)
	author := e.signup(t, "auth")

	if w := e.postForm(t, "/create/", url.Values{"text": {"a post"}}, author); w.Code != http.StatusFound {
		t.Fatalf("create: %d", w.Code)
	}
	post := latestPost(t)

	w := e.postForm(t, "/posts/"+post.ID.String()+"/comment/", url.Values{"text": {"nice one"}}, author)
	if w.Code != http.StatusFound {
		t.Fatalf("comment = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/posts/"+post.ID.String()+"/" {
		t.Errorf("Location = %q, want post detail", loc)
	}

	detail := e.get(t, "/posts/"+post.ID.String()+"/", nil)
	if !strings.Contains(detail.Body.String(), "nice one") {
		t.Error("comment missing from detail page")
	}
}

func TestFollowFlagOnProfile(t *testing.T) {
	e := setup(t)
	reader := e.signup(t, "reader")
	e.signup(t, "author")

	// Before following: the profile offers a follow link.
	w := e.get(t, "/profile/author/", reader)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "/profile/author/follow/") {
		t.Fatalf("profile before follow: code=%d, follow link missing", w.Code)
	}

	if w := e.get(t, "/profile/author/follow/", reader); w.Code != http.StatusFound {
		t.Fatalf("follow = %d, want 302", w.Code)
	}

	w = e.get(t, "/profile/author/", reader)
	if !strings.Contains(w.Body.String(), "/profile/author/unfollow/") {
		t.Error("profile after follow: unfollow link missing")
	}

	if w := e.get(t, "/profile/author/unfollow/", reader); w.Code != http.StatusFound {
		t.Fatalf("unfollow = %d, want 302", w.Code)
	}

	w = e.get(t, "/profile/author/", reader)
	if !strings.Contains(w.Body.String(), "/profile/author/follow/") {
		t.Error("profile after unfollow: follow link missing")
	}
}

func TestFollowFeedContents(t *testing.T) {
	e := setup(t)
	reader := e.signup(t, "reader")
	author := e.signup(t, "followed")
	e.signup(t, "not_following")

	if w := e.postForm(t, "/create/", url.Values{"text": {"followed author post"}}, author); w.Code != http.StatusFound {
		t.Fatalf("create: %d", w.Code)
	}

	if w := e.get(t, "/follow/", reader); strings.Contains(w.Body.String(), "followed author post") {
		t.Error("post visible before following")
	}

	if w := e.get(t, "/profile/followed/follow/", reader); w.Code != http.StatusFound {
		t.Fatalf("follow = %d", w.Code)
	}

	if w := e.get(t, "/follow/", reader); !strings.Contains(w.Body.String(), "followed author post") {
		t.Error("post missing from follow feed after following")
	}
}

// The index cache is only flushed by TTL or an explicit clear, so a deleted
// post keeps rendering until then.
func TestIndexCacheKeepsDeletedPost(t *testing.T) {
	e := setup(t)
	author := e.signup(t, "auth")

	if w := e.postForm(t, "/create/", url.Values{"text": {"cache check"}}, author); w.Code != http.StatusFound {
		t.Fatalf("create: %d", w.Code)
	}
	post := latestPost(t)

	if w := e.get(t, "/", nil); !strings.Contains(w.Body.String(), "cache check") {
		t.Fatal("fresh index does not show the post")
	}

	if err := e.posts.DeletePost(context.Background(), post.ID.String()); err != nil {
		t.Fatalf("delete post: %v", err)
	}

	if w := e.get(t, "/", nil); !strings.Contains(w.Body.String(), "cache check") {
		t.Error("deleted post vanished before the cache was cleared")
	}

	if err := e.cache.Clear(context.Background()); err != nil {
		t.Fatalf("clear cache: %v", err)
	}

	if w := e.get(t, "/", nil); strings.Contains(w.Body.String(), "cache check") {
		t.Error("deleted post still rendered after cache clear")
	}
}

func TestLoginNextStaysOnSite(t *testing.T) {
	e := setup(t)
	e.signup(t, "auth")

	cases := []struct {
		name string
		next string
		want string
	}{
		{"local path", "/create/", "/create/"},
		{"protocol-relative host", "//evil.example.com/phish", "/"},
		{"backslash host", "/\\evil.example.com/phish", "/"},
		{"absolute url", "https://evil.example.com/phish", "/"},
		{"empty", "", "/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := url.Values{
				"username": {"auth"},
				"password": {"password"},
				"next":     {tc.next},
			}
			w := e.postForm(t, "/auth/login/", form, nil)
			if w.Code != http.StatusFound {
				t.Fatalf("login = %d, want 302", w.Code)
			}
			if loc := w.Header().Get("Location"); loc != tc.want {
				t.Errorf("Location = %q, want %q", loc, tc.want)
			}
		})
	}
}

func TestLoginRedirectKeepsQueryString(t *testing.T) {
	e := setup(t)

	w := e.get(t, "/follow/?page=2", nil)
	if w.Code != http.StatusFound {
		t.Fatalf("anonymous follow feed = %d, want 302", w.Code)
	}
	want := "/auth/login/?" + url.Values{"next": {"/follow/?page=2"}}.Encode()
	if loc := w.Header().Get("Location"); loc != want {
		t.Errorf("Location = %q, want %q", loc, want)
	}
}

// Requests past the last page clamp to it, and all of them must land on the
// clamped page's cache entry rather than minting one per requested number.
func TestIndexCacheKeyedByClampedPage(t *testing.T) {
	e := setup(t)
	author := e.signup(t, "auth")
	ctx := context.Background()

	if w := e.postForm(t, "/create/", url.Values{"text": {"only post"}}, author); w.Code != http.StatusFound {
		t.Fatalf("create: %d", w.Code)
	}

	if w := e.get(t, "/?page=99", nil); w.Code != http.StatusOK {
		t.Fatalf("GET /?page=99 = %d, want 200", w.Code)
	}

	if _, ok, err := e.cache.Get(ctx, "index:1"); err != nil || !ok {
		t.Errorf("index:1 cached = %v (err %v), want hit", ok, err)
	}
	if _, ok, err := e.cache.Get(ctx, "index:99"); err != nil || ok {
		t.Errorf("index:99 cached = %v (err %v), want miss", ok, err)
	}
}

func latestPost(t *testing.T) *postEntity.Post {
	t.Helper()
	var p postEntity.Post
	if err := config.DB.Order("created_at DESC").First(&p).Error; err != nil {
		t.Fatalf("load latest post: %v", err)
	}
	return &p
}
