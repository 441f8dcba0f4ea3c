package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"socialnet/internal/repo/inmemory"
	"socialnet/internal/usecase"
	"socialnet/pkg/jwt"
	"socialnet/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	return newTestServerWithCache(t, nil)
}

func newTestServerWithCache(t *testing.T, redisClient *redis.Client) *testServer {
	log := logger.NewWithLevel("panic")
	store := inmemory.NewStore()
	jwtService := jwt.NewService("e2e-secret", time.Hour)

	router := setupTestRouter()
	RegisterRoutes(router, Handlers{
		User:        NewUserHandler(usecase.NewUserUseCase(store.Users(), nil, redisClient, log), log),
		Auth:        NewAuthHandler(usecase.NewAuthUseCase(store.Users(), jwtService, log), log),
		Post:        NewPostHandler(usecase.NewPostUseCase(store.Posts(), redisClient, log), log),
		Interaction: NewInteractionHandler(usecase.NewInteractionUseCase(store.Posts(), store.Likes(), store.Comments(), nil, log), log),
		Relation:    NewRelationHandler(usecase.NewRelationUseCase(store.Users(), store.Relations(), nil, log), log),
	}, jwtService, nil)

	return &testServer{t: t, router: router}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

// signup creates a user and returns its id and a token.
func (s *testServer) signup(name, username, password string) (string, string) {
	s.t.Helper()
	w := s.do("POST", "/user/new", "", gin.H{"name": name, "username": username, "password": password, "active": true})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do("POST", "/user/auth", "", gin.H{"username": username, "password": password})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	auth := decode[AuthResponse](s.t, w)
	return auth.User.ID, auth.User.Token
}

func TestRouter_AnnScenario(t *testing.T) {
	s := newTestServer(t)

	w := s.do("POST", "/user/new", "", gin.H{"name": "Ann", "username": "ann", "password": "pw1", "active": true})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[map[string]interface{}](t, w)
	annID := created["id"].(string)
	assert.NotContains(t, created, "password")

	w = s.do("POST", "/user/auth", "", gin.H{"username": "ann", "password": "pw1"})
	require.Equal(t, http.StatusOK, w.Code)
	auth := decode[AuthResponse](t, w)
	assert.Equal(t, annID, auth.User.ID)
	token := auth.User.Token

	w = s.do("GET", "/user/"+annID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ann", decode[map[string]interface{}](t, w)["username"])

	w = s.do("PUT", "/user", token, gin.H{"username": "annie"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "annie", decode[map[string]interface{}](t, w)["username"])

	w = s.do("POST", "/post", token, gin.H{"description": "first post"})
	require.Equal(t, http.StatusCreated, w.Code)
	postID := decode[map[string]interface{}](t, w)["id"].(string)

	_, bobToken := s.signup("Bob", "bob", "pw2")

	w = s.do("PUT", "/post/"+postID, bobToken, gin.H{"description": "hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do("DELETE", "/post/"+postID, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do("GET", "/post/"+postID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	post := decode[map[string]interface{}](t, w)
	assert.Equal(t, "first post", post["description"])
	assert.Equal(t, "annie", post["user"].(map[string]interface{})["username"])
}

func TestRouter_AuthRequired(t *testing.T) {
	s := newTestServer(t)

	for _, route := range []struct{ method, path string }{
		{"PUT", "/user"},
		{"DELETE", "/user"},
		{"POST", "/post"},
		{"PUT", "/post/p1"},
		{"DELETE", "/post/p1"},
		{"POST", "/user/u1/follow"},
		{"GET", "/user/blocked"},
		{"POST", "/post/p1/like"},
		{"POST", "/post/p1/comments"},
		{"DELETE", "/comment/c1"},
	} {
		w := s.do(route.method, route.path, "", gin.H{})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}

	w := s.do("POST", "/post", "not-a-token", gin.H{"description": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, w.Body.String())
}

func TestRouter_PublicEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do("GET", "/health", "", nil)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	for _, path := range []string{"/user/ping", "/post/ping"} {
		w = s.do("GET", path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	}

	w = s.do("GET", "/user", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = s.do("GET", "/post/unknown", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	w = s.do("GET", "/user/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_CredentialFailuresAreGeneric(t *testing.T) {
	s := newTestServer(t)
	s.signup("Ann", "ann", "pw1")

	wrongPassword := s.do("POST", "/user/auth", "", gin.H{"username": "ann", "password": "nope"})
	unknownUser := s.do("POST", "/user/auth", "", gin.H{"username": "ghost", "password": "pw1"})

	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, wrongPassword.Code, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestRouter_SocialGraph(t *testing.T) {
	s := newTestServer(t)
	annID, annToken := s.signup("Ann", "ann", "pw1")
	bobID, bobToken := s.signup("Bob", "bob", "pw2")

	assert.Equal(t, http.StatusBadRequest, s.do("POST", "/user/"+annID+"/follow", annToken, nil).Code)
	assert.Equal(t, http.StatusCreated, s.do("POST", "/user/"+bobID+"/follow", annToken, nil).Code)
	assert.Equal(t, http.StatusConflict, s.do("POST", "/user/"+bobID+"/follow", annToken, nil).Code)

	w := s.do("GET", "/user/"+bobID+"/followers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	followers := decode[[]map[string]interface{}](t, w)
	require.Len(t, followers, 1)
	assert.Equal(t, annID, followers[0]["user_id"])
	assert.Equal(t, bobID, followers[0]["user_follow_id"])

	assert.Equal(t, http.StatusCreated, s.do("POST", "/user/"+annID+"/block", bobToken, nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do("POST", "/user/"+bobID+"/follow", annToken, nil).Code)

	w = s.do("GET", "/user/"+bobID+"/followers", "", nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = s.do("GET", "/user/blocked", bobToken, nil)
	blocked := decode[[]map[string]interface{}](t, w)
	require.Len(t, blocked, 1)
	assert.Equal(t, annID, blocked[0]["user_blocked_id"])

	assert.Equal(t, http.StatusNoContent, s.do("DELETE", "/user/"+annID+"/block", bobToken, nil).Code)
	assert.Equal(t, http.StatusCreated, s.do("POST", "/user/"+bobID+"/follow", annToken, nil).Code)
	assert.Equal(t, http.StatusNoContent, s.do("DELETE", "/user/"+bobID+"/follow", annToken, nil).Code)
}

func TestRouter_LikesAndComments(t *testing.T) {
	s := newTestServer(t)
	_, annToken := s.signup("Ann", "ann", "pw1")
	_, bobToken := s.signup("Bob", "bob", "pw2")
	_, carlToken := s.signup("Carl", "carl", "pw3")

	w := s.do("POST", "/post", annToken, gin.H{"description": "hello"})
	postID := decode[map[string]interface{}](t, w)["id"].(string)

	assert.Equal(t, http.StatusCreated, s.do("POST", "/post/"+postID+"/like", bobToken, nil).Code)
	assert.Equal(t, http.StatusConflict, s.do("POST", "/post/"+postID+"/like", bobToken, nil).Code)

	w = s.do("GET", "/post/"+postID+"/likes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	likes := decode[LikesResponse](t, w)
	assert.Equal(t, postID, likes.PostID)
	assert.Equal(t, 1, likes.LikesCount)

	w = s.do("POST", "/post/"+postID+"/comments", bobToken, gin.H{"description": "nice"})
	require.Equal(t, http.StatusCreated, w.Code)
	commentID := decode[map[string]interface{}](t, w)["id"].(string)

	assert.Equal(t, http.StatusBadRequest, s.do("POST", "/post/"+postID+"/comments", bobToken, gin.H{"description": ""}).Code)
	assert.Equal(t, http.StatusForbidden, s.do("DELETE", "/comment/"+commentID, carlToken, nil).Code)

	w = s.do("GET", "/post/"+postID+"/comments", "", nil)
	assert.Len(t, decode[[]map[string]interface{}](t, w), 1)

	assert.Equal(t, http.StatusNoContent, s.do("DELETE", "/post/"+postID, annToken, nil).Code)

	w = s.do("GET", "/post/"+postID, "", nil)
	assert.Equal(t, "null", w.Body.String())
	assert.Equal(t, http.StatusNotFound, s.do("GET", "/post/"+postID+"/comments", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do("DELETE", "/comment/"+commentID, bobToken, nil).Code)
}

func TestRouter_DeleteSelf(t *testing.T) {
	s := newTestServer(t)
	annID, annToken := s.signup("Ann", "ann", "pw1")
	s.do("POST", "/post", annToken, gin.H{"description": "hello"})

	assert.Equal(t, http.StatusNoContent, s.do("DELETE", "/user", annToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do("GET", "/user/"+annID, "", nil).Code)

	w := s.do("GET", "/post", "", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRouter_CachedPostFollowsWrites(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	s := newTestServerWithCache(t, client)

	_, token := s.signup("Ann", "ann", "pw1")

	w := s.do("POST", "/post", token, gin.H{"description": "with image", "image": "AQID"})
	require.Equal(t, http.StatusCreated, w.Code)
	postID := decode[map[string]interface{}](t, w)["id"].(string)

	w = s.do("GET", "/post/"+postID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, mr.Exists("post:"+postID))

	w = s.do("PUT", "/post/"+postID, token, gin.H{"description": "text edit"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do("GET", "/post/"+postID, "", nil)
	post := decode[map[string]interface{}](t, w)
	assert.Equal(t, "text edit", post["description"])
	assert.Equal(t, "AQID", post["image"])

	w = s.do("PUT", "/user", token, gin.H{"username": "annie"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do("GET", "/post/"+postID, "", nil)
	post = decode[map[string]interface{}](t, w)
	assert.Equal(t, "annie", post["user"].(map[string]interface{})["username"])

	w = s.do("DELETE", "/user", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do("GET", "/post/"+postID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}
