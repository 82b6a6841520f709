package httpapi

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"socialfeed/internal/adapters/memory"
	leaveapp "socialfeed/internal/core/leave/service"
	postapp "socialfeed/internal/core/post/service"
	taskapp "socialfeed/internal/core/task/service"
	userapp "socialfeed/internal/core/user/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type apiFixture struct {
	t      *testing.T
	router *gin.Engine
	images *memory.ImageStore
}

func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	users := memory.NewUserRepository()
	images := memory.NewImageStore()
	userSvc := userapp.NewUserService(users, []byte("test-secret"), logger)
	postSvc := postapp.NewPostService(memory.NewPostRepository(), users, images, logger)
	leaveSvc := leaveapp.NewLeaveService(memory.NewLeaveRepository(), memory.NewExpirySchedule(), images, logger)
	taskSvc := taskapp.NewTaskService(memory.NewTaskRepository(), logger)

	return &apiFixture{
		t:      t,
		router: SetupRoutes(userSvc, postSvc, leaveSvc, taskSvc, []string{"http://localhost:5173"}, logger),
		images: images,
	}
}

func (f *apiFixture) do(method, path, token string, body any) *httptest.ResponseRecorder {
	f.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(f.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *apiFixture) multipart(method, path string, fields map[string]string, image []byte) *httptest.ResponseRecorder {
	f.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(f.t, mw.WriteField(k, v))
	}
	if image != nil {
		fw, err := mw.CreateFormFile("image", "photo.jpg")
		require.NoError(f.t, err)
		_, err = fw.Write(image)
		require.NoError(f.t, err)
	}
	require.NoError(f.t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// login ثبت‌نام و ورود؛ توکن و شناسه کاربر را برمی‌گرداند
func (f *apiFixture) login(username string) (string, string) {
	f.t.Helper()
	w := f.do(http.MethodPost, "/api/users/register", "", gin.H{"username": username, "password": "secret123"})
	require.Equal(f.t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(http.MethodPost, "/api/users/login", "", gin.H{"username": username, "password": "secret123"})
	require.Equal(f.t, http.StatusOK, w.Code, w.Body.String())
	var res struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(f.t, json.Unmarshal(w.Body.Bytes(), &res))
	return res.Token, res.User.ID
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestAPI_UserAuth(t *testing.T) {
	f := newAPI(t)
	token, id := f.login("alice")

	w := f.do(http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, decode[map[string]any](t, w)["id"])

	w = f.do(http.MethodPost, "/api/users/login", "", gin.H{"username": "alice", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(http.MethodPost, "/api/users/register", "", gin.H{"username": "alice", "password": "secret123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "username already taken", decode[map[string]string](t, w)["message"])

	w = f.do(http.MethodGet, "/api/posts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_PostFlow(t *testing.T) {
	f := newAPI(t)
	aliceToken, aliceID := f.login("alice")
	bobToken, bobID := f.login("bob")

	w := f.do(http.MethodPost, "/api/posts", aliceToken, gin.H{"content": "hello"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	postID := decode[map[string]any](t, w)["id"].(string)

	w = f.do(http.MethodPost, "/api/posts", aliceToken, gin.H{"content": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPut, "/api/posts/"+postID+"/like", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	liked := decode[struct {
		Likes []string `json:"likes"`
	}](t, w)
	assert.Equal(t, []string{bobID}, liked.Likes)

	w = f.do(http.MethodPost, "/api/posts/"+postID+"/comments", bobToken, gin.H{"text": "hi"})
	require.Equal(t, http.StatusOK, w.Code)
	commentID := decode[map[string]any](t, w)["id"].(string)

	w = f.do(http.MethodPost, "/api/posts/"+postID+"/comments/"+commentID+"/replies", aliceToken, gin.H{"text": "hey"})
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodGet, "/api/posts", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var feed []struct {
		User  struct{ ID string } `json:"user"`
		Likes []struct {
			Username string `json:"username"`
		} `json:"likes"`
		Comments []struct {
			Replies []struct {
				User struct {
					Username string `json:"username"`
				} `json:"user"`
			} `json:"replies"`
		} `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed, 1)
	assert.Equal(t, aliceID, feed[0].User.ID)
	require.Len(t, feed[0].Likes, 1)
	assert.Equal(t, "bob", feed[0].Likes[0].Username)
	require.Len(t, feed[0].Comments, 1)
	require.Len(t, feed[0].Comments[0].Replies, 1)
	assert.Equal(t, "alice", feed[0].Comments[0].Replies[0].User.Username)

	w = f.do(http.MethodDelete, "/api/posts/"+postID, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodDelete, "/api/posts/"+postID, aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Post deleted successfully", decode[map[string]string](t, w)["message"])

	w = f.do(http.MethodPut, "/api/posts/"+postID+"/like", bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_PostMultipart(t *testing.T) {
	f := newAPI(t)
	token, _ := f.login("alice")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "cat.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/posts", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, decode[map[string]any](t, w)["image"])
}

func TestAPI_LeaveFlow(t *testing.T) {
	f := newAPI(t)
	fields := map[string]string{
		"id":         "EMP-7",
		"mm_name":    "Aung",
		"position":   "Engineer",
		"remark":     "family matter",
		"start_date": "2030-01-02",
		"end_date":   "2030-01-03",
	}

	w := f.multipart(http.MethodPost, "/api/leave", fields, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Image is required", decode[map[string]string](t, w)["message"])

	w = f.multipart(http.MethodPost, "/api/leave", fields, []byte("jpeg"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	id := created["_id"].(string)
	assert.Equal(t, "EMP-7", created["id"])
	assert.NotEmpty(t, created["cloudinaryId"])

	w = f.do(http.MethodGet, "/api/leave/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodPatch, "/api/leave/"+id, "", gin.H{"remark": "updated"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "updated", decode[map[string]any](t, w)["remark"])

	w = f.do(http.MethodGet, "/api/leave", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = f.do(http.MethodDelete, "/api/leave/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, decode[map[string]any](t, w)["_id"])
	assert.Len(t, f.images.Destroyed(), 1)

	w = f.do(http.MethodGet, "/api/leave/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = f.do(http.MethodDelete, "/api/leave/not-an-id", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_TaskFlow(t *testing.T) {
	f := newAPI(t)

	w := f.do(http.MethodPost, "/api/tasks", "", gin.H{"postId": "p1", "content": "c"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", decode[map[string]string](t, w)["message"])

	w = f.do(http.MethodPost, "/api/tasks", "", gin.H{
		"postId":    "p1",
		"content":   "review",
		"task":      "check copy",
		"state":     "pending",
		"user_time": "2025-05-10T09:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode[map[string]any](t, w)["_id"].(string)

	w = f.do(http.MethodPatch, "/api/tasks/"+id, "", gin.H{"state": "completed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", decode[map[string]any](t, w)["state"])

	w = f.do(http.MethodPatch, "/api/tasks/"+id, "", gin.H{"state": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodGet, "/api/tasks", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = f.do(http.MethodDelete, "/api/tasks/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = f.do(http.MethodDelete, "/api/tasks/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_CORS(t *testing.T) {
	f := newAPI(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
