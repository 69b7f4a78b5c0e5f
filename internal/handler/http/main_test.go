package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	handler "github.com/mikiasgoitom/MidnightMuse/internal/handler/http"
	"github.com/mikiasgoitom/MidnightMuse/internal/handler/http/mocks"
	"github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

var (
	regularUser = &entity.User{ID: "u-1", Name: "Ada", Email: "ada@example.com", Role: entity.UserRoleUser, JoinedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	adminUser   = &entity.User{ID: "admin-1", Name: "Admin", Email: "admin@example.com", Role: entity.UserRoleAdmin, JoinedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
)

type testDeps struct {
	auth      *mocks.MockAuthUsecase
	users     *mocks.MockUserUsecase
	posts     *mocks.MockPostUsecase
	comments  *mocks.MockCommentUsecase
	dashboard *mocks.MockDashboardUsecase
	ai        *mocks.MockAIUsecase
}

func newDeps() *testDeps {
	return &testDeps{
		auth:      mocks.NewMockAuthUsecase(),
		users:     mocks.NewMockUserUsecase(regularUser, adminUser),
		posts:     mocks.NewMockPostUsecase(),
		comments:  mocks.NewMockCommentUsecase(),
		dashboard: &mocks.MockDashboardUsecase{},
		ai:        &mocks.MockAIUsecase{Reply: "Hello, night owl."},
	}
}

func setupRouter(d *testDeps, opts handler.RouterOptions) *gin.Engine {
	r := gin.New()
	handler.NewRouter(d.auth, d.users, d.posts, d.comments, d.dashboard, d.ai, opts).SetupRoutes(r)
	return r
}

func defaultRouter(d *testDeps) *gin.Engine {
	return setupRouter(d, handler.RouterOptions{AllowHeaderAuth: true, RateLimitPerSecond: 1000})
}

// doJSON sends body (marshalled when not nil) and returns the recorder.
func doJSON(r http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func asUser(u *entity.User) map[string]string {
	return map[string]string{"X-User-Id": u.ID}
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
