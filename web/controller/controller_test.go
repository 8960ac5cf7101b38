package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"attendix/config"
	"attendix/database"
	"attendix/database/model"
	"attendix/logger"
	"attendix/util/crypto"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
)

func TestMain(m *testing.M) {
	os.Setenv("ATTENDIX_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.DEBUG)
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupRouter opens a fresh database and builds an engine with the same
// middleware and controller wiring the server uses.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "attendix.db")
	if err := database.InitDB(config.SQLite, dbPath); err != nil {
		t.Fatalf("InitDB() error: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := database.GetDB().DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	engine := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	engine.Use(sessions.Sessions("attendix", store))

	g := engine.Group("/")
	api := engine.Group("/api")
	NewIndexController(g, api)
	NewAdminController(api.Group("/admin"))
	NewTeacherController(api.Group("/teacher"))
	NewStudentController(api.Group("/student"))

	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// login performs a login request and returns the session cookies.
func login(t *testing.T, engine *gin.Engine, username, password, role string) []*http.Cookie {
	t.Helper()
	body := `{"username":"` + username + `","password":"` + password + `","role":"` + role + `"}`
	w := doRequest(t, engine, http.MethodPost, "/api/login", body, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, expected 200 (body %s)", w.Code, w.Body.String())
	}
	// Each session save emits a Set-Cookie header; keep the last one like
	// a browser would.
	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "attendix" {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("login response carries no session cookie")
	}
	return []*http.Cookie{sessionCookie}
}

func createTestStudent(t *testing.T, name, username, password string, classId int) *model.Student {
	t.Helper()
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	student := &model.Student{Name: name, Username: username, Password: hash, ClassId: classId}
	if err := database.GetDB().Create(student).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	return student
}

func createTestTeacher(t *testing.T, name, email, password string, approved bool, classId *int) *model.Teacher {
	t.Helper()
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	teacher := &model.Teacher{Name: name, Email: email, Password: hash, IsApproved: approved, ClassId: classId}
	if err := database.GetDB().Create(teacher).Error; err != nil {
		t.Fatalf("create teacher: %v", err)
	}
	return teacher
}

func TestGateRejectsAnonymous(t *testing.T) {
	engine := setupRouter(t)

	paths := []string{
		"/api/admin/pending_teachers",
		"/api/teacher/students",
		"/api/student/data",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := doRequest(t, engine, http.MethodGet, path, "", nil)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, expected 401", w.Code)
			}
		})
	}
}

func TestGateRejectsRoleMismatch(t *testing.T) {
	engine := setupRouter(t)
	createTestStudent(t, "Mina", "mina", "secret", 1)
	cookies := login(t, engine, "mina", "secret", "student")

	for _, path := range []string{"/api/teacher/students", "/api/admin/pending_teachers"} {
		t.Run(path, func(t *testing.T) {
			w := doRequest(t, engine, http.MethodGet, path, "", cookies)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, expected 401", w.Code)
			}
		})
	}
}

func TestLoginFailuresShareOneShape(t *testing.T) {
	engine := setupRouter(t)
	createTestStudent(t, "Mina", "mina", "secret", 1)

	wrongPass := doRequest(t, engine, http.MethodPost, "/api/login",
		`{"username":"mina","password":"nope","role":"student"}`, nil)
	unknownUser := doRequest(t, engine, http.MethodPost, "/api/login",
		`{"username":"ghost","password":"secret","role":"student"}`, nil)

	if wrongPass.Code != http.StatusUnauthorized || unknownUser.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d/%d, expected 401/401", wrongPass.Code, unknownUser.Code)
	}
	if wrongPass.Body.String() != unknownUser.Body.String() {
		t.Errorf("bodies differ: %s vs %s", wrongPass.Body.String(), unknownUser.Body.String())
	}
}

func TestLoginUnapprovedTeacherForbidden(t *testing.T) {
	engine := setupRouter(t)
	createTestTeacher(t, "Pat Lee", "pat@example.com", "secret", false, nil)

	w := doRequest(t, engine, http.MethodPost, "/api/login",
		`{"username":"pat@example.com","password":"secret","role":"teacher"}`, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, expected 403 (body %s)", w.Code, w.Body.String())
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	engine := setupRouter(t)

	for i := 0; i < 2; i++ {
		w := doRequest(t, engine, http.MethodPost, "/api/logout", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("logout #%d status = %d, expected 200", i+1, w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["success"] != true {
			t.Errorf("logout #%d success = %v, expected true", i+1, body["success"])
		}
	}
}

func TestApproveTeacherFlow(t *testing.T) {
	engine := setupRouter(t)
	teacher := createTestTeacher(t, "Pat Lee", "pat@example.com", "secret", false, nil)

	adminCookies := login(t, engine, "admin", "adminpass", "admin")

	w := doRequest(t, engine, http.MethodGet, "/api/admin/pending_teachers", "", adminCookies)
	if w.Code != http.StatusOK {
		t.Fatalf("pending_teachers status = %d, expected 200", w.Code)
	}
	var pending struct {
		Teachers []struct {
			Id    int    `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"teachers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &pending); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(pending.Teachers) != 1 || pending.Teachers[0].Id != teacher.Id {
		t.Fatalf("pending = %+v, expected the unapproved teacher", pending.Teachers)
	}

	w = doRequest(t, engine, http.MethodPost, "/api/admin/approve_teacher",
		`{"teacher_id":`+strconv.Itoa(teacher.Id)+`}`, adminCookies)
	if w.Code != http.StatusOK {
		t.Fatalf("approve_teacher status = %d, expected 200", w.Code)
	}

	teacherCookies := login(t, engine, "pat@example.com", "secret", "teacher")

	// No class assigned yet, so the roster endpoint reports 404.
	w = doRequest(t, engine, http.MethodGet, "/api/teacher/students", "", teacherCookies)
	if w.Code != http.StatusNotFound {
		t.Errorf("students status = %d, expected 404", w.Code)
	}
}

func TestStudentDataEmpty(t *testing.T) {
	engine := setupRouter(t)
	createTestStudent(t, "Mina", "mina", "secret", 1)
	cookies := login(t, engine, "mina", "secret", "student")

	w := doRequest(t, engine, http.MethodGet, "/api/student/data", "", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200 (body %s)", w.Code, w.Body.String())
	}
	var body struct {
		Records    []any `json:"records"`
		Percentage int   `json:"percentage"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Records) != 0 {
		t.Errorf("records = %d, expected 0", len(body.Records))
	}
	if body.Percentage != 0 {
		t.Errorf("percentage = %d, expected 0", body.Percentage)
	}
}
