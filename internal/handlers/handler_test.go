package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/tabibi-api/internal/cache"
	"github.com/harentsoaR/tabibi-api/internal/middleware"
	"github.com/harentsoaR/tabibi-api/internal/models"
	"github.com/harentsoaR/tabibi-api/internal/services"
	"github.com/harentsoaR/tabibi-api/internal/store"
	"github.com/harentsoaR/tabibi-api/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	store  *store.GormStore
}

func newTestServer(t *testing.T, opts ...func(*RouterConfig)) *testServer {
	t.Helper()
	return newTestServerWithCache(t, nil, opts...)
}

func newTestServerWithCache(t *testing.T, listing services.ListingCache, opts ...func(*RouterConfig)) *testServer {
	t.Helper()

	st, err := store.OpenGorm("sqlite", filepath.Join(t.TempDir(), "tabibi.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	jwt, err := utils.NewJWTManager("test-secret", 0)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	h := NewHandler(st, services.NewDirectory(st, listing, zerolog.Nop()), jwt, middleware.NewMetrics(reg), zerolog.Nop())

	cfg := RouterConfig{
		RateLimiter: middleware.NewRateLimiter(1000, 1000),
		Gatherer:    reg,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &testServer{router: NewRouter(h, cfg), store: st}
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "JWT "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) register(t *testing.T, body gin.H) {
	t.Helper()
	w := s.do(t, http.MethodPost, "/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/login", gin.H{"email": email, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

type errorBody struct {
	Errors []struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"errors"`
}

func decodeErrors(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	require.NotEmpty(t, body.Errors)
	return body
}

func doctorBody(name, email, specialization string) gin.H {
	return gin.H{
		"name":           name,
		"email":          email,
		"password":       "secret1",
		"userType":       "doctor",
		"specialization": specialization,
		"address":        "Damascus, Mezzeh",
		"workingHours":   "9-17",
		"phone":          "0999000000",
		"location":       gin.H{"latitude": 33.5, "longitude": 36.3},
	}
}

func patientBody(name, email string) gin.H {
	return gin.H{
		"name":     name,
		"email":    email,
		"password": "secret1",
		"userType": "normal",
		"location": gin.H{"latitude": nil, "longitude": nil},
	}
}

func decodeUser(t *testing.T, w *httptest.ResponseRecorder) models.User {
	t.Helper()
	var u models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u), w.Body.String())
	return u
}

func decodeUsers(t *testing.T, w *httptest.ResponseRecorder) []models.User {
	t.Helper()
	var users []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users), w.Body.String())
	return users
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)
	s.register(t, doctorBody("Dr. Sara", "Sara@Example.com", "Cardiology"))

	token := s.login(t, "sara@example.com", "secret1")

	w := s.do(t, http.MethodGet, "/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var me map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "Dr. Sara", me["name"])
	assert.Equal(t, "sara@example.com", me["email"])
	assert.NotEmpty(t, me["id"])

	w = s.do(t, http.MethodGet, "/profile", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	u := decodeUser(t, w)
	assert.Equal(t, models.UserTypeDoctor, u.UserType)
	require.NotNil(t, u.Profile)
	assert.Equal(t, "Cardiology", u.Profile.Specialization)
	require.NotNil(t, u.Latitude)
	assert.InDelta(t, 33.5, *u.Latitude, 1e-9)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegisterDefaultsToNormalUser(t *testing.T) {
	s := newTestServer(t)
	s.register(t, gin.H{"name": "Omar", "email": "omar@example.com", "password": "secret1"})

	token := s.login(t, "omar@example.com", "secret1")
	w := s.do(t, http.MethodGet, "/profile", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	u := decodeUser(t, w)
	assert.Equal(t, models.UserTypeNormal, u.UserType)
	assert.Nil(t, u.Profile)
	assert.Nil(t, u.Latitude)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newTestServer(t)
	s.register(t, patientBody("Omar", "omar@example.com"))

	w := s.do(t, http.MethodPost, "/register", patientBody("Other", "OMAR@example.com"), "")
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, msgEmailTaken, decodeErrors(t, w).Errors[0].Message)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    gin.H
		field   string
		message string
	}{
		{"missing name", gin.H{"email": "a@b.co", "password": "secret1"}, "name", msgNameRequired},
		{"bad email", gin.H{"name": "A", "email": "not-an-email", "password": "secret1"}, "email", msgEmailInvalid},
		{"short password", gin.H{"name": "A", "email": "a@b.co", "password": "1234"}, "password", msgPasswordTooShort},
		{"unknown user type", gin.H{"name": "A", "email": "a@b.co", "password": "secret1", "userType": "admin"}, "userType", msgUserTypeInvalid},
		{
			"doctor without specialization",
			gin.H{"name": "A", "email": "a@b.co", "password": "secret1", "userType": "doctor", "address": "x", "workingHours": "x", "phone": "x"},
			"specialization", msgSpecializationRequired,
		},
		{
			"latitude out of range",
			gin.H{"name": "A", "email": "a@b.co", "password": "secret1", "location": gin.H{"latitude": 91, "longitude": 0}},
			"latitude", msgLocationInvalid,
		},
		{
			"longitude without latitude",
			gin.H{"name": "A", "email": "a@b.co", "password": "secret1", "location": gin.H{"latitude": nil, "longitude": 36.3}},
			"latitude", msgLocationInvalid,
		},
		{
			"latitude without longitude",
			gin.H{"name": "A", "email": "a@b.co", "password": "secret1", "location": gin.H{"latitude": 33.5}},
			"longitude", msgLocationInvalid,
		},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/register", tt.body, "")
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			body := decodeErrors(t, w)
			assert.Equal(t, tt.field, body.Errors[0].Field)
			assert.Equal(t, tt.message, body.Errors[0].Message)
		})
	}
}

func TestRegisterMalformedBody(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgInvalidRequest, decodeErrors(t, w).Errors[0].Message)
}

func TestLoginFailuresLookAlike(t *testing.T) {
	s := newTestServer(t)
	s.register(t, patientBody("Omar", "omar@example.com"))

	wrongPassword := s.do(t, http.MethodPost, "/login", gin.H{"email": "omar@example.com", "password": "nope!"}, "")
	unknownEmail := s.do(t, http.MethodPost, "/login", gin.H{"email": "ghost@example.com", "password": "secret1"}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Equal(t, msgInvalidCredentials, decodeErrors(t, wrongPassword).Errors[0].Message)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/me"},
		{http.MethodGet, "/profile"},
		{http.MethodPut, "/profile"},
		{http.MethodDelete, "/profile"},
	} {
		w := s.do(t, tc.method, tc.path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)

		w = s.do(t, tc.method, tc.path, nil, "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestUpdateProfileKeepsOneProfile(t *testing.T) {
	s := newTestServer(t)
	s.register(t, doctorBody("Dr. Sara", "sara@example.com", "Cardiology"))
	token := s.login(t, "sara@example.com", "secret1")

	for _, specialty := range []string{"Neurology", "Pediatrics"} {
		body := doctorBody("Dr. Sara Ali", "ignored@example.com", specialty)
		delete(body, "password")
		w := s.do(t, http.MethodPut, "/profile", body, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := s.do(t, http.MethodGet, "/profile", nil, token)
	u := decodeUser(t, w)
	assert.Equal(t, "Dr. Sara Ali", u.Name)
	assert.Equal(t, "sara@example.com", u.Email, "email is not editable")
	require.NotNil(t, u.Profile)
	assert.Equal(t, "Pediatrics", u.Profile.Specialization)

	doctors := decodeUsers(t, s.do(t, http.MethodGet, "/doctors", nil, ""))
	require.Len(t, doctors, 1)
	assert.Equal(t, "Pediatrics", doctors[0].Profile.Specialization)

	// the password was not sent, so the old one still works
	s.login(t, "sara@example.com", "secret1")
}

func TestUpdateProfileChangesPassword(t *testing.T) {
	s := newTestServer(t)
	s.register(t, patientBody("Omar", "omar@example.com"))
	token := s.login(t, "omar@example.com", "secret1")

	body := patientBody("Omar", "omar@example.com")
	body["password"] = "brand-new"
	w := s.do(t, http.MethodPut, "/profile", body, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	s.login(t, "omar@example.com", "brand-new")
	w = s.do(t, http.MethodPost, "/login", gin.H{"email": "omar@example.com", "password": "secret1"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfileSwitchingToNormalLeavesDirectory(t *testing.T) {
	s := newTestServer(t)
	s.register(t, doctorBody("Dr. Sara", "sara@example.com", "Cardiology"))
	token := s.login(t, "sara@example.com", "secret1")

	w := s.do(t, http.MethodPut, "/profile", patientBody("Sara", "sara@example.com"), token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	u := decodeUser(t, s.do(t, http.MethodGet, "/profile", nil, token))
	assert.Equal(t, models.UserTypeNormal, u.UserType)
	assert.Nil(t, u.Profile)
	assert.Empty(t, decodeUsers(t, s.do(t, http.MethodGet, "/doctors", nil, "")))
}

func TestUpdateProfileValidation(t *testing.T) {
	s := newTestServer(t)
	s.register(t, patientBody("Omar", "omar@example.com"))
	token := s.login(t, "omar@example.com", "secret1")

	// becoming a doctor requires the profile fields
	w := s.do(t, http.MethodPut, "/profile", gin.H{"name": "Omar", "userType": "doctor"}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := map[string]bool{}
	for _, e := range decodeErrors(t, w).Errors {
		fields[e.Field] = true
	}
	assert.True(t, fields["specialization"])
	assert.True(t, fields["phone"])
}

func TestUpdateProfileRejectsHalfLocation(t *testing.T) {
	s := newTestServer(t)
	s.register(t, patientBody("Omar", "omar@example.com"))
	token := s.login(t, "omar@example.com", "secret1")

	body := patientBody("Omar", "omar@example.com")
	body["location"] = gin.H{"latitude": 33.5, "longitude": nil}
	w := s.do(t, http.MethodPut, "/profile", body, token)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	e := decodeErrors(t, w).Errors[0]
	assert.Equal(t, "longitude", e.Field)
	assert.Equal(t, msgLocationInvalid, e.Message)

	u := decodeUser(t, s.do(t, http.MethodGet, "/profile", nil, token))
	assert.Nil(t, u.Latitude)
}

func TestDeleteProfile(t *testing.T) {
	s := newTestServer(t)
	s.register(t, doctorBody("Dr. Sara", "sara@example.com", "Cardiology"))
	token := s.login(t, "sara@example.com", "secret1")

	w := s.do(t, http.MethodDelete, "/profile", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, decodeUsers(t, s.do(t, http.MethodGet, "/doctors", nil, "")))

	// the token outlives the account
	w = s.do(t, http.MethodGet, "/profile", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(t, http.MethodDelete, "/profile", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(t, http.MethodPut, "/profile", patientBody("Sara", "sara@example.com"), token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/login", gin.H{"email": "sara@example.com", "password": "secret1"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func seedDirectory(t *testing.T, s *testServer) {
	t.Helper()
	s.register(t, doctorBody("Dr. Sara Haddad", "sara@example.com", "Cardiology"))
	s.register(t, doctorBody("Dr. Adam Khalil", "adam@clinic.org", "Dermatology"))
	s.register(t, doctorBody("Dr. Lina 100%", "lina@example.com", "Pediatrics"))
	s.register(t, doctorBody("Dr. Hélène Émile", "helene@cabinet.fr", "Médecine générale"))
	s.register(t, patientBody("Sara Patient", "patient@example.com"))
}

func TestListDoctors(t *testing.T) {
	tests := []struct {
		q    string
		want []string
	}{
		{"", []string{"Dr. Adam Khalil", "Dr. Hélène Émile", "Dr. Lina 100%", "Dr. Sara Haddad"}},
		{"sara", []string{"Dr. Sara Haddad"}},
		{"CARDIO", []string{"Dr. Sara Haddad"}},
		{"clinic.org", []string{"Dr. Adam Khalil"}},
		{"100%", []string{"Dr. Lina 100%"}},
		{"%", []string{"Dr. Lina 100%"}},
		{"nobody", nil},
		{"émile", []string{"Dr. Hélène Émile"}},
		{"ÉMILE", []string{"Dr. Hélène Émile"}},
		{"médecine", []string{"Dr. Hélène Émile"}},
	}

	run := func(t *testing.T, s *testServer) {
		seedDirectory(t, s)
		for _, tt := range tests {
			t.Run("q="+tt.q, func(t *testing.T) {
				req := httptest.NewRequest(http.MethodGet, "/doctors", nil)
				q := req.URL.Query()
				q.Set("q", tt.q)
				req.URL.RawQuery = q.Encode()
				w := httptest.NewRecorder()
				s.router.ServeHTTP(w, req)
				require.Equal(t, http.StatusOK, w.Code)

				var names []string
				for _, d := range decodeUsers(t, w) {
					assert.Equal(t, models.UserTypeDoctor, d.UserType)
					assert.NotNil(t, d.Profile)
					names = append(names, d.Name)
				}
				assert.Equal(t, tt.want, names)
			})
		}
	}

	t.Run("store", func(t *testing.T) {
		run(t, newTestServer(t))
	})
	t.Run("cached", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })
		run(t, newTestServerWithCache(t, cache.NewDirectoryCache(rdb, 0)))
	})
}

func TestListDoctorsEmptyIsArray(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/doctors", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCachedDirectorySeesWrites(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	s := newTestServerWithCache(t, cache.NewDirectoryCache(rdb, 0))

	s.register(t, doctorBody("Dr. Sara", "sara@example.com", "Cardiology"))
	require.Len(t, decodeUsers(t, s.do(t, http.MethodGet, "/doctors", nil, "")), 1)

	s.register(t, doctorBody("Dr. Adam", "adam@example.com", "Dermatology"))
	assert.Len(t, decodeUsers(t, s.do(t, http.MethodGet, "/doctors", nil, "")), 2)

	token := s.login(t, "adam@example.com", "secret1")
	require.Equal(t, http.StatusOK, s.do(t, http.MethodDelete, "/profile", nil, token).Code)
	assert.Len(t, decodeUsers(t, s.do(t, http.MethodGet, "/doctors", nil, "")), 1)
}

func TestGetDoctor(t *testing.T) {
	s := newTestServer(t)
	s.register(t, doctorBody("Dr. Sara", "sara@example.com", "Cardiology"))
	s.register(t, patientBody("Omar", "omar@example.com"))

	doctors := decodeUsers(t, s.do(t, http.MethodGet, "/doctors", nil, ""))
	require.Len(t, doctors, 1)

	w := s.do(t, http.MethodGet, "/doctors/"+doctors[0].ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dr. Sara", decodeUser(t, w).Name)

	w = s.do(t, http.MethodGet, "/doctors/does-not-exist", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, msgDoctorNotFound, decodeErrors(t, w).Errors[0].Message)

	// a normal user is not a doctor
	patient := decodeUser(t, s.do(t, http.MethodGet, "/profile", nil, s.login(t, "omar@example.com", "secret1")))
	w = s.do(t, http.MethodGet, "/doctors/"+patient.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginRateLimited(t *testing.T) {
	s := newTestServer(t, func(cfg *RouterConfig) {
		cfg.RateLimiter = middleware.NewRateLimiter(0.001, 2)
	})

	creds := gin.H{"email": "ghost@example.com", "password": "secret1"}
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodPost, "/login", creds, "").Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodPost, "/login", creds, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, s.do(t, http.MethodPost, "/login", creds, "").Code)

	// the directory is not limited
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/doctors", nil, "").Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/healthz", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	s.do(t, http.MethodPost, "/login", gin.H{"email": "ghost@example.com", "password": "secret1"}, "")

	w = s.do(t, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `tabibi_login_attempts_total{status="invalid_credentials"} 1`)
	assert.Contains(t, w.Body.String(), `tabibi_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}

func TestHealthReportsClosedStore(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.store.Close())

	w := s.do(t, http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/nope", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, msgNotFound, decodeErrors(t, w).Errors[0].Message)
}

func TestWebClientFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>tabibi</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	s := newTestServer(t, func(cfg *RouterConfig) { cfg.WebDir = dir })

	w := s.do(t, http.MethodGet, "/app.js", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	// client-side routes resolve to the app shell
	w = s.do(t, http.MethodGet, "/doctor/123", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tabibi")

	// API routes still win
	w = s.do(t, http.MethodGet, "/doctors", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCORS(t *testing.T) {
	s := newTestServer(t, func(cfg *RouterConfig) {
		cfg.CORSOrigins = []string{"http://localhost:5173"}
	})

	req := httptest.NewRequest(http.MethodOptions, "/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
