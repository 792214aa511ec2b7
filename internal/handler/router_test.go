package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/securecookie"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newel/internal/repository"
	"newel/internal/session"
	"newel/internal/testutil"
)

type testApp struct {
	handler http.Handler
	users   *repository.UserRepository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	users := repository.NewUserRepository(testutil.AcquireDB(t))
	sessions := session.NewManager(securecookie.GenerateRandomKey(32))
	return &testApp{handler: Router(sessions, users), users: users}
}

func (a *testApp) do(req *http.Request) *http.Response {
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec.Result()
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func (a *testApp) register(fullName, username, password, confirm, role, class string) *http.Response {
	return a.do(formRequest("/register", url.Values{
		"full_name":        {fullName},
		"username":         {username},
		"password":         {password},
		"confirm_password": {confirm},
		"role":             {role},
		"class_name":       {class},
	}))
}

func (a *testApp) login(username, password string) *http.Response {
	return a.do(formRequest("/login", url.Values{
		"username": {username},
		"password": {password},
	}))
}

// sessionCookieOf returns the last session cookie set on the response,
// the one a browser would keep.
func sessionCookieOf(t *testing.T, res *http.Response) *http.Cookie {
	t.Helper()
	var found *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == "app-session" {
			found = c
		}
	}
	require.NotNil(t, found, "expected a session cookie")
	return found
}

func bodyOf(t *testing.T, res *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(b)
}

func TestRegisterThenLoginAsTeacher(t *testing.T) {
	app := newTestApp(t)

	res := app.register("Ada", "ada", "x", "x", "teacher", "")
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/login", res.Header.Get("Location"))

	res = app.login("ada", "x")
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/teacher-dashboard", res.Header.Get("Location"))

	dash := httptest.NewRequest(http.MethodGet, "/teacher-dashboard", nil)
	dash.AddCookie(sessionCookieOf(t, res))
	dashRes := app.do(dash)
	assert.Equal(t, http.StatusOK, dashRes.StatusCode)
	body := bodyOf(t, dashRes)
	assert.Contains(t, body, "Teacher dashboard")
	assert.Contains(t, body, "Ada")
}

func TestRegisterDoesNotEstablishSession(t *testing.T) {
	app := newTestApp(t)

	res := app.register("Ada", "ada", "x", "x", "teacher", "")
	require.Equal(t, http.StatusSeeOther, res.StatusCode)

	// The cookie only carries the success notice; the dashboard still
	// demands a login.
	dash := httptest.NewRequest(http.MethodGet, "/teacher-dashboard", nil)
	dash.AddCookie(sessionCookieOf(t, res))
	dashRes := app.do(dash)
	assert.Equal(t, http.StatusSeeOther, dashRes.StatusCode)
	assert.Equal(t, "/login", dashRes.Header.Get("Location"))
}

func TestRegisterPasswordMismatch(t *testing.T) {
	app := newTestApp(t)

	res := app.register("Ada", "ada", "x", "y", "teacher", "")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyOf(t, res), "Passwords do not match.")

	n, err := app.users.CountByUsername(context.Background(), "ada")
	require.NoError(t, err)
	assert.Zero(t, n, "no user row may exist after a mismatched confirmation")
}

func TestRegisterMissingFields(t *testing.T) {
	app := newTestApp(t)

	res := app.register("", "ada", "x", "x", "teacher", "")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyOf(t, res), "All fields are required.")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app := newTestApp(t)

	res := app.register("Ada", "ada", "x", "x", "teacher", "")
	require.Equal(t, http.StatusSeeOther, res.StatusCode)

	res = app.register("Other Ada", "ada", "y", "y", "student", "7A")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyOf(t, res), "Username already exists.")

	n, err := app.users.CountByUsername(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusSeeOther, app.register("Ada", "ada", "x", "x", "teacher", "").StatusCode)

	wrongPassword := app.login("ada", "not-x")
	noSuchUser := app.login("ghost", "anything")

	assert.Equal(t, http.StatusOK, wrongPassword.StatusCode)
	assert.Equal(t, http.StatusOK, noSuchUser.StatusCode)
	assert.Contains(t, bodyOf(t, wrongPassword), "Invalid username or password.")
	assert.Contains(t, bodyOf(t, noSuchUser), "Invalid username or password.")

	assert.Empty(t, wrongPassword.Cookies(), "failed login must not set a session")
	assert.Empty(t, noSuchUser.Cookies(), "failed login must not set a session")
}

func TestLoginAgainstEmptyStore(t *testing.T) {
	app := newTestApp(t)

	res := app.login("ghost", "anything")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyOf(t, res), "Invalid username or password.")
	assert.Empty(t, res.Cookies())
}

func TestStudentDashboardShowsClass(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusSeeOther, app.register("Grace", "grace", "pw", "pw", "student", "7A").StatusCode)

	res := app.login("grace", "pw")
	require.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/student-dashboard", res.Header.Get("Location"))

	dash := httptest.NewRequest(http.MethodGet, "/student-dashboard", nil)
	dash.AddCookie(sessionCookieOf(t, res))
	dashRes := app.do(dash)
	assert.Equal(t, http.StatusOK, dashRes.StatusCode)
	body := bodyOf(t, dashRes)
	assert.Contains(t, body, "Student dashboard")
	assert.Contains(t, body, "7A")
}

func TestTeacherRouteRejectsStudentSession(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusSeeOther, app.register("Grace", "grace", "pw", "pw", "student", "7A").StatusCode)
	loginRes := app.login("grace", "pw")

	req := httptest.NewRequest(http.MethodGet, "/teacher-dashboard", nil)
	req.AddCookie(sessionCookieOf(t, loginRes))
	res := app.do(req)
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get("Location"))
}

func TestGuardedRouteRejectsAnonymous(t *testing.T) {
	app := newTestApp(t)

	res := app.do(httptest.NewRequest(http.MethodGet, "/teacher-dashboard", nil))
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/login", res.Header.Get("Location"))
}

func TestLogoutThenGuardedAccess(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusSeeOther, app.register("Grace", "grace", "pw", "pw", "student", "").StatusCode)
	loginRes := app.login("grace", "pw")

	logout := httptest.NewRequest(http.MethodGet, "/logout", nil)
	logout.AddCookie(sessionCookieOf(t, loginRes))
	logoutRes := app.do(logout)
	assert.Equal(t, http.StatusSeeOther, logoutRes.StatusCode)
	assert.Equal(t, "/", logoutRes.Header.Get("Location"))

	// Same as never having logged in.
	dash := httptest.NewRequest(http.MethodGet, "/student-dashboard", nil)
	dash.AddCookie(sessionCookieOf(t, logoutRes))
	dashRes := app.do(dash)
	assert.Equal(t, http.StatusSeeOther, dashRes.StatusCode)
	assert.Equal(t, "/login", dashRes.Header.Get("Location"))
}

func TestLogoutWithoutSession(t *testing.T) {
	app := newTestApp(t)

	res := app.do(httptest.NewRequest(http.MethodGet, "/logout", nil))
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get("Location"))
}

func TestLoginPageBouncesAuthenticated(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusSeeOther, app.register("Ada", "ada", "x", "x", "teacher", "").StatusCode)
	loginRes := app.login("ada", "x")

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(sessionCookieOf(t, loginRes))
	res := app.do(req)
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/teacher-dashboard", res.Header.Get("Location"))
}

func TestLandingPageShowsFact(t *testing.T) {
	app := newTestApp(t)

	res := app.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyOf(t, res), "Did you know?")
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)

	apitest.New().
		Handler(app.handler).
		Get("/healthz").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.status`, "ok")).
		Assert(jsonpath.Equal(`$.app`, "newel")).
		End()
}
