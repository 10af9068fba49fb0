package web

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/client"
)

type browser struct {
	t      *testing.T
	srv    *httptest.Server
	client *http.Client
}

func newBrowser(t *testing.T, csrfKey []byte) *browser {
	t.Helper()
	dir, err := session.LoadDirectory("")
	require.NoError(t, err)

	h, err := NewHandler(Options{
		Client:        client.New(client.SimulatorBaseURL, client.NewSimulator(0)),
		Authenticator: session.NewAuthenticator(dir),
		Store:         sessions.NewCookieStore([]byte("test-session-key-0123456789abcdef")),
		CSRFKey:       csrfKey,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &browser{t: t, srv: srv, client: &http.Client{Jar: jar}}
}

// page follows redirects and returns the final path, status and body.
func (b *browser) page(method, path string, form url.Values) (string, int, string) {
	b.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, b.srv.URL+path, body)
	require.NoError(b.t, err)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	resp, err := b.client.Do(req)
	require.NoError(b.t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	return resp.Request.URL.Path, resp.StatusCode, string(data)
}

func (b *browser) login(username, password, role string) (string, string) {
	path, _, body := b.page(http.MethodPost, "/login", url.Values{
		"username": {username}, "password": {password}, "role": {role},
	})
	return path, body
}

func TestAnonymousVisitorIsSentToLogin(t *testing.T) {
	b := newBrowser(t, nil)

	path, status, body := b.page(http.MethodGet, "/camps", nil)
	assert.Equal(t, "/login", path)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `name="username"`)

	path, _, _ = b.page(http.MethodGet, "/register", nil)
	assert.Equal(t, "/register", path, "registration is public")
}

func TestAdminLoginShowsEveryNavItem(t *testing.T) {
	b := newBrowser(t, nil)

	path, body := b.login("admin", "admin123", "admin")
	assert.Equal(t, "/", path)
	assert.Contains(t, body, "Welcome, Admin User!")
	for _, href := range []string{`href="/incidents"`, `href="/camps"`, `href="/donors"`, `href="/requests"`, `href="/users"`} {
		assert.Contains(t, body, href)
	}
	assert.Contains(t, body, "1134 people sheltered")
	assert.Contains(t, body, "Minor injury during tent setup.", "newest incident is listed")
	assert.NotContains(t, body, "Flooding near the", "only the five newest incidents are listed")

	path, _, _ = b.page(http.MethodGet, "/login", nil)
	assert.Equal(t, "/", path, "logged-in users are sent away from the login page")
}

func TestLoginWithWrongRoleFails(t *testing.T) {
	b := newBrowser(t, nil)

	path, body := b.login("donor1", "pass123", "volunteer")
	assert.Equal(t, "/login", path)
	assert.Contains(t, body, "Invalid username, password, or role. Please try again.")

	path, body = b.login("donor1", "", "donor")
	assert.Equal(t, "/login", path)
	assert.Contains(t, body, "Please fill all required fields")

	path, body = b.login("volunteer2", "pass123", "volunteer")
	assert.Equal(t, "/login", path)
	assert.Contains(t, body, "Your account is not active.")
}

func TestDonorSeesOnlyPermittedNav(t *testing.T) {
	b := newBrowser(t, nil)

	path, body := b.login("donor1", "pass123", "donor")
	require.Equal(t, "/", path)
	assert.Contains(t, body, `href="/camps"`)
	assert.Contains(t, body, `href="/requests"`)
	assert.NotContains(t, body, `href="/incidents"`)
	assert.NotContains(t, body, `href="/donors"`)
	assert.NotContains(t, body, `href="/users"`)
}

func TestPagesRender(t *testing.T) {
	b := newBrowser(t, nil)
	b.login("admin", "admin123", "admin")

	tests := []struct {
		path string
		want string
	}{
		{"/incidents", "Road blocked by debris"},
		{"/incidents?q=generator", "Generator failure"},
		{"/incidents/1", "<strong>east entrance</strong>"},
		{"/camps", "Stadium Relief Camp"},
		{"/camps", "505 / 1000 (51%)"},
		{"/camps/1", "Request Resources"},
		{"/donors", "Helping Hands Foundation"},
		{"/donors/1", "jane@example.com"},
		{"/requests", "Medical Supplies"},
		{"/requests/1", "Approve"},
		{"/users", "volunteer2"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, status, body := b.page(http.MethodGet, tt.path, nil)
			assert.Equal(t, http.StatusOK, status)
			assert.Contains(t, body, tt.want)
		})
	}

	_, _, body := b.page(http.MethodGet, "/incidents?q=generator", nil)
	assert.NotContains(t, body, "Road blocked by debris")
}

func TestMissingRecordsAreNotFound(t *testing.T) {
	b := newBrowser(t, nil)
	b.login("admin", "admin123", "admin")

	for path, msg := range map[string]string{
		"/incidents/999": "Incident not found",
		"/incidents/abc": "Incident not found",
		"/camps/42":      "Relief camp not found",
		"/donors/42":     "Donor not found",
		"/requests/42":   "Request not found",
	} {
		_, status, body := b.page(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, status, path)
		assert.Contains(t, body, msg, path)
	}
}

func TestFormActions(t *testing.T) {
	b := newBrowser(t, nil)
	b.login("admin", "admin123", "admin")

	tests := []struct {
		name     string
		action   string
		form     url.Values
		wantPath string
		want     string
	}{
		{"incident missing fields", "/incidents", url.Values{"description": {"Fire"}}, "/incidents", "Please fill all required fields"},
		{"incident", "/incidents", url.Values{
			"description": {"Fire"}, "camp_id": {"1"}, "severity": {"High"}, "reported_by": {"Admin"}, "needs_medical": {"on"},
		}, "/incidents", "Incident reported successfully"},
		{"camp bad number", "/camps", url.Values{
			"name": {"New"}, "location": {"West"}, "capacity": {"lots"}, "current_occupancy": {"0"},
		}, "/camps", "Please enter valid numbers"},
		{"camp", "/camps", url.Values{
			"name": {"New"}, "location": {"West"}, "capacity": {"100"}, "current_occupancy": {"0"},
		}, "/camps", "Relief camp added successfully"},
		{"camp request", "/camps/2/requests", url.Values{
			"resource_id": {"4"}, "quantity": {"20"}, "priority": {"High"},
		}, "/camps/2", "Resource request submitted successfully"},
		{"donor", "/donors", url.Values{
			"name": {"Ann"}, "email": {"ann@example.com"}, "donation_type": {"Food"}, "status": {"Pending"},
		}, "/donors", "Donor added successfully"},
		{"request", "/requests", url.Values{
			"camp_id": {"1"}, "resource_id": {"1"}, "quantity": {"50"}, "priority": {"High"},
		}, "/requests", "Request submitted successfully"},
		{"approve from camps", "/requests/1/approve", url.Values{"return": {"/camps"}}, "/camps", "Request approved successfully"},
		{"approve unknown", "/requests/999/approve", url.Values{}, "/requests", "Failed to approve request"},
		{"approve off-site return", "/requests/2/approve", url.Values{"return": {"//evil.example"}}, "/requests", "Request approved successfully"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, _, body := b.page(http.MethodPost, tt.action, tt.form)
			assert.Equal(t, tt.wantPath, path)
			assert.Contains(t, body, tt.want)
		})
	}
}

func TestUserReview(t *testing.T) {
	b := newBrowser(t, nil)
	b.login("admin", "admin123", "admin")

	_, _, body := b.page(http.MethodPost, "/users/volunteer2/approve", url.Values{})
	assert.Contains(t, body, "User approved successfully")
	_, _, body = b.page(http.MethodPost, "/users/volunteer2/reject", url.Values{})
	assert.Contains(t, body, "User rejected")
	_, _, body = b.page(http.MethodPost, "/users/nobody/approve", url.Values{})
	assert.Contains(t, body, "User not found")
}

func TestRegister(t *testing.T) {
	b := newBrowser(t, nil)
	form := url.Values{
		"full_name": {"Sam Helper"}, "username": {"sam"}, "email": {"sam@example.com"}, "phone": {"+1555"},
		"password": {"pw"}, "confirm_password": {"pw"}, "role": {"volunteer"},
	}

	path, _, body := b.page(http.MethodPost, "/register", form)
	assert.Equal(t, "/login", path)
	assert.Contains(t, body, "Registration successful! Please wait for admin approval.")

	form.Set("username", "admin")
	path, _, body = b.page(http.MethodPost, "/register", form)
	assert.Equal(t, "/register", path)
	assert.Contains(t, body, "Username already exists")
}

func TestExport(t *testing.T) {
	b := newBrowser(t, nil)
	b.login("admin", "admin123", "admin")

	resp, err := b.client.Get(b.srv.URL + "/export/requests.csv")
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="relief-requests-`)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "ID,Camp,Resource,Quantity,Priority,Status", lines[0])
	assert.Len(t, lines, 5)

	_, status, _ := b.page(http.MethodGet, "/export/vehicles.csv", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestExportRequiresPermission(t *testing.T) {
	b := newBrowser(t, nil)
	b.login("donor1", "pass123", "donor")

	path, _, body := b.page(http.MethodGet, "/export/requests.csv", nil)
	assert.Equal(t, "/requests", path)
	assert.Contains(t, body, "You do not have permission to export data")
	assert.NotContains(t, body, "Export CSV")
}

func TestLogout(t *testing.T) {
	b := newBrowser(t, nil)
	b.login("admin", "admin123", "admin")

	path, _, body := b.page(http.MethodPost, "/logout", url.Values{})
	assert.Equal(t, "/login", path)
	assert.Contains(t, body, "You have been logged out")

	path, _, _ = b.page(http.MethodGet, "/", nil)
	assert.Equal(t, "/login", path)
}

func TestCSRFRejectsTokenlessPosts(t *testing.T) {
	b := newBrowser(t, []byte("0123456789abcdef0123456789abcdef"))

	_, status, body := b.page(http.MethodGet, "/login", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `name="gorilla.csrf.Token"`)

	_, status, _ = b.page(http.MethodPost, "/login", url.Values{
		"username": {"admin"}, "password": {"admin123"}, "role": {"admin"},
	})
	assert.Equal(t, http.StatusForbidden, status)
}
