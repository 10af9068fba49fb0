package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RJohnPaul/dms/internal/app/service"
	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/common"
	"github.com/RJohnPaul/dms/internal/common/security"
	"github.com/RJohnPaul/dms/internal/domain/model"
	"github.com/RJohnPaul/dms/internal/platform/config"
)

// table is an in-memory stand-in for one storage table.
type table[T any] struct {
	mu     sync.Mutex
	rows   []T
	failed error
}

func (t *table[T]) list() ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.failed != nil {
		return nil, t.failed
	}
	return append([]T{}, t.rows...), nil
}

type memIncidents struct{ table[model.Incident] }

func (m *memIncidents) List(context.Context) ([]model.Incident, error) { return m.list() }
func (m *memIncidents) FindByID(_ context.Context, id int64) (*model.Incident, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, i := range m.rows {
		if i.ID == id {
			return &i, nil
		}
	}
	return nil, common.NotFound("Incident")
}
func (m *memIncidents) Create(_ context.Context, i *model.Incident) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	i.ID, i.CreatedAt = int64(len(m.rows)+1), &now
	m.rows = append(m.rows, *i)
	return nil
}

type memCamps struct{ table[model.Camp] }

func (m *memCamps) List(context.Context) ([]model.Camp, error) { return m.list() }
func (m *memCamps) FindByID(_ context.Context, id int64) (*model.Camp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.rows {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, common.NotFound("Camp")
}
func (m *memCamps) Create(_ context.Context, c *model.Camp) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *c)
	return nil
}

type memDonors struct{ table[model.Donor] }

func (m *memDonors) List(context.Context) ([]model.Donor, error) { return m.list() }
func (m *memDonors) FindByID(context.Context, int64) (*model.Donor, error) {
	return nil, common.NotFound("Donor")
}
func (m *memDonors) Create(_ context.Context, d *model.Donor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *d)
	return nil
}

type memRequests struct{ table[model.ReliefRequest] }

func (m *memRequests) List(context.Context) ([]model.ReliefRequest, error) { return m.list() }
func (m *memRequests) FindByID(_ context.Context, id int64) (*model.ReliefRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.rows {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, common.NotFound("Request")
}
func (m *memRequests) Create(_ context.Context, q *model.ReliefRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	q.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *q)
	return nil
}
func (m *memRequests) UpdateStatus(_ context.Context, id int64, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].Status = &status
			return nil
		}
	}
	return common.NotFound("Request")
}
func (m *memRequests) QuantityByResource(context.Context, string) ([]model.ResourceQuantity, error) {
	return []model.ResourceQuantity{}, nil
}

type memCatalog struct{}

func (memCatalog) ListResources(context.Context) ([]model.Resource, error) {
	return []model.Resource{{ID: 1, Name: "Bottled Water"}}, nil
}
func (memCatalog) ListVehicles(context.Context) ([]model.Vehicle, error) {
	return []model.Vehicle{}, nil
}

type memStats struct{}

func (memStats) DashboardStats(context.Context) (*model.DashboardStats, error) {
	return &model.DashboardStats{TotalCamps: 2, TotalPeople: 640}, nil
}

type memRevoker struct {
	mu  sync.Mutex
	ids map[string]bool
}

func (m *memRevoker) Revoke(_ context.Context, jti string, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids[jti] = true
	return nil
}

func (m *memRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ids[jti], nil
}

type testAPI struct {
	handler   http.Handler
	incidents *memIncidents
	donors    *memDonors
}

func newTestAPI(t *testing.T, enforce bool) *testAPI {
	t.Helper()
	config.AppConfig = &config.Config{JWTKey: []byte("router-secret"), JWTExp: time.Hour}
	security.InitJWT()
	dir, err := session.LoadDirectory("")
	require.NoError(t, err)

	incidents, camps, donors, requests := &memIncidents{}, &memCamps{}, &memDonors{}, &memRequests{}
	h := NewRouter(Services{
		Auth:      service.NewAuthService(session.NewAuthenticator(dir), &memRevoker{ids: map[string]bool{}}),
		Incident:  service.NewIncidentService(incidents),
		Camp:      service.NewCampService(camps),
		Donor:     service.NewDonorService(donors),
		Request:   service.NewRequestService(requests),
		Resource:  service.NewResourceService(memCatalog{}, requests),
		Dashboard: service.NewDashboardService(memStats{}),
	}, enforce)
	return &testAPI{handler: h, incidents: incidents, donors: donors}
}

func (a *testAPI) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestRootAndHealth(t *testing.T) {
	a := newTestAPI(t, false)

	rec := a.do(t, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the Incident Management System API.", decode(t, rec)["message"])

	rec = a.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, "OK", rec.Body.String())
}

func TestEmptyListIsArray(t *testing.T) {
	a := newTestAPI(t, false)
	rec := a.do(t, http.MethodGet, "/api/incidents", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateThenGetIncident(t *testing.T) {
	a := newTestAPI(t, false)

	rec := a.do(t, http.MethodPost, "/api/incidents",
		`{"description":"Flooded road","camp_id":"1","severity":"High","needs_medical":true,"unknown":"ignored"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	assert.EqualValues(t, 1, created["id"])
	assert.EqualValues(t, 1, created["camp_id"])
	assert.NotContains(t, created, "unknown")

	rec = a.do(t, http.MethodGet, "/api/incidents/1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	for _, k := range []string{"description", "camp_id", "severity", "needs_medical"} {
		assert.Equal(t, created[k], got[k], k)
	}
	assert.NotNil(t, got["id"])
}

func TestNotFoundBodies(t *testing.T) {
	a := newTestAPI(t, false)

	tests := []struct {
		path string
		want string
	}{
		{"/api/camps/42", "Camp not found"},
		{"/api/camps/abc", "Camp not found"},
		{"/api/donors/7", "Donor not found"},
		{"/api/incidents/x1", "Incident not found"},
		{"/api/requests/5", "Request not found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := a.do(t, http.MethodGet, tt.path, "", "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, map[string]interface{}{"message": tt.want}, decode(t, rec))
		})
	}
}

func TestMalformedJSON(t *testing.T) {
	a := newTestAPI(t, false)
	rec := a.do(t, http.MethodPost, "/api/camps", `{"name":`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "Invalid request payload")
}

func TestStorageErrorIs500(t *testing.T) {
	a := newTestAPI(t, false)
	a.donors.failed = errors.New("pgDonorRepository.List query: connection refused")

	rec := a.do(t, http.MethodGet, "/api/donors", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "pgDonorRepository.List query: connection refused", decode(t, rec)["error"])
}

func TestRequestFulfilment(t *testing.T) {
	a := newTestAPI(t, false)

	rec := a.do(t, http.MethodPost, "/api/requests",
		`{"camp_id":1,"resource_id":1,"quantity":50,"priority":"High","status":"Pending"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode(t, rec)["id"]
	require.EqualValues(t, 1, id)

	rec = a.do(t, http.MethodPut, "/api/requests/1/status", `{"status":"Fulfilled"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"status":"Fulfilled"}`, rec.Body.String())

	rec = a.do(t, http.MethodGet, "/api/requests/1", "", "")
	assert.Equal(t, "Fulfilled", decode(t, rec)["status"])

	rec = a.do(t, http.MethodPut, "/api/requests/999/status", `{"status":"Fulfilled"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Request not found", decode(t, rec)["message"])
}

func TestResourceCharts(t *testing.T) {
	a := newTestAPI(t, false)

	rec := a.do(t, http.MethodGet, "/api/resources/available", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var available []model.ResourceQuantity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &available))
	assert.Len(t, available, 6)
	assert.Equal(t, model.ResourceQuantity{Type: "Water", Quantity: 500}, available[1])

	rec = a.do(t, http.MethodGet, "/api/resources/requested", "", "")
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = a.do(t, http.MethodGet, "/api/dashboard/stats", "", "")
	assert.EqualValues(t, 640, decode(t, rec)["totalPeople"])
}

func login(t *testing.T, a *testAPI, username, password string, role model.Role) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password, "role": string(role)})
	rec := a.do(t, http.MethodPost, "/api/auth/login", string(body), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token, _ := decode(t, rec)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestOpenByDefault(t *testing.T) {
	a := newTestAPI(t, false)
	rec := a.do(t, http.MethodGet, "/api/camps", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEnforcedPermissions(t *testing.T) {
	a := newTestAPI(t, true)

	rec := a.do(t, http.MethodGet, "/api/camps", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	donor := login(t, a, "donor1", "pass123", model.RoleDonor)
	rec = a.do(t, http.MethodGet, "/api/camps", "", donor)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = a.do(t, http.MethodGet, "/api/requests", "", donor)
	assert.Equal(t, http.StatusOK, rec.Code)

	admin := login(t, a, "admin", "admin123", model.RoleAdmin)
	rec = a.do(t, http.MethodGet, "/api/camps", "", admin)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = a.do(t, http.MethodPut, "/api/requests/1/status", `{"status":"Fulfilled"}`, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoginMeLogout(t *testing.T) {
	a := newTestAPI(t, false)

	rec := a.do(t, http.MethodPost, "/api/auth/login", `{"username":"donor1","password":"pass123","role":"volunteer"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := login(t, a, "admin", "admin123", model.RoleAdmin)

	rec = a.do(t, http.MethodGet, "/api/auth/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode(t, rec)
	assert.Equal(t, "admin", me["username"])
	assert.Equal(t, "Admin User", me["fullName"])
	assert.NotContains(t, me, "password")

	rec = a.do(t, http.MethodPost, "/api/auth/logout", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(t, http.MethodGet, "/api/auth/me", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token has been revoked", decode(t, rec)["error"])

	rec = a.do(t, http.MethodGet, "/api/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
