package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RJohnPaul/dms/internal/domain/model"
)

func TestRequestSendsJSONAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/requests", r.URL.Path)

		var in model.ReliefRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = 7
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	c := New(srv.URL+"/api/", srv.Client()).WithToken("tok")
	out, err := c.CreateRequest(context.Background(), &model.ReliefRequest{
		CampID: model.IDPtr(1), ResourceID: model.IDPtr(1), Quantity: ptr(50),
		Priority: ptr(model.PriorityHigh), Status: ptr(model.RequestStatusPending),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, 50, *out.Quantity)
}

func TestRequestErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"error body", http.StatusInternalServerError, `{"error":"connection refused"}`, "connection refused"},
		{"message body", http.StatusNotFound, `{"message":"Camp not found"}`, "Camp not found"},
		{"no body", http.StatusBadGateway, ``, "Request failed with status 502"},
		{"html body", http.StatusServiceUnavailable, `<html>down</html>`, "Request failed with status 503"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL, srv.Client()).GetCamp(context.Background(), 1)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.status == http.StatusNotFound, IsNotFound(err))
		})
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, http.DefaultClient).ListDonors(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not API errors")
}

func TestSimulatorListsAndLookups(t *testing.T) {
	c := New(SimulatorBaseURL, NewSimulator(0))
	ctx := context.Background()

	camps, err := c.ListCamps(ctx)
	require.NoError(t, err)
	assert.Len(t, camps, 3)

	camp, err := c.GetCamp(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Hillside School Shelter", *camp.Name)

	_, err = c.GetCamp(ctx, 99)
	assert.True(t, IsNotFound(err))

	stats, err := c.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.PendingRequests)

	resources, err := c.ListResources(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Tents", resources[5].Name)
}

func TestSimulatorWrites(t *testing.T) {
	c := New(SimulatorBaseURL, NewSimulator(0))
	ctx := context.Background()

	created, err := c.CreateIncident(ctx, &model.Incident{Description: ptr("Smoke near tents"), CampID: model.IDPtr(3)})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, "Smoke near tents", *created.Description)

	upd, err := c.UpdateRequestStatus(ctx, 1, model.RequestStatusFulfilled)
	require.NoError(t, err)
	assert.Equal(t, &model.StatusUpdate{ID: 1, Status: model.RequestStatusFulfilled}, upd)

	_, err = c.UpdateRequestStatus(ctx, 999, model.RequestStatusFulfilled)
	assert.True(t, IsNotFound(err))

	login, err := c.Login(ctx, "admin", "admin123", model.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.NoError(t, c.WithToken(login.Token).Logout(ctx))
}

func TestSimulatorDelayHonoursContext(t *testing.T) {
	c := New(SimulatorBaseURL, NewSimulator(time.Hour))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.ListIncidents(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSimulatorUnknownEndpoint(t *testing.T) {
	err := New(SimulatorBaseURL, NewSimulator(0)).Request(context.Background(), "/nowhere", http.MethodGet, nil, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}
