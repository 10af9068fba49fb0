package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

// fetch GETs endpoint into a fresh T.
func fetch[T any](ctx context.Context, c *Client, endpoint string) (T, error) {
	var out T
	if err := c.Request(ctx, endpoint, http.MethodGet, nil, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (c *Client) ListIncidents(ctx context.Context) ([]model.Incident, error) {
	return fetch[[]model.Incident](ctx, c, "/incidents")
}

func (c *Client) GetIncident(ctx context.Context, id int64) (*model.Incident, error) {
	var out model.Incident
	if err := c.Request(ctx, "/incidents/"+strconv.FormatInt(id, 10), http.MethodGet, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateIncident(ctx context.Context, in *model.Incident) (*model.Incident, error) {
	var out model.Incident
	if err := c.Request(ctx, "/incidents", http.MethodPost, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCamps(ctx context.Context) ([]model.Camp, error) {
	return fetch[[]model.Camp](ctx, c, "/camps")
}

func (c *Client) GetCamp(ctx context.Context, id int64) (*model.Camp, error) {
	var out model.Camp
	if err := c.Request(ctx, "/camps/"+strconv.FormatInt(id, 10), http.MethodGet, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCamp(ctx context.Context, in *model.Camp) (*model.Camp, error) {
	var out model.Camp
	if err := c.Request(ctx, "/camps", http.MethodPost, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListDonors(ctx context.Context) ([]model.Donor, error) {
	return fetch[[]model.Donor](ctx, c, "/donors")
}

func (c *Client) GetDonor(ctx context.Context, id int64) (*model.Donor, error) {
	var out model.Donor
	if err := c.Request(ctx, "/donors/"+strconv.FormatInt(id, 10), http.MethodGet, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateDonor(ctx context.Context, in *model.Donor) (*model.Donor, error) {
	var out model.Donor
	if err := c.Request(ctx, "/donors", http.MethodPost, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListRequests(ctx context.Context) ([]model.ReliefRequest, error) {
	return fetch[[]model.ReliefRequest](ctx, c, "/requests")
}

func (c *Client) GetRequest(ctx context.Context, id int64) (*model.ReliefRequest, error) {
	var out model.ReliefRequest
	if err := c.Request(ctx, "/requests/"+strconv.FormatInt(id, 10), http.MethodGet, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateRequest(ctx context.Context, in *model.ReliefRequest) (*model.ReliefRequest, error) {
	var out model.ReliefRequest
	if err := c.Request(ctx, "/requests", http.MethodPost, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRequestStatus(ctx context.Context, id int64, status string) (*model.StatusUpdate, error) {
	var out model.StatusUpdate
	endpoint := "/requests/" + strconv.FormatInt(id, 10) + "/status"
	if err := c.Request(ctx, endpoint, http.MethodPut, model.StatusUpdate{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListResources(ctx context.Context) ([]model.Resource, error) {
	return fetch[[]model.Resource](ctx, c, "/resources")
}

func (c *Client) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	return fetch[[]model.Vehicle](ctx, c, "/vehicles")
}

func (c *Client) AvailableResources(ctx context.Context) ([]model.ResourceQuantity, error) {
	return fetch[[]model.ResourceQuantity](ctx, c, "/resources/available")
}

func (c *Client) RequestedResources(ctx context.Context) ([]model.ResourceQuantity, error) {
	return fetch[[]model.ResourceQuantity](ctx, c, "/resources/requested")
}

func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var out model.DashboardStats
	if err := c.Request(ctx, "/dashboard/stats", http.MethodGet, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type LoginResponse struct {
	User  *session.Session `json:"user"`
	Token string           `json:"token"`
}

// Login exchanges credentials for an API token.
func (c *Client) Login(ctx context.Context, username, password string, role model.Role) (*LoginResponse, error) {
	body := map[string]string{"username": username, "password": password, "role": string(role)}
	var out LoginResponse
	if err := c.Request(ctx, "/auth/login", http.MethodPost, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the client's token.
func (c *Client) Logout(ctx context.Context) error {
	return c.Request(ctx, "/auth/logout", http.MethodPost, nil, nil)
}
