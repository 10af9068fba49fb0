package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/RJohnPaul/dms/internal/common"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

// SimulatorBaseURL is the base URL to pair with a Simulator.
const SimulatorBaseURL = "http://simulator.local/api"

// Simulator answers API calls locally with canned data after a fixed delay,
// for running the dashboard without a live API. Creates and status updates
// are acknowledged but not remembered.
type Simulator struct {
	delay  time.Duration
	mux    chi.Router
	nextID atomic.Int64
}

func NewSimulator(delay time.Duration) *Simulator {
	s := &Simulator{delay: delay}
	s.nextID.Store(1000)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/incidents", static(cannedIncidents))
		r.Get("/incidents/{id}", find("Incident", cannedIncidents, func(i model.Incident) int64 { return i.ID }))
		r.Post("/incidents", s.create)
		r.Get("/camps", static(cannedCamps))
		r.Get("/camps/{id}", find("Camp", cannedCamps, func(c model.Camp) int64 { return c.ID }))
		r.Post("/camps", s.create)
		r.Get("/donors", static(cannedDonors))
		r.Get("/donors/{id}", find("Donor", cannedDonors, func(d model.Donor) int64 { return d.ID }))
		r.Post("/donors", s.create)
		r.Get("/requests", static(cannedRequests))
		r.Get("/requests/{id}", find("Request", cannedRequests, func(q model.ReliefRequest) int64 { return q.ID }))
		r.Post("/requests", s.create)
		r.Put("/requests/{id}/status", s.updateStatus)
		r.Get("/resources", static(cannedResources))
		r.Get("/resources/available", static(cannedAvailable))
		r.Get("/resources/requested", static(cannedRequested))
		r.Get("/vehicles", static(cannedVehicles))
		r.Get("/dashboard/stats", static(cannedStats))
		r.Post("/auth/login", s.login)
		r.Post("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
			common.RespondWithMessage(w, http.StatusOK, "Logged out")
		})
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithError(w, http.StatusNotFound, "No simulated response for "+r.Method+" "+r.URL.Path)
	})
	s.mux = r
	return s
}

// Do waits for the configured delay, then routes req to its canned answer.
func (s *Simulator) Do(req *http.Request) (*http.Response, error) {
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		select {
		case <-req.Context().Done():
			t.Stop()
			return nil, req.Context().Err()
		case <-t.C:
		}
	}

	rec := &recorder{header: http.Header{}, status: http.StatusOK}
	s.mux.ServeHTTP(rec, req)
	return &http.Response{
		Status:        strconv.Itoa(rec.status) + " " + http.StatusText(rec.status),
		StatusCode:    rec.status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        rec.header,
		Body:          io.NopCloser(bytes.NewReader(rec.body.Bytes())),
		ContentLength: int64(rec.body.Len()),
		Request:       req,
	}, nil
}

func static(payload interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithJSON(w, http.StatusOK, payload)
	}
}

func (s *Simulator) create(w http.ResponseWriter, r *http.Request) {
	var record map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	record["id"] = s.nextID.Add(1)
	record["created_at"] = time.Now().UTC()
	common.RespondWithJSON(w, http.StatusCreated, record)
}

func (s *Simulator) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || !containsID(cannedRequests, id, func(q model.ReliefRequest) int64 { return q.ID }) {
		common.RespondWithMessage(w, http.StatusNotFound, "Request not found")
		return
	}
	var body model.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, model.StatusUpdate{ID: id, Status: body.Status})
}

func (s *Simulator) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string     `json:"username"`
		Role     model.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user":  map[string]interface{}{"username": body.Username, "role": body.Role},
		"token": "simulated-token",
	})
}

func find[T any](entity string, rows []T, idOf func(T) int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err == nil {
			for _, row := range rows {
				if idOf(row) == id {
					common.RespondWithJSON(w, http.StatusOK, row)
					return
				}
			}
		}
		common.RespondWithMessage(w, http.StatusNotFound, entity+" not found")
	}
}

func containsID[T any](rows []T, id int64, idOf func(T) int64) bool {
	for _, row := range rows {
		if idOf(row) == id {
			return true
		}
	}
	return false
}

type recorder struct {
	header http.Header
	status int
	body   bytes.Buffer
	wrote  bool
}

func (r *recorder) Header() http.Header { return r.header }

func (r *recorder) WriteHeader(status int) {
	if !r.wrote {
		r.status, r.wrote = status, true
	}
}

func (r *recorder) Write(b []byte) (int, error) {
	r.wrote = true
	return r.body.Write(b)
}
