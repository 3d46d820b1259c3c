package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/thenoetrevino/ugcctl/internal/models"
)

// Route names used by the call counters
const (
	RouteListProjects = "list_projects"
	RouteListAll      = "list_all"
	RouteGetProject   = "get_project"
	RouteToggle       = "toggle"
	RouteIndicators   = "indicators"
	RouteValues       = "values"
	RouteExport       = "export"
	RouteHealth       = "health"
)

// Category IDs of the fixture values
const (
	CategoryRestaurant = -866466122
	CategoryCinema     = -530806305
	CategoryFood       = -1767294604
)

// FakeBackend is an in-process UGC API built on chi and httptest.
// Routes live under /api like the real server, /health at the root.
type FakeBackend struct {
	Server *httptest.Server

	mu         sync.Mutex
	projects   []*models.Project
	values     map[int][]models.NumericValue
	indicators []models.ProjectIndicatorDetail
	calls      map[string]int
	failures   map[string]int
	delays     map[string]time.Duration
	lastQuery  map[string]string
	lastAuth   string
	exportBody func(id int, format string, hours int) string
}

// NewFakeBackend starts a backend seeded with DefaultProjects and closes it at cleanup
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	fb := &FakeBackend{
		projects:   DefaultProjects(),
		values:     map[int][]models.NumericValue{},
		indicators: DefaultIndicators(),
		calls:      map[string]int{},
		failures:   map[string]int{},
		delays:     map[string]time.Duration{},
		lastQuery:  map[string]string{},
	}
	for _, p := range fb.projects {
		fb.values[p.ID] = DefaultValues()
	}
	fb.exportBody = func(id int, format string, hours int) string {
		if format == "json" {
			return fmt.Sprintf(`[{"temps_debut":"00:00:00","project":%d,"hours":%d}]`, id, hours)
		}
		return fmt.Sprintf("temps_debut,temps_fin,project\n00:00:00,%02d:00:00,%d\n", hours, id)
	}

	fb.Server = httptest.NewServer(fb.routes())
	t.Cleanup(fb.Server.Close)
	return fb
}

// BaseURL is the API root to hand to api.New
func (fb *FakeBackend) BaseURL() string {
	return fb.Server.URL + "/api"
}

func (fb *FakeBackend) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(fb.record)

	r.Get("/health", fb.track(RouteHealth, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "technical-server"})
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", fb.track(RouteListProjects, fb.handleList))
		r.Get("/projects/all", fb.track(RouteListAll, fb.handleListAll))
		r.Get("/projects/{id}", fb.track(RouteGetProject, fb.handleGet))
		r.Put("/projects/{id}/toggle", fb.track(RouteToggle, fb.handleToggle))
		r.Get("/projects/{id}/indicators", fb.track(RouteIndicators, fb.handleIndicators))
		r.Get("/projects/{id}/values", fb.track(RouteValues, fb.handleValues))
		r.Get("/export/{id}/{format}", fb.track(RouteExport, fb.handleExport))
	})

	return r
}

func (fb *FakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.lastAuth = r.Header.Get("Authorization")
		fb.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// track counts calls, applies injected delays and failures
func (fb *FakeBackend) track(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.calls[route]++
		fb.lastQuery[route] = r.URL.RawQuery
		status := fb.failures[route]
		delay := fb.delays[route]
		fb.mu.Unlock()

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}

		if status != 0 {
			writeDetail(w, status, "injected failure")
			return
		}
		h(w, r)
	}
}

func (fb *FakeBackend) handleList(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	out := make([]*models.Project, 0, len(fb.projects))
	only := r.URL.Query().Get("enabled_only")
	for _, p := range fb.projects {
		if only != "" && strconv.FormatBool(p.Enabled) != only {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	writeJSON(w, http.StatusOK, out)
}

func (fb *FakeBackend) handleListAll(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("token") != "entropy" {
		writeDetail(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()

	out := make([]models.LegacyProject, 0, len(fb.projects))
	for _, p := range fb.projects {
		out = append(out, models.LegacyProject{
			ID:        p.ID,
			Name:      p.Name,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
			IsActive:  p.Enabled,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (fb *FakeBackend) handleGet(w http.ResponseWriter, r *http.Request) {
	p, ok := fb.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (fb *FakeBackend) handleToggle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid id")
		return
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()
	for _, p := range fb.projects {
		if p.ID == id {
			p.Enabled = !p.Enabled
			p.UpdatedAt = models.NewTimestamp(time.Now())
			state := "disabled"
			if p.Enabled {
				state = "enabled"
			}
			writeJSON(w, http.StatusOK, models.ToggleResult{
				Message: "Project " + p.Name + " " + state,
				Enabled: p.Enabled,
			})
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Project not found")
}

func (fb *FakeBackend) handleIndicators(w http.ResponseWriter, r *http.Request) {
	if _, ok := fb.lookup(w, r); !ok {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	writeJSON(w, http.StatusOK, fb.indicators)
}

func (fb *FakeBackend) handleValues(w http.ResponseWriter, r *http.Request) {
	p, ok := fb.lookup(w, r)
	if !ok {
		return
	}
	if !p.Enabled {
		writeDetail(w, http.StatusForbidden, "Project is not active")
		return
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()

	var indicators []models.Indicator
	for _, d := range fb.indicators {
		indicators = append(indicators, d.Indicator)
	}
	writeJSON(w, http.StatusOK, models.ProjectValues{
		Project:    *p,
		Indicators: indicators,
		TimeSlots:  []models.TimeSlot{},
		Values:     fb.values[p.ID],
	})
}

func (fb *FakeBackend) handleExport(w http.ResponseWriter, r *http.Request) {
	hours, err := strconv.Atoi(r.URL.Query().Get("aggregate_hours"))
	if err != nil || (hours != 1 && hours != 3 && hours != 6 && hours != 12) {
		writeDetail(w, http.StatusBadRequest, "Aggregation period must be 1, 3, 6, or 12 hours")
		return
	}

	format := chi.URLParam(r, "format")
	if format != "csv" && format != "json" {
		writeDetail(w, http.StatusNotFound, "Not Found")
		return
	}

	p, ok := fb.lookup(w, r)
	if !ok {
		return
	}
	if !p.Enabled {
		writeDetail(w, http.StatusNotFound, "Project not found or inactive")
		return
	}

	fb.mu.Lock()
	body := fb.exportBody(p.ID, format, hours)
	fb.mu.Unlock()

	if format == "csv" {
		w.Header().Set("Content-Type", "text/csv")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// lookup resolves {id}, writing a 404 when it is unknown.
// The returned project is a copy.
func (fb *FakeBackend) lookup(w http.ResponseWriter, r *http.Request) (*models.Project, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid id")
		return nil, false
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()
	for _, p := range fb.projects {
		if p.ID == id {
			cp := *p
			return &cp, true
		}
	}
	writeDetail(w, http.StatusNotFound, "Project not found")
	return nil, false
}

// Calls returns how many times a route was hit
func (fb *FakeBackend) Calls(route string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.calls[route]
}

// LastQuery returns the raw query string of the last call to a route
func (fb *FakeBackend) LastQuery(route string) string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.lastQuery[route]
}

// LastAuthorization returns the Authorization header of the last request
func (fb *FakeBackend) LastAuthorization() string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.lastAuth
}

// Fail makes a route answer with status until cleared with status 0
func (fb *FakeBackend) Fail(route string, status int) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.failures[route] = status
}

// Delay makes a route wait before answering
func (fb *FakeBackend) Delay(route string, d time.Duration) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.delays[route] = d
}

// SetProjects replaces the catalog
func (fb *FakeBackend) SetProjects(projects []*models.Project) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.projects = projects
}

// SetValues replaces the numeric values of a project
func (fb *FakeBackend) SetValues(projectID int, values []models.NumericValue) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.values[projectID] = values
}

// Project returns a copy of a project's current server-side state
func (fb *FakeBackend) Project(id int) (models.Project, bool) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for _, p := range fb.projects {
		if p.ID == id {
			return *p, true
		}
	}
	return models.Project{}, false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// DefaultProjects mirrors the backend's mock catalog
func DefaultProjects() []*models.Project {
	ts := func(s string) models.Timestamp {
		t, err := models.ParseTimestamp(s)
		if err != nil {
			panic(err)
		}
		return t
	}
	updated := ts("2025-06-15T18:34:37")

	return []*models.Project{
		{ID: -1867723345, Name: "UGC-Nice", Enabled: true, CreatedAt: ts("2025-01-12T12:30:00"), UpdatedAt: updated},
		{ID: -98349789, Name: "UGC-Paris", Enabled: true, CreatedAt: ts("2024-10-09T09:30:00"), UpdatedAt: updated},
		{ID: -621102575, Name: "UGC-Bordeaux", Enabled: false, CreatedAt: ts("2023-11-05T07:30:00"), UpdatedAt: updated},
		{ID: 1235778731, Name: "UGC-Nantes", Enabled: true, CreatedAt: ts("2025-04-20T10:30:00"), UpdatedAt: updated},
		{ID: 1255500501, Name: "UGC-Marseille", Enabled: false, CreatedAt: ts("2024-03-05T06:30:00"), UpdatedAt: updated},
	}
}

// DefaultValues returns four slots with a sparse key set
func DefaultValues() []models.NumericValue {
	day := models.NewTimestamp(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	return []models.NumericValue{
		{TimeBegin: "09:00:00", TimeEnd: "10:00:00", Date: day, Values: map[int]float64{CategoryRestaurant: 15, CategoryCinema: 25}},
		{TimeBegin: "10:00:00", TimeEnd: "11:00:00", Date: day, Values: map[int]float64{CategoryRestaurant: 17, CategoryCinema: 28}},
		{TimeBegin: "11:00:00", TimeEnd: "12:00:00", Date: day, Values: map[int]float64{CategoryCinema: 0}},
		{TimeBegin: "12:00:00", TimeEnd: "13:00:00", Date: day, Values: map[int]float64{CategoryRestaurant: 115, CategoryFood: 50}},
	}
}

// DefaultIndicators returns one indicator with two categories
func DefaultIndicators() []models.ProjectIndicatorDetail {
	return []models.ProjectIndicatorDetail{
		{
			Indicator: models.Indicator{ID: -63195716, Identifier: "frequenting_hourly", Label: "Fréquentation", LabelShort: "Freq.", Timeslots: 24},
			Categories: []models.IndicatorCategory{
				{ID: CategoryRestaurant, Indicator: -63195716, Category: 0, Identifier: "freq_restaurant", Label: "restaurant", Color: "#fafa48", ColorDark: "#cfcf00"},
				{ID: CategoryCinema, Indicator: -63195716, Category: 1, Identifier: "freq_cinema", Label: "cinema", Color: "#ff9100", ColorDark: "#a66511"},
			},
		},
	}
}

// HasQueryParam reports whether a raw query contains key
func HasQueryParam(rawQuery, key string) bool {
	for _, kv := range strings.Split(rawQuery, "&") {
		if k, _, _ := strings.Cut(kv, "="); k == key {
			return true
		}
	}
	return false
}
