package endpoint_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ariebrainware/ward-census/config"
	"github.com/ariebrainware/ward-census/endpoint"
	"github.com/ariebrainware/ward-census/middleware"
	"github.com/ariebrainware/ward-census/store"
	"github.com/ariebrainware/ward-census/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type publishedEvent struct {
	Type string
	MRN  string
}

// recordingPublisher keeps published events and can be told to fail.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, eventType, mrn string, data map[string]interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{Type: eventType, MRN: mrn})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	pub    *recordingPublisher
	token  string
}

func setupEndpointTest(t *testing.T) *testEnv {
	t.Helper()

	db, err := config.ConnectDatabase()
	require.NoError(t, err)
	require.NoError(t, store.NewGormStore(db).AutoMigrate())

	token, err := util.IssueStaffToken("nurse.ana", time.Hour)
	require.NoError(t, err)

	pub := &recordingPublisher{}
	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.PublisherMiddleware(pub))
	r.Use(middleware.StaffIdentity())

	r.GET("/census", endpoint.GetCensus)
	r.GET("/specialties", endpoint.ListSpecialtyRosters)
	r.GET("/patient/:mrn", endpoint.GetPatientDetail)
	r.GET("/patient/:mrn/notes", endpoint.ListPatientNotes)

	writes := r.Group("/", middleware.RequireStaff())
	writes.POST("/patient", endpoint.AdmitPatient)
	writes.PATCH("/visit/:id/discharge", endpoint.DischargeVisit)
	writes.POST("/patient/:mrn/notes", endpoint.CreatePatientNote)
	writes.PATCH("/notes/:id", endpoint.UpdatePatientNote)

	return &testEnv{router: r, db: db, pub: pub, token: token}
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC)
}

func dayPtr(d int) *time.Time {
	t := day(d)
	return &t
}

// seedWard loads three patients: two active Neurology visits and one
// discharged Hematology visit.
func seedWard(t *testing.T, db *gorm.DB) {
	t.Helper()
	data := store.SeedData{Patients: []store.SeedPatient{
		{
			MRN: "M100", Name: "Alice Brown", Age: 54, Gender: "Female", AssignedDoctor: "Dr. Lee",
			Visits: []store.SeedVisit{{Specialty: "Neurology", Admitted: day(9)}},
			Notes:  []store.SeedNote{{Content: "Admitted with headache", Author: "dr.lee", At: day(9)}},
		},
		{
			MRN: "M200", Name: "Bob Smithers", Age: 61, Gender: "Male",
			Visits: []store.SeedVisit{{Specialty: "Neurology", Admitted: day(10)}},
		},
		{
			MRN: "M300", Name: "John Smith", Age: 47, Gender: "Male",
			Visits: []store.SeedVisit{{Specialty: "Hematology", Admitted: day(1), Discharged: dayPtr(5)}},
		},
	}}
	require.NoError(t, store.ApplySeed(context.Background(), db, data))
}

type apiResponse struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Msg     string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, authed bool) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

var errBrokerDown = errors.New("broker down")

func assertCode(t *testing.T, w *httptest.ResponseRecorder, code int) {
	t.Helper()
	require.Equal(t, code, w.Code, w.Body.String())
}

func pathf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
