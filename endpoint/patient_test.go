package endpoint_test

import (
	"net/http"
	"testing"

	"github.com/ariebrainware/ward-census/events"
	"github.com/ariebrainware/ward-census/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patientDetail struct {
	Patient    model.Patient `json:"patient"`
	Notes      []model.Note  `json:"notes"`
	NotesError string        `json:"notes_error"`
}

func TestAdmitPatient(t *testing.T) {
	env := setupEndpointTest(t)

	body := map[string]interface{}{
		"mrn":             " M500 ",
		"patient_name":    "  Maria   Lopez ",
		"age":             38,
		"gender":          "Female",
		"assigned_doctor": "Dr. Kim",
		"specialty":       "Rheumatology",
		"admission_date":  day(12),
	}
	w, resp := env.do(t, http.MethodPost, "/patient", body, true)
	assertCode(t, w, http.StatusCreated)

	visit := decode[model.Visit](t, resp.Data)
	assert.NotZero(t, visit.ID)
	assert.Equal(t, "M500", visit.MRN)
	assert.Equal(t, model.StatusActive, visit.PatientStatus)
	assert.Nil(t, visit.DischargeDate)
	require.NotNil(t, visit.Patient)
	assert.Equal(t, "Maria Lopez", visit.Patient.PatientName)
	assert.Equal(t, []string{events.TypePatientAdmitted}, env.pub.types())

	_, census := env.do(t, http.MethodGet, "/census", nil, false)
	assert.Contains(t, string(census.Data), `"total_active":1`)
}

func TestAdmitPatient_ExistingPatientKeepsDemographics(t *testing.T) {
	env := setupEndpointTest(t)
	seedWard(t, env.db)

	body := map[string]interface{}{
		"mrn":          "M300",
		"patient_name": "Someone Else",
		"specialty":    "Neurology",
	}
	w, resp := env.do(t, http.MethodPost, "/patient", body, true)
	assertCode(t, w, http.StatusCreated)
	visit := decode[model.Visit](t, resp.Data)
	require.NotNil(t, visit.Patient)
	assert.Equal(t, "John Smith", visit.Patient.PatientName)
}

func TestAdmitPatient_Rejected(t *testing.T) {
	env := setupEndpointTest(t)

	tests := []struct {
		name   string
		body   interface{}
		authed bool
		code   int
	}{
		{"no staff token", map[string]interface{}{"mrn": "M1", "patient_name": "A", "specialty": "Neurology"}, false, http.StatusUnauthorized},
		{"missing mrn", map[string]interface{}{"patient_name": "A", "specialty": "Neurology"}, true, http.StatusBadRequest},
		{"missing name", map[string]interface{}{"mrn": "M1", "patient_name": "  ", "specialty": "Neurology"}, true, http.StatusBadRequest},
		{"unknown specialty", map[string]interface{}{"mrn": "M1", "patient_name": "A", "specialty": "Cardiology"}, true, http.StatusBadRequest},
		{"negative age", map[string]interface{}{"mrn": "M1", "patient_name": "A", "age": -1, "specialty": "Neurology"}, true, http.StatusBadRequest},
		{"not json", "just a string", true, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := env.do(t, http.MethodPost, "/patient", tt.body, tt.authed)
			assertCode(t, w, tt.code)
			assert.False(t, resp.Success)
		})
	}
	assert.Empty(t, env.pub.types())
}

func TestAdmitPatient_PublishFailureDoesNotFailRequest(t *testing.T) {
	env := setupEndpointTest(t)
	env.pub.err = errBrokerDown

	body := map[string]interface{}{"mrn": "M9", "patient_name": "Ivy", "specialty": "Hematology"}
	w, _ := env.do(t, http.MethodPost, "/patient", body, true)
	assertCode(t, w, http.StatusCreated)
}

func TestGetPatientDetail(t *testing.T) {
	env := setupEndpointTest(t)
	seedWard(t, env.db)

	w, resp := env.do(t, http.MethodGet, "/patient/M100", nil, false)
	assertCode(t, w, http.StatusOK)

	got := decode[patientDetail](t, resp.Data)
	assert.Equal(t, "Alice Brown", got.Patient.PatientName)
	assert.Equal(t, 54, got.Patient.Age)
	require.Len(t, got.Notes, 1)
	assert.Equal(t, "Admitted with headache", got.Notes[0].Content)
	assert.Empty(t, got.NotesError)
}

func TestGetPatientDetail_NotesFailureStillReturnsPatient(t *testing.T) {
	env := setupEndpointTest(t)
	seedWard(t, env.db)
	require.NoError(t, env.db.Migrator().DropTable(&model.Note{}))

	w, resp := env.do(t, http.MethodGet, "/patient/M100", nil, false)
	assertCode(t, w, http.StatusOK)

	got := decode[patientDetail](t, resp.Data)
	assert.Equal(t, "Alice Brown", got.Patient.PatientName)
	assert.Nil(t, got.Notes)
	assert.Contains(t, got.NotesError, "retrieval failed")
}

func TestGetPatientDetail_NotFound(t *testing.T) {
	env := setupEndpointTest(t)

	w, resp := env.do(t, http.MethodGet, "/patient/NOPE", nil, false)
	assertCode(t, w, http.StatusNotFound)
	assert.False(t, resp.Success)
}
