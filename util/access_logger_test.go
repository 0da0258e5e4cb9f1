package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/ariebrainware/ward-census/model"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestLogger captures access log output as JSON lines.
func setupTestLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	prev := SetAccessLoggerForTest(logger)
	t.Cleanup(func() { SetAccessLoggerForTest(prev) })
	return buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func setupAccessDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AccessLog{}))
	SetAccessLoggerDB(db)
	t.Cleanup(func() { SetAccessLoggerDB(nil) })
	return db
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"removes newlines", "hello\nworld", "hello world"},
		{"removes carriage returns", "hello\rworld", "hello world"},
		{"removes tabs", "hello\tworld", "hello world"},
		{"truncates long values", strings.Repeat("a", 250), strings.Repeat("a", 200) + "..."},
		{"handles normal strings", "normal string", "normal string"},
		{"handles empty string", "", ""},
		{"combines multiple issues", "line1\nline2\rline3\ttab", "line1 line2 line3 tab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeLogValue(tt.input))
		})
	}
}

func TestLogAccessEventFields(t *testing.T) {
	buf := setupTestLogger(t)

	LogAccessEvent(AccessEvent{
		EventType: EventNoteCreated,
		StaffID:   "nurse.ana",
		MRN:       "M100",
		IP:        "10.0.0.7",
		UserAgent: "Mozilla/5.0",
		Message:   "Note\ncreated",
		Details:   map[string]interface{}{"note_id": "n1", "length": 12},
	})

	entry := lastEntry(t, buf)
	assert.Equal(t, "NOTE_CREATED", entry["event"])
	assert.Equal(t, "nurse.ana", entry["staff_id"])
	assert.Equal(t, "M100", entry["mrn"])
	assert.Equal(t, "10.0.0.7", entry["ip"])
	assert.Equal(t, "Note created", entry["msg"])
	assert.EqualValues(t, 2, entry["details_count"])
}

func TestLogAccessEventPersists(t *testing.T) {
	setupTestLogger(t)
	db := setupAccessDB(t)

	LogVisitDischarged(MutationParams{
		StaffID: "dr.lee",
		MRN:     "M200",
		IP:      "10.0.0.8",
		Details: map[string]interface{}{"visit_id": 7},
	})

	var rows []model.AccessLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, string(EventVisitDischarged), rows[0].EventType)
	assert.Equal(t, "dr.lee", rows[0].StaffID)
	assert.Equal(t, "M200", rows[0].MRN)
	assert.JSONEq(t, `{"visit_id":7}`, string(rows[0].Details))
}

func TestLogAccessEventPersistFailureIsNotFatal(t *testing.T) {
	buf := setupTestLogger(t)
	db := setupAccessDB(t)
	require.NoError(t, db.Migrator().DropTable(&model.AccessLog{}))

	LogNoteUpdated(MutationParams{StaffID: "dr.lee", MRN: "M1"})

	assert.Contains(t, buf.String(), "Failed to persist access event")
}

func TestMutationHelpers(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(MutationParams)
		event   AccessEventType
		msg     string
	}{
		{"admitted", LogPatientAdmitted, EventPatientAdmitted, "Patient admitted"},
		{"discharged", LogVisitDischarged, EventVisitDischarged, "Visit discharged"},
		{"note created", LogNoteCreated, EventNoteCreated, "Note created"},
		{"note updated", LogNoteUpdated, EventNoteUpdated, "Note updated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := setupTestLogger(t)
			tt.logFunc(MutationParams{StaffID: "s1", MRN: "M9"})

			entry := lastEntry(t, buf)
			assert.Equal(t, string(tt.event), entry["event"])
			assert.Equal(t, tt.msg, entry["msg"])
			assert.Equal(t, "M9", entry["mrn"])
		})
	}
}

func TestLogRateLimitExceeded(t *testing.T) {
	buf := setupTestLogger(t)
	LogRateLimitExceeded(RateLimitParams{StaffID: "s1", IP: "192.168.1.5", Endpoint: "/patient"})

	entry := lastEntry(t, buf)
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", entry["event"])
	assert.Equal(t, "Rate limit exceeded for endpoint: /patient", entry["msg"])
	_, hasDetails := entry["details_count"]
	assert.False(t, hasDetails)
}
