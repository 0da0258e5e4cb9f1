package util

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ariebrainware/ward-census/model"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AccessEventType names an audited access or mutation.
type AccessEventType string

const (
	EventEndpointCall       AccessEventType = "ENDPOINT_CALL"
	EventPatientAdmitted    AccessEventType = "PATIENT_ADMITTED"
	EventVisitDischarged    AccessEventType = "VISIT_DISCHARGED"
	EventNoteCreated        AccessEventType = "NOTE_CREATED"
	EventNoteUpdated        AccessEventType = "NOTE_UPDATED"
	EventRateLimitExceeded  AccessEventType = "RATE_LIMIT_EXCEEDED"
	EventSuspiciousActivity AccessEventType = "SUSPICIOUS_ACTIVITY"
)

// AccessEvent is one audited action against the ward records.
type AccessEvent struct {
	EventType AccessEventType
	StaffID   string
	MRN       string
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

var accessLogger = Log
var accessDB *gorm.DB

// SetAccessLoggerDB sets the gorm DB that access events are persisted to.
// Call it during startup once the database is connected; nil disables
// persistence.
func SetAccessLoggerDB(db *gorm.DB) {
	accessDB = db
}

// sanitizeLogValue removes characters that could break log parsing and
// truncates long values.
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogAccessEvent writes the event to the structured log and, when a DB is
// set, persists it as a model.AccessLog. Persistence is best effort.
func LogAccessEvent(event AccessEvent) {
	fields := logrus.Fields{
		"event":      sanitizeLogValue(string(event.EventType)),
		"staff_id":   sanitizeLogValue(event.StaffID),
		"mrn":        sanitizeLogValue(event.MRN),
		"ip":         sanitizeLogValue(event.IP),
		"user_agent": sanitizeLogValue(event.UserAgent),
	}
	// Details go to the DB only; the log line carries the count.
	if len(event.Details) > 0 {
		fields["details_count"] = len(event.Details)
	}
	accessLogger.WithFields(fields).Info(sanitizeLogValue(event.Message))

	if accessDB == nil {
		return
	}

	var details datatypes.JSON
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}

	entry := model.AccessLog{
		EventType: string(event.EventType),
		StaffID:   sanitizeLogValue(event.StaffID),
		MRN:       sanitizeLogValue(event.MRN),
		IP:        sanitizeLogValue(event.IP),
		UserAgent: sanitizeLogValue(event.UserAgent),
		Message:   sanitizeLogValue(event.Message),
		Details:   details,
	}
	if err := accessDB.Create(&entry).Error; err != nil {
		accessLogger.WithError(err).Warn("Failed to persist access event")
	}
}

// MutationParams describes who changed which patient record.
type MutationParams struct {
	StaffID   string
	MRN       string
	IP        string
	UserAgent string
	Details   map[string]interface{}
}

func LogPatientAdmitted(p MutationParams) {
	logMutation(EventPatientAdmitted, p, "Patient admitted")
}

func LogVisitDischarged(p MutationParams) {
	logMutation(EventVisitDischarged, p, "Visit discharged")
}

func LogNoteCreated(p MutationParams) {
	logMutation(EventNoteCreated, p, "Note created")
}

func LogNoteUpdated(p MutationParams) {
	logMutation(EventNoteUpdated, p, "Note updated")
}

func logMutation(eventType AccessEventType, p MutationParams, msg string) {
	LogAccessEvent(AccessEvent{
		EventType: eventType,
		StaffID:   p.StaffID,
		MRN:       p.MRN,
		IP:        p.IP,
		UserAgent: p.UserAgent,
		Message:   msg,
		Details:   p.Details,
	})
}

type RateLimitParams struct {
	StaffID  string
	IP       string
	Endpoint string
}

// LogRateLimitExceeded logs when rate limit is exceeded
func LogRateLimitExceeded(p RateLimitParams) {
	LogAccessEvent(AccessEvent{
		EventType: EventRateLimitExceeded,
		StaffID:   p.StaffID,
		IP:        p.IP,
		Message:   fmt.Sprintf("Rate limit exceeded for endpoint: %s", p.Endpoint),
	})
}

// SetAccessLoggerForTest swaps the logger used for access events and
// returns the previous one.
func SetAccessLoggerForTest(logger *logrus.Logger) *logrus.Logger {
	prev := accessLogger
	accessLogger = logger
	return prev
}
