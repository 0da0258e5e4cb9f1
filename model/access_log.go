package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AccessLog represents a persisted access or mutation event
type AccessLog struct {
	gorm.Model
	EventType string `json:"event_type" gorm:"column:event_type;type:varchar(64);index"`
	StaffID   string `json:"staff_id" gorm:"column:staff_id;type:varchar(64);index"`
	// MRN is set when the event concerns a single patient record.
	MRN       string         `json:"mrn" gorm:"column:mrn;type:varchar(64);index"`
	IP        string         `json:"ip" gorm:"column:ip;type:varchar(45)"`
	UserAgent string         `json:"user_agent" gorm:"column:user_agent;type:varchar(512)"`
	Message   string         `json:"message" gorm:"column:message;type:text"`
	Details   datatypes.JSON `json:"details" gorm:"column:details;type:json"`
}
