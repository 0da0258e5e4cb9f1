package model

import (
	"time"

	"gorm.io/gorm"
)

// Visit represents one admission episode of a patient under a specialty
// @Description Visit information
type Visit struct {
	gorm.Model
	MRN           string        `json:"mrn" gorm:"column:mrn;size:64;not null;index" example:"MRN-000123"`
	AdmissionDate time.Time     `json:"admission_date" gorm:"column:admission_date;not null;index"`
	DischargeDate *time.Time    `json:"discharge_date" gorm:"column:discharge_date"`
	Specialty     Specialty     `json:"specialty" gorm:"column:specialty;type:varchar(64);index" example:"Neurology"`
	PatientStatus PatientStatus `json:"patient_status" gorm:"column:patient_status;type:varchar(16);index" example:"Active"`
	Patient       *Patient      `json:"patient,omitempty" gorm:"foreignKey:MRN;references:MRN"`
}

// AdmissionRequest represents an admission request
// @Description Admission request information
type AdmissionRequest struct {
	MRN            string    `json:"mrn" example:"MRN-000123"`
	PatientName    string    `json:"patient_name" example:"John Smith"`
	Age            int       `json:"age" example:"54"`
	Gender         string    `json:"gender" example:"Male"`
	AssignedDoctor string    `json:"assigned_doctor" example:"Dr. Jane Doe"`
	Specialty      Specialty `json:"specialty" example:"Neurology"`
	AdmissionDate  time.Time `json:"admission_date,omitempty"`
}
