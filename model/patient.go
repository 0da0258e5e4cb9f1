package model

import "time"

// Patient represents an admitted patient, keyed by medical record number
// @Description Patient demographics
type Patient struct {
	MRN            string    `json:"mrn" gorm:"column:mrn;primaryKey;size:64" example:"MRN-000123"`
	PatientName    string    `json:"patient_name" gorm:"column:patient_name;not null" example:"John Smith"`
	Age            int       `json:"age" gorm:"column:age" example:"54"`
	Gender         string    `json:"gender" gorm:"column:gender;size:16" example:"Male"`
	AssignedDoctor string    `json:"assigned_doctor" gorm:"column:assigned_doctor" example:"Dr. Jane Doe"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
