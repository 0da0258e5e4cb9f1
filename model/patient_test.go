package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatientModel_Create(t *testing.T) {
	db := setupTestDB(t, "patient_create", &Patient{})

	patient := Patient{
		MRN:            "MRN-001",
		PatientName:    "John Smith",
		Age:            54,
		Gender:         "Male",
		AssignedDoctor: "Dr. Jane Doe",
	}

	err := db.Create(&patient).Error
	assert.NoError(t, err)
	assert.False(t, patient.CreatedAt.IsZero())
}

func TestPatientModel_ReadByMRN(t *testing.T) {
	db := setupTestDB(t, "patient_read", &Patient{})

	db.Create(&Patient{MRN: "MRN-002", PatientName: "Jane Doe", Age: 41, Gender: "Female"})

	var found Patient
	err := db.Where("mrn = ?", "MRN-002").First(&found).Error
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", found.PatientName)
	assert.Equal(t, 41, found.Age)
}

func TestPatientModel_DuplicateMRN(t *testing.T) {
	db := setupTestDB(t, "patient_dup", &Patient{})

	assert.NoError(t, db.Create(&Patient{MRN: "MRN-003", PatientName: "First"}).Error)
	err := db.Create(&Patient{MRN: "MRN-003", PatientName: "Second"}).Error
	assert.Error(t, err)
}
