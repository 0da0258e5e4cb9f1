package model

// Specialty is one of the ward specialties a visit is filed under.
type Specialty string

const (
	GeneralInternalMedicine Specialty = "General Internal Medicine"
	RespiratoryMedicine     Specialty = "Respiratory Medicine"
	InfectiousDiseases      Specialty = "Infectious Diseases"
	Neurology               Specialty = "Neurology"
	Gastroenterology        Specialty = "Gastroenterology"
	Rheumatology            Specialty = "Rheumatology"
	Hematology              Specialty = "Hematology"
	ThrombosisMedicine      Specialty = "Thrombosis Medicine"
	ImmunologyAllergy       Specialty = "Immunology & Allergy"
)

// Specialties is the canonical display and iteration order. Both the census
// and the rosters walk this list; do not sort it.
var Specialties = []Specialty{
	GeneralInternalMedicine,
	RespiratoryMedicine,
	InfectiousDiseases,
	Neurology,
	Gastroenterology,
	Rheumatology,
	Hematology,
	ThrombosisMedicine,
	ImmunologyAllergy,
}

// IsCanonical reports whether s is one of the recognised specialties.
func (s Specialty) IsCanonical() bool {
	for _, v := range Specialties {
		if v == s {
			return true
		}
	}
	return false
}

// PatientStatus is the lifecycle state of a visit.
type PatientStatus string

const (
	StatusActive     PatientStatus = "Active"
	StatusDischarged PatientStatus = "Discharged"
)
