package census

import (
	"time"

	"github.com/ariebrainware/ward-census/model"
)

// DefaultDateLayout renders dates as month/day/year without padding.
const DefaultDateLayout = "1/2/2006"

// Badge colours derived from a visit's status.
const (
	BadgeGreen = "green"
	BadgeRed   = "red"
	BadgeGray  = "gray"
)

// RosterEntry is one visit as shown in a specialty roster. Dates are
// already formatted for display.
type RosterEntry struct {
	MRN           string              `json:"mrn"`
	PatientName   string              `json:"patient_name"`
	AdmissionDate string              `json:"admission_date"`
	DischargeDate *string             `json:"discharge_date"`
	PatientStatus model.PatientStatus `json:"patient_status"`
	StatusBadge   string              `json:"status_badge"`
}

// SpecialtyGroup is the roster of one specialty.
type SpecialtyGroup struct {
	Specialty model.Specialty `json:"specialty"`
	Patients  []RosterEntry   `json:"patients"`
}

// Builder turns joined visit rows into specialty rosters.
type Builder struct {
	Layout   string
	Location *time.Location
}

func NewBuilder(layout string, loc *time.Location) *Builder {
	if layout == "" {
		layout = DefaultDateLayout
	}
	if loc == nil {
		loc = time.Local
	}
	return &Builder{Layout: layout, Location: loc}
}

// BuildRosters partitions visits into one group per canonical specialty, in
// canonical order. Input order is kept inside each group. Visits under an
// unknown specialty are dropped. A visit without its patient fails the
// whole build with *model.IntegrityError.
func (b *Builder) BuildRosters(visits []model.Visit) ([]SpecialtyGroup, error) {
	groups := make([]SpecialtyGroup, len(model.Specialties))
	index := make(map[model.Specialty]int, len(model.Specialties))
	for i, s := range model.Specialties {
		groups[i] = SpecialtyGroup{Specialty: s, Patients: []RosterEntry{}}
		index[s] = i
	}

	for _, v := range visits {
		i, ok := index[v.Specialty]
		if !ok {
			continue
		}
		entry, err := b.entry(v)
		if err != nil {
			return nil, err
		}
		groups[i].Patients = append(groups[i].Patients, entry)
	}
	return groups, nil
}

func (b *Builder) entry(v model.Visit) (RosterEntry, error) {
	if v.Patient == nil {
		return RosterEntry{}, &model.IntegrityError{MRN: v.MRN, Reason: "visit has no matching patient"}
	}

	entry := RosterEntry{
		MRN:           v.MRN,
		PatientName:   v.Patient.PatientName,
		AdmissionDate: b.format(v.AdmissionDate),
		PatientStatus: v.PatientStatus,
		StatusBadge:   StatusBadge(v.PatientStatus),
	}
	if v.DischargeDate != nil {
		d := b.format(*v.DischargeDate)
		entry.DischargeDate = &d
	}
	return entry, nil
}

func (b *Builder) format(t time.Time) string {
	return t.In(b.Location).Format(b.Layout)
}

// StatusBadge maps a status to the colour used to render it.
func StatusBadge(status model.PatientStatus) string {
	switch status {
	case model.StatusActive:
		return BadgeGreen
	case model.StatusDischarged:
		return BadgeRed
	default:
		return BadgeGray
	}
}
