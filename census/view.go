package census

import (
	"fmt"
	"sort"
	"strings"
)

// SortKey names a roster column that can be sorted on.
type SortKey string

const (
	SortNone          SortKey = ""
	SortPatientName   SortKey = "patient_name"
	SortMRN           SortKey = "mrn"
	SortAdmissionDate SortKey = "admission_date"
	SortDischargeDate SortKey = "discharge_date"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortState is the active sort column and direction. The zero value means
// no sort: rosters keep their admission-date-descending order.
type SortState struct {
	Key       SortKey       `json:"key"`
	Direction SortDirection `json:"direction"`
}

// Toggle returns the state after selecting key. Selecting the active key
// flips the direction; any other key starts ascending.
func (s SortState) Toggle(key SortKey) SortState {
	if s.Key == key && s.Direction == Ascending {
		return SortState{Key: key, Direction: Descending}
	}
	return SortState{Key: key, Direction: Ascending}
}

// ParseSortKey accepts the query-string form of a sort key. Empty means no sort.
func ParseSortKey(raw string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(raw))); k {
	case SortNone, SortPatientName, SortMRN, SortAdmissionDate, SortDischargeDate:
		return k, nil
	default:
		return SortNone, fmt.Errorf("unsupported sort key %q", raw)
	}
}

// ParseSortDirection accepts asc/desc (or their long forms); anything else is ascending.
func ParseSortDirection(raw string) SortDirection {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "desc", "descending":
		return Descending
	default:
		return Ascending
	}
}

// ApplyView filters and sorts each group independently. Groups are never
// dropped, only emptied. The input is not modified.
//
// Dates are compared as their formatted display strings, so date sorting is
// lexicographic in the configured layout, not chronological. A missing
// discharge date sorts before any present one.
func ApplyView(groups []SpecialtyGroup, searchTerm string, sortState SortState) []SpecialtyGroup {
	term := strings.ToLower(searchTerm)
	out := make([]SpecialtyGroup, len(groups))
	for i, g := range groups {
		patients := make([]RosterEntry, 0, len(g.Patients))
		for _, p := range g.Patients {
			if matches(p, term) {
				patients = append(patients, p)
			}
		}
		sortEntries(patients, sortState)
		out[i] = SpecialtyGroup{Specialty: g.Specialty, Patients: patients}
	}
	return out
}

func matches(p RosterEntry, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.PatientName), term) ||
		strings.Contains(strings.ToLower(p.MRN), term)
}

func sortEntries(entries []RosterEntry, s SortState) {
	if s.Key == SortNone {
		return
	}
	desc := s.Direction == Descending
	sort.SliceStable(entries, func(i, j int) bool {
		c := compareBy(entries[i], entries[j], s.Key)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compareBy(a, b RosterEntry, key SortKey) int {
	switch key {
	case SortPatientName:
		return strings.Compare(a.PatientName, b.PatientName)
	case SortMRN:
		return strings.Compare(a.MRN, b.MRN)
	case SortAdmissionDate:
		return strings.Compare(a.AdmissionDate, b.AdmissionDate)
	case SortDischargeDate:
		switch {
		case a.DischargeDate == nil && b.DischargeDate == nil:
			return 0
		case a.DischargeDate == nil:
			return -1
		case b.DischargeDate == nil:
			return 1
		}
		return strings.Compare(*a.DischargeDate, *b.DischargeDate)
	}
	return 0
}

// RosterView holds the search term and sort state of one open roster
// screen. It is not safe for concurrent use.
type RosterView struct {
	searchTerm string
	sort       SortState
}

func (v *RosterView) SetSearchTerm(term string) { v.searchTerm = term }

func (v *RosterView) SearchTerm() string { return v.searchTerm }

// ToggleSort applies a column selection and returns the resulting state.
func (v *RosterView) ToggleSort(key SortKey) SortState {
	v.sort = v.sort.Toggle(key)
	return v.sort
}

func (v *RosterView) Sort() SortState { return v.sort }

// Apply renders groups with the current view state.
func (v *RosterView) Apply(groups []SpecialtyGroup) []SpecialtyGroup {
	return ApplyView(groups, v.searchTerm, v.sort)
}
