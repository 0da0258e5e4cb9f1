// Package annotation manages the notes staff keep on a patient's record.
package annotation

import (
	"context"
	"errors"
	"strings"

	"github.com/ariebrainware/ward-census/model"
	"github.com/ariebrainware/ward-census/store"
)

// NoteStore is the part of the store the timeline reads and writes.
type NoteStore interface {
	FetchPatient(ctx context.Context, mrn string) (model.Patient, error)
	FetchNotes(ctx context.Context, mrn string) ([]model.Note, error)
	InsertNote(ctx context.Context, mrn, content, author string) (model.Note, error)
	UpdateNoteContent(ctx context.Context, id, content string) (model.Note, error)
}

type Service struct {
	store NoteStore
}

func NewService(s NoteStore) *Service {
	return &Service{store: s}
}

// ListNotes returns the patient's notes newest first.
func (s *Service) ListNotes(ctx context.Context, mrn string) ([]model.Note, error) {
	notes, err := s.store.FetchNotes(ctx, mrn)
	if err != nil {
		return nil, &model.RetrievalError{Op: "fetch notes", Err: err}
	}
	return notes, nil
}

// CreateNote stores a new note. Content is trimmed and must not be empty.
func (s *Service) CreateNote(ctx context.Context, mrn, content, author string) (model.Note, error) {
	content, err := cleanContent(content)
	if err != nil {
		return model.Note{}, err
	}
	if strings.TrimSpace(mrn) == "" {
		return model.Note{}, &model.ValidationError{Field: "mrn", Reason: "must not be empty"}
	}
	if strings.TrimSpace(author) == "" {
		return model.Note{}, &model.ValidationError{Field: "author", Reason: "must not be empty"}
	}
	return s.store.InsertNote(ctx, mrn, content, author)
}

// UpdateNote replaces a note's content. Identity and creation fields, and
// therefore the note's position in the timeline, do not change.
func (s *Service) UpdateNote(ctx context.Context, id, content string) (model.Note, error) {
	content, err := cleanContent(content)
	if err != nil {
		return model.Note{}, err
	}
	return s.store.UpdateNoteContent(ctx, id, content)
}

func cleanContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", &model.ValidationError{Field: "content", Reason: "must not be empty"}
	}
	return trimmed, nil
}

// PatientDetail is a patient's demographics and notes. The two are fetched
// independently; NotesErr is set when only the notes could not be loaded.
type PatientDetail struct {
	Patient  model.Patient `json:"patient"`
	Notes    []model.Note  `json:"notes"`
	NotesErr error         `json:"-"`
}

// LoadPatientDetail fetches the patient and their notes. It fails only when
// the patient itself cannot be fetched; store.ErrNotFound is passed through
// unwrapped so callers can tell absence from failure.
func (s *Service) LoadPatientDetail(ctx context.Context, mrn string) (PatientDetail, error) {
	patient, err := s.store.FetchPatient(ctx, mrn)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PatientDetail{}, err
		}
		return PatientDetail{}, &model.RetrievalError{Op: "fetch patient", Err: err}
	}

	detail := PatientDetail{Patient: patient}
	detail.Notes, detail.NotesErr = s.ListNotes(ctx, mrn)
	return detail, nil
}
