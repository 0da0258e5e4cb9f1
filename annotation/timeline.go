package annotation

import (
	"context"
	"fmt"

	"github.com/ariebrainware/ward-census/model"
)

// Timeline is one open view of a patient's notes, newest first, with at
// most one note in editing state. It is owned by a single view and is not
// safe for concurrent use.
type Timeline struct {
	svc           *Service
	mrn           string
	notes         []model.Note
	editingNoteID string
	draft         string
}

func NewTimeline(svc *Service, mrn string) *Timeline {
	return &Timeline{svc: svc, mrn: mrn}
}

// Load replaces the held notes with a fresh fetch. On failure the previous
// notes are kept.
func (t *Timeline) Load(ctx context.Context) error {
	notes, err := t.svc.ListNotes(ctx, t.mrn)
	if err != nil {
		return err
	}
	t.notes = notes
	return nil
}

// Notes returns a copy of the held notes, newest first.
func (t *Timeline) Notes() []model.Note {
	return append([]model.Note(nil), t.notes...)
}

// Create persists a note and puts it at the head of the timeline.
func (t *Timeline) Create(ctx context.Context, content, author string) (model.Note, error) {
	note, err := t.svc.CreateNote(ctx, t.mrn, content, author)
	if err != nil {
		return model.Note{}, err
	}
	t.notes = append([]model.Note{note}, t.notes...)
	return note, nil
}

func (t *Timeline) EditingNoteID() string { return t.editingNoteID }

func (t *Timeline) Draft() string { return t.draft }

// BeginEdit puts id into editing state with its current content as draft.
// Any edit already in progress is dropped without saving.
func (t *Timeline) BeginEdit(id string) error {
	i := t.indexOf(id)
	if i < 0 {
		return fmt.Errorf("note %s is not in this timeline", id)
	}
	t.editingNoteID = id
	t.draft = t.notes[i].Content
	return nil
}

func (t *Timeline) SetDraft(content string) { t.draft = content }

func (t *Timeline) CancelEdit() {
	t.editingNoteID = ""
	t.draft = ""
}

// SaveEdit persists the draft for the note being edited and replaces it in
// place. The editing state is cleared only on success.
func (t *Timeline) SaveEdit(ctx context.Context) (model.Note, error) {
	if t.editingNoteID == "" {
		return model.Note{}, fmt.Errorf("no note is being edited")
	}
	updated, err := t.svc.UpdateNote(ctx, t.editingNoteID, t.draft)
	if err != nil {
		return model.Note{}, err
	}
	if i := t.indexOf(updated.ID); i >= 0 {
		t.notes[i] = updated
	}
	t.CancelEdit()
	return updated, nil
}

func (t *Timeline) indexOf(id string) int {
	for i, n := range t.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
