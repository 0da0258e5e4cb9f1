package annotation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedTimeline(t *testing.T, contents ...string) (*Timeline, *fakeNoteStore) {
	t.Helper()
	fs := newFakeNoteStore()
	svc := NewService(fs)
	for _, c := range contents {
		_, err := svc.CreateNote(context.Background(), "M100", c, "dr.lee")
		require.NoError(t, err)
	}
	tl := NewTimeline(svc, "M100")
	require.NoError(t, tl.Load(context.Background()))
	return tl, fs
}

func TestTimeline_LoadAndCreatePrepends(t *testing.T) {
	tl, _ := loadedTimeline(t, "older", "newer")
	require.Len(t, tl.Notes(), 2)
	assert.Equal(t, "newer", tl.Notes()[0].Content)

	note, err := tl.Create(context.Background(), "newest", "dr.kim")
	require.NoError(t, err)

	notes := tl.Notes()
	require.Len(t, notes, 3)
	assert.Equal(t, note.ID, notes[0].ID)
	assert.Equal(t, "newer", notes[1].Content)
}

func TestTimeline_CreateFailureLeavesNotesUntouched(t *testing.T) {
	tl, fs := loadedTimeline(t, "only")
	fs.insertErr = errors.New("disk full")

	_, err := tl.Create(context.Background(), "lost", "dr.kim")
	assert.Error(t, err)
	assert.Len(t, tl.Notes(), 1)

	_, err = tl.Create(context.Background(), "   ", "dr.kim")
	assert.Error(t, err)
	assert.Len(t, tl.Notes(), 1)
}

func TestTimeline_LoadFailureKeepsPreviousNotes(t *testing.T) {
	tl, fs := loadedTimeline(t, "kept")
	fs.fetchErr = errors.New("timeout")

	assert.Error(t, tl.Load(context.Background()))
	assert.Len(t, tl.Notes(), 1)
}

func TestTimeline_EditLifecycle(t *testing.T) {
	tl, fs := loadedTimeline(t, "a", "b", "c")
	notes := tl.Notes()
	target := notes[1]

	require.NoError(t, tl.BeginEdit(target.ID))
	assert.Equal(t, target.ID, tl.EditingNoteID())
	assert.Equal(t, "b", tl.Draft())

	tl.SetDraft("b revised")
	saved, err := tl.SaveEdit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "b revised", saved.Content)
	assert.Empty(t, tl.EditingNoteID())

	after := tl.Notes()
	require.Len(t, after, 3)
	assert.Equal(t, target.ID, after[1].ID, "edited note keeps its position")
	assert.Equal(t, "b revised", after[1].Content)
	assert.Equal(t, notes[0], after[0])
	assert.Equal(t, notes[2], after[2])
	assert.Equal(t, 1, fs.updateCalls)
}

func TestTimeline_BeginEditReplacesPriorEditWithoutSaving(t *testing.T) {
	tl, fs := loadedTimeline(t, "a", "b")
	notes := tl.Notes()

	require.NoError(t, tl.BeginEdit(notes[0].ID))
	tl.SetDraft("abandoned")
	require.NoError(t, tl.BeginEdit(notes[1].ID))

	assert.Equal(t, notes[1].ID, tl.EditingNoteID())
	assert.Equal(t, notes[1].Content, tl.Draft())
	assert.Zero(t, fs.updateCalls)
	assert.Equal(t, notes[0].Content, tl.Notes()[0].Content)
}

func TestTimeline_CancelEdit(t *testing.T) {
	tl, fs := loadedTimeline(t, "a")
	require.NoError(t, tl.BeginEdit(tl.Notes()[0].ID))
	tl.SetDraft("changed")
	tl.CancelEdit()

	assert.Empty(t, tl.EditingNoteID())
	assert.Equal(t, "a", tl.Notes()[0].Content)
	assert.Zero(t, fs.updateCalls)

	_, err := tl.SaveEdit(context.Background())
	assert.Error(t, err)
}

func TestTimeline_SaveEditFailureKeepsEditing(t *testing.T) {
	tl, fs := loadedTimeline(t, "a")
	id := tl.Notes()[0].ID
	require.NoError(t, tl.BeginEdit(id))
	tl.SetDraft("new text")
	fs.updateErr = errors.New("write conflict")

	_, err := tl.SaveEdit(context.Background())
	assert.Error(t, err)
	assert.Equal(t, id, tl.EditingNoteID())
	assert.Equal(t, "new text", tl.Draft())
	assert.Equal(t, "a", tl.Notes()[0].Content)
}

func TestTimeline_BeginEditUnknownNote(t *testing.T) {
	tl, _ := loadedTimeline(t, "a")
	assert.Error(t, tl.BeginEdit("nope"))
	assert.Empty(t, tl.EditingNoteID())
}
