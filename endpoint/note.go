package endpoint

import (
	"github.com/ariebrainware/ward-census/annotation"
	"github.com/ariebrainware/ward-census/events"
	"github.com/ariebrainware/ward-census/middleware"
	"github.com/ariebrainware/ward-census/model"
	"github.com/ariebrainware/ward-census/util"
	"github.com/gin-gonic/gin"
)

// ListPatientNotes godoc
// @Summary      List patient notes
// @Description  Notes for one patient, newest first
// @Tags         Note
// @Produce      json
// @Param        mrn path string true "Medical record number"
// @Success      200 {object} util.APIResponse{data=[]model.Note} "Notes retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient/{mrn}/notes [get]
func ListPatientNotes(c *gin.Context) {
	s, ok := storeFrom(c)
	if !ok {
		return
	}

	notes, err := annotation.NewService(s).ListNotes(c.Request.Context(), c.Param("mrn"))
	if err != nil {
		respondError(c, "Failed to retrieve notes", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Notes retrieved",
		Data: notes,
	})
}

// CreatePatientNote godoc
// @Summary      Add a note
// @Description  Adds a note to the patient's timeline, authored by the calling staff member
// @Tags         Note
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        mrn path string true "Medical record number"
// @Param        request body model.NoteRequest true "Note content"
// @Success      201 {object} util.APIResponse{data=model.Note} "Note created"
// @Failure      400 {object} util.APIResponse "Empty content"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient/{mrn}/notes [post]
func CreatePatientNote(c *gin.Context) {
	var req model.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	s, ok := storeFrom(c)
	if !ok {
		return
	}
	mrn := c.Param("mrn")
	if _, err := s.FetchPatient(c.Request.Context(), mrn); err != nil {
		respondError(c, "Failed to create note", err)
		return
	}

	author, _ := middleware.GetStaffID(c)
	note, err := annotation.NewService(s).CreateNote(c.Request.Context(), mrn, req.Content, author)
	if err != nil {
		respondError(c, "Failed to create note", err)
		return
	}

	details := map[string]interface{}{"note_id": note.ID}
	util.LogNoteCreated(mutationParams(c, note.MRN, details))
	publish(c, events.TypeNoteCreated, note.MRN, details)

	util.CallSuccessCreated(c, util.APISuccessParams{
		Msg:  "Note created",
		Data: note,
	})
}

// UpdatePatientNote godoc
// @Summary      Edit a note
// @Description  Replaces a note's content. Its position in the timeline does not change.
// @Tags         Note
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Note ID"
// @Param        request body model.NoteRequest true "New content"
// @Success      200 {object} util.APIResponse{data=model.Note} "Note updated"
// @Failure      400 {object} util.APIResponse "Empty content"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      404 {object} util.APIResponse "Note not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /notes/{id} [patch]
func UpdatePatientNote(c *gin.Context) {
	var req model.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	s, ok := storeFrom(c)
	if !ok {
		return
	}
	note, err := annotation.NewService(s).UpdateNote(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, "Failed to update note", err)
		return
	}

	details := map[string]interface{}{"note_id": note.ID}
	util.LogNoteUpdated(mutationParams(c, note.MRN, details))
	publish(c, events.TypeNoteUpdated, note.MRN, details)

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Note updated",
		Data: note,
	})
}
