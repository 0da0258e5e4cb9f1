package endpoint

import (
	"strings"

	"github.com/ariebrainware/ward-census/annotation"
	"github.com/ariebrainware/ward-census/events"
	"github.com/ariebrainware/ward-census/model"
	"github.com/ariebrainware/ward-census/util"
	"github.com/gin-gonic/gin"
)

func validateAdmission(req *model.AdmissionRequest) error {
	req.MRN = strings.TrimSpace(req.MRN)
	req.PatientName = util.NormalizeName(req.PatientName)
	req.AssignedDoctor = util.NormalizeName(req.AssignedDoctor)

	switch {
	case req.MRN == "":
		return &model.ValidationError{Field: "mrn", Reason: "must not be empty"}
	case req.PatientName == "":
		return &model.ValidationError{Field: "patient_name", Reason: "must not be empty"}
	case req.Age < 0:
		return &model.ValidationError{Field: "age", Reason: "must not be negative"}
	case !req.Specialty.IsCanonical():
		return &model.ValidationError{Field: "specialty", Reason: "not a ward specialty"}
	}
	return nil
}

// AdmitPatient godoc
// @Summary      Admit a patient
// @Description  Registers the patient if the MRN is new and opens an Active visit under the given specialty
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.AdmissionRequest true "Admission"
// @Success      201 {object} util.APIResponse{data=model.Visit} "Patient admitted"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      429 {object} util.APIResponse "Too many requests"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient [post]
func AdmitPatient(c *gin.Context) {
	var req model.AdmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}
	if err := validateAdmission(&req); err != nil {
		respondError(c, "Admission payload is invalid", err)
		return
	}

	s, ok := storeFrom(c)
	if !ok {
		return
	}

	patient := model.Patient{
		MRN:            req.MRN,
		PatientName:    req.PatientName,
		Age:            req.Age,
		Gender:         strings.TrimSpace(req.Gender),
		AssignedDoctor: req.AssignedDoctor,
	}
	visit, err := s.AdmitPatient(c.Request.Context(), patient, model.Visit{
		Specialty:     req.Specialty,
		AdmissionDate: req.AdmissionDate,
	})
	if err != nil {
		respondError(c, "Failed to admit patient", err)
		return
	}

	details := map[string]interface{}{"visit_id": visit.ID, "specialty": string(visit.Specialty)}
	util.LogPatientAdmitted(mutationParams(c, visit.MRN, details))
	publish(c, events.TypePatientAdmitted, visit.MRN, details)

	util.CallSuccessCreated(c, util.APISuccessParams{
		Msg:  "Patient admitted",
		Data: visit,
	})
}

type patientDetailResponse struct {
	Patient    model.Patient `json:"patient"`
	Notes      []model.Note  `json:"notes"`
	NotesError string        `json:"notes_error,omitempty"`
}

// GetPatientDetail godoc
// @Summary      Patient detail
// @Description  Demographics and notes, newest first. Demographics are returned even when notes cannot be loaded.
// @Tags         Patient
// @Produce      json
// @Param        mrn path string true "Medical record number"
// @Success      200 {object} util.APIResponse{data=patientDetailResponse} "Patient retrieved"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient/{mrn} [get]
func GetPatientDetail(c *gin.Context) {
	s, ok := storeFrom(c)
	if !ok {
		return
	}

	detail, err := annotation.NewService(s).LoadPatientDetail(c.Request.Context(), c.Param("mrn"))
	if err != nil {
		respondError(c, "Failed to retrieve patient", err)
		return
	}

	resp := patientDetailResponse{Patient: detail.Patient, Notes: detail.Notes}
	if detail.NotesErr != nil {
		util.WithField("mrn", detail.Patient.MRN).WithError(detail.NotesErr).Warn("notes unavailable for patient detail")
		resp.NotesError = detail.NotesErr.Error()
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient retrieved",
		Data: resp,
	})
}
