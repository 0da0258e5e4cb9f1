package endpoint

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ariebrainware/ward-census/events"
	"github.com/ariebrainware/ward-census/util"
	"github.com/gin-gonic/gin"
)

type dischargeRequest struct {
	DischargeDate *time.Time `json:"discharge_date,omitempty"`
}

// DischargeVisit godoc
// @Summary      Discharge a visit
// @Description  Sets the visit status to Discharged together with its discharge date (now unless given)
// @Tags         Visit
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Visit ID"
// @Param        request body dischargeRequest false "Optional discharge date"
// @Success      200 {object} util.APIResponse{data=model.Visit} "Visit discharged"
// @Failure      400 {object} util.APIResponse "Invalid request or already discharged"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      404 {object} util.APIResponse "Visit not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /visit/{id}/discharge [patch]
func DischargeVisit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid visit id",
			Err: fmt.Errorf("visit id %q is not a positive integer", c.Param("id")),
		})
		return
	}

	var req dischargeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			util.CallUserError(c, util.APIErrorParams{
				Msg: "Invalid request body",
				Err: err,
			})
			return
		}
	}
	at := time.Now()
	if req.DischargeDate != nil {
		at = *req.DischargeDate
	}

	s, ok := storeFrom(c)
	if !ok {
		return
	}
	visit, err := s.DischargeVisit(c.Request.Context(), uint(id), at)
	if err != nil {
		respondError(c, "Failed to discharge visit", err)
		return
	}

	details := map[string]interface{}{"visit_id": visit.ID, "specialty": string(visit.Specialty)}
	util.LogVisitDischarged(mutationParams(c, visit.MRN, details))
	publish(c, events.TypeVisitDischarged, visit.MRN, details)

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Visit discharged",
		Data: visit,
	})
}
