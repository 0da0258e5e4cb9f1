package endpoint

import (
	"strings"

	"github.com/ariebrainware/ward-census/census"
	"github.com/ariebrainware/ward-census/model"
	"github.com/ariebrainware/ward-census/util"
	"github.com/gin-gonic/gin"
)

// GetCensus godoc
// @Summary      Ward census
// @Description  Active visit total and per-specialty visit counts in canonical specialty order
// @Tags         Census
// @Produce      json
// @Success      200 {object} util.APIResponse{data=census.Census} "Census computed"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /census [get]
func GetCensus(c *gin.Context) {
	s, ok := storeFrom(c)
	if !ok {
		return
	}

	result, err := census.NewAggregator(s).ComputeCensus(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to compute census", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Census computed",
		Data: result,
	})
}

type rosterListResponse struct {
	Keyword string                  `json:"keyword"`
	Sort    census.SortState        `json:"sort"`
	Groups  []census.SpecialtyGroup `json:"groups"`
}

// ListSpecialtyRosters godoc
// @Summary      Specialty rosters
// @Description  One roster per canonical specialty, optionally filtered by keyword and sorted within each group
// @Tags         Census
// @Produce      json
// @Param        keyword query string false "Case-insensitive match on patient name or MRN"
// @Param        sort query string false "Sort key: patient_name|mrn|admission_date|discharge_date"
// @Param        sort_dir query string false "Sort direction: asc|desc"
// @Param        specialty query string false "Return only this specialty's roster"
// @Success      200 {object} util.APIResponse{data=rosterListResponse} "Rosters retrieved"
// @Failure      400 {object} util.APIResponse "Invalid sort key or specialty"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /specialties [get]
func ListSpecialtyRosters(c *gin.Context) {
	key, err := census.ParseSortKey(c.Query("sort"))
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid sort key", Err: err})
		return
	}
	sortState := census.SortState{}
	if key != census.SortNone {
		sortState = census.SortState{Key: key, Direction: census.ParseSortDirection(c.Query("sort_dir"))}
	}

	only := model.Specialty(strings.TrimSpace(c.Query("specialty")))
	if only != "" && !only.IsCanonical() {
		respondError(c, "Invalid specialty", &model.ValidationError{Field: "specialty", Reason: "not a ward specialty"})
		return
	}

	s, ok := storeFrom(c)
	if !ok {
		return
	}
	visits, err := s.FetchVisitsWithPatients(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to retrieve visits", &model.RetrievalError{Op: "fetch visits", Err: err})
		return
	}

	groups, err := rosterBuilder().BuildRosters(visits)
	if err != nil {
		respondError(c, "Failed to build rosters", err)
		return
	}

	keyword := c.Query("keyword")
	groups = census.ApplyView(groups, keyword, sortState)
	if only != "" {
		groups = filterSpecialty(groups, only)
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Rosters retrieved",
		Data: rosterListResponse{Keyword: keyword, Sort: sortState, Groups: groups},
	})
}

func filterSpecialty(groups []census.SpecialtyGroup, specialty model.Specialty) []census.SpecialtyGroup {
	for _, g := range groups {
		if g.Specialty == specialty {
			return []census.SpecialtyGroup{g}
		}
	}
	return []census.SpecialtyGroup{}
}
