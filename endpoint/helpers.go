package endpoint

import (
	"errors"
	"fmt"

	"github.com/ariebrainware/ward-census/census"
	"github.com/ariebrainware/ward-census/config"
	"github.com/ariebrainware/ward-census/middleware"
	"github.com/ariebrainware/ward-census/model"
	"github.com/ariebrainware/ward-census/store"
	"github.com/ariebrainware/ward-census/util"
	"github.com/gin-gonic/gin"
)

// storeFrom builds a GormStore on the request's DB, responding 500 when no
// DB was injected.
func storeFrom(c *gin.Context) (*store.GormStore, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return nil, false
	}
	return store.NewGormStore(db), true
}

// respondError maps a failure onto the response envelope.
func respondError(c *gin.Context, msg string, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		util.CallUserError(c, util.APIErrorParams{Msg: msg, Err: err})
	case errors.Is(err, store.ErrNotFound):
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: msg, Err: err})
	case errors.Is(err, store.ErrAlreadyDischarged):
		util.CallUserError(c, util.APIErrorParams{Msg: msg, Err: err})
	default:
		util.CallServerError(c, util.APIErrorParams{Msg: msg, Err: err})
	}
}

func mutationParams(c *gin.Context, mrn string, details map[string]interface{}) util.MutationParams {
	staffID, _ := middleware.GetStaffID(c)
	return util.MutationParams{
		StaffID:   staffID,
		MRN:       mrn,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Details:   details,
	}
}

// publish emits a domain event. A failed publish never fails the request.
func publish(c *gin.Context, eventType, mrn string, data map[string]interface{}) {
	if err := middleware.GetPublisher(c).Publish(c.Request.Context(), eventType, mrn, data); err != nil {
		util.WithField("event_type", eventType).WithError(err).Warn("domain event not published")
	}
}

// rosterBuilder formats roster dates with the configured layout and zone.
func rosterBuilder() *census.Builder {
	cfg := config.LoadConfig()
	return census.NewBuilder(cfg.DateLayout, cfg.Location())
}
