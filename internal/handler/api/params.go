package api

import (
	"net/http"

	"field-booking/internal/domain/authz"
	"field-booking/internal/handler/httperr"
	"field-booking/internal/handler/middleware"
	"field-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidID = errs.New("invalid id format")

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// Only reachable behind RequireAuth, so a missing actor is a wiring bug.
func requireActor(c *gin.Context) (authz.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return authz.Actor{}, false
	}
	return actor, true
}
