package api

import (
	"net/http"

	reqdto "field-booking/internal/handler/dto/request"
	resdto "field-booking/internal/handler/dto/response"
	"field-booking/internal/handler/httperr"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FieldHandler struct {
	commands commands.FieldCommands
	queries  queries.FieldQueries
}

func NewFieldHandler(fieldCommands commands.FieldCommands, fieldQueries queries.FieldQueries) *FieldHandler {
	return &FieldHandler{
		commands: fieldCommands,
		queries:  fieldQueries,
	}
}

// @Summary List fields
// @Description Active fields, optionally narrowed to one sport
// @Tags fields
// @Produce json
// @Param sportType query string false "football, basketball, tennis or padel"
// @Success 200 {array} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Router /fields [get]
func (h *FieldHandler) ListFields(c *gin.Context) {
	var q reqdto.ListFieldsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	var sportType *string
	if q.SportType != "" {
		sportType = &q.SportType
	}

	views, err := h.queries.List(c.Request.Context(), sportType)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFieldViews(views))
}

// @Summary Get field
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id} [get]
func (h *FieldHandler) GetField(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondWithField(c, http.StatusOK, id)
}

// @Summary Field availability
// @Description Every one-hour slot of the day and whether it is still free
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id}/availability [get]
func (h *FieldHandler) GetAvailability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	availability, err := h.queries.Availability(c.Request.Context(), id, q.Date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFieldAvailability(availability))
}

// @Summary Create field
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFieldRequest true "Field"
// @Success 201 {object} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /fields [post]
func (h *FieldHandler) CreateField(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	id, err := h.commands.Create(c.Request.Context(), actor, cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.respondWithField(c, http.StatusCreated, id)
}

// @Summary Update field
// @Description Partial update; setting active to false hides the field from listings
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Field ID"
// @Param request body reqdto.UpdateFieldRequest true "Fields to change"
// @Success 200 {object} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id} [put]
func (h *FieldHandler) UpdateField(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	if err := h.commands.Update(c.Request.Context(), actor, id, cmd); err != nil {
		httperr.Abort(c, err)
		return
	}

	h.respondWithField(c, http.StatusOK, id)
}

// @Summary Deactivate field
// @Description Soft delete; existing bookings are kept
// @Tags fields
// @Security BearerAuth
// @Param id path string true "Field ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id} [delete]
func (h *FieldHandler) DeleteField(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FieldHandler) respondWithField(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(status, resdto.FromFieldView(view))
}
