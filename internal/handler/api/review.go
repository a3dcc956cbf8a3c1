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

type ReviewHandler struct {
	commands commands.ReviewCommands
	queries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		commands: reviewCommands,
		queries:  reviewQueries,
	}
}

// @Summary List field reviews
// @Description Newest first, paged with the nextCursor of the previous page
// @Tags reviews
// @Produce json
// @Param id path string true "Field ID"
// @Param limit query int false "Page size (1-200, default 20)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.ReviewPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id}/reviews [get]
func (h *ReviewHandler) ListFieldReviews(c *gin.Context) {
	fieldID, ok := pathID(c)
	if !ok {
		return
	}

	var q reqdto.ListReviewsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	page, err := h.queries.ListByField(c.Request.Context(), fieldID, q.After, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewPage(page))
}

// @Summary Review a field
// @Description Open to users with a confirmed booking of the field on an earlier day; one review per user and field
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Field ID"
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /fields/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	fieldID, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	id, err := h.commands.Create(c.Request.Context(), actor, fieldID, cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.respondWithReview(c, http.StatusCreated, id)
}

// @Summary Get review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondWithReview(c, http.StatusOK, id)
}

// @Summary Update review
// @Description Author only; omitted fields are left unchanged
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Fields to change"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateReviewRequest
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

	h.respondWithReview(c, http.StatusOK, id)
}

// @Summary Delete review
// @Description Author or admin
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
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

func (h *ReviewHandler) respondWithReview(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(status, resdto.FromReviewView(view))
}
