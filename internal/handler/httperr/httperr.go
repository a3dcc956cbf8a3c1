package httperr

import (
	"errors"
	"net/http"

	"field-booking/internal/domain/authz"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/review"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"
	"field-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort answers with the status registered for err, 500 when none matches.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

// AbortBinding reports a request that failed binding, listing the failed
// validation rule per field when there is one.
func AbortBinding(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", bindingDetail(err))
}

type classification struct {
	target error
	status int
}

// Checked in order; the first match wins.
var classifications = []classification{
	{shared.ErrBookingNotFound, http.StatusNotFound},
	{shared.ErrFieldNotFound, http.StatusNotFound},
	{shared.ErrUserNotFound, http.StatusNotFound},
	{shared.ErrReviewNotFound, http.StatusNotFound},

	{authz.ErrForbidden, http.StatusForbidden},
	{review.ErrNotEligible, http.StatusForbidden},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized},

	{booking.ErrSlotConflict, http.StatusConflict},
	{booking.ErrAlreadyConfirmed, http.StatusConflict},
	{booking.ErrInvalidTransition, http.StatusConflict},
	{commands.ErrEmailAlreadyExists, http.StatusConflict},
	{review.ErrAlreadyExists, http.StatusConflict},

	{booking.ErrInvalidDate, http.StatusBadRequest},
	{booking.ErrQuotaExceeded, http.StatusBadRequest},
	{booking.ErrTooLateToCancel, http.StatusBadRequest},
	{booking.ErrInvalidTimeSlot, http.StatusBadRequest},
	{booking.ErrInvalidStatus, http.StatusBadRequest},
	{booking.ErrInvalidDateFormat, http.StatusBadRequest},
	{queries.ErrInvalidCursor, http.StatusBadRequest},
}

func Classify(err error) (int, string) {
	for _, cl := range classifications {
		if errs.Is(err, cl.target) {
			return cl.status, cl.target.Error()
		}
	}
	// value object errors carry their own message
	if errs.Is(err, errs.ErrDomainValidation) {
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}

func bindingDetail(err error) any {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	detail := make(map[string]string, len(ve))
	for _, fe := range ve {
		detail[fe.Field()] = fe.Tag()
	}
	return detail
}
