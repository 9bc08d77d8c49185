package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is an error a client can act on, carrying the HTTP status it maps to.
//
// Scheduling errors map onto it as follows: validation 400, not found 404,
// slot conflicts 409. Anything that is not a Failure is a persistence or
// system fault and reports 500.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	ForbiddenError       = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	SlotUnavailableError = &Failure{Code: http.StatusConflict, Message: "the requested slot is no longer available"}
)

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, message string) error {
	return &Failure{Code: code, Message: message}
}

// BadRequest turns err into a 400, keeping nil as nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func BadRequestf(format string, args ...any) error {
	return newFailure(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

// NotFound reports a missing entity; msg is shown to the client as is.
func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// GetCode returns the status of the first Failure in err's chain, or 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func is(err error, code int) bool {
	return err != nil && GetCode(err) == code
}

func IsConflict(err error) bool {
	return is(err, http.StatusConflict)
}

func IsNotFound(err error) bool {
	return is(err, http.StatusNotFound)
}

func IsBadRequest(err error) bool {
	return is(err, http.StatusBadRequest)
}
