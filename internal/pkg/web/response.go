package web

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
)

// OKResponse represents the structure of a JSON-encoded success response.
//
// The Data field is omitted from the response if it is nil.
type OKResponse[T any] struct {
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// ErrorResponse represents the structure of a JSON-encoded error response.
//
// It includes a general error message and, optionally, a map of field-level
// validation errors. The Errors field is omitted from the response if empty.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// OK writes a JSON-encoded success response to w with the provided HTTP status code.
//
// If msg is non-nil, its value is included in the response under the "message" field.
// If data is non-nil, it is included under the "data" field.
//
// The JSON response has the form:
//
//	{
//	  "message": "Game created.",
//	  "data": {
//	    "id": "3d594650-3436-11e5-bf21-0800200c9a66"
//	  }
//	}
func OK[T any](w http.ResponseWriter, status int, msg *string, data *T) {
	payload := &OKResponse[*T]{}
	if msg != nil {
		payload.Message = *msg
	}

	if data != nil {
		payload.Data = data
	}

	response.JSON(w, status, payload)
}

// Fail writes a JSON-encoded error response to w with the provided HTTP status code.
//
// The reason is logged at Error level with the key "reason" and is never sent
// to the client.
func Fail(w http.ResponseWriter, status int, reason error, msg string, errs map[string]string) {
	slog.Error("request failed", "status", status, "reason", reason)
	payload := &ErrorResponse{
		Message: msg,
		Errors:  errs,
	}
	response.JSON(w, status, payload)
}

func RespondOK[T any](w http.ResponseWriter, msg *string, data *T) {
	OK(w, http.StatusOK, msg, data)
}

func RespondCreated[T any](w http.ResponseWriter, msg *string, data *T) {
	OK(w, http.StatusCreated, msg, data)
}

func RespondBadRequest(w http.ResponseWriter, err error, msg string, details map[string]string) {
	Fail(w, http.StatusBadRequest, err, msg, details)
}

func RespondUnauthorized(w http.ResponseWriter, err error, msg string, details map[string]string) {
	Fail(w, http.StatusUnauthorized, err, msg, details)
}

func RespondNotFound(w http.ResponseWriter, err error, msg string, details map[string]string) {
	Fail(w, http.StatusNotFound, err, msg, details)
}

func RespondConflict(w http.ResponseWriter, err error, msg string, details map[string]string) {
	Fail(w, http.StatusConflict, err, msg, details)
}

func RespondUnsupportedMediaType(w http.ResponseWriter, err error, msg string, details map[string]string) {
	Fail(w, http.StatusUnsupportedMediaType, err, msg, details)
}

func RespondRequestEntityTooLarge(w http.ResponseWriter, err error, msg string, details map[string]string) {
	Fail(w, http.StatusRequestEntityTooLarge, err, msg, details)
}

func RespondUnprocessableEntity(w http.ResponseWriter, err error, msg string, details map[string]string) {
	Fail(w, http.StatusUnprocessableEntity, err, msg, details)
}

func RespondGatewayTimeout(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusGatewayTimeout, err, msg, nil)
}

func RespondInternalServerError(w http.ResponseWriter, err error) {
	Fail(w, http.StatusInternalServerError, err, "An unexpected error occurred.", nil)
}

func RespondForbidden(w http.ResponseWriter, err error, msg string, details map[string]string) {
	Fail(w, http.StatusForbidden, err, msg, details)
}

func RespondRequestTimeout(w http.ResponseWriter, err error, msg string, details map[string]string) {
	Fail(w, http.StatusRequestTimeout, err, msg, details)
}

func RespondTooManyRequests(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusTooManyRequests, err, msg, nil)
}
