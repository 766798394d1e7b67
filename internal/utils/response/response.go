package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aaravmahajanofficial/cart-service/internal/errors"
	"github.com/go-playground/validator/v10"
)

// APIResponse is the single envelope every endpoint answers with.
type APIResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// interface {} == any
func WriteJson(w http.ResponseWriter, statusCode int, data any) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data) //struct to json
}

func Success(w http.ResponseWriter, statusCode int, message string, data any) {
	response := APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}

	WriteJson(w, statusCode, response)
}

func Error(w http.ResponseWriter, err error) {

	var statusCode int
	response := APIResponse{Success: false}

	if appErr, ok := errors.IsAppError(err); ok {
		statusCode = appErr.StatusCode
		response.Message = appErr.Message

		if appErr.Detail != "" {
			response.Errors = []string{appErr.Detail}
		}

	} else {

		statusCode = http.StatusInternalServerError
		response.Message = "An unexpected error occurred"

	}

	WriteJson(w, statusCode, response)
}

// package sends the list of errors
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {

	var errMsgs []string

	for _, err := range errs {

		var message string

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("Field %s is required", err.Field())
		case "min":
			message = fmt.Sprintf("Field %s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("Field %s must be at most %s", err.Field(), err.Param())
		case "gt":
			message = fmt.Sprintf("Field %s must be greater than %s", err.Field(), err.Param())
		case "lt":
			message = fmt.Sprintf("Field %s must be less than %s", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("Field %s is invalid: %s=%s", err.Field(), err.Tag(), err.Param())
		}

		errMsgs = append(errMsgs, message)

	}

	response := APIResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  errMsgs,
	}

	WriteJson(w, http.StatusUnprocessableEntity, response)

}
