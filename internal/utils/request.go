package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	apperrors "github.com/aaravmahajanofficial/cart-service/internal/errors"
	"github.com/aaravmahajanofficial/cart-service/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

func DecodeJSONBody(r *http.Request, dest any) error {

	body, err := io.ReadAll(r.Body)

	if err != nil {
		slog.Error("Failed to read request body",
			slog.String("error", err.Error()),
			slog.String("endpoint", r.URL.Path),
		)
		return fmt.Errorf("failed to read request body: %w", err)
	}

	defer r.Body.Close()

	if len(body) == 0 {
		slog.Warn("Empty request body", slog.String("endpoint", r.URL.Path))
		return errors.New("request body cannot be empty")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		slog.Error("Failed to parse request JSON",
			slog.String("error", err.Error()),
			slog.String("endpoint", r.URL.Path),
		)
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	return nil
}

// ParseAndValidate decodes the body into dest and runs struct validation.
// On failure it has already written the error response and returns false.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, apperrors.BadRequestError("Invalid request body").WithError(err))
		return false
	}

	if err := validate.Struct(dest); err != nil {

		var validationErrs validator.ValidationErrors

		if errors.As(err, &validationErrs) {
			slog.Warn("User input validation failed", slog.String("error", validationErrs.Error()))
			response.ValidationError(w, validationErrs)
		} else {
			slog.Error("Unexpected validation error", slog.String("error", err.Error()))
			response.Error(w, apperrors.InternalError("An unexpected error occurred").WithError(err))
		}

		return false
	}

	return true

}

// ParseID reads an integer path parameter.
func ParseID(r *http.Request, name string) (int64, error) {

	idStr := r.PathValue(name)

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, apperrors.AddValidationError(name, "must be an integer").WithError(err)
	}

	return id, nil
}
