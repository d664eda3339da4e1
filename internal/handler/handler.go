package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"catalog-service/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const genericErrorDetail = "the request could not be processed"

var (
	errInvalidID   = model.NewDomainError(model.KindBadRequest, "invalid id")
	errInvalidBody = model.NewDomainError(model.KindBadRequest, "invalid request body")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}
	return v
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// decodeAndValidate decodes the JSON body into v and runs its validation tags.
func decodeAndValidate(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errInvalidBody
	}
	if err := validate.Struct(v); err != nil {
		return model.NewDomainError(model.KindBadRequest, formatValidationErrors(err))
	}
	return nil
}

func formatValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s: %s", e.Field(), validationMessage(e)))
	}
	return strings.Join(messages, "; ")
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "notblank":
		return "must not be blank"
	case "uuid":
		return "must be a valid UUID"
	default:
		return "invalid value"
	}
}

// parseID reads the {id} path parameter as a UUID.
func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errInvalidID
	}
	return id, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Too late to change the status once the header is out.
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error envelope. The status always comes from the
// error kind; only domain errors show their message to the client.
func writeError(w http.ResponseWriter, err error, message string, logger zerolog.Logger) {
	kind := model.KindOf(err)
	status := kind.StatusCode()

	detail := genericErrorDetail
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		detail = domainErr.Message
	}

	event := logger.Warn()
	if domainErr == nil || status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Int("status", status).Str("code", string(kind)).Msg(message)

	writeJSON(w, status, model.Failure(kind, message, detail))
}

// WriteError writes an error envelope for err. It is used by the router and
// middleware for failures that happen outside a handler.
func WriteError(w http.ResponseWriter, err error, message string, logger zerolog.Logger) {
	writeError(w, err, message, logger)
}
