package handler

import (
	"encoding/json"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"notesapi/internal/apperr"
	"notesapi/internal/model"
	"notesapi/internal/service"
)

// ListNotes handles GET /notes.
//
//	@Summary	List all notes, newest first
//	@Tags		notes
//	@Produce	json
//	@Success	200	{array}		model.Note
//	@Failure	500	{object}	errorPayload
//	@Router		/notes [get]
func ListNotes(svc service.NoteService, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := svc.GetNotes(c.UserContext())
		if err != nil {
			return writeInternalError(c, log, "list notes failed", err)
		}
		if notes == nil {
			notes = []model.Note{}
		}
		return c.JSON(notes)
	}
}

// CreateNote handles POST /notes.
//
//	@Summary	Create a note
//	@Tags		notes
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CreateNoteRequest	true	"Note to create"
//	@Success	201		{object}	model.Note
//	@Failure	400		{object}	errorPayload
//	@Failure	415		{object}	errorPayload
//	@Failure	422		{object}	errorPayload
//	@Failure	500		{object}	errorPayload
//	@Router		/notes [post]
func CreateNote(svc service.NoteService, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateNoteRequest
		// An empty body is treated as {} so it reports the missing fields.
		if len(c.Body()) > 0 {
			if !c.Is("json") {
				return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "request body must be JSON")
			}
			if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
				return writeBodyError(c, err)
			}
		}
		req.Normalize()

		if err := req.Validate(); err != nil {
			verr, ok := toValidationError(err)
			if !ok {
				return writeInternalError(c, log, "validate note failed", err)
			}
			return writeValidationError(c, verr)
		}

		note, err := svc.CreateNote(c.UserContext(), req.ToModel())
		if err != nil {
			return writeInternalError(c, log, "create note failed", err)
		}
		return c.Status(fiber.StatusCreated).JSON(note)
	}
}

// toValidationError converts ozzo field errors into the shared taxonomy.
// It returns false for internal rule errors, which are not the caller's fault.
func toValidationError(err error) (*apperr.ValidationError, bool) {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	fields := make(map[string]string, len(verrs))
	for name, ferr := range verrs {
		fields[name] = ferr.Error()
	}
	return &apperr.ValidationError{Fields: fields}, true
}

func writeValidationError(c *fiber.Ctx, verr *apperr.ValidationError) error {
	return writeErrorFields(c, fiber.StatusUnprocessableEntity, "VALIDATION_FAILED", "validation failed", verr.Fields)
}

// writeBodyError maps a JSON decode failure to a client error.
// A JSON value of the wrong type is a validation failure on that field.
func writeBodyError(c *fiber.Ctx, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		reason := "must be a " + typeErr.Type.String()
		if field == "" {
			field, reason = "body", "must be a JSON object"
		}
		return writeValidationError(c, &apperr.ValidationError{Fields: map[string]string{field: reason}})
	}

	return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
}
