// Package apierr turns domain errors into huma status errors.
package apierr

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"qrforge/internal/domain/content"
	"qrforge/internal/domain/folder"
	"qrforge/internal/domain/qrcode"
	"qrforge/internal/domain/render"
	"qrforge/internal/domain/tier"
)

// From maps err to the response the client should see. Unknown errors are
// logged and hidden behind a 500.
func From(log *slog.Logger, err error) error {
	if err == nil {
		return nil
	}

	var verr *content.ValidationError
	if errors.As(err, &verr) {
		return huma.Error422UnprocessableEntity(verr.Reason, &huma.ErrorDetail{
			Message:  verr.Reason,
			Location: "body.content." + verr.Field,
		})
	}

	var lerr *tier.LimitError
	if errors.As(err, &lerr) {
		return huma.Error403Forbidden(lerr.Error())
	}

	switch {
	case errors.Is(err, content.ErrInvalidContent),
		errors.Is(err, render.ErrInvalidStyle),
		errors.Is(err, render.ErrEmptyPayload),
		errors.Is(err, render.ErrUnsupportedFormat),
		errors.Is(err, render.ErrPayloadTooLarge),
		errors.Is(err, qrcode.ErrInvalidKind),
		errors.Is(err, qrcode.ErrInvalidName),
		errors.Is(err, qrcode.ErrMissingDestination),
		errors.Is(err, qrcode.ErrNotDynamic),
		errors.Is(err, folder.ErrInvalidName),
		errors.Is(err, folder.ErrInvalidColor),
		errors.Is(err, folder.ErrNoUpdates):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, folder.ErrDuplicateName):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, qrcode.ErrNotFound),
		errors.Is(err, qrcode.ErrFolderNotFound),
		errors.Is(err, folder.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, qrcode.ErrShortCodesExhausted):
		return huma.Error503ServiceUnavailable("could not allocate a short code, try again")
	}

	if log != nil {
		log.Error("unhandled error", "error", err)
	}
	return huma.Error500InternalServerError("internal server error")
}

// ParseID parses an identifier taken from the request at location, e.g. "path.id".
func ParseID(location, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, huma.Error422UnprocessableEntity("invalid id", &huma.ErrorDetail{
			Message:  "expected a UUID",
			Location: location,
			Value:    raw,
		})
	}
	return id, nil
}

// ParseOptionalID is ParseID for fields that may be left empty.
func ParseOptionalID(location string, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := ParseID(location, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
