package service

import (
	"net/http"

	"github.com/noah-isme/campus-console-api/internal/upstream"
	appErrors "github.com/noah-isme/campus-console-api/pkg/errors"
)

// mapUpstreamError translates a transport failure into the gateway's error
// taxonomy. The upstream body travels verbatim as the message so the
// console can surface domain-specific explanations (for example a
// delete-conflict reason). Errors that are not transport failures pass
// through untouched for FromError to normalise at the edge.
func mapUpstreamError(err error) error {
	if err == nil {
		return nil
	}
	se, ok := upstream.AsStatusError(err)
	if !ok {
		return err
	}

	message := se.Body
	switch se.StatusCode {
	case http.StatusNotFound:
		if message == "" {
			return appErrors.ErrNotFound
		}
		return appErrors.Clone(appErrors.ErrNotFound, message)
	case http.StatusBadRequest:
		if message == "" {
			return appErrors.ErrValidation
		}
		return appErrors.Clone(appErrors.ErrValidation, message)
	case http.StatusConflict:
		if message == "" {
			return appErrors.ErrConflict
		}
		return appErrors.Clone(appErrors.ErrConflict, message)
	default:
		if message == "" {
			message = se.Error()
		}
		return appErrors.Wrap(se, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, message)
	}
}
