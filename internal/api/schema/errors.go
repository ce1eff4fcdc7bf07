package schema

import (
	"errors"
	"fmt"

	"github.com/skybi/symbolist/internal/symbol"
)

var emptyMap = map[string]interface{}{}

// Generic errors shared by every endpoint
var (
	ErrInternal = &Error{
		Type:    "generic.internal",
		Message: "An internal error occurred.",
		Details: emptyMap,
	}
	ErrNotFound = &Error{
		Type:    "generic.notFound",
		Message: "Resource not found.",
		Details: emptyMap,
	}
	ErrMethodNotAllowed = &Error{
		Type:    "generic.methodNotAllowed",
		Message: "Method not allowed.",
		Details: emptyMap,
	}
	ErrUnauthorized = &Error{
		Type:    "access.unauthorized",
		Message: "A valid admin token is required.",
		Details: emptyMap,
	}
	ErrForbidden = &Error{
		Type:    "access.forbidden",
		Message: "Symbol imports are disabled on this server.",
		Details: emptyMap,
	}
)

// Symbol and browsing session errors
var (
	ErrSymbolImportInvalid = func(err error) *Error {
		details := map[string]interface{}{}
		var mismatch *symbol.CountMismatchError
		var duplicate *symbol.DuplicateNameError
		switch {
		case errors.As(err, &mismatch):
			details["names"] = mismatch.Names
			details["glyphs"] = mismatch.Glyphs
		case errors.As(err, &duplicate):
			details["name"] = duplicate.Name
		}
		return &Error{
			Type:    "symbols.import.invalid",
			Message: fmt.Sprintf("The symbol import could not be assembled: %s.", err),
			Details: details,
		}
	}
	ErrBrowseSessionNotFound = &Error{
		Type:    "browse.sessionNotFound",
		Message: "The browsing session does not exist or has expired.",
		Details: emptyMap,
	}
	ErrBrowsePageSizeOutOfRange = func(max int) *Error {
		return &Error{
			Type:    "browse.pageSize.outOfRange",
			Message: fmt.Sprintf("The requested page size is out of the allowed range (1 [min] - %d [max]).", max),
			Details: map[string]interface{}{
				"min": 1,
				"max": max,
			},
		}
	}
	ErrBrowseSearchTooLong = func(length, max int) *Error {
		return &Error{
			Type:    "browse.search.tooLong",
			Message: fmt.Sprintf("The search query exceeds the maximum length (%d [given] > %d [max]).", length, max),
			Details: map[string]interface{}{
				"length": length,
				"max":    max,
			},
		}
	}
)

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Status int      `json:"status"`
	Errors []*Error `json:"errors"`
}

// Error is a single machine-readable error of an ErrorResponse
type Error struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details"`
}
