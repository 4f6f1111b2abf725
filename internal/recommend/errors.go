// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package recommend

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a recommendation failure.
type Kind int

const (
	// KindUnknown is returned by KindOf for errors outside the taxonomy.
	KindUnknown Kind = iota
	KindDataLoad
	KindInvalidDataFormat
	KindContentNotFound
	KindNoRecommendationsAvailable
	KindSimilarUsersNotFound
	KindUserNotFound
	KindInsufficientUserData
	KindInvalidContentType
	KindModelNotReady
)

// TypeName returns the name reported to API clients in the error body.
func (k Kind) TypeName() string {
	switch k {
	case KindDataLoad:
		return "DataLoadException"
	case KindInvalidDataFormat:
		return "InvalidDataFormatException"
	case KindContentNotFound:
		return "ContentNotFoundException"
	case KindNoRecommendationsAvailable:
		return "NoRecommendationsAvailableException"
	case KindSimilarUsersNotFound:
		return "SimilarUsersNotFoundException"
	case KindUserNotFound:
		return "UserNotFoundException"
	case KindInsufficientUserData:
		return "InsufficientUserDataException"
	case KindInvalidContentType:
		return "InvalidContentTypeException"
	case KindModelNotReady:
		return "ModelNotReadyException"
	default:
		return "InternalServerError"
	}
}

// HTTPStatus returns the status code the API responds with for this kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindContentNotFound, KindNoRecommendationsAvailable, KindSimilarUsersNotFound, KindUserNotFound:
		return http.StatusNotFound
	case KindInsufficientUserData:
		return http.StatusUnprocessableEntity
	case KindInvalidContentType:
		return http.StatusBadRequest
	case KindModelNotReady:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is a structured, user-facing recommendation failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain,
// or KindUnknown when there is none.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// NewDataLoadError reports a missing, empty or unreadable data source.
func NewDataLoadError(path, reason string, cause error) *Error {
	msg := fmt.Sprintf("Failed to load data from '%s'", path)
	if reason != "" {
		msg += ": " + reason
	}
	return &Error{Kind: KindDataLoad, Message: msg, Err: cause}
}

// NewInvalidDataFormatError reports structurally invalid input or derived data.
func NewInvalidDataFormatError(details string) *Error {
	msg := "Invalid data format"
	if details != "" {
		msg += ": " + details
	}
	return &Error{Kind: KindInvalidDataFormat, Message: msg}
}

// NewContentNotFoundError reports a catalog miss for a single item.
func NewContentNotFoundError(itemID string) *Error {
	return &Error{
		Kind:    KindContentNotFound,
		Message: fmt.Sprintf("Content with ID '%s' not found", itemID),
	}
}

// NewNoRecommendationsError reports that ranking produced nothing.
// The reason names the filtering stage that emptied the set.
func NewNoRecommendationsError(reason string) *Error {
	if reason == "" {
		reason = "No matching content found"
	}
	return &Error{
		Kind:    KindNoRecommendationsAvailable,
		Message: "Unable to generate recommendations: " + reason,
	}
}

// NewSimilarUsersNotFoundError reports an empty neighborhood.
func NewSimilarUsersNotFoundError(userID string) *Error {
	return &Error{
		Kind:    KindSimilarUsersNotFound,
		Message: fmt.Sprintf("No similar users found for user '%s'", userID),
	}
}

// NewUserNotFoundError reports an unknown user where fallback does not apply.
func NewUserNotFoundError(userID string) *Error {
	return &Error{
		Kind:    KindUserNotFound,
		Message: fmt.Sprintf("User with ID '%s' not found", userID),
	}
}

// NewInsufficientUserDataError reports a user below the interaction minimum.
func NewInsufficientUserDataError(userID string, minInteractions int) *Error {
	return &Error{
		Kind: KindInsufficientUserData,
		Message: fmt.Sprintf("User '%s' has insufficient interaction data. Minimum required: %d",
			userID, minInteractions),
	}
}

// NewInvalidContentTypeError reports a content type outside the known set.
func NewInvalidContentTypeError(contentType string) *Error {
	return &Error{
		Kind: KindInvalidContentType,
		Message: fmt.Sprintf("Invalid content type '%s'. Valid types: %s",
			contentType, formatTypes(AllContentTypes)),
	}
}

// NewModelNotReadyError reports that no engine snapshot has been published.
func NewModelNotReadyError(model string) *Error {
	if model == "" {
		model = "Recommendation Model"
	}
	return &Error{
		Kind:    KindModelNotReady,
		Message: model + " is not ready. Please try again later.",
	}
}

// formatTypes renders a content type list as ['a', 'b'].
func formatTypes(types []ContentType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = "'" + string(t) + "'"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
