package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Request & Input-Validation Errors
var (
	ErrMalformedPayload     = errors.New("malformed payload")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidField         = errors.New("invalid field")
	ErrValidation           = errors.New("validation error")
	ErrBadUpload            = errors.New("bad upload")
)

func Malformed(payloadName string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, payloadName+" malformed")
}

func NewMalformedPayloadError(payloadType string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMalformedPayload,
		Details:    fmt.Sprintf("Malformed %s payload", payloadType),
		Cause:      cause,
		Field:      "payload",
	}
}

func NewMissingRequiredFieldError(fieldName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMissingRequiredField,
		Details:    fmt.Sprintf("Missing required field: %s", fieldName),
		Field:      fieldName,
	}
}

func NewInvalidFieldError(fieldName string, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidField,
		Details:    fmt.Sprintf("Invalid field %s: %s", fieldName, reason),
		Field:      fieldName,
	}
}

// NewValidationError wraps a model-level validation failure (required
// fields, length bounds, email format) as a 400.
func NewValidationError(entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    fmt.Sprintf("Invalid %s", entity),
		Cause:      cause,
	}
}

// NewBadUploadError rejects a file that did not pass the upload filter
// (anything whose sniffed content type is not image/*).
func NewBadUploadError(contentType string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrBadUpload,
		Details:    fmt.Sprintf("Not an image! Please upload only images (got %s)", contentType),
		Field:      "image",
	}
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrMissingRequiredField) ||
		errors.Is(err, ErrInvalidField)
}

func IsBadUpload(err error) bool {
	return errors.Is(err, ErrBadUpload)
}
