package schemas

import "fmt"

// CustomError is the body of every error response.
type CustomError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

var (
	InternalServerError = &CustomError{
		Message: "Internal server error",
		Code:    "ERR-000",
	}
	BadRequest = &CustomError{
		Message: "The request body is invalid. Please check the request body and try again.",
		Code:    "ERR-001",
	}
	Unauthorized = &CustomError{
		Message: "Unauthorized",
		Code:    "ERR-005",
	}
	NotFound = &CustomError{
		Message: "Not Found",
		Code:    "ERR-006",
	}
	AcronymNotFound = &CustomError{
		Message: "Acronym not found",
		Code:    "ERR-006",
	}
	UsernameTaken = &CustomError{
		Message: "Username already taken",
		Code:    "ERR-007",
	}
	ServiceUnavailable = &CustomError{
		Message: "Database not responding",
		Code:    "ERR-008",
	}
)

// MissingField reports a required body field that is absent or empty.
func MissingField(field string) *CustomError {
	return &CustomError{
		Message: fmt.Sprintf("Missing `%s` in request body", field),
		Code:    "ERR-002",
	}
}

// InvalidField reports a body field that is present but fails validation.
func InvalidField(field string) *CustomError {
	return &CustomError{
		Message: fmt.Sprintf("Invalid `%s` in request body", field),
		Code:    "ERR-003",
	}
}

// MismatchedIds reports a PUT whose body id differs from the path id.
func MismatchedIds(pathId, bodyId string) *CustomError {
	return &CustomError{
		Message: fmt.Sprintf("Request path id (%s) and request body id (%s) must match", pathId, bodyId),
		Code:    "ERR-004",
	}
}
