package apperr

import "github.com/gofiber/fiber/v2"

type Code string

const (
	CodeUnknown            Code = "UNKNOWN"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"

	CodeSelfRequest      Code = "SELF_REQUEST"
	CodeAlreadyConnected Code = "ALREADY_CONNECTED"
	CodeDuplicatePending Code = "DUPLICATE_PENDING"
	CodeRequestNotFound  Code = "REQUEST_NOT_FOUND"
	CodeNotAuthorized    Code = "NOT_AUTHORIZED"
	CodeAlreadyProcessed Code = "ALREADY_PROCESSED"
	CodeUserNotFound     Code = "USER_NOT_FOUND"

	CodePostNotFound         Code = "POST_NOT_FOUND"
	CodeNotificationNotFound Code = "NOTIFICATION_NOT_FOUND"
	CodeInvalidCredentials   Code = "INVALID_CREDENTIALS"
	CodeUsernameTaken        Code = "USERNAME_TAKEN"
	CodeEmailTaken           Code = "EMAIL_TAKEN"
)

// HTTPStatus maps a code onto the status the REST layer answers with.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidArgument, CodeSelfRequest, CodeAlreadyConnected, CodeDuplicatePending,
		CodeAlreadyProcessed, CodeFailedPrecondition, CodeInvalidCredentials,
		CodeUsernameTaken, CodeEmailTaken:
		return fiber.StatusBadRequest
	case CodeNotFound, CodeRequestNotFound, CodeUserNotFound, CodePostNotFound, CodeNotificationNotFound:
		return fiber.StatusNotFound
	case CodeAlreadyExists:
		return fiber.StatusConflict
	case CodePermissionDenied, CodeNotAuthorized:
		return fiber.StatusForbidden
	case CodeUnauthenticated:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
