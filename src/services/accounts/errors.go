package accounts

import "github.com/theleywin/talentnest/src/apperr"

var (
	ErrMissingFields      = apperr.InvalidArg("All fields are required")
	ErrInvalidEmail       = apperr.InvalidArg("Invalid email format")
	ErrPasswordTooShort   = apperr.InvalidArg("Password must be at least 6 characters")
	ErrUsernameTaken      = apperr.New(apperr.CodeUsernameTaken, "Username already exists")
	ErrEmailTaken         = apperr.New(apperr.CodeEmailTaken, "Email already exists")
	ErrInvalidCredentials = apperr.New(apperr.CodeInvalidCredentials, "Invalid credentials")
	ErrUserNotFound       = apperr.New(apperr.CodeUserNotFound, "User not found")
	ErrUnauthenticated    = apperr.Unauthorized("Unauthorized - Invalid Token")
)
