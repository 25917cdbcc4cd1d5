package connections

import "github.com/theleywin/talentnest/src/apperr"

var (
	ErrSelfRequest      = apperr.New(apperr.CodeSelfRequest, "You can't send a request to yourself")
	ErrAlreadyConnected = apperr.New(apperr.CodeAlreadyConnected, "You are already connected")
	ErrDuplicatePending = apperr.New(apperr.CodeDuplicatePending, "A connection request already exists")
	ErrRequestNotFound  = apperr.New(apperr.CodeRequestNotFound, "Connection request not found")
	ErrNotAuthorized    = apperr.New(apperr.CodeNotAuthorized, "Not authorized to act on this request")
	ErrAlreadyProcessed = apperr.New(apperr.CodeAlreadyProcessed, "This request has already been processed")
	ErrUserNotFound     = apperr.New(apperr.CodeUserNotFound, "User not found")
)
