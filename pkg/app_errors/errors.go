package apperrors

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrInscriptionNotFound = errors.New("inscription not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrUserNotFound        = errors.New("user not found")

	ErrNotOwner = errors.New("requester does not own this resource")

	ErrEventCancelled   = errors.New("event is cancelled")
	ErrAlreadyPublished = errors.New("event is already published")
	ErrNotPublished     = errors.New("event is not published")
	ErrIncompleteEvent  = errors.New("event is missing required fields to publish")

	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrAlreadyCancelled  = errors.New("inscription is already cancelled")
	ErrEventFull         = errors.New("event is full")
	ErrEventNotAvailable = errors.New("event is not available for registration")
	ErrEventIsFree       = errors.New("event is free")

	ErrPaymentNotPending = errors.New("payment is not pending")
	ErrCannotRefund      = errors.New("payment cannot be refunded")
	ErrProcessorFailure  = errors.New("payment processor failure")

	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)
