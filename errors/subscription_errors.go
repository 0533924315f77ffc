// api/errors/subscription_errors.go
package errors

import "errors"

var (
	ErrSubscriptionNotFound    = errors.New("subscription not found")
	ErrInvalidSubscriptionData = errors.New("invalid subscription data")
	ErrSubscriptionConflict    = errors.New("subscription conflict")
)
