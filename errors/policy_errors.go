// api/errors/policy_errors.go
package errors

import "errors"

var (
	ErrPlanNotFound      = errors.New("plan not found")
	ErrInvalidPlanData   = errors.New("invalid plan data")
	ErrFeatureNotFound   = errors.New("feature not found")
	ErrPolicyPersist     = errors.New("failed to persist policy state")
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInternalServer    = errors.New("internal server error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)
