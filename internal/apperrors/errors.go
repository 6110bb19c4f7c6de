package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrConflict indicates that the operation cannot proceed from the resource's current state,
// e.g. resolving an approval that is no longer pending.
var ErrConflict = errors.New("conflicting resource state")

// ErrStorage indicates a failure talking to the external file storage provider.
var ErrStorage = errors.New("storage provider error")
