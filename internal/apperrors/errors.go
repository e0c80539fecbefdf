package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidTransition indicates that a document status change is not
// allowed by its state machine.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrNumberingConflict indicates that the numbering allocator produced a
// document number that already exists. Callers may retry the allocation
// once within the same request.
var ErrNumberingConflict = errors.New("document number conflict")

// ErrConflict indicates that the operation conflicts with the current state
// of the resource.
var ErrConflict = errors.New("resource state conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
