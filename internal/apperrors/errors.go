package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrReconciliation indicates that a split allocation failed to sum back to its
// original cost. This is a programming defect, not a user-facing validation
// failure; it must never occur for valid inputs.
var ErrReconciliation = errors.New("split allocation does not reconcile to cost")

// ErrUpstream indicates that a collaborator (storage or the shared-expense
// service) failed or returned malformed data. The collaborator's message is
// surfaced verbatim alongside this sentinel.
var ErrUpstream = errors.New("upstream collaborator failure")
