package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrOrganizationNotFound = errors.New("organization not found")
var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrValidation = errors.New("validation failed")

// ErrOrganizationInUse is returned when deleting an organization that is
// still referenced by users or orders. There is no cascading delete.
var ErrOrganizationInUse = errors.New("organization still has users or orders")
