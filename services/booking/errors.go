package booking

import "errors"

// Intake error taxonomy. These map 1:1 onto the public wire responses;
// anything else surfaces as an internal error.
var (
	ErrMissingFields        = errors.New("missing required fields")
	ErrMissingContactFields = errors.New("email and phone are required for regular submissions")
	ErrSalonNotFound        = errors.New("salon not found")
)
