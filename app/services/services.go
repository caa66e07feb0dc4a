package services

import (
	"errors"

	"inkpress/app/apperr"
	"inkpress/app/auth"
	"inkpress/app/repositories"
)

// Authorizer is the capability check consulted before any admin-only
// mutation. Satisfied by *auth.Gate.
type Authorizer interface {
	Authorize(credential string) (auth.AdminIdentity, error)
}

// storeErr maps repository failures onto the error taxonomy: a missing
// record becomes NotFound, anything else means the store misbehaved.
func storeErr(err error, what, id string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperr.NotFound("%s %s not found", what, id)
	}
	return apperr.Wrap(apperr.KindStoreUnavailable, err, "content store failure")
}
