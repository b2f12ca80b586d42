package profile

import "errors"

var (
	ErrEmptyRiderID      = errors.New("rider id is empty")
	ErrNoFieldsToUpdate  = errors.New("no profile fields to update")
	ErrUnsupportedStatus = errors.New("unsupported rider status")
)
