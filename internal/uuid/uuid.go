// Package uuid wraps google/uuid with gin query parameter binding.
package uuid

import (
	gouuid "github.com/google/uuid"
)

// UUID is a google/uuid UUID that can bind from query strings.
type UUID struct {
	gouuid.UUID
}

var Nil UUID

// UnmarshalParam binds a query parameter. An empty parameter binds to
// the nil UUID so that optional filters can stay unset.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := gouuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
