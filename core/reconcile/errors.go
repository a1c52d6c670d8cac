package reconcile

import "errors"

var (
	// ErrItemNotFound is returned when an item name or id is absent from the Marketplace catalog.
	ErrItemNotFound = errors.New("item not found")

	// ErrMissingReferencePrice is returned when the SB reference item has no gold price.
	ErrMissingReferencePrice = errors.New("sb reference price unavailable")
)
