package models

import "time"

// Hold is a short-lived exclusive reservation on a slot while a customer
// completes checkout. Holds live only in the ephemeral store under the slot's
// derived number; expiry is enforced by the store's TTL, so an absent hold and
// an expired hold are indistinguishable.
type Hold struct {
	HolderID  string    `json:"holder_id"`  // Opaque holder identity: user id, session id or anonymous token
	ExpiresAt time.Time `json:"expires_at"` // When the hold lapses
}
