// Package ports defines the interfaces the application layer depends on,
// implemented by the infrastructure layer.
package ports

import "lawmap/domain/userdata"

// DocumentStore owns the single user-data document. Mutations go through
// Update, which applies the transition to a copy of the current document and
// swaps it in whole, so readers never observe a half-applied change.
// Persistence of the result is best effort: a failed write is logged and
// swallowed, the in-memory document stays authoritative for the session.
type DocumentStore interface {
	// View returns a deep copy of the current document
	View() userdata.Document

	// Update derives a new document by applying fn to a copy of the current
	// one. If fn returns an error the store is left unchanged and the error
	// is returned.
	Update(fn func(doc *userdata.Document) error) error
}
