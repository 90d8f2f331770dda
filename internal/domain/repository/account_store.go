// Package repository defines the persistence contracts of the domain.
package repository

import (
	"context"

	"farmgate/internal/domain/entity"
)

// AccountStore is the durable holder of the full account set, read and
// written as one unit.
type AccountStore interface {
	// LoadAll reads the complete persisted set. A missing or malformed
	// backing file degrades to an empty slice with a logged warning; it
	// never surfaces an error to the caller.
	LoadAll(ctx context.Context) []entity.Account

	// SaveAll replaces the entire persisted set. The caller supplies the
	// complete, current set; this is a whole-file replace, atomic from
	// the caller's point of view. Serializing the surrounding
	// load-modify-save cycle is the caller's responsibility.
	SaveAll(ctx context.Context, accounts []entity.Account) error
}
