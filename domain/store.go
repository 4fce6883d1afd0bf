package domain

import (
	"slices"

	"github.com/samber/lo"
)

// Store is the ordered table of records built from one transcript.
// It is never mutated after NewStore, so concurrent readers need no locking.
type Store struct {
	records []Record
}

func NewStore(records []Record) Store {
	return Store{records: slices.Clone(records)}
}

func (s Store) Len() int {
	return len(s.records)
}

// Records returns a copy of the records in transcript order.
func (s Store) Records() []Record {
	return slices.Clone(s.records)
}

// Filter projects the store on scope. Overall keeps every record, notifications included.
func (s Store) Filter(scope string) []Record {
	if scope == Overall {
		return slices.Clone(s.records)
	}
	return lo.Filter(s.records, func(r Record, _ int) bool {
		return r.Author == scope
	})
}

// Authored is Filter without system notifications.
func (s Store) Authored(scope string) []Record {
	return lo.Filter(s.Filter(scope), func(r Record, _ int) bool {
		return !r.IsNotification()
	})
}
