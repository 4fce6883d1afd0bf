package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore() Store {
	start := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	authors := []string{"Zoe", "Alice", Notification, "Bob", "Alice"}
	records := make([]Record, 0, len(authors))
	for i, author := range authors {
		records = append(records, NewRecord(i, start.Add(time.Duration(i)*time.Minute), author, "hi"))
	}
	return NewStore(records)
}

func TestStore_Participants(t *testing.T) {
	req := require.New(t)
	store := newTestStore()

	req.Equal([]string{"Alice", "Bob", "Zoe"}, store.Participants())
	req.Equal([]string{Overall, "Alice", "Bob", "Zoe"}, store.Scopes())
	req.True(store.HasScope(Overall))
	req.True(store.HasScope("Bob"))
	req.False(store.HasScope(Notification))
	req.False(store.HasScope("Charlie"))
}

func TestStore_Filter(t *testing.T) {
	req := require.New(t)
	store := newTestStore()

	req.Len(store.Filter(Overall), 5)
	req.Len(store.Authored(Overall), 4)
	req.Len(store.Filter("Alice"), 2)
	req.Len(store.Authored("Alice"), 2)
	req.Empty(store.Filter("Charlie"))
	req.Len(store.Filter(Notification), 1)
	req.Empty(store.Authored(Notification))
}

func TestStore_IsImmutable(t *testing.T) {
	req := require.New(t)
	store := newTestStore()

	records := store.Records()
	records[0].Author = "Mallory"
	filtered := store.Filter(Overall)
	filtered[1].Body = "changed"

	req.Equal("Zoe", store.Records()[0].Author)
	req.Equal("hi", store.Records()[1].Body)

	// The slice given to NewStore is copied too
	source := store.Records()
	copied := NewStore(source)
	source[0].Author = "Mallory"
	req.Equal("Zoe", copied.Records()[0].Author)
}
