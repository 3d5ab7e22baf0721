package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	in := []record{{ID: "a", Value: 1.5}, {ID: "b", Value: 2}}
	require.NoError(t, s.Set(Devices, in))

	var out []record
	found, err := s.Get(Devices, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestMemoryStoreMissingCollection(t *testing.T) {
	s := NewMemoryStore()

	var out []record
	found, err := s.Get("nope", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, out)
}

func TestMemoryStoreRemove(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Set(Customers, []record{{ID: "a"}}))
	require.NoError(t, s.Remove(Customers))

	var out []record
	found, err := s.Get(Customers, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreSequencesAreIndependent(t *testing.T) {
	s := NewMemoryStore()

	for want := int64(1); want <= 3; want++ {
		got, err := s.NextSequence("devices")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := s.NextSequence("other")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestMemoryStoreFailWrites(t *testing.T) {
	s := NewMemoryStore()
	s.FailWrites = true

	err := s.Set(Devices, []record{})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.NextSequence("devices")
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, s.Remove(Devices), ErrUnavailable)
}
