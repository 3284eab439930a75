package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   uint
	Name string
}

func TestMapSlice(t *testing.T) {
	assert.Nil(t, MapSlice[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{}, MapSlice([]int{}, strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, strconv.Itoa))
}

func TestMapSlicePtrWithID(t *testing.T) {
	upper := func(r *row) (*string, error) {
		if r.Name == "" {
			return nil, errors.New("empty name")
		}
		if r.Name == "skip" {
			return nil, nil
		}
		s := r.Name + "!"
		return &s, nil
	}
	id := func(r *row) uint { return r.ID }

	out, err := MapSlicePtrWithID([]*row{{ID: 1, Name: "a"}, nil, {ID: 2, Name: "skip"}, {ID: 3, Name: "b"}}, upper, id)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a!", *out[0])
	assert.Equal(t, "b!", *out[1])

	_, err = MapSlicePtrWithID([]*row{{ID: 9}}, upper, id)
	assert.ErrorContains(t, err, "failed to map item ID 9: empty name")
}
