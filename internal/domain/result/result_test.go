package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	r := Success([]string{"a"})

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsError())
	assert.Equal(t, []string{"a"}, r.Value())
	assert.Empty(t, r.Message())

	v, ok := r.Get()
	assert.True(t, ok)
	assert.Len(t, v, 1)
}

func TestError(t *testing.T) {
	r := Error[*int]("Reminder not found!")

	assert.False(t, r.IsSuccess())
	assert.True(t, r.IsError())
	assert.Nil(t, r.Value())
	assert.Equal(t, "Reminder not found!", r.Message())

	_, ok := r.Get()
	assert.False(t, ok)
}

func TestDone(t *testing.T) {
	assert.True(t, Done().IsSuccess())
}
