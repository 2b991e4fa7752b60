package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLocalID(t *testing.T) {
	assert.True(t, IsLocalID("local_abc"))
	assert.True(t, IsLocalID(NewLocalID()))
	assert.False(t, IsLocalID(NewID()))
	assert.False(t, IsLocalID("sample_1"))
	assert.False(t, IsLocalID(""))
}

func TestNewLocalID_Unique(t *testing.T) {
	assert.NotEqual(t, NewLocalID(), NewLocalID())
}

func TestDisplayImages(t *testing.T) {
	p := &Product{Image: "primary.jpg"}
	assert.Equal(t, []string{"primary.jpg"}, p.DisplayImages())

	p.Images = []string{"a.jpg", "b.jpg"}
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.DisplayImages())

	empty := &Product{}
	assert.Empty(t, empty.DisplayImages())
}
