package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHidden(t *testing.T) {
	cases := []struct {
		root string
		path string
		want bool
	}{
		{".", ".", false},
		{".", "photos", false},
		{".", ".git", true},
		{".photos", ".photos", false},
		{".photos", ".photos/ridge.jpg", false},
		{".photos", ".photos/.cache", true},
		{"/in", "/in/.DS_Store", true},
		{"/in", "/in/alps/ridge.jpg", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, hidden(tc.root, tc.path), "root=%q path=%q", tc.root, tc.path)
	}
}
