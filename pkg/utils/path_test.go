package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"~", home},
		{"~/readmestats/config.json", filepath.Join(home, "readmestats", "config.json")},
		{"/tmp/../tmp/x.json", "/tmp/x.json"},
		{"~other/x", "~other/x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandPath(tt.in), "ExpandPath(%q)", tt.in)
	}
}
