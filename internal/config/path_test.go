package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("AVEENIX_TEST_DIR", "/srv/data")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain path untouched", "/var/lib/aveenix.db", "/var/lib/aveenix.db"},
		{"tilde prefix", "~/data/aveenix.db", filepath.Join(home, "data/aveenix.db")},
		{"bare tilde", "~", home},
		{"env var", "$AVEENIX_TEST_DIR/aveenix.db", "/srv/data/aveenix.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
