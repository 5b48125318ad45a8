// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "space-token", "  tok_abc123  \n")
				writeFile(t, dir, "space-domain", "example.jetbrains.space\n")
				return dir
			},
			want: map[string]string{
				"space-token":  "tok_abc123",
				"space-domain": "example.jetbrains.space",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files and dotfiles",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "space-token", "tok")
				writeFile(t, dir, "empty-key", "   \n")
				writeFile(t, dir, ".gitkeep", "")
				return dir
			},
			want: map[string]string{"space-token": "tok"},
		},
		{
			name: "skips subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "space-token", "tok")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{"space-token": "tok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "SPACE_TOKEN", EnvName("space-token"))
	assert.Equal(t, "SPACE_PROJECT_ID", EnvName("space-project-id"))
	assert.Equal(t, "PERCENT_CREATIVE", EnvName("percent-creative"))
}

func TestEnv(t *testing.T) {
	env := Env(map[string]string{
		"space-token":  "tok",
		"space-domain": "example.space",
	})
	// Sorted by key for a stable child environment.
	assert.Equal(t, []string{
		"SPACE_DOMAIN=example.space",
		"SPACE_TOKEN=tok",
	}, env)

	assert.Nil(t, Env(nil))
	assert.Nil(t, Env(map[string]string{}))
}
