// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials for the report generator from a
// directory of plain-text files. Each file is one secret: the filename is
// the key and the trimmed file contents are the value. Keys are mapped to
// environment-variable names for the generator child (dashes become
// underscores, letters are uppercased), so a file named "space-token"
// becomes SPACE_TOKEN in the child's environment.
//
// The pipeline itself never reads these values; it only passes them along.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// EnvName converts a secret filename to its environment-variable form:
// "space-token" -> "SPACE_TOKEN".
func EnvName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// Env converts a secrets map into "KEY=value" environment entries suitable
// for a child process, sorted by key for a stable order.
func Env(secrets map[string]string) []string {
	if len(secrets) == 0 {
		return nil
	}
	keys := make([]string, 0, len(secrets))
	for k := range secrets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, EnvName(k)+"="+secrets[k])
	}
	return env
}
