// Package stub fills placeholder tokens in stub files and writes the result.
package stub

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

var ErrStubNotFound = errors.New("stub not found")

type conditionalKey struct {
	key       string
	value     string
	condition bool
}

type StubBuilder struct {
	name    string
	content string
	keys    []conditionalKey
}

// Load reads the stub called name from src.
func Load(src afero.Fs, name string) (*StubBuilder, error) {
	data, err := afero.ReadFile(src, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrStubNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stub %s: %w", name, err)
	}

	return &StubBuilder{name: name, content: string(data)}, nil
}

// FromString wraps already loaded stub content.
func FromString(name, content string) *StubBuilder {
	return &StubBuilder{name: name, content: content}
}

// SetKey replaces key with value when condition holds and removes it
// otherwise.
func (b *StubBuilder) SetKey(key, value string, condition bool) *StubBuilder {
	b.keys = append(b.keys, conditionalKey{key: key, value: value, condition: condition})
	return b
}

// Render applies the conditional keys, then replacements.
func (b *StubBuilder) Render(replacements map[string]string) string {
	content := b.content
	for _, k := range b.keys {
		value := ""
		if k.condition {
			value = k.value
		}
		content = strings.ReplaceAll(content, k.key, value)
	}

	return newReplacer(replacements).Replace(content)
}

// MakeFromStub renders the stub and writes it to path on dst, creating
// parent directories.
func (b *StubBuilder) MakeFromStub(dst afero.Fs, path string, replacements map[string]string) error {
	if err := dst.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	if err := afero.WriteFile(dst, path, []byte(b.Render(replacements)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// newReplacer orders keys longest first so that overlapping tokens resolve
// deterministically.
func newReplacer(replacements map[string]string) *strings.Replacer {
	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, replacements[k])
	}
	return strings.NewReplacer(pairs...)
}
