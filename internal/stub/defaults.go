package stub

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

//go:embed stubs/*.stub
var defaultStubs embed.FS

// Defaults returns a read-only filesystem holding the built-in stubs.
func Defaults() afero.Fs {
	sub, err := fs.Sub(defaultStubs, "stubs")
	if err != nil {
		panic(err)
	}
	return afero.FromIOFS{FS: sub}
}

// Sources returns the stubs of dir layered over the defaults, so a project
// only needs to keep the stubs it customises. An empty dir yields the
// defaults.
func Sources(dir string) afero.Fs {
	if dir == "" {
		return Defaults()
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return afero.NewCopyOnWriteFs(Defaults(), afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir)))
}

// Publish copies the default stubs to dst and returns the names written.
// Existing files are kept unless force is set.
func Publish(dst afero.Fs, force bool) ([]string, error) {
	entries, err := fs.ReadDir(defaultStubs, "stubs")
	if err != nil {
		return nil, err
	}

	var written []string
	for _, entry := range entries {
		name := entry.Name()

		exists, err := afero.Exists(dst, name)
		if err != nil {
			return written, err
		}
		if exists && !force {
			continue
		}

		data, err := defaultStubs.ReadFile("stubs/" + name)
		if err != nil {
			return written, err
		}
		if err := afero.WriteFile(dst, name, data, 0644); err != nil {
			return written, fmt.Errorf("failed to publish %s: %w", name, err)
		}
		written = append(written, name)
	}

	return written, nil
}
