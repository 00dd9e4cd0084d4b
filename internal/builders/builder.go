// Package builders turns a CodeStructure into generated Laravel files, one
// builder per build type.
package builders

import (
	"fmt"

	"lcb/internal/buildtype"
	"lcb/internal/codepath"
	"lcb/internal/codestructure"
	"lcb/internal/stub"

	"github.com/spf13/afero"
)

// Builder writes one generated file and returns its path.
type Builder interface {
	Build() (string, error)
}

// Params is everything a builder needs.
type Params struct {
	CodeStructure *codestructure.CodeStructure
	CodePath      *codepath.CodePath
	Stubs         afero.Fs
	Output        afero.Fs
	StubFile      string
}

// Constructor creates the builder for one build type.
type Constructor func(Params) Builder

type baseBuilder struct {
	Params
}

func (b baseBuilder) path(buildType buildtype.Type) (codepath.Path, error) {
	return b.CodePath.Path(buildType)
}

// paths resolves several build types at once, keyed by type.
func (b baseBuilder) paths(types ...buildtype.Type) (map[buildtype.Type]codepath.Path, error) {
	result := make(map[buildtype.Type]codepath.Path, len(types))
	for _, t := range types {
		p, err := b.path(t)
		if err != nil {
			return nil, err
		}
		result[t] = p
	}
	return result, nil
}

func (b baseBuilder) stub() (*stub.StubBuilder, error) {
	return stub.Load(b.Stubs, b.StubFile)
}

// write renders the stub into the file of target.
func (b baseBuilder) write(s *stub.StubBuilder, target codepath.Path, replacements map[string]string) (string, error) {
	if err := s.MakeFromStub(b.Output, target.File(), replacements); err != nil {
		return "", fmt.Errorf("failed to build %s: %w", target.File(), err)
	}
	return target.File(), nil
}
