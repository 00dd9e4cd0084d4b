package builders

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"lcb/internal/buildtype"
	"lcb/internal/codepath"
	"lcb/internal/codestructure"

	"github.com/spf13/afero"
)

var ErrBuilderNotFound = errors.New("builder not found")

// Factory selects the builder of a build type and runs it.
type Factory struct {
	codeStructure *codestructure.CodeStructure
	codePath      *codepath.CodePath
	stubs         afero.Fs
	output        afero.Fs
	log           *slog.Logger
	builders      map[buildtype.Type]Constructor
}

func NewFactory(
	cs *codestructure.CodeStructure,
	cp *codepath.CodePath,
	stubs afero.Fs,
	output afero.Fs,
	log *slog.Logger,
) *Factory {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Factory{
		codeStructure: cs,
		codePath:      cp,
		stubs:         stubs,
		output:        output,
		log:           log,
		builders: map[buildtype.Type]Constructor{
			buildtype.Model:      NewModelBuilder,
			buildtype.AddAction:  NewAddActionBuilder,
			buildtype.EditAction: NewEditActionBuilder,
			buildtype.Request:    NewRequestBuilder,
			buildtype.Controller: NewControllerBuilder,
			buildtype.Route:      NewRouteBuilder,
			buildtype.Form:       NewFormBuilder,
			buildtype.DTO:        NewDTOBuilder,
		},
	}
}

// Register replaces the builder used for buildType.
func (f *Factory) Register(buildType buildtype.Type, constructor Constructor) {
	f.builders[buildType] = constructor
}

// Call runs the builder registered for buildType with the given stub file
// and returns the path it wrote.
func (f *Factory) Call(buildType string, stubFile string) (string, error) {
	constructor, ok := f.builders[buildtype.Type(buildType)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrBuilderNotFound, buildType)
	}

	f.log.Debug("building",
		"type", buildType,
		"stub", stubFile,
		"table", f.codeStructure.Table(),
		"entity", f.codeStructure.Entity().Raw(),
	)

	builder := constructor(Params{
		CodeStructure: f.codeStructure,
		CodePath:      f.codePath,
		Stubs:         f.stubs,
		Output:        f.output,
		StubFile:      stubFile,
	})

	path, err := builder.Build()
	if err != nil {
		return "", err
	}

	f.log.Debug("built", "type", buildType, "path", path)

	return path, nil
}
