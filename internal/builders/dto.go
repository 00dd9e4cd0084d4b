package builders

import "lcb/internal/buildtype"

type DTOBuilder struct {
	baseBuilder
}

func NewDTOBuilder(p Params) Builder {
	return &DTOBuilder{baseBuilder{p}}
}

func (b *DTOBuilder) Build() (string, error) {
	paths, err := b.paths(buildtype.DTO, buildtype.Request)
	if err != nil {
		return "", err
	}

	s, err := b.stub()
	if err != nil {
		return "", err
	}

	dtoPath := paths[buildtype.DTO]
	request := paths[buildtype.Request]
	cs := b.CodeStructure

	return b.write(s, dtoPath, map[string]string{
		"{namespace}":   dtoPath.Namespace(),
		"{class}":       dtoPath.Class(),
		"{request_fqn}": request.FQN(),
		"{request}":     request.Class(),
		"{properties}":  cs.ColumnsToDTOProperties(),
		"{from_array}":  cs.ColumnsToDTOFromArray(),
		"{to_array}":    cs.ColumnsToArray(),
	})
}
