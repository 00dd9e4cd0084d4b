package builders

import "lcb/internal/buildtype"

type RouteBuilder struct {
	baseBuilder
}

func NewRouteBuilder(p Params) Builder {
	return &RouteBuilder{baseBuilder{p}}
}

func (b *RouteBuilder) Build() (string, error) {
	paths, err := b.paths(buildtype.Route, buildtype.Controller)
	if err != nil {
		return "", err
	}

	s, err := b.stub()
	if err != nil {
		return "", err
	}

	controller := paths[buildtype.Controller]

	return b.write(s, paths[buildtype.Route], map[string]string{
		"{controller_fqn}": controller.FQN(),
		"{controller}":     controller.Class(),
		"{uri}":            b.CodeStructure.Entity().PluralKebab(),
	})
}
