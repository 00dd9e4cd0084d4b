package builders

import "lcb/internal/buildtype"

type ControllerBuilder struct {
	baseBuilder
}

func NewControllerBuilder(p Params) Builder {
	return &ControllerBuilder{baseBuilder{p}}
}

func (b *ControllerBuilder) Build() (string, error) {
	paths, err := b.paths(
		buildtype.Controller,
		buildtype.Model,
		buildtype.Request,
		buildtype.DTO,
		buildtype.AddAction,
		buildtype.EditAction,
		buildtype.Form,
	)
	if err != nil {
		return "", err
	}

	s, err := b.stub()
	if err != nil {
		return "", err
	}

	controller := paths[buildtype.Controller]
	entity := b.CodeStructure.Entity()

	return b.write(s, controller, map[string]string{
		"{namespace}":       controller.Namespace(),
		"{class}":           controller.Class(),
		"{model_fqn}":       paths[buildtype.Model].FQN(),
		"{model}":           paths[buildtype.Model].Class(),
		"{request_fqn}":     paths[buildtype.Request].FQN(),
		"{request}":         paths[buildtype.Request].Class(),
		"{dto_fqn}":         paths[buildtype.DTO].FQN(),
		"{dto}":             paths[buildtype.DTO].Class(),
		"{add_action_fqn}":  paths[buildtype.AddAction].FQN(),
		"{add_action}":      paths[buildtype.AddAction].Class(),
		"{edit_action_fqn}": paths[buildtype.EditAction].FQN(),
		"{edit_action}":     paths[buildtype.EditAction].Class(),
		"{view}":            paths[buildtype.Form].View(),
		"{route}":           entity.PluralKebab(),
		"{name}":            entity.Singular(),
	})
}
