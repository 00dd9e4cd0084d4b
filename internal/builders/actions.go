package builders

import "lcb/internal/buildtype"

type AddActionBuilder struct {
	baseBuilder
}

func NewAddActionBuilder(p Params) Builder {
	return &AddActionBuilder{baseBuilder{p}}
}

func (b *AddActionBuilder) Build() (string, error) {
	return b.buildAction(buildtype.AddAction)
}

type EditActionBuilder struct {
	baseBuilder
}

func NewEditActionBuilder(p Params) Builder {
	return &EditActionBuilder{baseBuilder{p}}
}

func (b *EditActionBuilder) Build() (string, error) {
	return b.buildAction(buildtype.EditAction)
}

// buildAction fills the add and edit action stubs, which share their
// placeholders.
func (b baseBuilder) buildAction(action buildtype.Type) (string, error) {
	paths, err := b.paths(action, buildtype.Model, buildtype.DTO)
	if err != nil {
		return "", err
	}

	s, err := b.stub()
	if err != nil {
		return "", err
	}

	actionPath := paths[action]
	model := paths[buildtype.Model]
	dto := paths[buildtype.DTO]

	return b.write(s, actionPath, map[string]string{
		"{namespace}": actionPath.Namespace(),
		"{class}":     actionPath.Class(),
		"{model_fqn}": model.FQN(),
		"{model}":     model.Class(),
		"{dto_fqn}":   dto.FQN(),
		"{dto}":       dto.Class(),
		"{name}":      b.CodeStructure.Entity().Singular(),
	})
}
