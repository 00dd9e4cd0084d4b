package builders

import "lcb/internal/buildtype"

type FormBuilder struct {
	baseBuilder
}

func NewFormBuilder(p Params) Builder {
	return &FormBuilder{baseBuilder{p}}
}

func (b *FormBuilder) Build() (string, error) {
	formPath, err := b.path(buildtype.Form)
	if err != nil {
		return "", err
	}

	s, err := b.stub()
	if err != nil {
		return "", err
	}

	entity := b.CodeStructure.Entity()

	return b.write(s, formPath, map[string]string{
		"{name}":   entity.Singular(),
		"{route}":  entity.PluralKebab(),
		"{inputs}": b.CodeStructure.ColumnsToForm(),
	})
}
