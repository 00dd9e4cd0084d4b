package builders

import "lcb/internal/buildtype"

type RequestBuilder struct {
	baseBuilder
}

func NewRequestBuilder(p Params) Builder {
	return &RequestBuilder{baseBuilder{p}}
}

func (b *RequestBuilder) Build() (string, error) {
	requestPath, err := b.path(buildtype.Request)
	if err != nil {
		return "", err
	}

	s, err := b.stub()
	if err != nil {
		return "", err
	}

	return b.write(s, requestPath, map[string]string{
		"{namespace}": requestPath.Namespace(),
		"{class}":     requestPath.Class(),
		"{rules}":     b.CodeStructure.ColumnsToRules(),
	})
}
