// Package buildtype enumerates the artifacts lcb can generate.
package buildtype

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknown = errors.New("unknown build type")

type Type string

const (
	Model      Type = "model"
	AddAction  Type = "add_action"
	EditAction Type = "edit_action"
	Request    Type = "request"
	Controller Type = "controller"
	Route      Type = "route"
	Form       Type = "form"
	DTO        Type = "dto"
)

// All returns every build type in generation order.
func All() []Type {
	return []Type{Model, DTO, AddAction, EditAction, Request, Controller, Route, Form}
}

func Parse(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range All() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknown, s)
}

// ParseList parses build types, expanding an empty list to All.
func ParseList(values []string) ([]Type, error) {
	if len(values) == 0 {
		return All(), nil
	}

	var types []Type
	seen := map[Type]bool{}
	for _, v := range values {
		t, err := Parse(v)
		if err != nil {
			return nil, err
		}
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	return types, nil
}

func (t Type) String() string {
	return string(t)
}

// StubName is the stub file used for t, e.g. "AddAction.stub".
func (t Type) StubName() string {
	if t == DTO {
		return "DTO.stub"
	}

	var b strings.Builder
	for _, part := range strings.Split(string(t), "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	b.WriteString(".stub")
	return b.String()
}
