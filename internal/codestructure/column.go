package codestructure

import "strings"

const (
	ColumnCreatedAt = "created_at"
	ColumnUpdatedAt = "updated_at"
	ColumnDeletedAt = "deleted_at"
)

// ColumnStructure describes one table column. Values are comparable and two
// columns are the same column when all their fields are equal.
type ColumnStructure struct {
	column     string
	sqlType    SqlType
	nullable   bool
	primary    bool
	references string
}

type ColumnOption func(*ColumnStructure)

// WithPrimaryKey marks the column as the table identifier.
func WithPrimaryKey() ColumnOption {
	return func(c *ColumnStructure) {
		c.primary = true
		if c.sqlType == TypeInteger {
			c.sqlType = TypeID
		}
	}
}

// WithReference records the table a foreign key column points at.
func WithReference(table string) ColumnOption {
	return func(c *ColumnStructure) {
		c.references = table
	}
}

func NewColumn(name, rawType string, nullable bool, opts ...ColumnOption) ColumnStructure {
	c := ColumnStructure{
		column:   name,
		sqlType:  SqlTypeFrom(rawType),
		nullable: nullable,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c ColumnStructure) Column() string {
	return c.column
}

func (c ColumnStructure) Type() SqlType {
	return c.sqlType
}

func (c ColumnStructure) Nullable() bool {
	return c.nullable
}

func (c ColumnStructure) References() string {
	return c.references
}

func (c ColumnStructure) IsID() bool {
	return c.primary || c.sqlType.IsIDType() || c.column == "id"
}

func (c ColumnStructure) IsCreatedAt() bool {
	return c.column == ColumnCreatedAt
}

func (c ColumnStructure) IsUpdatedAt() bool {
	return c.column == ColumnUpdatedAt
}

func (c ColumnStructure) IsDeletedAt() bool {
	return c.column == ColumnDeletedAt
}

func (c ColumnStructure) IsLaravelTimestamp() bool {
	return c.IsCreatedAt() || c.IsUpdatedAt() || c.IsDeletedAt()
}

func (c ColumnStructure) RulesType() string {
	return c.sqlType.RulesType()
}

// NullableRule is the presence rule paired with RulesType.
func (c ColumnStructure) NullableRule() string {
	if c.nullable {
		return "nullable"
	}
	return "required"
}

func (c ColumnStructure) InputType() string {
	name := strings.ToLower(c.column)
	switch {
	case name == "email" || strings.HasSuffix(name, "_email"):
		return "email"
	case strings.Contains(name, "password"):
		return "password"
	case name == "phone" || strings.HasSuffix(name, "_phone"):
		return "tel"
	case name == "url" || strings.HasSuffix(name, "_url"):
		return "url"
	}
	return c.sqlType.InputType()
}

func (c ColumnStructure) PHPType() string {
	if c.nullable {
		return "?" + c.sqlType.PHPType()
	}
	return c.sqlType.PHPType()
}

// Property is the camelCase PHP property name of the column.
func (c ColumnStructure) Property() string {
	return Camel(c.column)
}

func (c ColumnStructure) HasBelongsTo() bool {
	return c.references != ""
}

// Relation is the name of the belongs-to method: "category" for
// category_id, otherwise the singular of the referenced table.
func (c ColumnStructure) Relation() string {
	if base, ok := strings.CutSuffix(c.column, "_id"); ok && base != "" {
		return Camel(base)
	}
	return NewNameStr(c.references).Singular()
}

// RelatedModel is the model class of the referenced table.
func (c ColumnStructure) RelatedModel() string {
	return NewNameStr(c.references).UcFirstSingular()
}
