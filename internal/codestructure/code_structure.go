// Package codestructure holds the column metadata of one table and renders
// the PHP fragments the builders substitute into their stubs.
package codestructure

import (
	"fmt"
	"slices"
	"strings"
)

type CodeStructure struct {
	table   string
	entity  NameStr
	columns []ColumnStructure

	isCreatedAt bool
	isUpdatedAt bool
	isDeletedAt bool
}

func New(table, entity string) *CodeStructure {
	return &CodeStructure{
		table:  table,
		entity: NewNameStr(entity),
	}
}

func (c *CodeStructure) Table() string {
	return c.table
}

func (c *CodeStructure) Entity() NameStr {
	return c.entity
}

// AddColumn appends column unless an equal column was already added.
func (c *CodeStructure) AddColumn(column ColumnStructure) {
	if slices.Contains(c.columns, column) {
		return
	}

	c.columns = append(c.columns, column)

	c.setTimestamps(column)
}

func (c *CodeStructure) setTimestamps(column ColumnStructure) {
	switch {
	case column.IsCreatedAt():
		c.isCreatedAt = true
	case column.IsUpdatedAt():
		c.isUpdatedAt = true
	case column.IsDeletedAt():
		c.isDeletedAt = true
	}
}

func (c *CodeStructure) Columns() []ColumnStructure {
	return slices.Clone(c.columns)
}

func (c *CodeStructure) IsTimestamps() bool {
	return c.isCreatedAt && c.isUpdatedAt
}

func (c *CodeStructure) IsSoftDeletes() bool {
	return c.isDeletedAt
}

func (c *CodeStructure) DateColumns() []string {
	return []string{
		ColumnCreatedAt,
		ColumnUpdatedAt,
		ColumnDeletedAt,
	}
}

func (c *CodeStructure) isDateColumn(column ColumnStructure) bool {
	return slices.Contains(c.DateColumns(), column.Column())
}

// formColumns are the columns a user edits: no identifiers, no dates
// managed by Eloquent.
func (c *CodeStructure) formColumns() []ColumnStructure {
	var result []ColumnStructure
	for _, column := range c.columns {
		if c.isDateColumn(column) || column.IsID() {
			continue
		}
		result = append(result, column)
	}
	return result
}

func (c *CodeStructure) ColumnsToModel() string {
	var result strings.Builder

	for _, column := range c.columns {
		if column.IsID() || column.IsLaravelTimestamp() {
			continue
		}

		fmt.Fprintf(&result, "\n\t\t'%s',", column.Column())
	}

	return result.String()
}

func (c *CodeStructure) ColumnsToRules() string {
	var result strings.Builder

	for _, column := range c.columns {
		if column.IsID() || c.isDateColumn(column) {
			continue
		}

		fmt.Fprintf(&result, "\n\t\t\t'%s' => ['%s', '%s'],",
			column.Column(), column.RulesType(), column.NullableRule())
	}

	return result.String()
}

func (c *CodeStructure) ColumnsToForm() string {
	var result strings.Builder

	for _, column := range c.formColumns() {
		name := column.Column()

		result.WriteString("\n\t<div>\n")
		fmt.Fprintf(&result, "\t\t<label for=\"%s\">%s</label>\n", name, name)
		fmt.Fprintf(&result, "\t\t<input id=\"%s\" name=\"%s\"", name, name)
		if column.InputType() != "text" {
			fmt.Fprintf(&result, " type=\"%s\"", column.InputType())
		}
		result.WriteString("/>\n\t</div>")
	}

	return result.String()
}

func (c *CodeStructure) HasBelongsTo() bool {
	return slices.ContainsFunc(c.columns, ColumnStructure.HasBelongsTo)
}

func (c *CodeStructure) BelongsToInModel() string {
	var result strings.Builder

	seen := make(map[string]bool)
	for _, column := range c.columns {
		if !column.HasBelongsTo() {
			continue
		}

		// A second key into the same table is named after its own column.
		relation := column.Relation()
		if seen[relation] {
			relation = Camel(column.Column())
		}
		if seen[relation] {
			continue
		}
		seen[relation] = true

		args := column.RelatedModel() + "::class"
		if column.Column() != Snake(relation)+"_id" {
			args += fmt.Sprintf(", '%s'", column.Column())
		}

		fmt.Fprintf(&result, "\n\tpublic function %s(): BelongsTo\n", relation)
		result.WriteString("\t{\n")
		fmt.Fprintf(&result, "\t\treturn $this->belongsTo(%s);\n", args)
		result.WriteString("\t}\n")
	}

	return result.String()
}

func (c *CodeStructure) ColumnsToDTOProperties() string {
	var result strings.Builder

	for _, column := range c.formColumns() {
		fmt.Fprintf(&result, "\n\t\tpublic %s $%s,", column.PHPType(), column.Property())
	}

	return result.String()
}

func (c *CodeStructure) ColumnsToDTOFromArray() string {
	var result strings.Builder

	for _, column := range c.formColumns() {
		value := fmt.Sprintf("$data['%s']", column.Column())
		if column.Nullable() {
			value += " ?? null"
		}
		fmt.Fprintf(&result, "\n\t\t\t%s: %s,", column.Property(), value)
	}

	return result.String()
}

func (c *CodeStructure) ColumnsToArray() string {
	var result strings.Builder

	for _, column := range c.formColumns() {
		fmt.Fprintf(&result, "\n\t\t\t'%s' => $this->%s,", column.Column(), column.Property())
	}

	return result.String()
}
