package codestructure

import "lcb/internal/schema"

// FromTable builds a CodeStructure for an introspected table. An empty
// entity defaults to the singular of the table name.
func FromTable(table *schema.Table, entity string) *CodeStructure {
	if entity == "" {
		entity = NewNameStr(table.Name).Singular()
	}

	cs := New(table.Name, entity)
	for _, col := range table.Columns {
		var opts []ColumnOption
		if col.IsPrimaryKey {
			opts = append(opts, WithPrimaryKey())
		}
		if col.References != "" {
			opts = append(opts, WithReference(col.References))
		}
		cs.AddColumn(NewColumn(col.Name, col.Type, col.IsNullable, opts...))
	}

	return cs
}
