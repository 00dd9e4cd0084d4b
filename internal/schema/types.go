package schema

import "time"

type Schema struct {
	Database    string    `json:"database" yaml:"database"`
	Tables      []Table   `json:"tables" yaml:"tables"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

type Table struct {
	Name        string       `json:"name" yaml:"table"`
	Schema      string       `json:"schema" yaml:"schema"`
	Type        string       `json:"type" yaml:"-"`
	Columns     []Column     `json:"columns" yaml:"columns"`
	PrimaryKeys []string     `json:"primary_keys" yaml:"-"`
	ForeignKeys []ForeignKey `json:"foreign_keys" yaml:"-"`
	Comment     string       `json:"comment" yaml:"comment"`
}

type Column struct {
	Name         string  `json:"name" yaml:"name"`
	Type         string  `json:"type" yaml:"type"`
	Length       *int    `json:"length,omitempty" yaml:"length,omitempty"`
	IsNullable   bool    `json:"is_nullable" yaml:"nullable"`
	DefaultValue *string `json:"default_value,omitempty" yaml:"default,omitempty"`
	IsPrimaryKey bool    `json:"is_primary_key" yaml:"primary"`
	// References names the table a foreign key column points at.
	References string `json:"references,omitempty" yaml:"references,omitempty"`
	Comment    string `json:"comment" yaml:"comment"`
}

type ForeignKey struct {
	Name             string `json:"name"`
	Table            string `json:"table"`
	Column           string `json:"column"`
	ReferencedTable  string `json:"referenced_table"`
	ReferencedColumn string `json:"referenced_column"`
	OnUpdate         string `json:"on_update"`
	OnDelete         string `json:"on_delete"`
}

// Column returns the column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// Resolve copies primary and foreign key metadata onto the columns.
func (t *Table) Resolve() {
	for _, pk := range t.PrimaryKeys {
		if col := t.Column(pk); col != nil {
			col.IsPrimaryKey = true
		}
	}
	for _, fk := range t.ForeignKeys {
		if col := t.Column(fk.Column); col != nil && col.References == "" {
			col.References = fk.ReferencedTable
		}
	}
}
