package codestructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqlTypeFrom(t *testing.T) {
	tests := []struct {
		raw  string
		want SqlType
	}{
		{"bigint", TypeInteger},
		{"INTEGER", TypeInteger},
		{"int(11) unsigned", TypeInteger},
		{"tinyint(1)", TypeBoolean},
		{"tinyint(4)", TypeInteger},
		{"boolean", TypeBoolean},
		{"VARCHAR(255)", TypeString},
		{"character varying", TypeString},
		{"longtext", TypeText},
		{"decimal(8,2)", TypeDecimal},
		{"double precision", TypeDecimal},
		{"timestamp without time zone", TypeDateTime},
		{"datetime", TypeDateTime},
		{"date", TypeDate},
		{"time", TypeTime},
		{"jsonb", TypeJSON},
		{"text[]", TypeJSON},
		{"uuid", TypeUUID},
		{"geometry", TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, SqlTypeFrom(tt.raw))
		})
	}
}

func TestSqlTypeRendering(t *testing.T) {
	tests := []struct {
		sqlType SqlType
		rules   string
		input   string
		php     string
	}{
		{TypeID, "integer", "number", "int"},
		{TypeInteger, "integer", "number", "int"},
		{TypeDecimal, "numeric", "number", "float"},
		{TypeBoolean, "boolean", "checkbox", "bool"},
		{TypeString, "string", "text", "string"},
		{TypeText, "string", "text", "string"},
		{TypeUUID, "uuid", "text", "string"},
		{TypeDate, "date", "date", "string"},
		{TypeDateTime, "date", "datetime-local", "string"},
		{TypeTime, "string", "time", "string"},
		{TypeJSON, "array", "text", "array"},
	}

	for _, tt := range tests {
		t.Run(string(tt.sqlType), func(t *testing.T) {
			assert.Equal(t, tt.rules, tt.sqlType.RulesType())
			assert.Equal(t, tt.input, tt.sqlType.InputType())
			assert.Equal(t, tt.php, tt.sqlType.PHPType())
		})
	}
	assert.True(t, TypeID.IsIDType())
	assert.False(t, TypeInteger.IsIDType())
}

func TestColumnFlags(t *testing.T) {
	created := NewColumn("created_at", "timestamp", true)
	assert.True(t, created.IsCreatedAt())
	assert.True(t, created.IsLaravelTimestamp())
	assert.False(t, created.IsUpdatedAt())

	deleted := NewColumn("deleted_at", "timestamp", true)
	assert.True(t, deleted.IsDeletedAt())
	assert.True(t, deleted.IsLaravelTimestamp())

	id := NewColumn("uuid", "uuid", false, WithPrimaryKey())
	assert.True(t, id.IsID())
	assert.Equal(t, TypeUUID, id.Type())

	named := NewColumn("id", "char(26)", false)
	assert.True(t, named.IsID())

	plain := NewColumn("title", "varchar", false)
	assert.False(t, plain.IsID())
	assert.Equal(t, "required", plain.NullableRule())
	assert.Equal(t, "string", plain.PHPType())
}

func TestColumnInputType(t *testing.T) {
	tests := []struct {
		name    string
		rawType string
		want    string
	}{
		{"email", "varchar", "email"},
		{"billing_email", "varchar", "email"},
		{"password", "varchar", "password"},
		{"phone", "varchar", "tel"},
		{"website_url", "varchar", "url"},
		{"is_active", "boolean", "checkbox"},
		{"published_on", "date", "date"},
		{"title", "varchar", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewColumn(tt.name, tt.rawType, false).InputType())
		})
	}
}

func TestColumnRelation(t *testing.T) {
	author := NewColumn("author_id", "bigint", false, WithReference("users"))
	assert.True(t, author.HasBelongsTo())
	assert.Equal(t, "author", author.Relation())
	assert.Equal(t, "User", author.RelatedModel())
	assert.Equal(t, "users", author.References())

	parent := NewColumn("parent_category_id", "bigint", true, WithReference("categories"))
	assert.Equal(t, "parentCategory", parent.Relation())
	assert.Equal(t, "Category", parent.RelatedModel())
	assert.Equal(t, "parentCategoryId", parent.Property())
	assert.Equal(t, "?int", parent.PHPType())
}
