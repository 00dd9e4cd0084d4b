package codestructure

import (
	"strings"
	"testing"

	"lcb/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productStructure() *CodeStructure {
	cs := New("products", "product")
	cs.AddColumn(NewColumn("id", "bigint", false, WithPrimaryKey()))
	cs.AddColumn(NewColumn("title", "varchar(255)", false))
	cs.AddColumn(NewColumn("price", "decimal(8,2)", true))
	cs.AddColumn(NewColumn("category_id", "bigint", true, WithReference("categories")))
	cs.AddColumn(NewColumn("created_at", "timestamp", true))
	cs.AddColumn(NewColumn("updated_at", "timestamp", true))
	return cs
}

func TestAddColumnDeduplicates(t *testing.T) {
	cs := New("products", "product")
	column := NewColumn("title", "varchar", false)

	cs.AddColumn(column)
	cs.AddColumn(column)
	cs.AddColumn(NewColumn("title", "varchar", false))

	assert.Len(t, cs.Columns(), 1)

	cs.AddColumn(NewColumn("title", "varchar", true))
	assert.Len(t, cs.Columns(), 2)
}

func TestColumnsReturnsCopy(t *testing.T) {
	cs := productStructure()

	columns := cs.Columns()
	columns[0] = NewColumn("other", "text", false)

	assert.Equal(t, "id", cs.Columns()[0].Column())
}

func TestIsTimestamps(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    bool
	}{
		{"none", nil, false},
		{"created only", []string{"created_at"}, false},
		{"updated only", []string{"updated_at"}, false},
		{"both", []string{"created_at", "updated_at"}, true},
		{"reverse order", []string{"updated_at", "created_at"}, true},
		{"with deleted", []string{"deleted_at", "updated_at", "created_at"}, true},
		{"repeated created", []string{"created_at", "created_at"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := New("posts", "post")
			for _, name := range tt.columns {
				cs.AddColumn(NewColumn(name, "timestamp", true))
			}
			assert.Equal(t, tt.want, cs.IsTimestamps())
		})
	}
}

func TestIsSoftDeletes(t *testing.T) {
	cs := New("posts", "post")
	cs.AddColumn(NewColumn("created_at", "timestamp", true))
	cs.AddColumn(NewColumn("updated_at", "timestamp", true))
	assert.False(t, cs.IsSoftDeletes())

	cs.AddColumn(NewColumn("deleted_at", "timestamp", true))
	assert.True(t, cs.IsSoftDeletes())
}

func TestColumnsToModel(t *testing.T) {
	cs := productStructure()
	cs.AddColumn(NewColumn("deleted_at", "timestamp", true))

	want := "\n\t\t'title'," +
		"\n\t\t'price'," +
		"\n\t\t'category_id',"
	assert.Equal(t, want, cs.ColumnsToModel())
}

func TestColumnsToRules(t *testing.T) {
	cs := productStructure()

	want := "\n\t\t\t'title' => ['string', 'required']," +
		"\n\t\t\t'price' => ['numeric', 'nullable']," +
		"\n\t\t\t'category_id' => ['integer', 'nullable'],"
	assert.Equal(t, want, cs.ColumnsToRules())
}

func TestColumnsToForm(t *testing.T) {
	cs := New("users", "user")
	cs.AddColumn(NewColumn("id", "integer", false, WithPrimaryKey()))
	cs.AddColumn(NewColumn("name", "varchar", false))
	cs.AddColumn(NewColumn("age", "int", true))
	cs.AddColumn(NewColumn("created_at", "timestamp", true))

	want := "\n\t<div>\n" +
		"\t\t<label for=\"name\">name</label>\n" +
		"\t\t<input id=\"name\" name=\"name\"/>\n" +
		"\t</div>" +
		"\n\t<div>\n" +
		"\t\t<label for=\"age\">age</label>\n" +
		"\t\t<input id=\"age\" name=\"age\" type=\"number\"/>\n" +
		"\t</div>"
	assert.Equal(t, want, cs.ColumnsToForm())
}

func TestBelongsToInModel(t *testing.T) {
	cs := productStructure()
	cs.AddColumn(NewColumn("owner", "bigint", true, WithReference("users")))

	require.True(t, cs.HasBelongsTo())

	want := "\n\tpublic function category(): BelongsTo\n" +
		"\t{\n" +
		"\t\treturn $this->belongsTo(Category::class);\n" +
		"\t}\n" +
		"\n\tpublic function user(): BelongsTo\n" +
		"\t{\n" +
		"\t\treturn $this->belongsTo(User::class, 'owner');\n" +
		"\t}\n"
	assert.Equal(t, want, cs.BelongsToInModel())

	audited := New("posts", "post")
	audited.AddColumn(NewColumn("created_by", "bigint", false, WithReference("users")))
	audited.AddColumn(NewColumn("updated_by", "bigint", true, WithReference("users")))
	audited.AddColumn(NewColumn("user_id", "bigint", true, WithReference("users")))

	got := audited.BelongsToInModel()
	assert.Equal(t, 1, strings.Count(got, "public function user(): BelongsTo"))
	assert.Contains(t, got, "return $this->belongsTo(User::class, 'created_by');")
	assert.Contains(t, got, "public function updatedBy(): BelongsTo")
	assert.Contains(t, got, "return $this->belongsTo(User::class, 'updated_by');")
	assert.Contains(t, got, "public function userId(): BelongsTo")
	assert.Equal(t, 3, strings.Count(got, "(): BelongsTo"))

	plain := New("tags", "tag")
	plain.AddColumn(NewColumn("name", "varchar", false))
	assert.False(t, plain.HasBelongsTo())
	assert.Empty(t, plain.BelongsToInModel())
}

func TestDTOFragments(t *testing.T) {
	cs := productStructure()

	assert.Equal(t,
		"\n\t\tpublic string $title,"+
			"\n\t\tpublic ?float $price,"+
			"\n\t\tpublic ?int $categoryId,",
		cs.ColumnsToDTOProperties())

	assert.Equal(t,
		"\n\t\t\ttitle: $data['title'],"+
			"\n\t\t\tprice: $data['price'] ?? null,"+
			"\n\t\t\tcategoryId: $data['category_id'] ?? null,",
		cs.ColumnsToDTOFromArray())

	assert.Equal(t,
		"\n\t\t\t'title' => $this->title,"+
			"\n\t\t\t'price' => $this->price,"+
			"\n\t\t\t'category_id' => $this->categoryId,",
		cs.ColumnsToArray())
}

func TestFromTable(t *testing.T) {
	table := &schema.Table{
		Name: "order_lines",
		Columns: []schema.Column{
			{Name: "id", Type: "INTEGER", IsPrimaryKey: true},
			{Name: "order_id", Type: "INTEGER", References: "orders"},
			{Name: "quantity", Type: "int", IsNullable: true},
			{Name: "quantity", Type: "int", IsNullable: true},
		},
	}

	cs := FromTable(table, "")
	assert.Equal(t, "order_lines", cs.Table())
	assert.Equal(t, "OrderLine", cs.Entity().UcFirstSingular())
	require.Len(t, cs.Columns(), 3)
	assert.True(t, cs.Columns()[0].IsID())
	assert.Equal(t, TypeID, cs.Columns()[0].Type())
	assert.True(t, cs.HasBelongsTo())

	named := FromTable(table, "line")
	assert.Equal(t, "line", named.Entity().Raw())
}
