package schema

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadTableFile reads a table description from a YAML file:
//
//	table: products
//	columns:
//	  - name: id
//	    type: bigint
//	    primary: true
//	  - name: category_id
//	    type: bigint
//	    references: categories
func LoadTableFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read column file: %w", err)
	}

	return ParseTable(data)
}

func ParseTable(data []byte) (*Table, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse column file: %w", err)
	}

	if strings.TrimSpace(table.Name) == "" {
		return nil, fmt.Errorf("column file: table name is required")
	}
	if len(table.Columns) == 0 {
		return nil, fmt.Errorf("column file: table %s has no columns", table.Name)
	}

	for i, col := range table.Columns {
		if col.Name == "" {
			return nil, fmt.Errorf("column file: column %d of %s has no name", i, table.Name)
		}
		if col.Type == "" {
			return nil, fmt.Errorf("column file: column %s has no type", col.Name)
		}
		if col.IsPrimaryKey {
			table.PrimaryKeys = append(table.PrimaryKeys, col.Name)
		}
		if col.References != "" {
			table.ForeignKeys = append(table.ForeignKeys, ForeignKey{
				Name:            fmt.Sprintf("fk_%s_%s", table.Name, col.Name),
				Table:           table.Name,
				Column:          col.Name,
				ReferencedTable: col.References,
			})
		}
	}
	table.Type = "BASE TABLE"

	return &table, nil
}
