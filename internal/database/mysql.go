package database

import (
	"database/sql"
	"fmt"
	"lcb/internal/schema"
	"lcb/pkg/config"
	"time"
)

type MySQLExtractor struct {
	db *sql.DB
}

func (m *MySQLExtractor) ExtractSchema(cfg config.SchemaConfig) (*schema.Schema, error) {
	s := &schema.Schema{
		Database:    "mysql",
		GeneratedAt: time.Now(),
	}

	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := m.db.Query(query)
	if err != nil {
		return nil, err
	}

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, err
		}
		if !skipTable(cfg, name) {
			names = append(names, name)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, name := range names {
		table, err := m.ExtractTable(name)
		if err != nil {
			return nil, err
		}
		s.Tables = append(s.Tables, *table)
	}

	return s, nil
}

func (m *MySQLExtractor) ExtractTable(name string) (*schema.Table, error) {
	query := `
		SELECT table_name, table_schema, table_type, COALESCE(table_comment, '')
		FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_name = ?
	`

	table := &schema.Table{}
	err := m.db.QueryRow(query, name).Scan(&table.Name, &table.Schema, &table.Type, &table.Comment)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	if table.Columns, table.PrimaryKeys, err = m.extractColumns(name); err != nil {
		return nil, err
	}
	if table.ForeignKeys, err = m.extractForeignKeys(name); err != nil {
		return nil, err
	}
	table.Resolve()

	return table, nil
}

func (m *MySQLExtractor) extractColumns(tableName string) ([]schema.Column, []string, error) {
	// COLUMN_TYPE keeps the display width so tinyint(1) can be told apart
	// from other tinyints.
	query := `
		SELECT
			column_name,
			column_type,
			character_maximum_length,
			is_nullable = 'YES',
			column_default,
			column_key = 'PRI',
			COALESCE(column_comment, '')
		FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ?
		ORDER BY ordinal_position
	`

	rows, err := m.db.Query(query, tableName)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var columns []schema.Column
	var primaryKeys []string
	for rows.Next() {
		var col schema.Column
		var length sql.NullInt64
		var defaultValue sql.NullString

		if err := rows.Scan(
			&col.Name,
			&col.Type,
			&length,
			&col.IsNullable,
			&defaultValue,
			&col.IsPrimaryKey,
			&col.Comment,
		); err != nil {
			return nil, nil, err
		}

		if length.Valid {
			l := int(length.Int64)
			col.Length = &l
		}
		if defaultValue.Valid {
			col.DefaultValue = &defaultValue.String
		}
		if col.IsPrimaryKey {
			primaryKeys = append(primaryKeys, col.Name)
		}

		columns = append(columns, col)
	}

	return columns, primaryKeys, rows.Err()
}

func (m *MySQLExtractor) extractForeignKeys(tableName string) ([]schema.ForeignKey, error) {
	query := `
		SELECT
			kcu.constraint_name,
			kcu.table_name,
			kcu.column_name,
			kcu.referenced_table_name,
			kcu.referenced_column_name,
			rc.update_rule,
			rc.delete_rule
		FROM information_schema.key_column_usage kcu
		JOIN information_schema.referential_constraints rc
			ON rc.constraint_name = kcu.constraint_name
			AND rc.constraint_schema = kcu.table_schema
		WHERE kcu.table_schema = DATABASE()
			AND kcu.table_name = ?
			AND kcu.referenced_table_name IS NOT NULL
	`

	rows, err := m.db.Query(query, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foreignKeys []schema.ForeignKey
	for rows.Next() {
		var fk schema.ForeignKey
		if err := rows.Scan(
			&fk.Name,
			&fk.Table,
			&fk.Column,
			&fk.ReferencedTable,
			&fk.ReferencedColumn,
			&fk.OnUpdate,
			&fk.OnDelete,
		); err != nil {
			return nil, err
		}

		foreignKeys = append(foreignKeys, fk)
	}

	return foreignKeys, rows.Err()
}
