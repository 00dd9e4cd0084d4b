package database

import (
	"database/sql"
	"fmt"
	"lcb/internal/schema"
	"lcb/pkg/config"
	"strings"
	"time"
)

type SQLiteExtractor struct {
	db *sql.DB
}

func (s *SQLiteExtractor) ExtractSchema(cfg config.SchemaConfig) (*schema.Schema, error) {
	sch := &schema.Schema{
		Database:    "sqlite",
		GeneratedAt: time.Now(),
	}

	query := `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`

	rows, err := s.db.Query(query)
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
		if skipTable(cfg, name) {
			continue
		}
		names = append(names, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, name := range names {
		table, err := s.ExtractTable(name)
		if err != nil {
			return nil, err
		}
		sch.Tables = append(sch.Tables, *table)
	}

	return sch, nil
}

func (s *SQLiteExtractor) ExtractTable(name string) (*schema.Table, error) {
	var tableName string
	err := s.db.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, name,
	).Scan(&tableName)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	table := &schema.Table{
		Name:   tableName,
		Schema: "main",
		Type:   "BASE TABLE",
	}

	if table.Columns, table.PrimaryKeys, err = s.extractColumns(tableName); err != nil {
		return nil, err
	}
	if table.ForeignKeys, err = s.extractForeignKeys(tableName); err != nil {
		return nil, err
	}
	table.Resolve()

	return table, nil
}

func (s *SQLiteExtractor) extractColumns(tableName string) ([]schema.Column, []string, error) {
	query := fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(tableName))

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var columns []schema.Column
	var primaryKeys []string
	for rows.Next() {
		var col schema.Column
		var cid int
		var defaultValue sql.NullString
		var notNull int
		var pk int

		if err := rows.Scan(
			&cid,
			&col.Name,
			&col.Type,
			&notNull,
			&defaultValue,
			&pk,
		); err != nil {
			return nil, nil, err
		}

		col.IsNullable = notNull == 0 && pk == 0
		col.IsPrimaryKey = pk > 0
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

func (s *SQLiteExtractor) extractForeignKeys(tableName string) ([]schema.ForeignKey, error) {
	query := fmt.Sprintf("PRAGMA foreign_key_list(%s)", quoteIdent(tableName))

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foreignKeys []schema.ForeignKey
	for rows.Next() {
		var fk schema.ForeignKey
		var id, seq int
		var referencedColumn sql.NullString
		var onUpdate, onDelete, match string

		if err := rows.Scan(
			&id,
			&seq,
			&fk.ReferencedTable,
			&fk.Column,
			&referencedColumn,
			&onUpdate,
			&onDelete,
			&match,
		); err != nil {
			return nil, err
		}

		fk.Name = fmt.Sprintf("fk_%s_%s", tableName, fk.Column)
		fk.Table = tableName
		fk.ReferencedColumn = referencedColumn.String
		fk.OnUpdate = onUpdate
		fk.OnDelete = onDelete

		foreignKeys = append(foreignKeys, fk)
	}

	return foreignKeys, rows.Err()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
