package database

import (
	"database/sql"
	"fmt"
	"lcb/internal/schema"
	"lcb/pkg/config"
	"time"
)

const postgresSchema = "public"

type PostgreSQLExtractor struct {
	db *sql.DB
}

func (p *PostgreSQLExtractor) ExtractSchema(cfg config.SchemaConfig) (*schema.Schema, error) {
	s := &schema.Schema{
		Database:    "postgresql",
		GeneratedAt: time.Now(),
	}

	names, err := p.tableNames()
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		if skipTable(cfg, name) {
			continue
		}

		table, err := p.ExtractTable(name)
		if err != nil {
			return nil, err
		}
		s.Tables = append(s.Tables, *table)
	}

	return s, nil
}

func (p *PostgreSQLExtractor) ExtractTable(name string) (*schema.Table, error) {
	query := `
		SELECT t.table_name, t.table_type, COALESCE(obj_description(c.oid), '') as comment
		FROM information_schema.tables t
		LEFT JOIN pg_class c ON c.relname = t.table_name AND c.relkind = 'r'
		WHERE t.table_schema = $1 AND t.table_type = 'BASE TABLE' AND t.table_name = $2
	`

	table := &schema.Table{Schema: postgresSchema}
	err := p.db.QueryRow(query, postgresSchema, name).Scan(&table.Name, &table.Type, &table.Comment)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	if table.Columns, err = p.extractColumns(name); err != nil {
		return nil, err
	}
	if table.PrimaryKeys, err = p.extractPrimaryKeys(name); err != nil {
		return nil, err
	}
	if table.ForeignKeys, err = p.extractForeignKeys(name); err != nil {
		return nil, err
	}
	table.Resolve()

	return table, nil
}

func (p *PostgreSQLExtractor) tableNames() ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := p.db.Query(query, postgresSchema)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

func (p *PostgreSQLExtractor) extractColumns(tableName string) ([]schema.Column, error) {
	query := `
		SELECT
			c.column_name,
			c.data_type,
			c.character_maximum_length,
			c.is_nullable = 'YES' as is_nullable,
			c.column_default,
			COALESCE(col_description(pgc.oid, c.ordinal_position), '') as comment
		FROM information_schema.columns c
		LEFT JOIN pg_class pgc ON pgc.relname = c.table_name AND pgc.relkind = 'r'
		WHERE c.table_schema = $1 AND c.table_name = $2
		ORDER BY c.ordinal_position
	`

	rows, err := p.db.Query(query, postgresSchema, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []schema.Column
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
			&col.Comment,
		); err != nil {
			return nil, err
		}

		if length.Valid {
			l := int(length.Int64)
			col.Length = &l
		}
		if defaultValue.Valid {
			col.DefaultValue = &defaultValue.String
		}

		columns = append(columns, col)
	}

	return columns, rows.Err()
}

func (p *PostgreSQLExtractor) extractPrimaryKeys(tableName string) ([]string, error) {
	query := `
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
		WHERE tc.table_schema = $1
			AND tc.table_name = $2
			AND tc.constraint_type = 'PRIMARY KEY'
		ORDER BY kcu.ordinal_position
	`

	rows, err := p.db.Query(query, postgresSchema, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var primaryKeys []string
	for rows.Next() {
		var columnName string
		if err := rows.Scan(&columnName); err != nil {
			return nil, err
		}
		primaryKeys = append(primaryKeys, columnName)
	}

	return primaryKeys, rows.Err()
}

func (p *PostgreSQLExtractor) extractForeignKeys(tableName string) ([]schema.ForeignKey, error) {
	query := `
		SELECT
			tc.constraint_name,
			tc.table_name,
			kcu.column_name,
			ccu.table_name AS foreign_table_name,
			ccu.column_name AS foreign_column_name,
			rc.update_rule,
			rc.delete_rule
		FROM information_schema.table_constraints AS tc
		JOIN information_schema.key_column_usage AS kcu
			ON tc.constraint_name = kcu.constraint_name
		JOIN information_schema.constraint_column_usage AS ccu
			ON ccu.constraint_name = tc.constraint_name
		JOIN information_schema.referential_constraints AS rc
			ON rc.constraint_name = tc.constraint_name
		WHERE tc.constraint_type = 'FOREIGN KEY'
			AND tc.table_schema = $1
			AND tc.table_name = $2
	`

	rows, err := p.db.Query(query, postgresSchema, tableName)
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
