package codestructure

import "strings"

// SqlType is a column type normalized across PostgreSQL, MySQL and SQLite.
type SqlType string

const (
	TypeID       SqlType = "id"
	TypeInteger  SqlType = "integer"
	TypeDecimal  SqlType = "decimal"
	TypeBoolean  SqlType = "boolean"
	TypeString   SqlType = "string"
	TypeText     SqlType = "text"
	TypeUUID     SqlType = "uuid"
	TypeDate     SqlType = "date"
	TypeDateTime SqlType = "datetime"
	TypeTime     SqlType = "time"
	TypeJSON     SqlType = "json"
)

var sqlTypeMap = map[string]SqlType{
	"id":                          TypeID,
	"serial":                      TypeInteger,
	"bigserial":                   TypeInteger,
	"smallserial":                 TypeInteger,
	"int":                         TypeInteger,
	"integer":                     TypeInteger,
	"int2":                        TypeInteger,
	"int4":                        TypeInteger,
	"int8":                        TypeInteger,
	"smallint":                    TypeInteger,
	"mediumint":                   TypeInteger,
	"bigint":                      TypeInteger,
	"tinyint":                     TypeInteger,
	"year":                        TypeInteger,
	"decimal":                     TypeDecimal,
	"numeric":                     TypeDecimal,
	"float":                       TypeDecimal,
	"float4":                      TypeDecimal,
	"float8":                      TypeDecimal,
	"double":                      TypeDecimal,
	"double precision":            TypeDecimal,
	"real":                        TypeDecimal,
	"money":                       TypeDecimal,
	"bool":                        TypeBoolean,
	"boolean":                     TypeBoolean,
	"tinyint(1)":                  TypeBoolean,
	"char":                        TypeString,
	"character":                   TypeString,
	"varchar":                     TypeString,
	"character varying":           TypeString,
	"string":                      TypeString,
	"enum":                        TypeString,
	"set":                         TypeString,
	"text":                        TypeText,
	"tinytext":                    TypeText,
	"mediumtext":                  TypeText,
	"longtext":                    TypeText,
	"clob":                        TypeText,
	"uuid":                        TypeUUID,
	"date":                        TypeDate,
	"datetime":                    TypeDateTime,
	"timestamp":                   TypeDateTime,
	"timestamptz":                 TypeDateTime,
	"timestamp without time zone": TypeDateTime,
	"timestamp with time zone":    TypeDateTime,
	"time":                        TypeTime,
	"timetz":                      TypeTime,
	"time without time zone":      TypeTime,
	"time with time zone":         TypeTime,
	"json":                        TypeJSON,
	"jsonb":                       TypeJSON,
}

// SqlTypeFrom maps a raw driver type name such as "VARCHAR(255)",
// "int unsigned" or "character varying" to a SqlType. Unknown types map to
// TypeString.
func SqlTypeFrom(raw string) SqlType {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.TrimSuffix(t, " unsigned")
	t = strings.TrimSuffix(t, " zerofill")

	if mapped, ok := sqlTypeMap[t]; ok {
		return mapped
	}
	if i := strings.Index(t, "("); i > 0 {
		if mapped, ok := sqlTypeMap[strings.TrimSpace(t[:i])]; ok {
			return mapped
		}
	}
	if strings.HasSuffix(t, "[]") {
		return TypeJSON
	}

	return TypeString
}

func (t SqlType) IsIDType() bool {
	return t == TypeID
}

// RulesType is the Laravel validation rule for the type.
func (t SqlType) RulesType() string {
	switch t {
	case TypeID, TypeInteger:
		return "integer"
	case TypeDecimal:
		return "numeric"
	case TypeBoolean:
		return "boolean"
	case TypeUUID:
		return "uuid"
	case TypeDate, TypeDateTime:
		return "date"
	case TypeJSON:
		return "array"
	default:
		return "string"
	}
}

// InputType is the HTML input type used in generated forms.
func (t SqlType) InputType() string {
	switch t {
	case TypeID, TypeInteger, TypeDecimal:
		return "number"
	case TypeBoolean:
		return "checkbox"
	case TypeDate:
		return "date"
	case TypeDateTime:
		return "datetime-local"
	case TypeTime:
		return "time"
	default:
		return "text"
	}
}

func (t SqlType) PHPType() string {
	switch t {
	case TypeID, TypeInteger:
		return "int"
	case TypeDecimal:
		return "float"
	case TypeBoolean:
		return "bool"
	case TypeJSON:
		return "array"
	default:
		return "string"
	}
}
