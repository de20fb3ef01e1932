package mysql

import _ "embed"

//go:embed schema.sql
var schemaSQL string

func (m *Adapter) SchemaSQL() string {
	return schemaSQL
}
