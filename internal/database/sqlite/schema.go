package sqlite

import _ "embed"

//go:embed schema.sql
var schemaSQL string

func (s *Adapter) SchemaSQL() string {
	return schemaSQL
}
