package postgres

import _ "embed"

//go:embed schema.sql
var schemaSQL string

func (p *Adapter) SchemaSQL() string {
	return schemaSQL
}
