package inspector

// Catalog supplies the vendor-specific introspection queries an Inspector
// executes. Query placeholders use the marker style the vendor's driver
// understands, which is independent of the placeholder style the dialect
// emits in generated statements.
type Catalog interface {
	// Columns returns the query listing column name and identity flag for a
	// table, ordered by column position. An empty schema means the
	// connection's current/default schema.
	Columns(schema, table string) (string, []any)

	// PrimaryKeys returns the query listing primary-key column names in key
	// order.
	PrimaryKeys(schema, table string) (string, []any)

	// ReservedWords returns the keyword-catalog query, or ok=false when the
	// vendor exposes none.
	ReservedWords() (query string, ok bool)
}

// InformationSchema is the generic ANSI catalog used by the default dialect.
// It relies only on information_schema views and `?` markers, which is what
// generic ODBC/JDBC-style connectivity expects.
type InformationSchema struct{}

// Columns implements Catalog.
func (InformationSchema) Columns(schema, table string) (string, []any) {
	const q = `SELECT column_name,
       CASE WHEN is_identity = 'YES' THEN 1 ELSE 0 END
FROM information_schema.columns
WHERE table_name = ?
  AND table_schema = COALESCE(NULLIF(?, ''), table_schema)
ORDER BY ordinal_position`
	return q, []any{table, schema}
}

// PrimaryKeys implements Catalog.
func (InformationSchema) PrimaryKeys(schema, table string) (string, []any) {
	const q = `SELECT kcu.column_name
FROM information_schema.table_constraints tc
JOIN information_schema.key_column_usage kcu
  ON kcu.constraint_name = tc.constraint_name
 AND kcu.table_schema = tc.table_schema
 AND kcu.table_name = tc.table_name
WHERE tc.constraint_type = 'PRIMARY KEY'
  AND tc.table_name = ?
  AND tc.table_schema = COALESCE(NULLIF(?, ''), tc.table_schema)
ORDER BY kcu.ordinal_position`
	return q, []any{table, schema}
}

// ReservedWords implements Catalog. The ANSI views expose no keyword catalog.
func (InformationSchema) ReservedWords() (string, bool) { return "", false }

// PGCatalog introspects PostgreSQL-compatible servers (PostgreSQL,
// CockroachDB) using `$n` markers and current_schema() as the schema default.
type PGCatalog struct{}

// Columns implements Catalog. Identity covers both SQL-standard identity
// columns and serial-style nextval defaults.
func (PGCatalog) Columns(schema, table string) (string, []any) {
	const q = `SELECT column_name,
       (is_identity = 'YES' OR column_default LIKE 'nextval(%')
FROM information_schema.columns
WHERE table_name = $1
  AND table_schema = COALESCE(NULLIF($2, ''), current_schema())
ORDER BY ordinal_position`
	return q, []any{table, schema}
}

// PrimaryKeys implements Catalog.
func (PGCatalog) PrimaryKeys(schema, table string) (string, []any) {
	const q = `SELECT kcu.column_name
FROM information_schema.table_constraints tc
JOIN information_schema.key_column_usage kcu
  ON kcu.constraint_name = tc.constraint_name
 AND kcu.table_schema = tc.table_schema
 AND kcu.table_name = tc.table_name
WHERE tc.constraint_type = 'PRIMARY KEY'
  AND tc.table_name = $1
  AND tc.table_schema = COALESCE(NULLIF($2, ''), current_schema())
ORDER BY kcu.ordinal_position`
	return q, []any{table, schema}
}

// ReservedWords implements Catalog using the server keyword catalog.
func (PGCatalog) ReservedWords() (string, bool) {
	return `SELECT word FROM pg_get_keywords() WHERE catcode = 'R'`, true
}

// MySQLCatalog introspects MySQL/MariaDB, detecting autoincrement columns
// through the EXTRA column attribute.
type MySQLCatalog struct{}

// Columns implements Catalog.
func (MySQLCatalog) Columns(schema, table string) (string, []any) {
	const q = `SELECT column_name,
       extra LIKE '%auto_increment%'
FROM information_schema.columns
WHERE table_name = ?
  AND table_schema = COALESCE(NULLIF(?, ''), DATABASE())
ORDER BY ordinal_position`
	return q, []any{table, schema}
}

// PrimaryKeys implements Catalog. MySQL names every primary key 'PRIMARY'.
func (MySQLCatalog) PrimaryKeys(schema, table string) (string, []any) {
	const q = `SELECT column_name
FROM information_schema.key_column_usage
WHERE constraint_name = 'PRIMARY'
  AND table_name = ?
  AND table_schema = COALESCE(NULLIF(?, ''), DATABASE())
ORDER BY ordinal_position`
	return q, []any{table, schema}
}

// ReservedWords implements Catalog.
func (MySQLCatalog) ReservedWords() (string, bool) { return "", false }

// MSSQLCatalog introspects SQL Server through sys.columns, which carries the
// identity flag the ANSI views lack.
type MSSQLCatalog struct{}

// Columns implements Catalog.
func (MSSQLCatalog) Columns(schema, table string) (string, []any) {
	const q = `SELECT c.name,
       c.is_identity
FROM sys.columns c
JOIN sys.tables t ON t.object_id = c.object_id
JOIN sys.schemas s ON s.schema_id = t.schema_id
WHERE t.name = ?
  AND s.name = COALESCE(NULLIF(?, ''), SCHEMA_NAME())
ORDER BY c.column_id`
	return q, []any{table, schema}
}

// PrimaryKeys implements Catalog.
func (MSSQLCatalog) PrimaryKeys(schema, table string) (string, []any) {
	const q = `SELECT kcu.column_name
FROM information_schema.table_constraints tc
JOIN information_schema.key_column_usage kcu
  ON kcu.constraint_name = tc.constraint_name
 AND kcu.table_schema = tc.table_schema
 AND kcu.table_name = tc.table_name
WHERE tc.constraint_type = 'PRIMARY KEY'
  AND tc.table_name = ?
  AND tc.table_schema = COALESCE(NULLIF(?, ''), SCHEMA_NAME())
ORDER BY kcu.ordinal_position`
	return q, []any{table, schema}
}

// ReservedWords implements Catalog.
func (MSSQLCatalog) ReservedWords() (string, bool) { return "", false }

// SQLiteCatalog introspects SQLite through the pragma table-valued
// functions. SQLite has no schema qualifier in the ANSI sense, so the schema
// argument is ignored.
type SQLiteCatalog struct{}

// Columns implements Catalog. An INTEGER single-column primary key is a rowid
// alias and therefore autoincrementing.
func (SQLiteCatalog) Columns(_, table string) (string, []any) {
	const q = `SELECT name,
       CASE WHEN pk = 1 AND UPPER(type) = 'INTEGER' THEN 1 ELSE 0 END
FROM pragma_table_info(?)
ORDER BY cid`
	return q, []any{table}
}

// PrimaryKeys implements Catalog.
func (SQLiteCatalog) PrimaryKeys(_, table string) (string, []any) {
	const q = `SELECT name FROM pragma_table_info(?) WHERE pk > 0 ORDER BY pk`
	return q, []any{table}
}

// ReservedWords implements Catalog.
func (SQLiteCatalog) ReservedWords() (string, bool) { return "", false }
