package dialects

import (
	"context"
	"strings"

	"github.com/coregx/dialecta/internal/inspector"
)

func init() {
	Register("mysql", func(sess *Session) (Dialect, error) {
		return NewMySQL(sess), nil
	})
}

// MySQLDialect implements MySQL/MariaDB behavior: backtick quoting, ?
// markers, autoincrement detection through the EXTRA column attribute, and
// REPLACE INTO upserts.
type MySQLDialect struct {
	*DefaultDialect
}

// NewMySQL creates the MySQL dialect bound to the given session.
func NewMySQL(sess *Session) *MySQLDialect {
	m := &MySQLDialect{DefaultDialect: NewDefault(sess)}
	m.catalog = inspector.MySQLCatalog{}
	m.words = mysqlReservedWords
	m.bind(m)
	return m
}

// Name implements Dialect.
func (m *MySQLDialect) Name() string { return "mysql" }

// Placeholder returns MySQL placeholder format (always "?").
func (m *MySQLDialect) Placeholder(_ int) string { return "?" }

// QuoteIdentifier quotes a MySQL identifier using backticks.
func (m *MySQLDialect) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// ExtractSchema splits a dot-separated, optionally backtick-quoted identifier.
func (m *MySQLDialect) ExtractSchema(identifier string) (TableIdentifier, error) {
	parts, err := splitQualified(identifier, '`', '`')
	if err != nil {
		return TableIdentifier{}, &ParseError{Input: identifier, Reason: err.Error()}
	}
	return tableFromParts(identifier, parts)
}

// ReplaceSQL generates a REPLACE INTO statement. MySQL keys the conflict on
// the primary key or any unique index implicitly, so no conflict-column
// lookup is needed.
func (m *MySQLDialect) ReplaceSQL(ctx context.Context, table TableIdentifier, rows []Row, fields []string, opts StatementOptions) (Statement, error) {
	stmt, _, err := buildInsert(ctx, m.impl, "REPLACE", table, rows, fields, opts)
	return stmt, err
}
