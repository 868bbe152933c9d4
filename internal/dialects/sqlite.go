package dialects

import (
	"context"

	"github.com/coregx/dialecta/internal/inspector"
)

func init() {
	Register("sqlite", func(sess *Session) (Dialect, error) {
		return NewSQLite(sess), nil
	})
}

// SQLiteDialect implements SQLite behavior: ? markers, pragma-based
// introspection, and the PostgreSQL-style ON CONFLICT upsert clause SQLite
// adopted. Identifier quoting stays the generic double-quote form.
type SQLiteDialect struct {
	*DefaultDialect
}

// NewSQLite creates the SQLite dialect bound to the given session.
func NewSQLite(sess *Session) *SQLiteDialect {
	s := &SQLiteDialect{DefaultDialect: NewDefault(sess)}
	s.catalog = inspector.SQLiteCatalog{}
	s.words = sqliteReservedWords
	s.bind(s)
	return s
}

// Name implements Dialect.
func (s *SQLiteDialect) Name() string { return "sqlite" }

// Placeholder returns SQLite placeholder format (always "?").
func (s *SQLiteDialect) Placeholder(_ int) string { return "?" }

// ReplaceSQL generates an INSERT ... ON CONFLICT upsert.
func (s *SQLiteDialect) ReplaceSQL(ctx context.Context, table TableIdentifier, rows []Row, fields []string, opts StatementOptions) (Statement, error) {
	base, rendered, err := buildInsert(ctx, s.impl, "INSERT", table, rows, fields, opts)
	if err != nil {
		return Statement{}, err
	}
	return appendOnConflict(ctx, s.impl, base, table, fields, rendered, opts)
}
