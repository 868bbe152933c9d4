package dialects

import (
	"context"
	"fmt"
	"sync"

	"github.com/coregx/dialecta/internal/inspector"
)

func init() {
	Register("postgres", func(sess *Session) (Dialect, error) {
		return NewPostgres(sess), nil
	})
	Register("postgresql", func(sess *Session) (Dialect, error) {
		return NewPostgres(sess), nil
	})
}

// PostgresDialect implements PostgreSQL-specific behavior: $n placeholders,
// ON CONFLICT upserts, and reserved words fetched from the server keyword
// catalog.
type PostgresDialect struct {
	*DefaultDialect

	wordsMu      sync.Mutex
	fetchedWords WordSet
}

// NewPostgres creates the PostgreSQL dialect bound to the given session.
func NewPostgres(sess *Session) *PostgresDialect {
	p := &PostgresDialect{DefaultDialect: NewDefault(sess)}
	p.catalog = inspector.PGCatalog{}
	p.words = postgresReservedWords
	p.bind(p)
	return p
}

// Name implements Dialect.
func (p *PostgresDialect) Name() string { return "postgres" }

// Placeholder returns PostgreSQL placeholder format ($1, $2, etc.).
func (p *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index)
}

// ReservedWords fetches the server's reserved keywords once per instance,
// falling back to the static list when no executor is bound.
func (p *PostgresDialect) ReservedWords(ctx context.Context) (WordSet, error) {
	p.wordsMu.Lock()
	defer p.wordsMu.Unlock()

	if p.fetchedWords != nil {
		return p.fetchedWords, nil
	}
	if p.sess.Executor == nil {
		return p.words, nil
	}

	insp, err := p.impl.Inspector()
	if err != nil {
		return nil, err
	}
	words, err := insp.ListReservedWords(ctx)
	if err != nil {
		return nil, contractViolation(p.impl.Name(), "list reserved words", err)
	}
	p.fetchedWords = NewWordSet(words...)
	return p.fetchedWords, nil
}

// ReplaceSQL generates an INSERT ... ON CONFLICT upsert keyed on the
// caller-supplied conflict columns or the table primary key.
func (p *PostgresDialect) ReplaceSQL(ctx context.Context, table TableIdentifier, rows []Row, fields []string, opts StatementOptions) (Statement, error) {
	base, rendered, err := buildInsert(ctx, p.impl, "INSERT", table, rows, fields, opts)
	if err != nil {
		return Statement{}, err
	}
	return appendOnConflict(ctx, p.impl, base, table, fields, rendered, opts)
}
