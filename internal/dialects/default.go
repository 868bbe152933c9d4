package dialects

import (
	"context"
	"strings"
	"sync"

	"github.com/coregx/dialecta/internal/inspector"
	"github.com/coregx/dialecta/internal/logger"
	"github.com/coregx/dialecta/internal/tracer"
)

func init() {
	Register("default", func(sess *Session) (Dialect, error) {
		return NewDefault(sess), nil
	})
}

// DefaultDialect is the complete generic implementation of the dialect
// contract, assuming only standard SQL and the generic information_schema
// catalog. Vendor dialects embed it and override the operations whose
// generic behavior is vendor-incorrect.
type DefaultDialect struct {
	sess *Session

	// impl is the outermost dialect. Generic assembly dispatches through it
	// so embedding vendors see their own placeholder, quoting, and metadata
	// overrides applied.
	impl Dialect

	catalog inspector.Catalog
	words   WordSet

	mu   sync.Mutex
	insp *inspector.Inspector
}

// NewDefault creates the generic dialect bound to the given session.
func NewDefault(sess *Session) *DefaultDialect {
	d := &DefaultDialect{
		sess:    normalizeSession(sess),
		catalog: inspector.InformationSchema{},
		words:   ansiReservedWords,
	}
	d.impl = d
	return d
}

// normalizeSession fills in the no-op observability defaults so dialects can
// be constructed directly in tests without a resolver.
func normalizeSession(sess *Session) *Session {
	if sess == nil {
		sess = &Session{}
	}
	if sess.Logger == nil {
		sess.Logger = &logger.NoopLogger{}
	}
	if sess.Tracer == nil {
		sess.Tracer = &tracer.NoopTracer{}
	}
	return sess
}

// bind points generic assembly at the outermost dialect. Vendor constructors
// call it after embedding.
func (d *DefaultDialect) bind(outer Dialect) {
	d.impl = outer
}

// Name implements Dialect.
func (d *DefaultDialect) Name() string { return "default" }

// Placeholder implements Dialect with the generic pyformat-style marker used
// by DB-API style connectivity. The index is ignored.
func (d *DefaultDialect) Placeholder(_ int) string { return "%s" }

// QuoteIdentifier quotes an identifier using standard double quotes.
func (d *DefaultDialect) QuoteIdentifier(name string) string {
	return `"` + escapeDoubled(name, '"') + `"`
}

// QualifyTable combines schema and table with a plain dot. Parts colliding
// with the static reserved-word list are quoted so table references stay
// parseable, matching the quoting applied to field lists.
func (d *DefaultDialect) QualifyTable(schema, table string) string {
	table = d.quoteIfReserved(table)
	if schema == "" {
		return table
	}
	return d.quoteIfReserved(schema) + "." + table
}

func (d *DefaultDialect) quoteIfReserved(name string) string {
	if d.words.Contains(name) {
		return d.impl.QuoteIdentifier(name)
	}
	return name
}

// ExtractSchema splits a dot-separated, optionally double-quoted identifier.
func (d *DefaultDialect) ExtractSchema(identifier string) (TableIdentifier, error) {
	parts, err := splitQualified(identifier, '"', '"')
	if err != nil {
		return TableIdentifier{}, &ParseError{Input: identifier, Reason: err.Error()}
	}
	return tableFromParts(identifier, parts)
}

// Inspector lazily constructs the metadata inspector for this session.
func (d *DefaultDialect) Inspector() (*inspector.Inspector, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.insp != nil {
		return d.insp, nil
	}
	if d.sess.Executor == nil {
		return nil, contractViolation(d.impl.Name(), "construct inspector", ErrNoExecutor)
	}

	insp, err := inspector.New(d.sess.Executor, d.catalog, inspector.WithTracer(d.sess.Tracer))
	if err != nil {
		return nil, contractViolation(d.impl.Name(), "construct inspector", err)
	}
	d.insp = insp
	return insp, nil
}

// ColumnNames implements Dialect via the inspector, preserving the
// database-reported column order.
func (d *DefaultDialect) ColumnNames(ctx context.Context, table TableIdentifier) ([]string, error) {
	cols, err := d.columns(ctx, table)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names, nil
}

// PrimaryKeys implements Dialect via the inspector.
func (d *DefaultDialect) PrimaryKeys(ctx context.Context, table TableIdentifier) ([]string, error) {
	insp, err := d.impl.Inspector()
	if err != nil {
		return nil, err
	}
	keys, err := insp.ListPrimaryKeys(ctx, table.Schema, table.Table)
	if err != nil {
		return nil, contractViolation(d.impl.Name(), "list primary keys", err)
	}
	return keys, nil
}

// TargetFields implements Dialect: all columns minus identity columns.
func (d *DefaultDialect) TargetFields(ctx context.Context, table TableIdentifier) ([]string, error) {
	cols, err := d.columns(ctx, table)
	if err != nil {
		return nil, err
	}
	fields := make([]string, 0, len(cols))
	for _, c := range cols {
		if c.Identity {
			continue
		}
		fields = append(fields, c.Name)
	}
	return fields, nil
}

func (d *DefaultDialect) columns(ctx context.Context, table TableIdentifier) ([]inspector.Column, error) {
	insp, err := d.impl.Inspector()
	if err != nil {
		return nil, err
	}
	cols, err := insp.ListColumns(ctx, table.Schema, table.Table)
	if err != nil {
		return nil, contractViolation(d.impl.Name(), "list columns", err)
	}
	return cols, nil
}

// ReservedWords implements Dialect with the static ANSI core list.
func (d *DefaultDialect) ReservedWords(_ context.Context) (WordSet, error) {
	return d.words, nil
}

// InsertSQL implements Dialect.
func (d *DefaultDialect) InsertSQL(ctx context.Context, table TableIdentifier, rows []Row, fields []string, opts StatementOptions) (Statement, error) {
	stmt, _, err := buildInsert(ctx, d.impl, "INSERT", table, rows, fields, opts)
	return stmt, err
}

// ReplaceSQL implements Dialect. Standard SQL has no upsert primitive and the
// generic dialect implements no emulation.
func (d *DefaultDialect) ReplaceSQL(_ context.Context, _ TableIdentifier, _ []Row, _ []string, _ StatementOptions) (Statement, error) {
	return Statement{}, &UnsupportedOperationError{Dialect: d.impl.Name(), Operation: "replace (upsert)"}
}

// escapeDoubled escapes embedded closing-quote bytes by doubling them.
func escapeDoubled(s string, q byte) string {
	qs := string(q)
	return strings.ReplaceAll(s, qs, qs+qs)
}
