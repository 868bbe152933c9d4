// Package dialects provides vendor-specific SQL dialect implementations and
// the registry that resolves a connection descriptor to the right one. Each
// dialect knows its placeholder style, identifier quoting, schema metadata
// introspection, and INSERT/upsert statement assembly, while unknown or
// misconfigured vendors degrade to the generic default dialect.
package dialects

import (
	"context"
	"sort"
	"strings"

	"github.com/coregx/dialecta/internal/inspector"
	"github.com/coregx/dialecta/internal/logger"
	"github.com/coregx/dialecta/internal/tracer"
)

// Dialect defines database-specific behaviors. Every implementation is fully
// substitutable for the default dialect: callers never need to know which
// concrete dialect they hold.
type Dialect interface {
	// Name returns the registered dialect name.
	Name() string

	// Placeholder returns the parameter marker for the value slot at the
	// given 1-based index. Vendors with positional markers ignore the index.
	Placeholder(index int) string

	// QuoteIdentifier quotes a single identifier per vendor rules.
	QuoteIdentifier(name string) string

	// QualifyTable combines an optional schema and a table name using the
	// vendor's separator and quoting convention. It round-trips through
	// ExtractSchema.
	QualifyTable(schema, table string) string

	// ExtractSchema splits a possibly schema-qualified identifier per vendor
	// quoting rules. Malformed input yields a *ParseError.
	ExtractSchema(identifier string) (TableIdentifier, error)

	// Inspector returns the metadata inspector bound to this dialect's
	// session, constructing it lazily. Construction errors propagate.
	Inspector() (*inspector.Inspector, error)

	// ColumnNames returns the table's column names in database-reported order.
	ColumnNames(ctx context.Context, table TableIdentifier) ([]string, error)

	// PrimaryKeys returns the primary-key column names in key order. A table
	// without a primary key yields an empty result, not an error.
	PrimaryKeys(ctx context.Context, table TableIdentifier) ([]string, error)

	// TargetFields returns the columns eligible for value insertion: all
	// columns minus identity/autoincrement columns.
	TargetFields(ctx context.Context, table TableIdentifier) ([]string, error)

	// ReservedWords returns the vendor's reserved words requiring quoting.
	ReservedWords(ctx context.Context) (WordSet, error)

	// InsertSQL builds a vendor-correct INSERT statement with exactly one
	// placeholder per value per row and the bind args in matching order.
	InsertSQL(ctx context.Context, table TableIdentifier, rows []Row, fields []string, opts StatementOptions) (Statement, error)

	// ReplaceSQL builds a vendor-correct upsert statement keyed on the
	// caller-supplied conflict columns or the table's primary key. Vendors
	// without an upsert primitive return *UnsupportedOperationError.
	ReplaceSQL(ctx context.Context, table TableIdentifier, rows []Row, fields []string, opts StatementOptions) (Statement, error)
}

// TableIdentifier is a (schema, table) pair. An empty schema means the
// connection's current or default schema.
type TableIdentifier struct {
	Schema string
	Table  string
}

// String renders the identifier with a plain dot separator, for diagnostics.
func (t TableIdentifier) String() string {
	if t.Schema == "" {
		return t.Table
	}
	return t.Schema + "." + t.Table
}

// Row is one ordered tuple of bind values.
type Row []any

// Statement is generated SQL text plus the parallel ordered bind values. The
// caller's executor is responsible for sending it over the wire.
type Statement struct {
	SQL  string
	Args []any
}

// StatementOptions carries caller-supplied statement generation options.
type StatementOptions struct {
	// ConflictColumns overrides the primary key as the upsert conflict target.
	ConflictColumns []string

	// QuoteAllColumns forces quoting of every column identifier instead of
	// only reserved words.
	QuoteAllColumns bool
}

// WordSet is a case-insensitive set of vendor reserved words.
type WordSet map[string]struct{}

// NewWordSet builds a WordSet from words, normalizing case.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Contains reports whether the word is in the set, ignoring case.
func (s WordSet) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// Sorted returns the set's words in lexical order.
func (s WordSet) Sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Session binds a dialect instance to one connection: the descriptor it was
// resolved from, the executor used for metadata introspection, and the
// observability sinks. Dialects only read it.
type Session struct {
	Descriptor Descriptor
	Executor   inspector.Executor
	Logger     logger.Logger
	Tracer     tracer.Tracer
}

// Descriptor identifies a configured connection. The core only reads it; the
// connectivity layer owns parsing and credential storage.
type Descriptor struct {
	// Driver is the database/sql driver name or vendor tag.
	Driver string

	// DSN is the opaque connection string, used for vendor inference only.
	DSN string

	// Extra carries free-form connection metadata. The key "dialect_name"
	// explicitly overrides dialect inference.
	Extra map[string]string
}

// DialectNameKey is the Extra key holding an explicit dialect override.
const DialectNameKey = "dialect_name"

// DialectName returns the explicit dialect override, if present.
func (d Descriptor) DialectName() (string, bool) {
	name, ok := d.Extra[DialectNameKey]
	return name, ok && name != ""
}

// Fingerprint returns a stable cache key for equivalent descriptors.
func (d Descriptor) Fingerprint() string {
	var b strings.Builder
	b.WriteString(d.Driver)
	b.WriteByte('|')
	b.WriteString(d.DSN)

	keys := make([]string, 0, len(d.Extra))
	for k := range d.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte('|')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(d.Extra[k])
	}
	return b.String()
}
