// Package inspector provides schema metadata introspection over a narrow
// executor contract. It retrieves column lists, primary keys, and vendor
// reserved words without owning the underlying connection.
package inspector

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coregx/dialecta/internal/tracer"
)

// ErrKeywordsNotSupported is returned by ListReservedWords when the bound
// catalog has no keyword query for its vendor.
var ErrKeywordsNotSupported = errors.New("reserved-word introspection not supported by catalog")

// Executor is the minimal query capability the inspector needs from the
// caller's connectivity layer. *sql.DB and *sql.Tx both satisfy it.
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Column describes one table column as reported by the database.
type Column struct {
	Name     string
	Identity bool // identity or autoincrement column, excluded from target fields
}

// Inspector executes vendor-specific catalog queries against an Executor.
// Instances are cheap and hold no mutable state beyond their bindings.
type Inspector struct {
	exec   Executor
	cat    Catalog
	tracer tracer.Tracer
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithTracer sets the tracer used for introspection spans.
func WithTracer(t tracer.Tracer) Option {
	return func(i *Inspector) {
		if t != nil {
			i.tracer = t
		}
	}
}

// New creates an Inspector bound to the given executor and vendor catalog.
func New(exec Executor, cat Catalog, opts ...Option) (*Inspector, error) {
	if exec == nil {
		return nil, errors.New("inspector: nil executor")
	}
	if cat == nil {
		return nil, errors.New("inspector: nil catalog")
	}
	i := &Inspector{
		exec:   exec,
		cat:    cat,
		tracer: &tracer.NoopTracer{},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// ListColumns returns the table's columns in database-reported order.
// An unknown table yields an empty slice, not an error.
func (i *Inspector) ListColumns(ctx context.Context, schema, table string) ([]Column, error) {
	ctx, span := i.tracer.StartSpan(ctx, "inspect.columns")
	defer span.End()
	span.SetAttributes(tracer.Table(schema, table))

	query, args := i.cat.Columns(schema, table)
	rows, err := i.exec.QueryContext(ctx, query, args...)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list columns for %q: %w", table, err)
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var c Column
		if err := rows.Scan(&c.Name, &c.Identity); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("scan column row: %w", err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("iterate column rows: %w", err)
	}
	return cols, nil
}

// ListPrimaryKeys returns the primary-key column names in key order.
// A table without a primary key yields an empty slice, not an error.
func (i *Inspector) ListPrimaryKeys(ctx context.Context, schema, table string) ([]string, error) {
	ctx, span := i.tracer.StartSpan(ctx, "inspect.primary_keys")
	defer span.End()
	span.SetAttributes(tracer.Table(schema, table))

	query, args := i.cat.PrimaryKeys(schema, table)
	rows, err := i.exec.QueryContext(ctx, query, args...)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list primary keys for %q: %w", table, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("scan primary key row: %w", err)
		}
		keys = append(keys, name)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("iterate primary key rows: %w", err)
	}
	return keys, nil
}

// ListReservedWords fetches the vendor's reserved-word list from the live
// catalog. Vendors without a keyword catalog return ErrKeywordsNotSupported;
// callers are expected to fall back to a static list.
func (i *Inspector) ListReservedWords(ctx context.Context) ([]string, error) {
	query, ok := i.cat.ReservedWords()
	if !ok {
		return nil, ErrKeywordsNotSupported
	}

	ctx, span := i.tracer.StartSpan(ctx, "inspect.reserved_words")
	defer span.End()

	rows, err := i.exec.QueryContext(ctx, query)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list reserved words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("scan reserved word row: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("iterate reserved word rows: %w", err)
	}
	return words, nil
}
