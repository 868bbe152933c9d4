package dialects

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coregx/dialecta/internal/util"
)

// splitQualified splits a dot-separated identifier into its parts, honoring
// vendor quoting: segments wrapped in open/clos bytes may contain separators
// and escape the closing byte by doubling it. Unquoted segments must be valid
// bare identifiers.
func splitQualified(id string, open, clos byte) ([]string, error) {
	var parts []string
	i := 0
	for {
		if i >= len(id) {
			return nil, errors.New("empty qualifier part")
		}
		var part string
		if id[i] == open {
			i++
			var b strings.Builder
			closed := false
			for i < len(id) {
				c := id[i]
				if c == clos {
					if i+1 < len(id) && id[i+1] == clos {
						b.WriteByte(clos)
						i += 2
						continue
					}
					closed = true
					i++
					break
				}
				b.WriteByte(c)
				i++
			}
			if !closed {
				return nil, errors.New("unterminated quoted identifier")
			}
			if b.Len() == 0 {
				return nil, errors.New("empty quoted identifier")
			}
			part = b.String()
		} else {
			start := i
			for i < len(id) && id[i] != '.' {
				if id[i] == open || id[i] == clos {
					return nil, errors.New("unexpected quote character inside identifier")
				}
				i++
			}
			part = id[start:i]
			if part == "" {
				return nil, errors.New("empty qualifier part")
			}
			if !util.ValidIdentifier(part) {
				return nil, fmt.Errorf("invalid identifier part %q", part)
			}
		}
		parts = append(parts, part)
		if i == len(id) {
			return parts, nil
		}
		if id[i] != '.' {
			return nil, errors.New("unexpected character after quoted identifier")
		}
		i++
	}
}

// tableFromParts maps qualifier parts onto a TableIdentifier, rejecting
// anything deeper than schema.table.
func tableFromParts(input string, parts []string) (TableIdentifier, error) {
	switch len(parts) {
	case 1:
		return TableIdentifier{Table: parts[0]}, nil
	case 2:
		return TableIdentifier{Schema: parts[0], Table: parts[1]}, nil
	default:
		return TableIdentifier{}, &ParseError{Input: input, Reason: "too many qualifier parts"}
	}
}

// renderFields applies the quoting policy to the supplied field names:
// reserved words always, every field when opts.QuoteAllColumns is set.
func renderFields(ctx context.Context, d Dialect, fields []string, opts StatementOptions) ([]string, error) {
	var words WordSet
	if !opts.QuoteAllColumns {
		var err error
		words, err = d.ReservedWords(ctx)
		if err != nil {
			return nil, err
		}
	}

	out := make([]string, len(fields))
	for i, f := range fields {
		if opts.QuoteAllColumns || words.Contains(f) {
			out[i] = d.QuoteIdentifier(f)
		} else {
			out[i] = f
		}
	}
	return out, nil
}

// valuesClause renders "(ph, ph), (ph, ph)" groups with a continuing
// placeholder index and the flattened bind args in row-major order.
func valuesClause(d Dialect, rows []Row, width, startIndex int) (string, []any, error) {
	var b strings.Builder
	args := make([]any, 0, len(rows)*width)

	idx := startIndex
	for ri, row := range rows {
		if len(row) != width {
			return "", nil, fmt.Errorf("row %d has %d values, want %d: %w", ri, len(row), width, ErrRowShape)
		}
		if ri > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for ci, v := range row {
			if ci > 0 {
				b.WriteString(", ")
			}
			b.WriteString(d.Placeholder(idx))
			idx++
			args = append(args, v)
		}
		b.WriteByte(')')
	}
	return b.String(), args, nil
}

// buildInsert assembles the INSERT core shared by InsertSQL and the vendors
// whose upsert decorates an INSERT. verb is "INSERT" or "REPLACE". It returns
// the rendered field list so upsert decorators can reuse the quoting.
func buildInsert(ctx context.Context, d Dialect, verb string, table TableIdentifier, rows []Row, fields []string, opts StatementOptions) (Statement, []string, error) {
	if len(rows) == 0 {
		return Statement{}, nil, ErrEmptyRowSet
	}

	width := len(fields)
	if width == 0 {
		width = len(rows[0])
		if width == 0 {
			return Statement{}, nil, fmt.Errorf("row 0 has no values: %w", ErrRowShape)
		}
	}

	var b strings.Builder
	b.WriteString(verb)
	b.WriteString(" INTO ")
	b.WriteString(d.QualifyTable(table.Schema, table.Table))

	var rendered []string
	if len(fields) > 0 {
		var err error
		rendered, err = renderFields(ctx, d, fields, opts)
		if err != nil {
			return Statement{}, nil, err
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(rendered, ", "))
		b.WriteByte(')')
	}

	b.WriteString(" VALUES ")
	vals, args, err := valuesClause(d, rows, width, 1)
	if err != nil {
		return Statement{}, nil, err
	}
	b.WriteString(vals)

	return Statement{SQL: b.String(), Args: args}, rendered, nil
}

// conflictTarget resolves the upsert conflict columns: caller-supplied
// columns win, otherwise the table's primary key.
func conflictTarget(ctx context.Context, d Dialect, table TableIdentifier, opts StatementOptions) ([]string, error) {
	if len(opts.ConflictColumns) > 0 {
		return opts.ConflictColumns, nil
	}
	pks, err := d.PrimaryKeys(ctx, table)
	if err != nil {
		return nil, err
	}
	if len(pks) == 0 {
		return nil, fmt.Errorf("table %q: %w", table.String(), ErrNoConflictTarget)
	}
	return pks, nil
}

// appendOnConflict decorates an INSERT with the ON CONFLICT clause shared by
// the PostgreSQL-compatible vendors and SQLite. Non-conflict fields become
// EXCLUDED assignments, so the caller must name its fields; without them the
// clause could only express insert-or-ignore, which is not an upsert. When
// every field is part of the conflict target the statement degrades to
// DO NOTHING.
func appendOnConflict(ctx context.Context, d Dialect, base Statement, table TableIdentifier, fields, rendered []string, opts StatementOptions) (Statement, error) {
	if len(fields) == 0 {
		return Statement{}, ErrNoTargetFields
	}

	conflict, err := conflictTarget(ctx, d, table, opts)
	if err != nil {
		return Statement{}, err
	}
	renderedConflict, err := renderFields(ctx, d, conflict, opts)
	if err != nil {
		return Statement{}, err
	}

	conflictSet := NewWordSet(conflict...)
	var updates []string
	for i, f := range fields {
		if conflictSet.Contains(f) {
			continue
		}
		updates = append(updates, rendered[i]+" = EXCLUDED."+rendered[i])
	}

	var b strings.Builder
	b.WriteString(base.SQL)
	b.WriteString(" ON CONFLICT (")
	b.WriteString(strings.Join(renderedConflict, ", "))
	b.WriteByte(')')
	if len(updates) == 0 {
		b.WriteString(" DO NOTHING")
	} else {
		b.WriteString(" DO UPDATE SET ")
		b.WriteString(strings.Join(updates, ", "))
	}

	return Statement{SQL: b.String(), Args: base.Args}, nil
}
