package dialects

import (
	"context"
	"strings"

	"github.com/coregx/dialecta/internal/inspector"
)

func init() {
	Register("mssql", func(sess *Session) (Dialect, error) {
		return NewMSSQL(sess), nil
	})
}

// MSSQLDialect implements SQL Server behavior: bracket-quoted identifiers,
// ODBC-style ? markers, sys.columns identity detection, and MERGE upserts.
type MSSQLDialect struct {
	*DefaultDialect
}

// NewMSSQL creates the SQL Server dialect bound to the given session.
func NewMSSQL(sess *Session) *MSSQLDialect {
	m := &MSSQLDialect{DefaultDialect: NewDefault(sess)}
	m.catalog = inspector.MSSQLCatalog{}
	m.words = mssqlReservedWords
	m.bind(m)
	return m
}

// Name implements Dialect.
func (m *MSSQLDialect) Name() string { return "mssql" }

// Placeholder returns the ODBC positional marker. The index is ignored.
func (m *MSSQLDialect) Placeholder(_ int) string { return "?" }

// QuoteIdentifier quotes an identifier using T-SQL brackets.
func (m *MSSQLDialect) QuoteIdentifier(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

// QualifyTable combines schema and table with bracket quoting.
func (m *MSSQLDialect) QualifyTable(schema, table string) string {
	if schema == "" {
		return m.QuoteIdentifier(table)
	}
	return m.QuoteIdentifier(schema) + "." + m.QuoteIdentifier(table)
}

// ExtractSchema splits a dot-separated, optionally bracket-quoted identifier.
func (m *MSSQLDialect) ExtractSchema(identifier string) (TableIdentifier, error) {
	parts, err := splitQualified(identifier, '[', ']')
	if err != nil {
		return TableIdentifier{}, &ParseError{Input: identifier, Reason: err.Error()}
	}
	return tableFromParts(identifier, parts)
}

// ReplaceSQL generates a MERGE upsert. SQL Server has no INSERT-level
// conflict clause, so the rows become a VALUES source matched against the
// conflict columns. MERGE needs named source columns, so target fields are
// mandatory here.
func (m *MSSQLDialect) ReplaceSQL(ctx context.Context, table TableIdentifier, rows []Row, fields []string, opts StatementOptions) (Statement, error) {
	if len(rows) == 0 {
		return Statement{}, ErrEmptyRowSet
	}
	if len(fields) == 0 {
		return Statement{}, ErrNoTargetFields
	}

	conflict, err := conflictTarget(ctx, m.impl, table, opts)
	if err != nil {
		return Statement{}, err
	}

	rendered, err := renderFields(ctx, m.impl, fields, opts)
	if err != nil {
		return Statement{}, err
	}
	renderedConflict, err := renderFields(ctx, m.impl, conflict, opts)
	if err != nil {
		return Statement{}, err
	}

	values, args, err := valuesClause(m.impl, rows, len(fields), 1)
	if err != nil {
		return Statement{}, err
	}

	conflictSet := NewWordSet(conflict...)
	var updates []string
	for i, f := range fields {
		if conflictSet.Contains(f) {
			continue
		}
		updates = append(updates, "target."+rendered[i]+" = source."+rendered[i])
	}

	matches := make([]string, len(conflict))
	for i := range conflict {
		matches[i] = "target." + renderedConflict[i] + " = source." + renderedConflict[i]
	}

	insertCols := strings.Join(rendered, ", ")
	sourceCols := make([]string, len(rendered))
	for i, f := range rendered {
		sourceCols[i] = "source." + f
	}

	var b strings.Builder
	b.WriteString("MERGE INTO ")
	b.WriteString(m.impl.QualifyTable(table.Schema, table.Table))
	b.WriteString(" AS target USING (VALUES ")
	b.WriteString(values)
	b.WriteString(") AS source (")
	b.WriteString(insertCols)
	b.WriteString(") ON ")
	b.WriteString(strings.Join(matches, " AND "))
	if len(updates) > 0 {
		b.WriteString(" WHEN MATCHED THEN UPDATE SET ")
		b.WriteString(strings.Join(updates, ", "))
	}
	b.WriteString(" WHEN NOT MATCHED THEN INSERT (")
	b.WriteString(insertCols)
	b.WriteString(") VALUES (")
	b.WriteString(strings.Join(sourceCols, ", "))
	b.WriteString(");")

	return Statement{SQL: b.String(), Args: args}, nil
}
