package dialects

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDialect_Name(t *testing.T) {
	d := NewDefault(nil)
	assert.Equal(t, "default", d.Name())
}

func TestDefaultDialect_Placeholder(t *testing.T) {
	d := NewDefault(nil)

	// Pyformat markers do not vary by position.
	assert.Equal(t, "%s", d.Placeholder(1))
	assert.Equal(t, "%s", d.Placeholder(2))
	assert.Equal(t, "%s", d.Placeholder(99))
}

func TestDefaultDialect_QuoteIdentifier(t *testing.T) {
	d := NewDefault(nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "orders", `"orders"`},
		{"reserved word", "order", `"order"`},
		{"embedded quote", `we"ird`, `"we""ird"`},
		{"mixed case preserved", "OrderItems", `"OrderItems"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.QuoteIdentifier(tt.input))
		})
	}
}

func TestDefaultDialect_QualifyTable(t *testing.T) {
	d := NewDefault(nil)

	assert.Equal(t, "public.orders", d.QualifyTable("public", "orders"))
	assert.Equal(t, "orders", d.QualifyTable("", "orders"))

	// Reserved words are quoted in table references just like in field lists.
	assert.Equal(t, `"select"`, d.QualifyTable("", "select"))
	assert.Equal(t, `public."user"`, d.QualifyTable("public", "user"))
}

func TestDefaultDialect_ExtractSchema(t *testing.T) {
	d := NewDefault(nil)

	tests := []struct {
		name    string
		input   string
		want    TableIdentifier
		wantErr bool
	}{
		{
			name:  "schema qualified",
			input: "public.orders",
			want:  TableIdentifier{Schema: "public", Table: "orders"},
		},
		{
			name:  "bare table",
			input: "orders",
			want:  TableIdentifier{Table: "orders"},
		},
		{
			name:  "quoted schema and table",
			input: `"public"."orders"`,
			want:  TableIdentifier{Schema: "public", Table: "orders"},
		},
		{
			name:  "quoted table with dot inside",
			input: `"weird.name"`,
			want:  TableIdentifier{Table: "weird.name"},
		},
		{
			name:  "quoted table with escaped quote",
			input: `"we""ird"`,
			want:  TableIdentifier{Table: `we"ird`},
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "too many parts",
			input:   "db.public.orders",
			wantErr: true,
		},
		{
			name:    "trailing dot",
			input:   "public.",
			wantErr: true,
		},
		{
			name:    "unterminated quote",
			input:   `"orders`,
			wantErr: true,
		},
		{
			name:    "garbage after quoted part",
			input:   `"orders"x`,
			wantErr: true,
		},
		{
			name:    "invalid bare identifier",
			input:   "1orders",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.ExtractSchema(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var pe *ParseError
				assert.ErrorAs(t, err, &pe)
				assert.Equal(t, tt.input, pe.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultDialect_ExtractSchema_RoundTrip(t *testing.T) {
	d := NewDefault(nil)

	inputs := []TableIdentifier{
		{Schema: "public", Table: "orders"},
		{Table: "orders"},
		{Schema: "select", Table: "user"},
	}
	for _, id := range inputs {
		got, err := d.ExtractSchema(d.QualifyTable(id.Schema, id.Table))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestDefaultDialect_ReservedWords(t *testing.T) {
	d := NewDefault(nil)

	words, err := d.ReservedWords(context.Background())
	require.NoError(t, err)

	assert.True(t, words.Contains("select"))
	assert.True(t, words.Contains("SELECT"))
	assert.True(t, words.Contains("from"))

	// The generic list stays close to the ANSI core; ORDER is only reserved
	// by specific vendors.
	assert.False(t, words.Contains("order"))
}

func TestDefaultDialect_InsertSQL(t *testing.T) {
	d := NewDefault(nil)
	ctx := context.Background()
	table := TableIdentifier{Schema: "public", Table: "orders"}

	tests := []struct {
		name     string
		rows     []Row
		fields   []string
		opts     StatementOptions
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "single row with fields",
			rows:     []Row{{1, "a"}},
			fields:   []string{"id", "name"},
			wantSQL:  "INSERT INTO public.orders (id, name) VALUES (%s, %s)",
			wantArgs: []any{1, "a"},
		},
		{
			name:     "multi row",
			rows:     []Row{{1, "a"}, {2, "b"}},
			fields:   []string{"id", "name"},
			wantSQL:  "INSERT INTO public.orders (id, name) VALUES (%s, %s), (%s, %s)",
			wantArgs: []any{1, "a", 2, "b"},
		},
		{
			name:     "no fields omits column list",
			rows:     []Row{{1, "a", true}},
			wantSQL:  "INSERT INTO public.orders VALUES (%s, %s, %s)",
			wantArgs: []any{1, "a", true},
		},
		{
			name:     "reserved field quoted",
			rows:     []Row{{1, "x"}},
			fields:   []string{"id", "select"},
			wantSQL:  `INSERT INTO public.orders (id, "select") VALUES (%s, %s)`,
			wantArgs: []any{1, "x"},
		},
		{
			name:     "non-reserved order stays bare",
			rows:     []Row{{5}},
			fields:   []string{"order"},
			wantSQL:  "INSERT INTO public.orders (order) VALUES (%s)",
			wantArgs: []any{5},
		},
		{
			name:     "quote all columns",
			rows:     []Row{{1, "a"}},
			fields:   []string{"id", "name"},
			opts:     StatementOptions{QuoteAllColumns: true},
			wantSQL:  `INSERT INTO public.orders ("id", "name") VALUES (%s, %s)`,
			wantArgs: []any{1, "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := d.InsertSQL(ctx, table, tt.rows, tt.fields, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, stmt.SQL)
			assert.Equal(t, tt.wantArgs, stmt.Args)
		})
	}
}

func TestDefaultDialect_InsertSQL_Errors(t *testing.T) {
	d := NewDefault(nil)
	ctx := context.Background()
	table := TableIdentifier{Table: "orders"}

	t.Run("empty row set", func(t *testing.T) {
		_, err := d.InsertSQL(ctx, table, nil, []string{"id"}, StatementOptions{})
		assert.ErrorIs(t, err, ErrEmptyRowSet)
	})

	t.Run("row shape mismatch", func(t *testing.T) {
		_, err := d.InsertSQL(ctx, table, []Row{{1, "a"}, {2}}, []string{"id", "name"}, StatementOptions{})
		assert.ErrorIs(t, err, ErrRowShape)
	})

	t.Run("empty first row without fields", func(t *testing.T) {
		_, err := d.InsertSQL(ctx, table, []Row{{}}, nil, StatementOptions{})
		assert.ErrorIs(t, err, ErrRowShape)
	})
}

func TestDefaultDialect_ReplaceSQL_Unsupported(t *testing.T) {
	d := NewDefault(nil)

	_, err := d.ReplaceSQL(context.Background(), TableIdentifier{Table: "orders"}, []Row{{1}}, []string{"id"}, StatementOptions{})
	var uo *UnsupportedOperationError
	require.ErrorAs(t, err, &uo)
	assert.Equal(t, "default", uo.Dialect)
	assert.Contains(t, uo.Error(), "does not support")
}

func TestDefaultDialect_Inspector_NoExecutor(t *testing.T) {
	d := NewDefault(nil)

	_, err := d.Inspector()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoExecutor)

	var cv *ContractViolationError
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, "default", cv.Dialect)

	// Metadata operations surface the same failure.
	_, err = d.ColumnNames(context.Background(), TableIdentifier{Table: "orders"})
	assert.ErrorIs(t, err, ErrNoExecutor)
}

func TestDefaultDialect_Metadata(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	d := NewDefault(&Session{Executor: db})
	ctx := context.Background()
	table := TableIdentifier{Schema: "public", Table: "orders"}

	colRows := sqlmock.NewRows([]string{"column_name", "identity"}).
		AddRow("id", 1).
		AddRow("name", 0).
		AddRow("total", 0)
	mock.ExpectQuery("FROM information_schema.columns").
		WithArgs("orders", "public").
		WillReturnRows(colRows)

	cols, err := d.ColumnNames(ctx, table)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "total"}, cols)

	colRows = sqlmock.NewRows([]string{"column_name", "identity"}).
		AddRow("id", 1).
		AddRow("name", 0).
		AddRow("total", 0)
	mock.ExpectQuery("FROM information_schema.columns").
		WithArgs("orders", "public").
		WillReturnRows(colRows)

	fields, err := d.TargetFields(ctx, table)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "total"}, fields)

	pkRows := sqlmock.NewRows([]string{"column_name"}).AddRow("id")
	mock.ExpectQuery("information_schema.table_constraints").
		WithArgs("orders", "public").
		WillReturnRows(pkRows)

	pks, err := d.PrimaryKeys(ctx, table)
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, pks)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDefaultDialect_Metadata_NoPrimaryKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	d := NewDefault(&Session{Executor: db})

	mock.ExpectQuery("information_schema.table_constraints").
		WithArgs("audit_log", "").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))

	pks, err := d.PrimaryKeys(context.Background(), TableIdentifier{Table: "audit_log"})
	require.NoError(t, err)
	assert.Empty(t, pks)
}

func TestDefaultDialect_Metadata_ExecutorFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	d := NewDefault(&Session{Executor: db})

	boom := errors.New("connection reset")
	mock.ExpectQuery("FROM information_schema.columns").WillReturnError(boom)

	_, err = d.ColumnNames(context.Background(), TableIdentifier{Table: "orders"})
	require.Error(t, err)

	var cv *ContractViolationError
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, "list columns", cv.Operation)
	assert.ErrorIs(t, err, boom)
}

func TestWordSet(t *testing.T) {
	s := NewWordSet("SELECT", "from", "Order")

	assert.True(t, s.Contains("select"))
	assert.True(t, s.Contains("FROM"))
	assert.True(t, s.Contains("order"))
	assert.False(t, s.Contains("name"))
	assert.Equal(t, []string{"from", "order", "select"}, s.Sorted())
}

func TestDescriptor_Fingerprint(t *testing.T) {
	a := Descriptor{Driver: "postgres", DSN: "postgres://db/x", Extra: map[string]string{"b": "2", "a": "1"}}
	b := Descriptor{Driver: "postgres", DSN: "postgres://db/x", Extra: map[string]string{"a": "1", "b": "2"}}
	c := Descriptor{Driver: "postgres", DSN: "postgres://db/y"}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestDescriptor_DialectName(t *testing.T) {
	name, ok := Descriptor{Extra: map[string]string{DialectNameKey: "mssql"}}.DialectName()
	assert.True(t, ok)
	assert.Equal(t, "mssql", name)

	_, ok = Descriptor{}.DialectName()
	assert.False(t, ok)

	_, ok = Descriptor{Extra: map[string]string{DialectNameKey: ""}}.DialectName()
	assert.False(t, ok)
}
