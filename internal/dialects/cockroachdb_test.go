package dialects

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCockroachDialect_Name(t *testing.T) {
	c := NewCockroach(nil)
	assert.Equal(t, "cockroachdb", c.Name())
}

func TestCockroachDialect_Placeholder(t *testing.T) {
	c := NewCockroach(nil)

	// Overrides the inherited $n style back to the positional pyformat marker.
	assert.Equal(t, "%s", c.Placeholder(1))
	assert.Equal(t, "%s", c.Placeholder(2))
}

func TestCockroachDialect_InheritsPostgresQuoting(t *testing.T) {
	c := NewCockroach(nil)

	assert.Equal(t, `"order"`, c.QuoteIdentifier("order"))

	id, err := c.ExtractSchema("public.orders")
	require.NoError(t, err)
	assert.Equal(t, TableIdentifier{Schema: "public", Table: "orders"}, id)
}

func TestCockroachDialect_InsertSQL(t *testing.T) {
	c := NewCockroach(nil)

	stmt, err := c.InsertSQL(context.Background(), TableIdentifier{Schema: "public", Table: "orders"},
		[]Row{{1, "a"}}, []string{"id", "name"}, StatementOptions{})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO public.orders (id, name) VALUES (%s, %s)", stmt.SQL)
	assert.Equal(t, []any{1, "a"}, stmt.Args)
}

func TestCockroachDialect_ReplaceSQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := NewCockroach(&Session{Executor: db})
	table := TableIdentifier{Schema: "public", Table: "orders"}

	mock.ExpectQuery("pg_get_keywords").
		WillReturnRows(sqlmock.NewRows([]string{"word"}).AddRow("select").AddRow("order"))
	mock.ExpectQuery("information_schema.table_constraints").
		WithArgs("orders", "public").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id"))

	stmt, err := c.ReplaceSQL(context.Background(), table, []Row{{1, "a", 9.5}}, []string{"id", "name", "total"}, StatementOptions{})
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO public.orders (id, name, total) VALUES (%s, %s, %s)"+
			" ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, total = EXCLUDED.total",
		stmt.SQL)
	assert.Equal(t, []any{1, "a", 9.5}, stmt.Args)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCockroachDialect_ReplaceSQL_RequiresFields(t *testing.T) {
	c := NewCockroach(nil)

	opts := StatementOptions{ConflictColumns: []string{"id"}}
	_, err := c.ReplaceSQL(context.Background(), TableIdentifier{Table: "orders"}, []Row{{1, "a"}}, nil, opts)
	assert.ErrorIs(t, err, ErrNoTargetFields)
}

func TestCockroachDialect_ReplaceSQL_ExplicitConflictColumns(t *testing.T) {
	c := NewCockroach(nil)

	opts := StatementOptions{ConflictColumns: []string{"id"}}
	stmt, err := c.ReplaceSQL(context.Background(), TableIdentifier{Table: "orders"}, []Row{{1, "a"}}, []string{"id", "name"}, opts)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO orders (id, name) VALUES (%s, %s) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name",
		stmt.SQL)
}
