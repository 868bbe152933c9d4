package benchmark

import (
	"context"
	"fmt"
	"testing"

	"github.com/coregx/dialecta"
)

func benchRows(n, width int) []dialecta.Row {
	rows := make([]dialecta.Row, n)
	for i := range rows {
		row := make(dialecta.Row, width)
		for j := range row {
			row[j] = fmt.Sprintf("v%d_%d", i, j)
		}
		rows[i] = row
	}
	return rows
}

func BenchmarkInsertSQL(b *testing.B) {
	ctx := context.Background()
	table := dialecta.TableIdentifier{Schema: "public", Table: "orders"}
	fields := []string{"id", "name", "status", "total"}

	for _, name := range []string{"default", "postgres", "mssql", "mysql", "sqlite"} {
		d := dialecta.Resolve(dialecta.Descriptor{
			Extra: map[string]string{dialecta.DialectNameKey: name},
		}).Dialect

		for _, rowCount := range []int{1, 100} {
			rows := benchRows(rowCount, len(fields))
			b.Run(fmt.Sprintf("%s/rows-%d", name, rowCount), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					_, _ = d.InsertSQL(ctx, table, rows, fields, dialecta.StatementOptions{})
				}
			})
		}
	}
}

func BenchmarkReplaceSQL(b *testing.B) {
	ctx := context.Background()
	table := dialecta.TableIdentifier{Schema: "public", Table: "orders"}
	fields := []string{"id", "name", "status", "total"}
	rows := benchRows(10, len(fields))
	opts := dialecta.StatementOptions{ConflictColumns: []string{"id"}}

	for _, name := range []string{"postgres", "cockroachdb", "mssql", "mysql", "sqlite"} {
		d := dialecta.Resolve(dialecta.Descriptor{
			Extra: map[string]string{dialecta.DialectNameKey: name},
		}).Dialect

		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = d.ReplaceSQL(ctx, table, rows, fields, opts)
			}
		})
	}
}

func BenchmarkExtractSchema(b *testing.B) {
	d := dialecta.Resolve(dialecta.Descriptor{Driver: "postgres"}).Dialect

	inputs := []string{
		"orders",
		"public.orders",
		`"public"."orders"`,
	}
	for i := 0; i < b.N; i++ {
		_, _ = d.ExtractSchema(inputs[i%len(inputs)])
	}
}
