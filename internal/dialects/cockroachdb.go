package dialects

func init() {
	Register("cockroachdb", func(sess *Session) (Dialect, error) {
		return NewCockroach(sess), nil
	})
}

// CockroachDialect implements CockroachDB behavior. The server speaks the
// PostgreSQL wire dialect, so everything except the name and the parameter
// marker is inherited: CockroachDB deployments reached through DB-API style
// connectivity bind with pyformat markers, not $n.
type CockroachDialect struct {
	*PostgresDialect
}

// NewCockroach creates the CockroachDB dialect bound to the given session.
func NewCockroach(sess *Session) *CockroachDialect {
	c := &CockroachDialect{PostgresDialect: NewPostgres(sess)}
	c.bind(c)
	return c
}

// Name implements Dialect.
func (c *CockroachDialect) Name() string { return "cockroachdb" }

// Placeholder implements Dialect with the pyformat marker. The index is
// ignored.
func (c *CockroachDialect) Placeholder(_ int) string { return "%s" }
