package dialects

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/coregx/dialecta/internal/cache"
	"github.com/coregx/dialecta/internal/inspector"
	"github.com/coregx/dialecta/internal/logger"
	"github.com/coregx/dialecta/internal/tracer"
)

// Constructor builds a dialect instance bound to a session.
type Constructor func(*Session) (Dialect, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Constructor)
)

// Register registers a dialect constructor under a unique name. Built-in
// dialects register themselves during package initialization; plugins may
// register additional vendors before resolution starts. Safe for concurrent
// use; later registrations replace earlier ones.
func Register(name string, ctor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = ctor
}

// Names returns the registered dialect names in lexical order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookup(name string) (Constructor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ctor, ok := registry[name]
	return ctor, ok
}

// ResolutionCache memoizes resolutions per descriptor fingerprint. Reuse is
// at the caller's discretion; cached instances share the executor the cache's
// resolutions were created with, so keep one cache per connectivity source.
type ResolutionCache = cache.LRU[Resolution]

// NewResolutionCache creates a resolution cache with the given capacity.
func NewResolutionCache(capacity int) *ResolutionCache {
	return cache.NewWithCapacity[Resolution](capacity)
}

// Resolution is the outcome of dialect resolution. Fallback signals that the
// requested or inferred dialect was unavailable and the default dialect was
// substituted; it is a diagnostic, never an error.
type Resolution struct {
	Dialect    Dialect
	Name       string // name of the dialect actually constructed
	Fallback   bool
	Diagnostic string // human-readable fallback reason, empty otherwise
}

// ResolveOption configures a resolution call.
type ResolveOption func(*resolveConfig)

type resolveConfig struct {
	executor inspector.Executor
	logger   logger.Logger
	tracer   tracer.Tracer
	cache    *ResolutionCache
}

// WithExecutor binds the executor used for metadata introspection.
func WithExecutor(exec inspector.Executor) ResolveOption {
	return func(c *resolveConfig) { c.executor = exec }
}

// WithLogger sets the logger receiving fallback warnings.
func WithLogger(l logger.Logger) ResolveOption {
	return func(c *resolveConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer sets the tracer for resolution and introspection spans.
func WithTracer(t tracer.Tracer) ResolveOption {
	return func(c *resolveConfig) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithCache memoizes resolutions by descriptor fingerprint.
func WithCache(rc *ResolutionCache) ResolveOption {
	return func(c *resolveConfig) { c.cache = rc }
}

// Resolve maps a connection descriptor to a ready dialect instance. An
// explicit dialect_name extra wins; otherwise the vendor is inferred from
// the driver tag and DSN signature. Unknown names and failed constructions
// fall back to the default dialect with a warning on the configured logger;
// resolution itself never fails.
func Resolve(desc Descriptor, opts ...ResolveOption) Resolution {
	cfg := resolveConfig{
		logger: &logger.NoopLogger{},
		tracer: &tracer.NoopTracer{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.cache != nil {
		if res, ok := cfg.cache.Get(desc.Fingerprint()); ok {
			return res
		}
	}

	_, span := cfg.tracer.StartSpan(context.Background(), "dialect.resolve")
	defer span.End()
	span.SetAttributes(tracer.Driver(desc.Driver))

	sess := &Session{
		Descriptor: desc,
		Executor:   cfg.executor,
		Logger:     cfg.logger,
		Tracer:     cfg.tracer,
	}

	var res Resolution
	name, explicit := desc.DialectName()
	if explicit {
		res = construct(name, sess)
	} else if name, ok := Infer(desc); ok {
		res = construct(name, sess)
	} else {
		res = fallbackToDefault(sess, desc.Driver, "no dialect matches driver or DSN signature")
	}

	span.SetAttributes(tracer.DialectName(res.Name), tracer.Fallback(res.Fallback))
	if cfg.cache != nil {
		cfg.cache.Set(desc.Fingerprint(), res)
	}
	return res
}

func construct(name string, sess *Session) Resolution {
	ctor, ok := lookup(name)
	if !ok {
		return fallbackToDefault(sess, name, "not registered")
	}
	d, err := ctor(sess)
	if err != nil {
		return fallbackToDefault(sess, name, "construction failed: "+err.Error())
	}
	return Resolution{Dialect: d, Name: name}
}

// fallbackToDefault substitutes the default dialect, surfacing the reason
// only through the warning log and the Resolution diagnostic.
func fallbackToDefault(sess *Session, requested, reason string) Resolution {
	sess.Logger.Warn("falling back to default dialect",
		"requested", requested,
		"reason", reason,
		"driver", sess.Descriptor.Driver,
		"dsn", logger.MaskDSN(sess.Descriptor.DSN),
		"extra", logger.MaskExtra(sess.Descriptor.Extra),
	)

	d := Dialect(nil)
	if ctor, ok := lookup("default"); ok {
		if built, err := ctor(sess); err == nil {
			d = built
		}
	}
	if d == nil {
		d = NewDefault(sess)
	}

	return Resolution{
		Dialect:    d,
		Name:       d.Name(),
		Fallback:   true,
		Diagnostic: fmt.Sprintf("dialect %q unavailable (%s); using default", requested, reason),
	}
}

// dsnSignatures maps connection-string markers to dialect names for generic
// drivers whose driver tag says nothing about the vendor.
var dsnSignatures = []struct {
	marker string
	name   string
}{
	{"sqlserver://", "mssql"},
	{"server=", "mssql"},
	{"postgresql://", "postgres"},
	{"postgres://", "postgres"},
	{"mysql://", "mysql"},
	{"mariadb://", "mysql"},
	{"sqlite://", "sqlite"},
}

// Infer derives a dialect name from the descriptor's driver tag and DSN
// signature. ok is false when neither matches a known vendor; the returned
// name is then "default".
func Infer(desc Descriptor) (string, bool) {
	driver := strings.ToLower(desc.Driver)
	dsn := strings.ToLower(desc.DSN)

	// CockroachDB serves the PostgreSQL wire protocol, so its markers must
	// be checked before the driver tag says "postgres".
	if driver == "cockroachdb" || strings.Contains(dsn, "cockroach") || strings.Contains(dsn, ":26257") {
		return "cockroachdb", true
	}

	switch driver {
	case "postgres", "postgresql", "pgx", "pq":
		return "postgres", true
	case "mysql", "mariadb":
		return "mysql", true
	case "sqlserver", "mssql", "azuresql":
		return "mssql", true
	case "sqlite", "sqlite3":
		return "sqlite", true
	case "default":
		return "default", true
	}

	for _, sig := range dsnSignatures {
		if strings.Contains(dsn, sig.marker) {
			return sig.name, true
		}
	}
	return "default", false
}
