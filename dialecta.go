// Package dialecta resolves database connections to SQL dialect handlers and
// generates vendor-correct DML. It maps a connection descriptor (driver tag,
// DSN, extras) to a dialect implementation covering placeholder style,
// identifier quoting, metadata introspection, and INSERT/upsert generation
// for PostgreSQL, CockroachDB, MySQL, SQL Server, and SQLite, with a
// standards-leaning default for everything else.
package dialecta

import (
	"github.com/coregx/dialecta/internal/config"
	"github.com/coregx/dialecta/internal/dialects"
	"github.com/coregx/dialecta/internal/inspector"
	"github.com/coregx/dialecta/internal/logger"
	"github.com/coregx/dialecta/internal/tracer"
)

type (
	// Dialect is the vendor contract: naming, placeholders, quoting,
	// introspection, and statement generation.
	Dialect = dialects.Dialect
	// Descriptor identifies a connection for resolution purposes.
	Descriptor = dialects.Descriptor
	// Session carries the descriptor plus the executor, logger, and tracer
	// a dialect instance operates with.
	Session = dialects.Session
	// Constructor builds a dialect instance bound to a session.
	Constructor = dialects.Constructor
	// Resolution is the outcome of dialect resolution.
	Resolution = dialects.Resolution
	// ResolveOption configures a resolution call.
	ResolveOption = dialects.ResolveOption
	// ResolutionCache memoizes resolutions per descriptor fingerprint.
	ResolutionCache = dialects.ResolutionCache

	// TableIdentifier is a parsed schema-qualified table name.
	TableIdentifier = dialects.TableIdentifier
	// Row is one row of statement arguments.
	Row = dialects.Row
	// Statement is generated SQL with its flattened arguments.
	Statement = dialects.Statement
	// StatementOptions tunes statement generation.
	StatementOptions = dialects.StatementOptions
	// WordSet is a case-insensitive set of words.
	WordSet = dialects.WordSet

	// ParseError reports a malformed qualified identifier.
	ParseError = dialects.ParseError
	// UnsupportedOperationError reports an operation the dialect cannot
	// express.
	UnsupportedOperationError = dialects.UnsupportedOperationError
	// ContractViolationError wraps a failure inside a dialect operation.
	ContractViolationError = dialects.ContractViolationError

	// Executor is the minimal query surface introspection needs.
	Executor = inspector.Executor
	// Column is one column of an inspected table.
	Column = inspector.Column
	// Inspector reads table metadata through a vendor catalog.
	Inspector = inspector.Inspector

	// Logger is the leveled logging interface dialects report through.
	Logger = logger.Logger
	// SlogAdapter adapts a *slog.Logger to the Logger interface.
	SlogAdapter = logger.SlogAdapter
	// Tracer starts spans around resolution and introspection.
	Tracer = tracer.Tracer

	// Config is a loaded configuration document of connection profiles.
	Config = config.Config
	// Profile is one named connection target from configuration.
	Profile = config.Profile
)

// DialectNameKey is the descriptor extra that forces a dialect by name.
const DialectNameKey = dialects.DialectNameKey

var (
	// Resolve maps a descriptor to a dialect, falling back to the default
	// dialect instead of failing.
	Resolve = dialects.Resolve
	// Register adds a dialect constructor to the registry.
	Register = dialects.Register
	// Names lists the registered dialect names.
	Names = dialects.Names
	// Infer derives a dialect name from driver tag and DSN signature.
	Infer = dialects.Infer

	// WithExecutor binds the introspection executor for resolution.
	WithExecutor = dialects.WithExecutor
	// WithLogger sets the logger receiving fallback warnings.
	WithLogger = dialects.WithLogger
	// WithTracer sets the tracer for resolution spans.
	WithTracer = dialects.WithTracer
	// WithCache memoizes resolutions by descriptor fingerprint.
	WithCache = dialects.WithCache
	// NewResolutionCache creates a resolution cache.
	NewResolutionCache = dialects.NewResolutionCache

	// NewWordSet builds a case-insensitive word set.
	NewWordSet = dialects.NewWordSet
	// NewSlogAdapter wraps a *slog.Logger as a Logger.
	NewSlogAdapter = logger.NewSlogAdapter
	// NewOtelTracer wraps an OpenTelemetry tracer as a Tracer.
	NewOtelTracer = tracer.NewOtelTracer

	// LoadConfig reads a YAML configuration file plus environment overrides.
	LoadConfig = config.Load
	// LoadConfigFromDir loads dialecta.yaml or dialecta.yml from a directory.
	LoadConfigFromDir = config.LoadFromDir
)

// Sentinel errors surfaced by dialect operations.
var (
	ErrNoExecutor       = dialects.ErrNoExecutor
	ErrNoConflictTarget = dialects.ErrNoConflictTarget
	ErrEmptyRowSet      = dialects.ErrEmptyRowSet
	ErrRowShape         = dialects.ErrRowShape
	ErrNoTargetFields   = dialects.ErrNoTargetFields
)

// DescriptorFromProfile converts a configuration profile to a resolvable
// descriptor.
func DescriptorFromProfile(p Profile) Descriptor {
	return Descriptor{Driver: p.Driver, DSN: p.DSN, Extra: p.Extra}
}
