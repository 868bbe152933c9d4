package dialects

// Static reserved-word lists per vendor. PostgreSQL-compatible dialects
// prefer the live pg_get_keywords() catalog and use their static list only
// when no executor is bound.

// ansiReservedWords is the conservative core the generic dialect quotes.
// It deliberately carries only words reserved in every mainstream vendor;
// vendor-only words such as ORDER-as-identifier handling belong to the
// specialized lists.
var ansiReservedWords = NewWordSet(
	"all", "alter", "and", "as", "between", "by", "case", "cast", "check",
	"column", "constraint", "create", "cross", "current_date", "current_time",
	"current_timestamp", "default", "delete", "distinct", "drop", "else",
	"end", "except", "exists", "foreign", "from", "grant", "having", "in",
	"inner", "insert", "intersect", "into", "is", "join", "like", "not",
	"null", "on", "or", "outer", "primary", "references", "revoke", "select",
	"table", "then", "to", "union", "unique", "update", "user", "values",
	"when", "where", "with",
)

var postgresReservedWords = NewWordSet(
	"all", "analyse", "analyze", "and", "any", "array", "as", "asc",
	"asymmetric", "both", "case", "cast", "check", "collate", "column",
	"constraint", "create", "current_catalog", "current_date", "current_role",
	"current_time", "current_timestamp", "current_user", "default",
	"deferrable", "desc", "distinct", "do", "else", "end", "except", "false",
	"fetch", "for", "foreign", "from", "grant", "group", "having", "in",
	"initially", "intersect", "into", "lateral", "leading", "limit",
	"localtime", "localtimestamp", "not", "null", "offset", "on", "only",
	"or", "order", "placing", "primary", "references", "returning", "select",
	"session_user", "some", "symmetric", "table", "then", "to", "trailing",
	"true", "union", "unique", "user", "using", "variadic", "when", "where",
	"window", "with",
)

var mssqlReservedWords = NewWordSet(
	"add", "all", "alter", "and", "any", "as", "asc", "authorization",
	"backup", "begin", "between", "break", "browse", "bulk", "by", "cascade",
	"case", "check", "checkpoint", "close", "clustered", "coalesce",
	"collate", "column", "commit", "constraint", "contains", "continue",
	"convert", "create", "cross", "current", "current_date", "current_time",
	"current_timestamp", "current_user", "cursor", "database", "dbcc",
	"deallocate", "declare", "default", "delete", "deny", "desc", "distinct",
	"distributed", "double", "drop", "else", "end", "errlvl", "escape",
	"except", "exec", "execute", "exists", "exit", "external", "fetch",
	"file", "fillfactor", "for", "foreign", "freetext", "from", "full",
	"function", "goto", "grant", "group", "having", "holdlock", "identity",
	"identity_insert", "if", "in", "index", "inner", "insert", "intersect",
	"into", "is", "join", "key", "kill", "left", "like", "lineno", "merge",
	"national", "nocheck", "nonclustered", "not", "null", "nullif", "of",
	"off", "offsets", "on", "open", "option", "or", "order", "outer", "over",
	"percent", "pivot", "plan", "precision", "primary", "print", "proc",
	"procedure", "public", "raiserror", "read", "readtext", "reconfigure",
	"references", "replication", "restore", "restrict", "return", "revert",
	"revoke", "right", "rollback", "rowcount", "rowguidcol", "rule", "save",
	"schema", "select", "session_user", "set", "setuser", "shutdown", "some",
	"statistics", "system_user", "table", "tablesample", "textsize", "then",
	"to", "top", "tran", "transaction", "trigger", "truncate", "union",
	"unique", "unpivot", "update", "updatetext", "use", "user", "values",
	"varying", "view", "waitfor", "when", "where", "while", "with",
	"writetext",
)

var mysqlReservedWords = NewWordSet(
	"add", "all", "alter", "analyze", "and", "as", "asc", "before",
	"between", "bigint", "binary", "blob", "both", "by", "call", "cascade",
	"case", "change", "char", "character", "check", "collate", "column",
	"condition", "constraint", "continue", "convert", "create", "cross",
	"current_date", "current_time", "current_timestamp", "current_user",
	"cursor", "database", "databases", "decimal", "declare", "default",
	"delete", "desc", "describe", "distinct", "div", "double", "drop",
	"else", "exists", "explain", "false", "fetch", "for", "force", "foreign",
	"from", "fulltext", "group", "having", "if", "ignore", "in", "index",
	"inner", "insert", "int", "integer", "interval", "into", "is", "join",
	"key", "keys", "kill", "leading", "left", "like", "limit", "lock",
	"long", "match", "natural", "not", "null", "on", "optimize", "option",
	"or", "order", "outer", "primary", "procedure", "range", "read", "real",
	"references", "regexp", "rename", "repeat", "replace", "restrict",
	"return", "right", "select", "set", "show", "smallint", "table", "then",
	"to", "trailing", "trigger", "true", "union", "unique", "unsigned",
	"update", "usage", "use", "using", "values", "varchar", "when", "where",
	"while", "with", "write",
)

var sqliteReservedWords = NewWordSet(
	"abort", "action", "add", "after", "all", "alter", "and", "as", "asc",
	"attach", "autoincrement", "before", "begin", "between", "by", "cascade",
	"case", "cast", "check", "collate", "column", "commit", "conflict",
	"constraint", "create", "cross", "current_date", "current_time",
	"current_timestamp", "default", "deferrable", "deferred", "delete",
	"desc", "detach", "distinct", "drop", "each", "else", "end", "escape",
	"except", "exclusive", "exists", "explain", "fail", "for", "foreign",
	"from", "full", "glob", "group", "having", "if", "ignore", "immediate",
	"in", "index", "indexed", "initially", "inner", "insert", "instead",
	"intersect", "into", "is", "isnull", "join", "key", "left", "like",
	"limit", "match", "natural", "no", "not", "notnull", "null", "of",
	"offset", "on", "or", "order", "outer", "plan", "pragma", "primary",
	"query", "raise", "recursive", "references", "regexp", "reindex",
	"release", "rename", "replace", "restrict", "right", "rollback", "row",
	"savepoint", "select", "set", "table", "temp", "temporary", "then",
	"to", "transaction", "trigger", "union", "unique", "update", "using",
	"vacuum", "values", "view", "virtual", "when", "where", "with",
	"without",
)
