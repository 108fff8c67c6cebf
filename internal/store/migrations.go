package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1. Later
// migrations may only add to the schema.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tabs (
	name TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS assignments (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	tab_name TEXT NOT NULL REFERENCES tabs(name) ON UPDATE CASCADE ON DELETE CASCADE,
	title    TEXT NOT NULL,
	due_date TEXT NOT NULL,
	status   TEXT NOT NULL DEFAULT 'Pending' CHECK(status IN ('Pending', 'Completed'))
);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
ALTER TABLE assignments ADD COLUMN notes TEXT NOT NULL DEFAULT '';

INSERT INTO schema_version (version) VALUES (2);
`,
	},
	{
		version: 3,
		sql: `
CREATE INDEX IF NOT EXISTS idx_assignments_tab_name ON assignments(tab_name);
CREATE INDEX IF NOT EXISTS idx_assignments_status_due ON assignments(status, due_date);

INSERT INTO schema_version (version) VALUES (3);
`,
	},
}
