package store

// schemaVersion is the current schema version for this build.
const schemaVersion = 1

var schemaDDL = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);

CREATE TABLE IF NOT EXISTS runs (
	id            TEXT PRIMARY KEY,
	started_at    TEXT NOT NULL,
	finished_at   TEXT NOT NULL,
	scenarios_dir TEXT NOT NULL,
	backend       TEXT NOT NULL,
	total         INTEGER NOT NULL,
	evaluated     INTEGER NOT NULL,
	correct       INTEGER NOT NULL,
	accuracy      REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id          TEXT NOT NULL,
	scenario_id     TEXT NOT NULL,
	scenario_type   TEXT,
	category        TEXT NOT NULL,
	description     TEXT,
	predicted       TEXT,
	expected        TEXT,
	evaluation_type TEXT NOT NULL,
	alignment_match INTEGER NOT NULL,
	file_path       TEXT,
	FOREIGN KEY (run_id) REFERENCES runs(id)
);

CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
`
