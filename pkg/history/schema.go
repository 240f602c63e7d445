package history

// schema defines the SQL statements to create the history tables.
const schema = `
-- Import runs table
-- One row per source file processed by an importer invocation
CREATE TABLE IF NOT EXISTS import_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    source TEXT NOT NULL,              -- 'ledger', 'earnings' or 'purchases'
    file TEXT NOT NULL,                -- source file name
    rows INTEGER NOT NULL,             -- data rows read
    imported INTEGER NOT NULL,         -- entries emitted
    skipped INTEGER NOT NULL,          -- rows dropped (bad date, zero amount)
    net_total TEXT NOT NULL,           -- signed net of imported amounts
    journal_file TEXT NOT NULL,        -- journal the entries were written to
    imported_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_import_runs_source
    ON import_runs(source);

CREATE INDEX IF NOT EXISTS idx_import_runs_date
    ON import_runs(imported_at);

-- Import metadata table
-- Key-value metadata about importer operations
CREATE TABLE IF NOT EXISTS import_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`
