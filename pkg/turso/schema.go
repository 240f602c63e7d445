package turso

// Remote schema. Creation is idempotent; init can run before every sync.
var schemaStatements = []Stmt{
	{SQL: `CREATE TABLE IF NOT EXISTS sakima_shows (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		date TEXT,
		image TEXT,
		rsvp INTEGER,
		tags TEXT,
		updated_at TEXT DEFAULT (datetime('now'))
	)`},
	{SQL: `CREATE UNIQUE INDEX IF NOT EXISTS idx_sakima_shows_title_date
		ON sakima_shows(title, date)`},
	{SQL: `CREATE TABLE IF NOT EXISTS sakima_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		item_id TEXT,
		title TEXT NOT NULL,
		price TEXT,
		bin_price TEXT,
		buying_options TEXT,
		bids INTEGER DEFAULT 0,
		end_date TEXT,
		image TEXT,
		url TEXT,
		platform TEXT DEFAULT 'eBay',
		updated_at TEXT DEFAULT (datetime('now'))
	)`},
	{SQL: `CREATE UNIQUE INDEX IF NOT EXISTS idx_sakima_items_url
		ON sakima_items(url)`},
}
