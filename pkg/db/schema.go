package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA temp_store = MEMORY;

-- Scraped pages: append-only record log, one row per scraped URL.
-- Timestamps are assigned server-side and are non-decreasing in insert order.
CREATE TABLE IF NOT EXISTS scraped_data (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL,
    title TEXT,
    content TEXT,
    metadata TEXT,
    timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    status TEXT
);

CREATE INDEX IF NOT EXISTS idx_scraped_data_status ON scraped_data(status);
CREATE INDEX IF NOT EXISTS idx_scraped_data_timestamp ON scraped_data(timestamp);

-- Session statistics: exactly one row per completed batch run.
CREATE TABLE IF NOT EXISTS scraping_stats (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT,
    total_pages INTEGER,
    successful INTEGER,
    failed INTEGER,
    duration REAL,
    timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_scraping_stats_session ON scraping_stats(session_id);
`
