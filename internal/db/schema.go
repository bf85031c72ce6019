package db

const createSearchesTable = `
CREATE TABLE IF NOT EXISTS searches (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    mode TEXT NOT NULL,
    query TEXT NOT NULL,
    result_count INTEGER NOT NULL,
    executed_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_searches_mode ON searches(mode);
`

const insertSearch = `
INSERT INTO searches (mode, query, result_count) VALUES (?, ?, ?)
`

const selectRecentSearches = `
SELECT id, mode, query, result_count, executed_at FROM searches
ORDER BY executed_at DESC, id DESC
LIMIT ?
`

const createDownloadsTable = `
CREATE TABLE IF NOT EXISTS downloads (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    cid TEXT NOT NULL,
    format TEXT NOT NULL,
    filename TEXT NOT NULL,
    bytes INTEGER NOT NULL,
    saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_downloads_cid ON downloads(cid);
`

const insertDownload = `
INSERT INTO downloads (cid, format, filename, bytes) VALUES (?, ?, ?, ?)
`

const selectDownloads = `
SELECT id, cid, format, filename, bytes, saved_at FROM downloads
ORDER BY saved_at DESC, id DESC
LIMIT ?
`
