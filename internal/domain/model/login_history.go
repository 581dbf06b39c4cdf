//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import "time"

// LoginHistoryEntry captures a single successful sign-in. Entries are
// append-only: created once per sign-in, never updated, never deleted.
type LoginHistoryEntry struct {
	ID        string    `json:"id"         db:"id"`
	UserID    string    `json:"user_id"    db:"user_id"`
	IPAddress string    `json:"ip_address" db:"ip_address"`
	UserAgent string    `json:"user_agent" db:"user_agent"`
	LoginAt   time.Time `json:"login_at"   db:"login_at"`
}

// LoginHistoryPage is a newest-first page of history entries with the
// pagination envelope returned by the API.
type LoginHistoryPage struct {
	Entries []*LoginHistoryEntry `json:"history"`
	Page    int                  `json:"page"`
	Limit   int                  `json:"limit"`
	Total   int64                `json:"total"`
	Pages   int64                `json:"pages"`
}
