package main

import (
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"
)

// Timestamps are stored as fixed-width UTC text so range filters compare
// lexically.
const timestampLayout = "2006-01-02 15:04:05"

// Privacy-conscious visitor record
type VisitorMetric struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"` // Hashed instead of raw IP for privacy
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type PathStat struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

type VisitorStats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	TopPaths         []PathStat      `json:"top_paths"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

// VisitorStore keeps page loads in sqlite with hashed IP addresses.
type VisitorStore struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

func OpenVisitorStore(path, salt string) (*VisitorStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open visitor db: %w", err)
	}
	// sqlite serializes writers; one connection avoids SQLITE_BUSY from the
	// tracking goroutines.
	db.SetMaxOpenConns(1)

	if salt == "" {
		salt = generateToken()
	}
	s := &VisitorStore{db: db, salt: salt, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *VisitorStore) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT NOT NULL DEFAULT '',
		path TEXT NOT NULL,
		visited_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create visitors table: %w", err)
	}
	_, err = s.db.Exec(`CREATE INDEX IF NOT EXISTS visitors_visited_at ON visitors (visited_at)`)
	if err != nil {
		return fmt.Errorf("create visitors index: %w", err)
	}
	return nil
}

func (s *VisitorStore) Close() error {
	return s.db.Close()
}

// HashIP is stable per IP for the lifetime of the salt.
func (s *VisitorStore) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (s *VisitorStore) Record(ip, userAgent, path string) error {
	_, err := s.db.Exec(
		`INSERT INTO visitors (hashed_ip, user_agent, path, visited_at) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("record visitor: %w", err)
	}
	return nil
}

// Cleanup deletes visits older than retention and reports how many went.
func (s *VisitorStore) Cleanup(retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}
	cutoff := s.now().UTC().Add(-retention).Format(timestampLayout)
	res, err := s.db.Exec(`DELETE FROM visitors WHERE visited_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (s *VisitorStore) Stats() (*VisitorStats, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Format(timestampLayout)
	week := now.Add(-7 * 24 * time.Hour).Format(timestampLayout)

	stats := &VisitorStats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{today}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{week}},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("count visitors: %w", err)
		}
	}

	var err error
	if stats.TopPaths, err = s.topPaths(10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.Recent(50); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *VisitorStore) topPaths(limit int) ([]PathStat, error) {
	rows, err := s.db.Query(`
		SELECT path, COUNT(*) AS visits
		FROM visitors
		GROUP BY path
		ORDER BY visits DESC, path ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}
	defer rows.Close()

	var out []PathStat
	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Visits); err != nil {
			return nil, fmt.Errorf("scan path stat: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Recent returns the newest visits first.
func (s *VisitorStore) Recent(limit int) ([]VisitorMetric, error) {
	rows, err := s.db.Query(`
		SELECT id, hashed_ip, user_agent, path, visited_at
		FROM visitors
		ORDER BY visited_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visitors: %w", err)
	}
	defer rows.Close()

	var out []VisitorMetric
	for rows.Next() {
		var (
			v  VisitorMetric
			ts string
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		if v.Timestamp, err = time.Parse(timestampLayout, ts); err != nil {
			return nil, fmt.Errorf("parse visit time %q: %w", ts, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// shouldTrack reports whether a request is a page load worth recording.
// View transitions, assets, admin and health checks are skipped, and DNT is
// honored.
func shouldTrack(path, dnt string) bool {
	if dnt == "1" {
		return false
	}
	for _, prefix := range []string{"/static/", "/images/", "/admin/", "/favicon", "/privacy", "/healthz", "/view"} {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// Privacy-conscious visitor tracking middleware
func visitorTrackingMiddleware(store *VisitorStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != "GET" || !shouldTrack(path, c.GetHeader("DNT")) {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		c.Next()

		// Only pages that were actually served count as visits.
		if status := c.Writer.Status(); status < 200 || status > 299 {
			return
		}
		go func() {
			if err := store.Record(ip, ua, path); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
	}
}

func generateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal("Failed to generate token:", err)
	}
	return hex.EncodeToString(b)
}

func humanDays(d time.Duration) string {
	days := int(d.Hours() / 24)
	if days == 1 {
		return "1 day"
	}
	return strconv.Itoa(days) + " days"
}
