// metrics.go - privacy-conscious page-view metrics
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

// PageView tracks one page render. IPs are hashed with a per-process salt,
// never stored raw.
type PageView struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type SiteStats struct {
	TotalViews     int64      `json:"total_views"`
	UniqueVisitors int64      `json:"unique_visitors"`
	ViewsToday     int64      `json:"views_today"`
	ViewsThisWeek  int64      `json:"views_this_week"`
	TopPaths       []PathStat `json:"top_paths"`
	RecentViews    []PageView `json:"recent_views"`
}

type PathStat struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

var db *sql.DB
var hashingSalt string

// initVisitorTracking opens the metrics database and prepares the schema.
// Old rows are swept in the background for retention compliance.
func initVisitorTracking(path string, logger *zap.Logger) error {
	var err error
	db, err = sql.Open("sqlite", path)
	if err != nil {
		return err
	}

	hashingSalt = generateSalt()

	createTable := `
	CREATE TABLE IF NOT EXISTS page_views (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createTable); err != nil {
		return err
	}

	go cleanupOldViews(logger)

	logger.Info("visitor tracking enabled with hashed IP addresses",
		zap.String("db", path))
	return nil
}

func generateSalt() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)
}

// hashIP hashes an address with the process salt, consistent per IP for
// the lifetime of the process.
func hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// visitorTrackingMiddleware records page renders. Static assets and probe
// endpoints are skipped, and the Do Not Track header is honored.
func visitorTrackingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/image-error" {
			c.Next()
			return
		}

		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		go trackPageView(c.ClientIP(), c.GetHeader("User-Agent"), path, logger)
		c.Next()
	}
}

func trackPageView(ip, userAgent, path string, logger *zap.Logger) {
	_, err := db.Exec(`
		INSERT INTO page_views (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashIP(ip), userAgent, path, time.Now())
	if err != nil {
		logger.Error("recording page view failed", zap.Error(err))
	}
}

// cleanupOldViews deletes rows older than twelve months.
func cleanupOldViews(logger *zap.Logger) {
	result, err := db.Exec(`
		DELETE FROM page_views
		WHERE timestamp < datetime('now', '-12 months')
	`)
	if err != nil {
		logger.Error("cleaning up old page views failed", zap.Error(err))
		return
	}
	if rows, _ := result.RowsAffected(); rows > 0 {
		logger.Info("retention cleanup removed old page views", zap.Int64("rows", rows))
	}
}

func getSiteStats() (*SiteStats, error) {
	stats := &SiteStats{}

	if err := db.QueryRow("SELECT COUNT(*) FROM page_views").Scan(&stats.TotalViews); err != nil {
		return nil, err
	}
	if err := db.QueryRow("SELECT COUNT(DISTINCT hashed_ip) FROM page_views").Scan(&stats.UniqueVisitors); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`
		SELECT COUNT(*) FROM page_views
		WHERE DATE(timestamp) = DATE('now')
	`).Scan(&stats.ViewsToday); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`
		SELECT COUNT(*) FROM page_views
		WHERE timestamp >= datetime('now', '-7 days')
	`).Scan(&stats.ViewsThisWeek); err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT path, COUNT(*) as views
		FROM page_views
		GROUP BY path
		ORDER BY views DESC
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Views); err != nil {
			continue
		}
		stats.TopPaths = append(stats.TopPaths, p)
	}

	rows, err = db.Query(`
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM page_views
		ORDER BY timestamp DESC
		LIMIT 50
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var v PageView
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			continue
		}
		stats.RecentViews = append(stats.RecentViews, v)
	}

	return stats, nil
}

// setupMetricsRoutes exposes the stats export. The endpoint is disabled
// unless METRICS_TOKEN is set; requests must carry the token as a bearer
// credential.
func setupMetricsRoutes(r *gin.Engine, logger *zap.Logger) {
	token := os.Getenv("METRICS_TOKEN")
	if token == "" {
		logger.Info("METRICS_TOKEN not set, stats endpoint disabled")
		return
	}

	r.GET("/admin/stats", func(c *gin.Context) {
		supplied := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		stats, err := getSiteStats()
		if err != nil {
			logger.Error("loading site stats failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})
}
