package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aldrenb/aldren-dev/internal/assemble"
	"github.com/aldrenb/aldren-dev/internal/content"
	"github.com/aldrenb/aldren-dev/internal/reveal"
	"github.com/aldrenb/aldren-dev/internal/safeimg"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	store, err := content.Load(
		envOr("CONTENT_FILE", "content/content.json"),
		envOr("PROCESS_FILE", "content/process.json"),
	)
	if err != nil {
		logger.Fatal("content load failed", zap.Error(err))
	}
	idx := content.NewIndex(store.Projects, logger)
	logger.Info("content loaded",
		zap.Int("projects", len(store.Projects)),
		zap.Strings("slugs", idx.AllSlugs()))

	if err := initVisitorTracking(envOr("METRICS_DB", "metrics.db"), logger); err != nil {
		logger.Fatal("visitor tracking init failed", zap.Error(err))
	}

	images := safeimg.NewController(siteProber())

	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.Use(visitorTrackingMiddleware(logger))

	fx := reveal.Default()

	// Home page route
	r.GET("/", func(c *gin.Context) {
		page := assemble.Home(store)
		page.Hero.ShowPortrait = images.Resolve(c.Request.Context(), page.Hero.Portrait.Src) == safeimg.Loaded
		for i := range page.Work.Items {
			item := &page.Work.Items[i]
			if item.Image != nil {
				item.ShowImage = images.Resolve(c.Request.Context(), item.Image.Src) == safeimg.Loaded
			}
		}
		c.HTML(http.StatusOK, "index.html", gin.H{"page": page, "fx": fx})
	})

	// Systems & process page
	r.GET("/process", func(c *gin.Context) {
		c.HTML(http.StatusOK, "process.html", gin.H{"page": assemble.Process(store), "fx": fx})
	})

	// Project case studies, one per slug
	r.GET("/work/:slug", func(c *gin.Context) {
		page, err := assemble.Project(store, idx, c.Param("slug"))
		if err != nil {
			// Unknown slug is an expected outcome, not an error.
			notFound(c, store)
			return
		}
		if page.HeroImage != nil {
			page.ShowHeroImage = images.Resolve(c.Request.Context(), page.HeroImage.Src) == safeimg.Loaded
		}
		c.HTML(http.StatusOK, "project.html", gin.H{"page": page, "fx": fx})
	})

	// Full path enumeration, for pre-rendering and crawlers
	r.GET("/sitemap", func(c *gin.Context) {
		c.String(http.StatusOK, strings.Join(sitePaths(idx), "\n")+"\n")
	})

	// The client reports images that rendered but then failed to load, so
	// later renders of the same source go straight to the fallback card.
	r.POST("/image-error", func(c *gin.Context) {
		src := c.PostForm("src")
		images.ReportRenderError(src)
		logger.Info("image render error reported", zap.String("src", src))
		c.Status(http.StatusNoContent)
	})

	setupMetricsRoutes(r, logger)

	r.NoRoute(func(c *gin.Context) {
		notFound(c, store)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

// sitePaths enumerates every renderable page path.
func sitePaths(idx *content.Index) []string {
	paths := []string{"/", "/process"}
	for _, slug := range idx.AllSlugs() {
		paths = append(paths, "/work/"+slug)
	}
	return paths
}

func notFound(c *gin.Context, store *content.Store) {
	c.HTML(http.StatusNotFound, "notfound.html", gin.H{"page": assemble.NotFound(store)})
}

func newLogger() *zap.Logger {
	if gin.Mode() == gin.DebugMode {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// siteProber checks site-relative sources against the working directory and
// everything else over HTTP. Image bytes are never read either way.
func siteProber() safeimg.Prober {
	httpProber := safeimg.NewHTTPProber()
	return safeimg.ProberFunc(func(ctx context.Context, src string) error {
		if strings.HasPrefix(src, "/") {
			_, err := os.Stat(filepath.Join(".", filepath.Clean(src)))
			return err
		}
		return httpProber.Probe(ctx, src)
	})
}
