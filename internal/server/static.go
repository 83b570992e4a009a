package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// mountStatic wires the built dashboard bundle under the web root. The
// server still works without one; it just answers API requests only.
func (s *Server) mountStatic() {
	if s.staticDir == "" {
		s.logger.Info("no dashboard bundle configured, serving API only")
		return
	}

	index := filepath.Join(s.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		s.logger.Warn("dashboard bundle unusable, serving API only",
			"dir", s.staticDir, "error", err)
		return
	}

	s.engine.GET("/", func(c *gin.Context) {
		c.File(index)
	})

	// Client-side routes (e.g. /boards/3, /finances) deep-link into the
	// single-page dashboard, so every unknown non-API path gets the shell.
	s.engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
			return
		}
		c.File(index)
	})

	if assets := filepath.Join(s.staticDir, "assets"); dirExists(assets) {
		s.engine.StaticFS("/assets", gin.Dir(assets, false))
	}
	for _, name := range []string{"favicon.ico", "manifest.json"} {
		if p := filepath.Join(s.staticDir, name); fileExists(p) {
			s.engine.StaticFile("/"+name, p)
		}
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
