package routes

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

var apiPrefixes = []string{"/auth", "/atividades", "/usuarios"}

// RegisterStaticRoutes serves the browser client from files for every path
// no API route matched.
func RegisterStaticRoutes(router *gin.Engine, files fs.FS) {
	fileServer := http.FileServer(http.FS(files))

	router.NoRoute(func(c *gin.Context) {
		urlPath := c.Request.URL.Path
		for _, prefix := range apiPrefixes {
			if urlPath == prefix || strings.HasPrefix(urlPath, prefix+"/") {
				c.JSON(http.StatusNotFound, gin.H{"error": "Rota não encontrada."})
				return
			}
		}

		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rota não encontrada."})
			return
		}

		name := strings.Trim(path.Clean(urlPath), "/")
		if name == "" {
			name = "."
		}
		info, err := fs.Stat(files, name)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Arquivo não encontrado."})
			return
		}
		// directories are only served through their index.html
		if info.IsDir() {
			if _, err := fs.Stat(files, path.Join(name, "index.html")); err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Arquivo não encontrado."})
				return
			}
		}

		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}
