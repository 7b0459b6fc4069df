package bootstrap

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/GoSim-25-26J-441/project-submissions/internal/api/http"
	"github.com/GoSim-25-26J-441/project-submissions/internal/api/http/middleware"
	subhttp "github.com/GoSim-25-26J-441/project-submissions/internal/submissions/http"
	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/repository"
	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/service"
	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/uploads"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Store          repository.Store
	Uploader       *uploads.Uploader
	PublicDir      string
	MaxUploadBytes int64
	RateLimitRPS   float64
	RateLimitBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	submitChain := []gin.HandlerFunc{middleware.BodyLimit(dep.MaxUploadBytes)}
	if dep.RateLimitRPS > 0 {
		submitChain = append(submitChain, middleware.NewRateLimiter(dep.RateLimitRPS, dep.RateLimitBurst).Middleware())
	}

	svc := service.NewSubmissionService(dep.Store, dep.Uploader)
	subhttp.New(svc).Register(r.Group("/api/projects"), submitChain...)

	r.Static(uploads.URLPrefix, dep.Uploader.Dir())

	if dep.PublicDir != "" {
		r.NoRoute(frontend(dep.PublicDir))
	}

	return r
}

// frontend serves the static bundle for any GET/HEAD that matched no route.
func frontend(dir string) gin.HandlerFunc {
	files := http.FileServer(gin.Dir(dir, false))
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		clean := path.Clean("/" + c.Request.URL.Path)
		target := filepath.Join(dir, filepath.FromSlash(clean))
		info, err := os.Stat(target)
		if err == nil && info.IsDir() {
			// directories are only served through their index.html
			_, err = os.Stat(filepath.Join(target, "index.html"))
		}
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}
