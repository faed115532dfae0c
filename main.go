package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
)

func main() {
	tui := flag.Bool("tui", false, "browse the portfolio in the terminal instead of serving it")
	flag.Parse()

	if *tui {
		if err := runTUI(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	var store *VisitorStore
	if cfg.AnalyticsEnabled {
		store, err = OpenVisitorStore(cfg.DBPath, cfg.HashSalt)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()

		if n, err := store.Cleanup(cfg.VisitorRetention); err != nil {
			log.Printf("Error cleaning up old visitor data: %v", err)
		} else if n > 0 {
			log.Printf("Privacy cleanup: Removed %d visitor records older than %s", n, cfg.VisitorRetention)
		}
		log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
	}

	r := newRouter(cfg, store)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// newRouter wires the site. A nil store disables visitor tracking and the
// admin pages.
func newRouter(cfg Config, store *VisitorStore) *gin.Engine {
	r := gin.Default()

	if store != nil {
		r.Use(visitorTrackingMiddleware(store))
	}

	r.Static("/images", cfg.ImagesDir)
	r.Static("/static", cfg.StaticDir)

	// Home page route; a fresh load always starts at home.
	r.GET("/", func(c *gin.Context) {
		render(c, http.StatusOK, PortfolioPage())
	})

	// HTMX view transition - returns the root child for the next view
	r.POST("/view", handleTransition)

	r.GET("/privacy", func(c *gin.Context) {
		render(c, http.StatusOK, PrivacyPage(cfg))
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if store != nil {
		admin, err := NewAdmin(cfg, store)
		if err != nil {
			log.Printf("Admin pages disabled: %v", err)
		} else {
			admin.Routes(r)
		}
	}
	return r
}

type transitionRequest struct {
	From   string `form:"from" binding:"required"`
	Action string `form:"action" binding:"required"`
}

func handleTransition(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "missing view or action")
		return
	}
	from, err := ParseActiveView(req.From)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	action, err := ParseAction(req.Action)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	render(c, http.StatusOK, Root(Transition(from, action)))
}

func render(c *gin.Context, status int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		log.Printf("Error rendering %s: %v", c.Request.URL.Path, err)
	}
}
