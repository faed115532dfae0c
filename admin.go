// admin.go - privacy-conscious admin views over the visitor store
package main

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const adminCookie = "admin_token"

type Admin struct {
	store    *VisitorStore
	username string
	password string
	token    string
	cfg      Config
}

// ErrAdminPasswordRequired is returned in release mode when no admin password
// is configured.
var ErrAdminPasswordRequired = errors.New("ADMIN_PASSWORD must be set in release mode")

func NewAdmin(cfg Config, store *VisitorStore) (*Admin, error) {
	a := &Admin{
		store:    store,
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
		token:    generateToken(),
		cfg:      cfg,
	}

	if a.password == "" {
		if gin.Mode() == gin.ReleaseMode {
			return nil, ErrAdminPasswordRequired
		}
		a.password = "admin123"
		log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
	}

	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", a.token)
	}
	return a, nil
}

// Middleware to check admin authentication
func (a *Admin) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *Admin) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

// Setup all admin routes
func (a *Admin) Routes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		render(c, http.StatusOK, adminLoginPage(""))
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if a.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", false, true)
			log.Printf("Admin login successful from %s", a.store.HashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		log.Printf("Failed admin login attempt from %s", a.store.HashIP(c.ClientIP()))
		render(c, http.StatusUnauthorized, adminLoginPage("Invalid credentials"))
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	group := r.Group("/admin")
	group.Use(a.authMiddleware())

	group.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.store.Stats()
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			render(c, http.StatusInternalServerError, adminErrorPage("Failed to load statistics"))
			return
		}
		render(c, http.StatusOK, adminDashboardPage(stats))
	})

	group.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.store.Stats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	group.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.store.Stats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=visitor-stats.json")
		log.Printf("Admin stats exported by %s", a.store.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	group.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := a.store.Cleanup(a.cfg.VisitorRetention)
		if err != nil {
			log.Printf("Error cleaning up visitor data: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": n})
	})
}

func adminLoginPage(errMsg string) g.Node {
	return Page("Admin Login",
		h.Main(h.Class("min-h-screen flex items-center justify-center bg-slate-100 p-4"),
			Card("max-w-sm w-full",
				h.H1(h.Class("text-2xl font-bold mb-6"), g.Text("Admin Login")),
				g.If(errMsg != "", h.P(h.Class("text-red-600 mb-4"), g.Text(errMsg))),
				h.Form(h.Method("post"), h.Action("/admin/login"), h.Class("space-y-4"),
					h.Input(h.Type("text"), h.Name("username"), h.Placeholder("Username"), h.Class("w-full border rounded-lg p-2")),
					h.Input(h.Type("password"), h.Name("password"), h.Placeholder("Password"), h.Class("w-full border rounded-lg p-2")),
					h.Button(h.Type("submit"), h.Class(joinClasses(buttonBaseClass, variantClass(VariantPrimary))), g.Text("Sign in")),
				),
			),
		),
	)
}

func adminErrorPage(msg string) g.Node {
	return Page("Admin Error",
		h.Main(h.Class("container mx-auto p-8"),
			h.P(h.Class("text-red-600"), g.Text(msg)),
			h.A(h.Href("/admin/dashboard"), g.Text("Retry")),
		),
	)
}

func adminDashboardPage(stats *VisitorStats) g.Node {
	return Page("Admin Dashboard",
		h.Main(h.Class("container mx-auto p-8 space-y-8"),
			h.Div(h.Class("flex justify-between items-center"),
				h.H1(h.Class("text-3xl font-bold"), g.Text("Visitors")),
				h.A(h.Href("/admin/logout"), h.Class(joinClasses(buttonBaseClass, variantClass(VariantGhost))), g.Text("Log out")),
			),
			h.Div(h.Class("grid grid-cols-2 md:grid-cols-4 gap-4"),
				statCard("Total", stats.TotalVisitors),
				statCard("Unique", stats.UniqueVisitors),
				statCard("Today", stats.VisitorsToday),
				statCard("This week", stats.VisitorsThisWeek),
			),
			Card("",
				h.H2(h.Class("text-xl font-semibold mb-4"), g.Text("Top paths")),
				h.Table(h.Class("w-full text-left"),
					h.THead(h.Tr(h.Th(g.Text("Path")), h.Th(g.Text("Visits")))),
					h.TBody(g.Map(stats.TopPaths, func(p PathStat) g.Node {
						return h.Tr(h.Td(g.Text(p.Path)), h.Td(g.Text(strconv.FormatInt(p.Visits, 10))))
					})),
				),
			),
			Card("",
				h.H2(h.Class("text-xl font-semibold mb-4"), g.Text("Recent visitors")),
				h.Table(h.Class("w-full text-left text-sm"),
					h.THead(h.Tr(h.Th(g.Text("Visitor")), h.Th(g.Text("Path")), h.Th(g.Text("When")), h.Th(g.Text("User agent")))),
					h.TBody(g.Map(stats.RecentVisitors, func(v VisitorMetric) g.Node {
						return h.Tr(
							h.Td(h.Class("font-mono"), g.Text(v.HashedIP)),
							h.Td(g.Text(v.Path)),
							h.Td(g.Text(v.Timestamp.Format(timestampLayout))),
							h.Td(g.Text(v.UserAgent)),
						)
					})),
				),
			),
		),
	)
}

func statCard(label string, n int64) g.Node {
	return Card("p-6",
		h.P(h.Class("text-sm text-slate-500"), g.Text(label)),
		h.P(h.Class("text-3xl font-bold"), g.Text(fmt.Sprint(n))),
	)
}
