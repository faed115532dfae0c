package main

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const pageStyles = `
* { font-family: 'Inter', sans-serif; }
@keyframes fadeIn { from { opacity: 0; } to { opacity: 1; } }
@keyframes slideUp { from { opacity: 0; transform: translateY(20px); } to { opacity: 1; transform: translateY(0); } }
@keyframes slideInLeft { from { opacity: 0; transform: translateX(-30px); } to { opacity: 1; transform: translateX(0); } }
@keyframes slideInRight { from { opacity: 0; transform: translateX(30px); } to { opacity: 1; transform: translateX(0); } }
.animate-fadeIn { animation: fadeIn 0.3s ease-out; }
.animate-slideUp { animation: slideUp 0.4s ease-out; }
.animate-slideInLeft { animation: slideInLeft 0.6s ease-out; }
.animate-slideInRight { animation: slideInRight 0.6s ease-out; animation-delay: 0.2s; opacity: 0; animation-fill-mode: forwards; }
`

// Page wraps body in the site document: fonts, Tailwind, htmx and iconify
// come from CDNs.
func Page(title string, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				h.Link(h.Rel("preconnect"), h.Href("https://fonts.googleapis.com")),
				h.Link(h.Rel("stylesheet"), h.Href("https://fonts.googleapis.com/css2?family=Playfair+Display:wght@700;900&family=Inter:wght@400;500;600;700&display=swap")),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4"), h.Defer()),
				h.Script(h.Src("https://code.iconify.design/3/3.1.1/iconify.min.js"), h.Defer()),
				h.StyleEl(g.Raw(pageStyles)),
			),
			h.Body(g.Group(body)),
		),
	)
}

// PortfolioPage is the full document for a fresh page load, which always
// starts at home.
func PortfolioPage() g.Node {
	return Page(Profile.Name,
		h.Div(h.Class("min-h-screen w-full bg-gradient-to-br from-slate-50 via-emerald-50/30 to-teal-50/30 dark:from-slate-900 dark:via-slate-900 dark:to-slate-800 overflow-x-hidden"),
			h.Div(h.Class("fixed inset-0 w-full h-full overflow-hidden pointer-events-none"),
				h.Div(h.Class("absolute top-0 right-0 w-[600px] h-[600px] bg-emerald-300/20 dark:bg-emerald-500/10 rounded-full blur-3xl animate-pulse")),
				h.Div(h.Class("absolute bottom-0 left-0 w-[600px] h-[600px] bg-teal-300/20 dark:bg-teal-500/10 rounded-full blur-3xl animate-pulse"),
					h.Style("animation-delay: 1s"),
				),
			),
			h.Div(h.ID(rootID), Root(NewViewController().Active())),
		),
	)
}

// PrivacyPage describes what the visitor analytics keep.
func PrivacyPage(cfg Config) g.Node {
	retention := "while the server is configured to keep them"
	if cfg.VisitorRetention > 0 {
		retention = "for " + humanDays(cfg.VisitorRetention) + " and then deleted"
	}
	return Page("Privacy Policy",
		h.Main(h.Class("container mx-auto max-w-2xl p-8 space-y-4 text-slate-700"),
			h.H1(h.Class("text-3xl font-bold text-slate-900"), h.Style(displayFont), g.Text("Privacy Policy")),
			g.If(!cfg.AnalyticsEnabled,
				h.P(g.Text("This site does not record any visitor information.")),
			),
			g.If(cfg.AnalyticsEnabled, g.Group([]g.Node{
				h.P(g.Text("When you load this page the server records a salted hash of your IP address, your browser's user agent, the path you requested and the time of the visit.")),
				h.P(g.Text("Opening and closing the contact or project panels is never recorded.")),
				h.P(g.Text("Records are kept "+retention+".")),
				h.P(g.Text("If your browser sends the Do Not Track header nothing is recorded.")),
			})),
			h.P(h.A(h.Href("/"), h.Class("text-emerald-600 hover:underline"), g.Text("Back to the site"))),
		),
	)
}
