package main

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ButtonVariant is the visual treatment of a Button. All variants render the
// same structure.
type ButtonVariant string

const (
	VariantPrimary   ButtonVariant = "primary"
	VariantSecondary ButtonVariant = "secondary"
	VariantGhost     ButtonVariant = "ghost"
)

const buttonBaseClass = "px-6 py-3 rounded-full font-medium transition-all duration-300 flex items-center gap-2 group"

var buttonVariants = map[ButtonVariant]string{
	VariantPrimary:   "bg-gradient-to-r from-emerald-600 to-teal-600 text-white hover:shadow-xl hover:shadow-emerald-500/30 hover:scale-105",
	VariantSecondary: "bg-white/10 backdrop-blur-sm text-slate-900 dark:text-white border border-slate-200 dark:border-white/20 hover:bg-white/20 hover:border-slate-300",
	VariantGhost:     "text-slate-700 dark:text-slate-300 hover:text-emerald-600 dark:hover:text-emerald-400",
}

// variantClass falls back to primary for the zero value and unknown names.
func variantClass(v ButtonVariant) string {
	if c, ok := buttonVariants[v]; ok {
		return c
	}
	return buttonVariants[VariantPrimary]
}

// Icon is a lucide icon name rendered through iconify.
type Icon string

const (
	IconMail       Icon = "mail"
	IconPhone      Icon = "phone"
	IconArrowRight Icon = "arrow-right"
	IconClose      Icon = "x"
)

func iconNode(name Icon, class string) g.Node {
	return h.Span(
		h.Class(joinClasses("iconify", class)),
		h.Data("icon", "lucide:"+string(name)),
		h.Aria("hidden", "true"),
	)
}

type ButtonProps struct {
	// OnClick wires the control to a view transition. Nil renders an inert
	// button.
	OnClick g.Node
	Variant ButtonVariant
	Icon    Icon
	Class   string
}

func Button(p ButtonProps, children ...g.Node) g.Node {
	return h.Button(
		h.Type("button"),
		h.Class(joinClasses(buttonBaseClass, variantClass(p.Variant), p.Class)),
		p.OnClick,
		g.Group(children),
		g.If(p.Icon != "", iconNode(p.Icon, "w-4 h-4 group-hover:translate-x-1 transition-transform")),
	)
}

const cardBaseClass = "bg-white/80 dark:bg-slate-800/80 backdrop-blur-xl rounded-3xl p-8 shadow-2xl border border-slate-200/50 dark:border-slate-700/50"

func Card(class string, children ...g.Node) g.Node {
	return h.Div(
		h.Class(joinClasses(cardBaseClass, class)),
		g.Group(children),
	)
}

// activate posts the transition (from, a) and swaps the response into #root.
func activate(from ActiveView, a Action) g.Node {
	return g.Group([]g.Node{
		g.Attr("hx-post", "/view"),
		g.Attr("hx-target", "#"+rootID),
		g.Attr("hx-swap", "innerHTML"),
		g.Attr("hx-vals", fmt.Sprintf(`{"from":%q,"action":%q}`, from.String(), a.String())),
	})
}

func joinClasses(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
