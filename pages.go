package main

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	rootID           = "root"
	heroID           = "hero"
	contactOverlayID = "contact-overlay"
	projectOverlayID = "project-overlay"
)

const displayFont = "font-family: 'Playfair Display', serif"

// Root renders the single presentation for v.
func Root(v ActiveView) g.Node {
	switch v {
	case ViewContact:
		return ContactOverlay(activate(ViewContact, ActionClose))
	case ViewProject:
		return ProjectOverlay(activate(ViewProject, ActionClose))
	default:
		return HeroView(activate(ViewHome, ActionOpenContact), activate(ViewHome, ActionOpenProject))
	}
}

// HeroView is the base page: the header with the contact control and the
// hero content with the project control.
func HeroView(onContact, onProject g.Node) g.Node {
	return h.Div(h.ID(heroID),
		h.Header(h.Class("relative z-10 p-6 md:p-8"),
			h.Nav(h.Class("flex justify-end gap-3"),
				Button(ButtonProps{OnClick: onContact, Variant: VariantSecondary, Icon: IconMail}, g.Text("Contact Me")),
			),
		),
		h.Main(h.Class("relative z-10 container mx-auto px-6 md:px-12 lg:px-20 py-12 md:py-20"),
			h.Div(h.Class("grid lg:grid-cols-2 gap-12 lg:gap-24 xl:gap-32 items-center max-w-[1600px] mx-auto"),
				h.Div(h.Class("order-2 lg:order-1 space-y-8 animate-slideInLeft lg:pl-8 xl:pl-16"),
					h.Div(
						h.H1(h.Class("text-5xl md:text-6xl lg:text-7xl font-bold text-slate-900 dark:text-white mb-4 leading-tight"),
							h.Style(displayFont),
							g.Text(Profile.Title),
						),
						h.H2(h.Class("text-2xl md:text-3xl text-emerald-600 dark:text-emerald-400 font-semibold mb-6"),
							g.Text(Profile.Greeting),
						),
						h.P(h.Class("text-lg md:text-xl text-slate-600 dark:text-slate-300 leading-relaxed"),
							g.Text(Profile.About),
						),
					),
					Button(ButtonProps{OnClick: onProject, Icon: IconArrowRight, Class: "text-lg"}, g.Text("My Project")),
				),
				profilePhoto(Profile.Photo),
			),
		),
	)
}

func profilePhoto(photo Asset) g.Node {
	return h.Div(h.Class("order-1 lg:order-2 flex justify-center lg:justify-start animate-slideInRight w-full lg:pr-8 xl:pr-16"),
		h.Div(h.Class("relative group max-w-full"),
			h.Div(h.Class("absolute inset-0 bg-gradient-to-br from-emerald-400 to-teal-400 rounded-3xl blur-xl opacity-50 group-hover:opacity-75 transition-opacity")),
			h.Div(h.Class("relative bg-gradient-to-br from-emerald-100 to-teal-100 dark:from-emerald-900/30 dark:to-teal-900/30 rounded-3xl p-4 shadow-2xl max-w-full"),
				h.Div(h.Class("w-64 h-64 sm:w-72 sm:h-72 md:w-80 md:h-80 lg:w-[450px] lg:h-[450px] max-w-full bg-gradient-to-br from-slate-200 to-slate-300 dark:from-slate-700 dark:to-slate-600 rounded-2xl flex items-center justify-center overflow-hidden"),
					h.Img(h.Src(photo.URL()), h.Alt(photo.Alt), h.Class("w-full h-full object-cover rounded-2xl")),
				),
			),
		),
	)
}

func closeButton(onClose g.Node) g.Node {
	return h.Button(
		h.Type("button"),
		h.Class("absolute top-6 right-6 text-slate-400 hover:text-slate-600 dark:hover:text-slate-200 transition-colors z-10"),
		h.Aria("label", "Close"),
		onClose,
		iconNode(IconClose, "w-6 h-6"),
	)
}

func ContactOverlay(onClose g.Node) g.Node {
	return h.Div(h.ID(contactOverlayID),
		h.Class("fixed inset-0 bg-black/60 backdrop-blur-sm z-50 flex items-center justify-center p-4 animate-fadeIn"),
		Card("max-w-md w-full relative animate-slideUp",
			closeButton(onClose),
			h.H2(h.Class("text-3xl font-bold text-slate-900 dark:text-white mb-6"), h.Style(displayFont),
				g.Text(Contact.Heading),
			),
			h.Div(h.Class("space-y-6"),
				contactRow(IconPhone, "emerald", "Phone", Contact.Phone, ""),
				contactRow(IconMail, "teal", "Email", Contact.Email, "break-all"),
			),
		),
	)
}

func contactRow(icon Icon, tone, label, value, valueClass string) g.Node {
	return h.Div(h.Class("flex items-start gap-4 group cursor-pointer hover:translate-x-2 transition-transform"),
		h.Div(h.Class(fmt.Sprintf("bg-%[1]s-100 dark:bg-%[1]s-900/30 p-3 rounded-xl group-hover:scale-110 transition-transform", tone)),
			iconNode(icon, fmt.Sprintf("w-5 h-5 text-%[1]s-600 dark:text-%[1]s-400", tone)),
		),
		h.Div(
			h.P(h.Class("text-sm text-slate-500 dark:text-slate-400 font-medium"), g.Text(label)),
			h.P(h.Class(joinClasses("text-lg text-slate-900 dark:text-white font-semibold", valueClass)), g.Text(value)),
		),
	)
}

func ProjectOverlay(onClose g.Node) g.Node {
	p := KwarTrack
	return h.Div(h.ID(projectOverlayID),
		h.Class("fixed inset-0 bg-black/60 backdrop-blur-sm z-50 overflow-y-auto p-4 animate-fadeIn"),
		h.Div(h.Class("min-h-screen flex items-center justify-center py-8"),
			Card("max-w-4xl w-full relative animate-slideUp",
				closeButton(onClose),
				h.H2(h.Class("text-4xl font-bold text-slate-900 dark:text-white mb-4"), h.Style(displayFont),
					g.Text(p.Title),
				),
				h.P(h.Class("text-emerald-600 dark:text-emerald-400 font-semibold mb-8"), g.Text(p.Subtitle)),
				h.Div(h.Class("grid gap-6 mb-8"), screenshots(p)),
				h.Div(h.Class("prose prose-slate dark:prose-invert max-w-none"),
					h.H3(h.Class("text-xl font-bold text-slate-900 dark:text-white mb-4"), g.Text("About the Project")),
					h.P(h.Class("text-slate-600 dark:text-slate-300 leading-relaxed text-lg"), g.Text(p.Description)),
				),
				h.Div(h.Class("mt-8 flex flex-wrap gap-3"),
					g.Map(p.Tags, func(t ProjectTag) g.Node {
						return h.Span(
							h.Class(fmt.Sprintf("px-4 py-2 bg-%[1]s-100 dark:bg-%[1]s-900/30 text-%[1]s-700 dark:text-%[1]s-300 rounded-full text-sm font-medium", t.Tone)),
							g.Text(t.Label),
						)
					}),
				),
			),
		),
	)
}

func screenshots(p ProjectContent) g.Node {
	nodes := make([]g.Node, 0, len(p.Screenshots))
	for i, shot := range p.Screenshots {
		alt := shot.Alt
		if alt == "" {
			alt = fmt.Sprintf("%s Screenshot %d", p.Title, i+1)
		}
		nodes = append(nodes, h.Img(
			h.Src(shot.URL()),
			h.Alt(alt),
			h.Class("rounded-2xl shadow-xl border border-slate-200 dark:border-slate-700 w-full object-cover"),
		))
	}
	return g.Group(nodes)
}
