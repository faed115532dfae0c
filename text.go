package main

// Asset is a static image served from the images directory.
type Asset struct {
	Name string
	Alt  string
}

// URL is the path the browser loads the asset from.
func (a Asset) URL() string {
	return "/images/" + a.Name
}

type ProfileContent struct {
	Name     string
	Title    string
	Greeting string
	About    string
	Photo    Asset
}

type ContactContent struct {
	Heading string
	Phone   string
	Email   string
}

type ProjectContent struct {
	Title       string
	Subtitle    string
	Description string
	Tags        []ProjectTag
	Screenshots []Asset
}

// ProjectTag is a pill label; Tone picks its color family.
type ProjectTag struct {
	Label string
	Tone  string
}

var (
	Profile = ProfileContent{
		Name:     "Dan Sabanal",
		Title:    "Welcome to my Site",
		Greeting: "Hi, I am Dan Sabanal, a Web Developer.",
		About:    "I am a focused and talented BS-CS student currently pursuing my bachelor degree from Ateneo de Davao University",
		Photo:    Asset{Name: "profile.jpg", Alt: "Dan Sabanal"},
	}

	Contact = ContactContent{
		Heading: "Get in Touch",
		Phone:   "09816223351",
		Email:   "dsabanal@gmail.com",
	}

	KwarTrack = ProjectContent{
		Title:    "KwarTrack",
		Subtitle: "Budget & Financial Tracking System",
		Description: `KwarTrack is a simple, user-friendly budget and financial tracking system that helps individuals and students monitor their income, expenses, and savings in real time through desktop. Many individuals, especially students and young professionals, struggle with managing their finances due to a lack of proper tools, discipline, and visibility into their spending habits.`,
		Tags: []ProjectTag{
			{Label: "Budget Tracking", Tone: "emerald"},
			{Label: "Financial Management", Tone: "teal"},
			{Label: "Desktop Application", Tone: "blue"},
		},
		// Display order matters.
		Screenshots: []Asset{
			{Name: "kwartrack_landing.jpg"},
			{Name: "kwartrack_login.jpg"},
			{Name: "dashboard.jpg"},
			{Name: "transactions.jpg"},
			{Name: "budgets.jpg"},
			{Name: "settings.jpg"},
		},
	}
)
