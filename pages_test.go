package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var presentationIDs = map[ActiveView]string{
	ViewHome:    `id="` + heroID + `"`,
	ViewContact: `id="` + contactOverlayID + `"`,
	ViewProject: `id="` + projectOverlayID + `"`,
}

func TestRoot_RendersExactlyOnePresentation(t *testing.T) {
	for _, v := range allViews {
		t.Run(v.String(), func(t *testing.T) {
			out := renderString(t, Root(v))
			for other, id := range presentationIDs {
				want := 0
				if other == v {
					want = 1
				}
				assert.Equal(t, want, strings.Count(out, id), "%s presentation", other)
			}
		})
	}
}

func TestHeroView_Content(t *testing.T) {
	out := renderString(t, Root(ViewHome))

	assert.Contains(t, out, "Welcome to my Site")
	assert.Contains(t, out, "Hi, I am Dan Sabanal, a Web Developer.")
	assert.Contains(t, out, `src="/images/profile.jpg"`)
	assert.Contains(t, out, "Contact Me")
	assert.Contains(t, out, "My Project")
	assert.Equal(t, 2, strings.Count(out, `hx-post="/view"`))
}

func TestContactOverlay_Content(t *testing.T) {
	out := renderString(t, Root(ViewContact))

	assert.Contains(t, out, "Get in Touch")
	assert.Contains(t, out, "09816223351")
	assert.Contains(t, out, "dsabanal@gmail.com")
	assert.Equal(t, 1, strings.Count(out, `hx-post="/view"`), "single close control")
	assert.Contains(t, out, `&#34;action&#34;:&#34;close&#34;`)
}

func TestProjectOverlay_ScreenshotsInOrder(t *testing.T) {
	out := renderString(t, Root(ViewProject))

	require.Len(t, KwarTrack.Screenshots, 6)
	assert.Equal(t, 6, strings.Count(out, "<img"))

	last := -1
	for i, shot := range KwarTrack.Screenshots {
		src := `src="` + shot.URL() + `"`
		assert.Equal(t, 1, strings.Count(out, src), "%s rendered once", shot.Name)
		idx := strings.Index(out, src)
		assert.Greater(t, idx, last, "screenshot %d out of order", i+1)
		last = idx
	}
	assert.Contains(t, out, `alt="KwarTrack Screenshot 1"`)
	assert.Contains(t, out, `alt="KwarTrack Screenshot 6"`)
}

func TestProjectOverlay_Content(t *testing.T) {
	out := renderString(t, Root(ViewProject))

	assert.Contains(t, out, "KwarTrack")
	assert.Contains(t, out, "Budget &amp; Financial Tracking System")
	assert.Contains(t, out, "About the Project")
	for _, tag := range KwarTrack.Tags {
		assert.Contains(t, out, tag.Label)
	}
	assert.Equal(t, 1, strings.Count(out, `hx-post="/view"`), "single close control")
}

func TestPortfolioPage_StartsAtHome(t *testing.T) {
	out := renderString(t, PortfolioPage())

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, `id="root"`)
	assert.Contains(t, out, presentationIDs[ViewHome])
	assert.NotContains(t, out, presentationIDs[ViewContact])
	assert.NotContains(t, out, presentationIDs[ViewProject])
	assert.Contains(t, out, "htmx.org")
}
