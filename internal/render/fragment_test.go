package render_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tier-dashboard/internal/model"
	"tier-dashboard/internal/render"
)

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<ul>" + markup + "</ul>"))
	require.NoError(t, err)
	return doc
}

func TestSideFor(t *testing.T) {
	want := []render.Side{render.SideDefault, render.SideInverted, render.SideDefault, render.SideInverted, render.SideDefault}
	for i, side := range want {
		assert.Equal(t, side, render.SideFor(i), "index %d", i)
	}
}

func TestRenderFeed_OneFragmentPerItem(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7} {
		items := make([]model.FeedItem, n)
		frags := render.RenderFeed(items)
		require.Len(t, frags, n)
		for i, f := range frags {
			assert.Equal(t, render.SideFor(i), f.Side)
		}
	}
}

func TestFragment_HTML(t *testing.T) {
	item := model.FeedItem{Team: "gophers", Content: "standup", Timestamp: "2026-10-20 10:00:00"}

	var markup strings.Builder
	for i := 0; i < 2; i++ {
		s, err := render.RenderFeedItem(item, i).HTML()
		require.NoError(t, err)
		markup.WriteString(s)
	}

	doc := parse(t, markup.String())
	items := doc.Find("li")
	require.Equal(t, 2, items.Length())

	first, second := items.Eq(0), items.Eq(1)
	assert.False(t, first.HasClass(render.InvertedClass))
	assert.True(t, second.HasClass(render.InvertedClass))

	assert.Equal(t, 1, first.Find("div.timeline-badge.warning > i.glyphicon.glyphicon-credit-card").Length())
	assert.Equal(t, "gophers", first.Find(".timeline-panel .timeline-heading h4.timeline-title").Text())
	assert.Equal(t, "2026-10-20 10:00:00", first.Find(".timeline-heading p small.text-muted").Text())
	assert.Equal(t, 1, first.Find("small.text-muted > i.glyphicon-time").Length())
	assert.Equal(t, "standup", first.Find(".timeline-body p").Text())
	assert.Zero(t, first.Find(".timeline-author").Length())
}

func TestFragment_HTML_AuthorAndEscaping(t *testing.T) {
	item := model.FeedItem{Team: "a&b", Author: "bob", Content: "<script>alert(1)</script>", Timestamp: "now"}

	s, err := render.RenderFeedItem(item, 0).HTML()
	require.NoError(t, err)
	assert.NotContains(t, s, "<script>")

	doc := parse(t, s)
	assert.Equal(t, "bob", doc.Find("h5.timeline-author").Text())
	assert.Equal(t, "a&b", doc.Find("h4.timeline-title").Text())
	assert.Equal(t, "<script>alert(1)</script>", doc.Find(".timeline-body p").Text())
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "default", render.SideDefault.String())
	assert.Equal(t, "inverted", render.SideInverted.String())
}
