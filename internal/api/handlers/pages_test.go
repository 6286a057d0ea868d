package handlers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/seguros-online/app-simulacao/internal/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeSlideWraps(t *testing.T) {
	srv := newTestServer(t, quote.NopSubmitter{}, quote.NopSubmitter{})
	total := len(srv.content.Slides)
	require.Greater(t, total, 1)

	tests := []struct {
		query  string
		active int
		prev   int
		next   int
	}{
		{"", 0, total - 1, 1},
		{"?slide=1", 1, 0, 2 % total},
		{"?slide=" + strconv.Itoa(total), 0, total - 1, 1},
		{"?slide=-1", total - 1, total - 2, 0},
		{"?slide=abc", 0, total - 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := srv.get("/" + tt.query)
			require.Equal(t, http.StatusOK, rec.Code)
			doc := parseHTML(t, rec)

			active := doc.Find(".hero-slide.active")
			require.Equal(t, 1, active.Length())
			assert.Equal(t, strconv.Itoa(tt.active), active.AttrOr("data-slide", ""))
			assert.Equal(t, "?slide="+strconv.Itoa(tt.prev), doc.Find(".hero-arrow-prev").AttrOr("href", ""))
			assert.Equal(t, "?slide="+strconv.Itoa(tt.next), doc.Find(".hero-arrow-next").AttrOr("href", ""))
			assert.Equal(t, 1, doc.Find(".hero-dot.active").Length())
		})
	}
}

func TestHomeFAQOpensOneItem(t *testing.T) {
	srv := newTestServer(t, quote.NopSubmitter{}, quote.NopSubmitter{})
	require.GreaterOrEqual(t, len(srv.content.FAQ), 2)
	ancora := srv.content.FAQ[1].Ancora

	doc := parseHTML(t, srv.get("/?faq="+ancora))
	open := doc.Find(".faq-item.active")
	require.Equal(t, 1, open.Length())
	assert.Equal(t, ancora, open.AttrOr("id", ""))

	doc = parseHTML(t, srv.get("/?faq=0"))
	assert.Equal(t, srv.content.FAQ[0].Ancora, doc.Find(".faq-item.active").AttrOr("id", ""))

	doc = parseHTML(t, srv.get("/?faq=nao-existe"))
	assert.Equal(t, 0, doc.Find(".faq-item.active").Length())

	doc = parseHTML(t, srv.get("/"))
	assert.Equal(t, 0, doc.Find(".faq-item.active").Length())
}

func TestHomeMenuToggle(t *testing.T) {
	srv := newTestServer(t, quote.NopSubmitter{}, quote.NopSubmitter{})

	doc := parseHTML(t, srv.get("/"))
	assert.Equal(t, 0, doc.Find("#nav.active").Length())
	assert.Equal(t, "?menu=1", doc.Find("#mobileMenuToggle").AttrOr("href", ""))

	doc = parseHTML(t, srv.get("/?menu=1"))
	assert.Equal(t, 1, doc.Find("#nav.active").Length())
}

func TestHomeProductLinksPreselectCategory(t *testing.T) {
	srv := newTestServer(t, quote.NopSubmitter{}, quote.NopSubmitter{})

	doc := parseHTML(t, srv.get("/"))
	link := doc.Find(`.product-card[data-category="vida"] a`).AttrOr("href", "")
	assert.Equal(t, "/simulacao?cat=vida#simulacao", link)
}
