package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/seguros-online/app-simulacao/internal/site"
)

// PagesHandler serve a página inicial. O estado que no browser vive em JS
// (diapositivo, FAQ aberta, menu) chega aqui pela query string.
type PagesHandler struct {
	content *site.Content
}

func NewPagesHandler(content *site.Content) *PagesHandler {
	return &PagesHandler{content: content}
}

// Home desenha a página inicial.
func (h *PagesHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", newHomeView(c, h.content))
}

func newHomeView(c *gin.Context, content *site.Content) homeView {
	v := homeView{
		PageTitle: content.Empresa,
		Content:   content,
		FAQOpen:   -1,
	}

	shows := site.NewSlideshow(len(content.Slides))
	slide, _ := strconv.Atoi(c.Query("slide"))
	v.Slide = shows.Show(slide)
	v.PrevSlide = shows.Prev()
	shows.Show(v.Slide)
	v.NextSlide = shows.Next()

	if faq := c.Query("faq"); faq != "" {
		acc := site.NewAccordion(len(content.FAQ))
		acc.Toggle(faqIndex(content, faq))
		v.FAQOpen = acc.Open()
	}

	var menu site.Menu
	if c.Query("menu") == "1" {
		menu.Toggle()
	}
	v.MenuOpen = menu.IsOpen()

	return v
}

// faqIndex aceita a âncora da pergunta ou o seu índice.
func faqIndex(content *site.Content, key string) int {
	for i, f := range content.FAQ {
		if f.Ancora == key {
			return i
		}
	}
	if i, err := strconv.Atoi(key); err == nil {
		return i
	}
	return -1
}
