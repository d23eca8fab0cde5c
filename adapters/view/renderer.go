// Package view renders the portfolio page with gomponents. The output is
// a complete HTML document; the only client-side behavior lives in the
// embedded scroll-spy script.
package view

import (
	"context"
	"io"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/i-shreyansh/portfolio/internal/application/service"
	"github.com/i-shreyansh/portfolio/internal/application/usecase/portfolio"
	"github.com/i-shreyansh/portfolio/internal/domain/profile"
	"github.com/i-shreyansh/portfolio/internal/domain/section"
	"github.com/i-shreyansh/portfolio/internal/domain/uistate"
)

const (
	ScriptPath   = "/static/scrollspy.js"
	tailwindPath = "https://cdn.tailwindcss.com"
)

type Renderer struct {
	spy *section.ScrollSpy
	md  *markdown
}

func NewRenderer(spy *section.ScrollSpy) service.PageRenderer {
	return &Renderer{spy: spy, md: newMarkdown()}
}

// page bundles what every fragment needs.
type page struct {
	content    *portfolio.Portfolio
	state      uistate.State
	palette    Palette
	background []string
}

// Fingerprint covers the scroll-spy settings written into the body.
func (r *Renderer) Fingerprint() string {
	return "threshold=" + strconv.FormatFloat(r.spy.Threshold, 'f', -1, 64) + ";tie=" + string(r.spy.TieBreak)
}

func (r *Renderer) Render(ctx context.Context, w io.Writer, content *portfolio.Portfolio, state uistate.State) error {
	var c portfolio.Portfolio
	if content != nil {
		c = *content
	}
	if c.Profile == nil {
		c.Profile = &profile.Profile{}
	}
	content = &c
	if !state.ActiveSection.Valid() {
		state.ActiveSection = section.Home
	}

	background, err := r.md.paragraphs(content.Profile.Background)
	if err != nil {
		return err
	}

	p := &page{
		content:    content,
		state:      state,
		palette:    PaletteFor(state.Theme),
		background: background,
	}
	return r.document(p).Render(w)
}

func (r *Renderer) document(p *page) g.Node {
	ids := section.All()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}

	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(p.content.Profile.Name)),
				h.Script(h.Src(tailwindPath)),
				h.StyleEl(g.Raw("html{scroll-behavior:smooth}")),
			),
			h.Body(
				h.Data("theme", string(p.state.Theme)),
				h.Data("sections", strings.Join(names, ",")),
				h.Data("scroll-threshold", strconv.FormatFloat(r.spy.Threshold, 'f', -1, 64)),
				h.Data("tie-break", string(r.spy.TieBreak)),
				h.Div(
					h.Class("min-h-screen transition-colors duration-300 "+p.palette.Root),
					navBar(p),
					homeSection(p),
					aboutSection(p),
					experienceSection(p),
					researchSection(p),
					projectsSection(p),
					skillsSection(p),
					contactSection(p),
					footer(p),
				),
				h.Script(h.Src(ScriptPath), h.Defer()),
			),
		),
	)
}
