package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/i-shreyansh/portfolio/internal/domain/experience"
	"github.com/i-shreyansh/portfolio/internal/domain/profile"
	"github.com/i-shreyansh/portfolio/internal/domain/project"
	"github.com/i-shreyansh/portfolio/internal/domain/research"
	"github.com/i-shreyansh/portfolio/internal/domain/section"
	"github.com/i-shreyansh/portfolio/internal/domain/skill"
)

func sectionTitle(text string) g.Node {
	return h.H2(h.Class("text-4xl font-bold mb-12 text-center"), g.Text(text))
}

func externalLink(l profile.SocialLink, size string) g.Node {
	return h.A(
		h.Href(l.URL),
		h.Target("_blank"),
		h.Rel("noopener noreferrer"),
		h.Class("hover:text-yellow-400 transition-colors"),
		h.Aria("label", l.Label),
		linkIcon(l.Kind, size),
	)
}

func homeSection(p *page) g.Node {
	pr := p.content.Profile
	var heroLinks []profile.SocialLink
	for _, l := range pr.Links {
		if !l.FooterOnly {
			heroLinks = append(heroLinks, l)
		}
	}

	return h.Section(
		h.ID(string(section.Home)),
		h.Class("min-h-screen flex items-center justify-center pt-16 px-4"),
		h.Div(
			h.Class("max-w-4xl mx-auto text-center"),
			g.If(pr.AvatarURL != "", h.Div(
				h.Class("mb-8"),
				h.Img(
					h.Src(pr.AvatarURL),
					h.Alt(pr.Name),
					h.Class("w-32 h-32 mx-auto mb-6 rounded-full object-cover border-4 border-yellow-400 shadow-xl"),
				),
			)),
			h.H1(h.Class("text-5xl md:text-7xl font-bold mb-4"), g.Text(pr.Name)),
			h.P(
				h.Class("text-2xl md:text-3xl mb-6 bg-gradient-to-r from-blue-400 to-yellow-400 bg-clip-text text-transparent"),
				g.Text(pr.Title),
			),
			h.P(h.Class("text-lg md:text-xl mb-8 max-w-2xl mx-auto "+p.palette.Muted), g.Text(pr.Summary)),
			h.Div(
				h.Class("flex flex-wrap justify-center gap-4 mb-8"),
				h.A(
					h.Href(pr.Contact.MailtoURL()),
					h.Class("flex items-center gap-2 px-6 py-3 bg-blue-600 hover:bg-blue-700 rounded-lg transition-colors"),
					strokeIcon(iconMail, "w-5 h-5"),
					g.Text("Contact Me"),
				),
				// Inert: there is no resume file to serve.
				h.Button(
					h.Type("button"),
					h.Class("flex items-center gap-2 px-6 py-3 border-2 border-yellow-400 text-yellow-400 hover:bg-yellow-400 hover:text-gray-900 rounded-lg transition-all"),
					strokeIcon(iconDownload, "w-5 h-5"),
					g.Text("Download Resume"),
				),
			),
			h.Div(
				h.Class("flex justify-center gap-6"),
				g.Map(heroLinks, func(l profile.SocialLink) g.Node { return externalLink(l, "w-6 h-6") }),
			),
		),
	)
}

func aboutSection(p *page) g.Node {
	pr := p.content.Profile
	return h.Section(
		h.ID(string(section.About)),
		h.Class("py-20 px-4 "+p.palette.AltSection),
		h.Div(
			h.Class("max-w-6xl mx-auto"),
			sectionTitle("About Me"),
			h.Div(
				h.Class("grid md:grid-cols-2 gap-8"),
				h.Div(
					h.H3(h.Class("text-2xl font-semibold mb-4 text-yellow-400"), g.Text("Background")),
					g.Map(p.background, func(html string) g.Node {
						return h.Div(h.Class("mb-4 "+p.palette.Muted), g.Raw(html))
					}),
				),
				h.Div(
					h.H3(h.Class("text-2xl font-semibold mb-4 text-yellow-400"), g.Text("Education")),
					h.Div(
						h.Class("space-y-4"),
						g.Map(pr.Education, func(e profile.Education) g.Node {
							return h.Div(
								h.Class("p-4 rounded-lg "+p.palette.Panel),
								h.H4(h.Class("font-semibold text-lg"), g.Text(e.Degree)),
								h.P(h.Class(p.palette.Muted), g.Text(e.Institution)),
								h.P(h.Class("text-sm text-yellow-400"), g.Text(e.Detail)),
							)
						}),
					),
				),
			),
			h.Div(
				h.Class("mt-8 flex flex-wrap gap-4 justify-center"),
				contactChip(iconMapPin, pr.Contact.Location),
				contactChip(iconPhone, pr.Contact.Phone),
				contactChip(iconMail, pr.Contact.Email),
			),
		),
	)
}

func contactChip(icon, text string) g.Node {
	return h.Div(
		h.Class("flex items-center gap-2"),
		strokeIcon(icon, "w-5 h-5 text-yellow-400"),
		h.Span(g.Text(text)),
	)
}

func experienceSection(p *page) g.Node {
	return h.Section(
		h.ID(string(section.Experience)),
		h.Class("py-20 px-4"),
		h.Div(
			h.Class("max-w-6xl mx-auto"),
			sectionTitle("Experience"),
			h.Div(
				h.Class("space-y-8"),
				g.Map(p.content.Experience, func(e experience.Entry) g.Node { return experienceCard(p, e) }),
			),
		),
	)
}

func experienceCard(p *page, e experience.Entry) g.Node {
	return h.Div(
		h.Class("p-6 rounded-lg shadow-lg hover:shadow-xl transition-shadow "+p.palette.Card),
		h.Data("entry", "experience"),
		h.Div(
			h.Class("flex flex-col md:flex-row md:justify-between md:items-start mb-4"),
			h.Div(
				h.H3(h.Class("text-2xl font-semibold text-yellow-400"), g.Text(e.Role)),
				h.P(h.Class("text-xl"), g.Text(e.Organization)),
				h.P(h.Class("text-sm "+p.palette.Subtle), g.Text(e.Location)),
			),
			h.Span(h.Class("text-sm mt-2 md:mt-0 "+p.palette.Subtle), g.Text(e.Period)),
		),
		h.Ul(
			h.Class("space-y-2"),
			g.Map(e.Description, func(d string) g.Node {
				return h.Li(
					h.Class("flex items-start "+p.palette.Muted),
					h.Span(h.Class("text-yellow-400 mr-2"), g.Text("▸")),
					g.Text(d),
				)
			}),
		),
	)
}

func researchSection(p *page) g.Node {
	return h.Section(
		h.ID(string(section.Research)),
		h.Class("py-20 px-4 "+p.palette.AltSection),
		h.Div(
			h.Class("max-w-6xl mx-auto"),
			sectionTitle("Research Experience"),
			h.Div(
				h.Class("grid md:grid-cols-2 gap-8"),
				g.Map(p.content.Research, func(r research.Entry) g.Node {
					return h.Div(
						h.Class("p-6 rounded-lg hover:scale-105 transition-transform "+p.palette.Panel),
						h.H3(h.Class("text-xl font-semibold text-yellow-400 mb-2"), g.Text(r.Institution)),
						h.P(h.Class("text-sm mb-3 "+p.palette.Subtle), g.Text(r.Period)),
						h.P(h.Class("mb-2 "+p.palette.Body), h.Span(h.Class("font-semibold"), g.Text("Supervisors:")), g.Text(" "+r.Supervisors)),
						h.P(h.Class(p.palette.Body), h.Span(h.Class("font-semibold"), g.Text("Focus:")), g.Text(" "+r.Focus)),
					)
				}),
			),
		),
	)
}

func projectsSection(p *page) g.Node {
	return h.Section(
		h.ID(string(section.Projects)),
		h.Class("py-20 px-4"),
		h.Div(
			h.Class("max-w-6xl mx-auto"),
			sectionTitle("Featured Projects"),
			h.Div(
				h.Class("grid md:grid-cols-2 gap-8"),
				g.Map(p.content.Projects, func(pr project.Project) g.Node {
					return h.Div(
						h.Class("p-6 rounded-lg shadow-lg hover:shadow-2xl transition-all hover:-translate-y-2 "+p.palette.Card),
						h.Data("project", pr.Slug()),
						h.Div(
							h.Class("flex justify-between items-start mb-4"),
							h.H3(h.Class("text-xl font-semibold text-yellow-400"), g.Text(pr.Title)),
							h.Span(h.Class("text-sm "+p.palette.Subtle), g.Text(pr.Date)),
						),
						h.P(h.Class("mb-4 "+p.palette.Muted), g.Text(pr.Description)),
						h.Div(
							h.Class("flex flex-wrap gap-2"),
							g.Map(pr.Tech, func(t string) g.Node {
								return h.Span(h.Class("px-3 py-1 text-sm rounded-full "+p.palette.Tag), g.Text(t))
							}),
						),
					)
				}),
			),
		),
	)
}

func skillsSection(p *page) g.Node {
	return h.Section(
		h.ID(string(section.Skills)),
		h.Class("py-20 px-4 "+p.palette.AltSection),
		h.Div(
			h.Class("max-w-6xl mx-auto"),
			sectionTitle("Skills & Expertise"),
			h.Div(
				h.Class("grid md:grid-cols-2 gap-8"),
				g.Map(p.content.Skills, func(c skill.Category) g.Node {
					return h.Div(
						h.Class("p-6 rounded-lg "+p.palette.Panel),
						h.H3(h.Class("text-2xl font-semibold mb-4 text-yellow-400"), g.Text(c.Label)),
						h.Div(
							h.Class("flex flex-wrap gap-2"),
							g.Map(c.Skills, func(s string) g.Node {
								return h.Span(h.Class("px-4 py-2 rounded-lg hover:scale-110 transition-transform cursor-default "+p.palette.Chip), g.Text(s))
							}),
						),
					)
				}),
			),
			g.If(len(p.content.Coursework) > 0, h.Div(
				h.Class("mt-12"),
				h.H3(h.Class("text-2xl font-semibold mb-6 text-center text-yellow-400"), g.Text("Relevant Coursework")),
				h.Div(
					h.Class("p-6 rounded-lg "+p.palette.Panel),
					h.Div(
						h.Class("flex flex-wrap gap-3 justify-center"),
						g.Map(p.content.Coursework, func(c string) g.Node {
							return h.Span(h.Class("px-4 py-2 rounded-full text-sm "+p.palette.Chip), g.Text(c))
						}),
					),
				),
			)),
		),
	)
}

func contactSection(p *page) g.Node {
	c := p.content.Profile.Contact
	card := "flex items-center gap-2 px-6 py-3 rounded-lg shadow-lg hover:shadow-xl transition-all " + p.palette.Card
	return h.Section(
		h.ID(string(section.Contact)),
		h.Class("py-20 px-4"),
		h.Div(
			h.Class("max-w-4xl mx-auto text-center"),
			h.H2(h.Class("text-4xl font-bold mb-8"), g.Text("Get In Touch")),
			h.P(h.Class("text-xl mb-12 "+p.palette.Muted), g.Text(p.content.Profile.ContactPitch)),
			h.Div(
				h.Class("flex flex-wrap justify-center gap-6 mb-12"),
				h.A(h.Href(c.MailtoURL()), h.Class(card), strokeIcon(iconMail, "w-5 h-5 text-yellow-400"), h.Span(g.Text(c.Email))),
				h.A(h.Href(c.TelURL()), h.Class(card), strokeIcon(iconPhone, "w-5 h-5 text-yellow-400"), h.Span(g.Text(c.Phone))),
			),
			// Inert: no message endpoint.
			h.Button(
				h.Type("button"),
				h.Class("px-8 py-4 bg-gradient-to-r from-blue-600 to-yellow-400 rounded-lg text-lg font-semibold hover:scale-105 transition-transform"),
				g.Text("Send Message"),
			),
		),
	)
}

func footer(p *page) g.Node {
	pr := p.content.Profile
	return h.Footer(
		h.Class("py-8 px-4 border-t "+p.palette.Footer),
		h.Div(
			h.Class("max-w-6xl mx-auto"),
			h.Div(
				h.Class("flex flex-col md:flex-row justify-between items-center gap-4"),
				h.P(h.Class(p.palette.Subtle), g.Text("© "+strconv.Itoa(pr.CopyrightYear)+" "+pr.Name+". All rights reserved.")),
				h.Div(
					h.Class("flex gap-6"),
					g.Map(pr.Links, func(l profile.SocialLink) g.Node { return externalLink(l, "w-6 h-6") }),
					h.A(
						h.Href(pr.Contact.MailtoURL()),
						h.Class("hover:text-yellow-400 transition-colors"),
						h.Aria("label", "Email"),
						strokeIcon(iconMail, "w-6 h-6"),
					),
				),
			),
		),
	)
}
