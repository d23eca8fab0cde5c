package http

import (
	"github.com/i-shreyansh/portfolio/internal/domain/project"
	"github.com/i-shreyansh/portfolio/internal/domain/section"
)

// Section DTOs
type SectionDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func ToSectionDTOs(ids []section.ID) []SectionDTO {
	out := make([]SectionDTO, len(ids))
	for i, id := range ids {
		out[i] = SectionDTO{ID: string(id), Label: id.Label()}
	}
	return out
}

// Scroll-spy DTOs
type RectDTO struct {
	Top    *float64 `json:"top"`
	Bottom *float64 `json:"bottom"`
}

type DetectSectionRequest struct {
	ActiveSection string             `json:"active_section"`
	Bounds        map[string]RectDTO `json:"bounds"`
}

func (req *DetectSectionRequest) ToDomainBounds() map[string]section.Rect {
	out := make(map[string]section.Rect, len(req.Bounds))
	for id, r := range req.Bounds {
		if r.Top == nil || r.Bottom == nil {
			continue
		}
		out[id] = section.Rect{Top: *r.Top, Bottom: *r.Bottom}
	}
	return out
}

type DetectSectionResponse struct {
	ActiveSection string `json:"active_section"`
	Changed       bool   `json:"changed"`
}

// Project DTOs
type ProjectDTO struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	Date        string   `json:"date"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	tech := p.Tech
	if tech == nil {
		tech = []string{}
	}
	return ProjectDTO{
		Slug:        p.Slug(),
		Title:       p.Title,
		Description: p.Description,
		Tech:        tech,
		Date:        p.Date,
	}
}

func ToProjectDTOs(projects []project.Project) []ProjectDTO {
	out := make([]ProjectDTO, len(projects))
	for i := range projects {
		out[i] = ToProjectDTO(&projects[i])
	}
	return out
}
