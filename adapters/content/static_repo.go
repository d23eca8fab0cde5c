package content

import (
	"context"

	"github.com/i-shreyansh/portfolio/internal/domain/experience"
	"github.com/i-shreyansh/portfolio/internal/domain/profile"
	"github.com/i-shreyansh/portfolio/internal/domain/project"
	"github.com/i-shreyansh/portfolio/internal/domain/research"
	"github.com/i-shreyansh/portfolio/internal/domain/skill"
	"github.com/i-shreyansh/portfolio/pkg/apperror"
)

type staticProfileRepo struct {
	catalog *Catalog
}

func NewStaticProfileRepo(c *Catalog) profile.Repository {
	return &staticProfileRepo{catalog: c}
}

func (r *staticProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	return r.catalog.Profile.Clone(), nil
}

type staticExperienceRepo struct {
	catalog *Catalog
}

func NewStaticExperienceRepo(c *Catalog) experience.Repository {
	return &staticExperienceRepo{catalog: c}
}

func (r *staticExperienceRepo) List(ctx context.Context) ([]experience.Entry, error) {
	out := make([]experience.Entry, len(r.catalog.Experience))
	for i, e := range r.catalog.Experience {
		out[i] = e.Clone()
	}
	return out, nil
}

type staticResearchRepo struct {
	catalog *Catalog
}

func NewStaticResearchRepo(c *Catalog) research.Repository {
	return &staticResearchRepo{catalog: c}
}

func (r *staticResearchRepo) List(ctx context.Context) ([]research.Entry, error) {
	out := make([]research.Entry, len(r.catalog.Research))
	copy(out, r.catalog.Research)
	return out, nil
}

type staticProjectRepo struct {
	catalog *Catalog
}

func NewStaticProjectRepo(c *Catalog) project.Repository {
	return &staticProjectRepo{catalog: c}
}

func (r *staticProjectRepo) List(ctx context.Context) ([]project.Project, error) {
	out := make([]project.Project, len(r.catalog.Projects))
	for i, p := range r.catalog.Projects {
		out[i] = p.Clone()
	}
	return out, nil
}

func (r *staticProjectRepo) FindBySlug(ctx context.Context, slug string) (*project.Project, error) {
	for _, p := range r.catalog.Projects {
		if p.Slug() == slug {
			found := p.Clone()
			return &found, nil
		}
	}
	return nil, apperror.NewNotFound("Project", slug)
}

type staticSkillRepo struct {
	catalog *Catalog
}

func NewStaticSkillRepo(c *Catalog) skill.Repository {
	return &staticSkillRepo{catalog: c}
}

func (r *staticSkillRepo) ListCategories(ctx context.Context) ([]skill.Category, error) {
	out := make([]skill.Category, len(r.catalog.Skills))
	for i, c := range r.catalog.Skills {
		out[i] = c.Clone()
	}
	return out, nil
}

func (r *staticSkillRepo) ListCoursework(ctx context.Context) ([]string, error) {
	return append([]string(nil), r.catalog.Coursework...), nil
}
