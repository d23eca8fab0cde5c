package portfolio

import (
	"context"
	"fmt"

	"github.com/i-shreyansh/portfolio/internal/domain/experience"
	"github.com/i-shreyansh/portfolio/internal/domain/profile"
	"github.com/i-shreyansh/portfolio/internal/domain/project"
	"github.com/i-shreyansh/portfolio/internal/domain/research"
	"github.com/i-shreyansh/portfolio/internal/domain/skill"
)

// Portfolio is a snapshot of everything the page shows.
type Portfolio struct {
	Profile    *profile.Profile   `json:"profile"`
	Experience []experience.Entry `json:"experience"`
	Research   []research.Entry   `json:"research"`
	Projects   []project.Project  `json:"projects"`
	Skills     []skill.Category   `json:"skills"`
	Coursework []string           `json:"coursework"`
}

type PortfolioUseCase struct {
	profileRepo    profile.Repository
	experienceRepo experience.Repository
	researchRepo   research.Repository
	projectRepo    project.Repository
	skillRepo      skill.Repository
}

func NewPortfolioUseCase(
	profileRepo profile.Repository,
	experienceRepo experience.Repository,
	researchRepo research.Repository,
	projectRepo project.Repository,
	skillRepo skill.Repository,
) *PortfolioUseCase {
	return &PortfolioUseCase{
		profileRepo:    profileRepo,
		experienceRepo: experienceRepo,
		researchRepo:   researchRepo,
		projectRepo:    projectRepo,
		skillRepo:      skillRepo,
	}
}

func (uc *PortfolioUseCase) ExecuteGetPortfolio(ctx context.Context) (*Portfolio, error) {
	p, err := uc.ExecuteGetProfile(ctx)
	if err != nil {
		return nil, err
	}
	exp, err := uc.ExecuteListExperience(ctx)
	if err != nil {
		return nil, err
	}
	res, err := uc.ExecuteListResearch(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := uc.ExecuteListProjects(ctx)
	if err != nil {
		return nil, err
	}
	skills, err := uc.ExecuteListSkills(ctx)
	if err != nil {
		return nil, err
	}

	return &Portfolio{
		Profile:    p,
		Experience: exp,
		Research:   res,
		Projects:   projects,
		Skills:     skills.Categories,
		Coursework: skills.Coursework,
	}, nil
}

func (uc *PortfolioUseCase) ExecuteGetProfile(ctx context.Context) (*profile.Profile, error) {
	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return p, nil
}

func (uc *PortfolioUseCase) ExecuteListExperience(ctx context.Context) ([]experience.Entry, error) {
	entries, err := uc.experienceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list experience failed: %w", err)
	}
	return entries, nil
}

func (uc *PortfolioUseCase) ExecuteListResearch(ctx context.Context) ([]research.Entry, error) {
	entries, err := uc.researchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list research failed: %w", err)
	}
	return entries, nil
}

func (uc *PortfolioUseCase) ExecuteListProjects(ctx context.Context) ([]project.Project, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects failed: %w", err)
	}
	return projects, nil
}

func (uc *PortfolioUseCase) ExecuteGetProject(ctx context.Context, slug string) (*project.Project, error) {
	p, err := uc.projectRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get project failed: %w", err)
	}
	return p, nil
}

type SkillsOutput struct {
	Categories []skill.Category `json:"categories"`
	Coursework []string         `json:"coursework"`
}

func (uc *PortfolioUseCase) ExecuteListSkills(ctx context.Context) (*SkillsOutput, error) {
	categories, err := uc.skillRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills failed: %w", err)
	}
	coursework, err := uc.skillRepo.ListCoursework(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coursework failed: %w", err)
	}
	return &SkillsOutput{Categories: categories, Coursework: coursework}, nil
}
