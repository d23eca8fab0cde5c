package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/i-shreyansh/portfolio/internal/domain/profile"
	"github.com/i-shreyansh/portfolio/internal/domain/project"
	"github.com/i-shreyansh/portfolio/pkg/logger"
)

type ProjectsFeedUseCase struct {
	profileRepo profile.Repository
	projectRepo project.Repository
	baseURL     string
	logger      logger.Logger
}

func NewProjectsFeedUseCase(pRepo profile.Repository, prRepo project.Repository, baseURL string, log logger.Logger) *ProjectsFeedUseCase {
	return &ProjectsFeedUseCase{
		profileRepo: pRepo,
		projectRepo: prRepo,
		baseURL:     strings.TrimRight(baseURL, "/"),
		logger:      log,
	}
}

func (uc *ProjectsFeedUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	owner, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile for feed: %w", err)
	}

	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list projects for RSS", err)
		return nil, fmt.Errorf("list projects for feed: %w", err)
	}

	feed := &feeds.Feed{
		Title:       owner.Name + " - Projects",
		Link:        &feeds.Link{Href: uc.baseURL + "/#projects"},
		Description: owner.Title,
		Author:      &feeds.Author{Name: owner.Name, Email: owner.Contact.Email},
	}

	var latest time.Time
	items := make([]*feeds.Item, 0, len(projects))
	for _, p := range projects {
		item := &feeds.Item{
			Id:          uc.baseURL + "/api/projects/" + p.Slug(),
			Title:       p.Title,
			Link:        &feeds.Link{Href: uc.baseURL + "/api/projects/" + p.Slug()},
			Description: p.Description + " (" + strings.Join(p.Tech, ", ") + ")",
		}
		if t, ok := p.CompletedAt(); ok {
			item.Created = t
			if t.After(latest) {
				latest = t
			}
		} else {
			uc.logger.Warn("Project date not parseable, leaving item undated",
				zap.String("project", p.Title), zap.String("date", p.Date))
		}
		items = append(items, item)
	}

	feed.Items = items
	feed.Created = latest
	uc.logger.Info("Projects feed generated", zap.Int("item_count", len(items)))
	return feed, nil
}
