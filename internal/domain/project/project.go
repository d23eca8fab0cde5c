package project

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
)

type Project struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tech        []string `json:"tech" yaml:"tech"`
	Date        string   `json:"date" yaml:"date"`
}

var (
	ErrInvalidSlug  = errors.New("slug only allows lowercase letters, numbers, and hyphens")
	ErrMissingTitle = errors.New("project title is required")
	slugRegex       = regexp.MustCompile(`^[a-z0-9-]+$`)
	nonSlugChars    = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slug is derived from the title: "Eagle's Eye - Face Expression Detector"
// becomes "eagle-s-eye-face-expression-detector".
func (p *Project) Slug() string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(p.Title), "-")
	return strings.Trim(s, "-")
}

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrMissingTitle
	}
	if !slugRegex.MatchString(p.Slug()) {
		return ErrInvalidSlug
	}
	return nil
}

var dateLayouts = []string{"Jan 2006", "January 2006", "2006-01", "2006"}

// CompletedAt parses the display date. Unparseable dates report false.
func (p *Project) CompletedAt() (time.Time, bool) {
	raw := strings.TrimSpace(p.Date)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (p Project) Clone() Project {
	p.Tech = append([]string(nil), p.Tech...)
	return p
}

type Repository interface {
	List(ctx context.Context) ([]Project, error)
	FindBySlug(ctx context.Context, slug string) (*Project, error)
}
