package skill

import "context"

// Category maps a label to its skills. Categories are kept in a slice
// rather than a map so the page order is stable.
type Category struct {
	Label  string   `json:"label" yaml:"label"`
	Skills []string `json:"skills" yaml:"skills"`
}

func (c Category) Clone() Category {
	c.Skills = append([]string(nil), c.Skills...)
	return c
}

type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListCoursework(ctx context.Context) ([]string, error)
}
