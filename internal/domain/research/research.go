package research

import "context"

type Entry struct {
	Institution string `json:"institution" yaml:"institution"`
	Period      string `json:"period" yaml:"period"`
	Supervisors string `json:"supervisors" yaml:"supervisors"`
	Focus       string `json:"focus" yaml:"focus"`
}

type Repository interface {
	List(ctx context.Context) ([]Entry, error)
}
