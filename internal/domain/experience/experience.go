package experience

import "context"

type Entry struct {
	Role         string   `json:"role" yaml:"role"`
	Organization string   `json:"organization" yaml:"organization"`
	Location     string   `json:"location" yaml:"location"`
	Period       string   `json:"period" yaml:"period"`
	Description  []string `json:"description" yaml:"description"`
}

func (e Entry) Clone() Entry {
	e.Description = append([]string(nil), e.Description...)
	return e
}

type Repository interface {
	List(ctx context.Context) ([]Entry, error)
}
