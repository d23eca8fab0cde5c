package profile

import (
	"context"
)

const (
	LinkGitHub   = "github"
	LinkLinkedIn = "linkedin"
	LinkKaggle   = "kaggle"
	LinkLeetCode = "leetcode"
)

type Contact struct {
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	Location string `json:"location" yaml:"location"`
}

// MailtoURL and TelURL are the outbound handlers for the contact details.
func (c Contact) MailtoURL() string {
	return "mailto:" + c.Email
}

func (c Contact) TelURL() string {
	digits := make([]rune, 0, len(c.Phone))
	for _, r := range c.Phone {
		if r == '+' || (r >= '0' && r <= '9') {
			digits = append(digits, r)
		}
	}
	return "tel:" + string(digits)
}

type SocialLink struct {
	Kind  string `json:"kind" yaml:"kind"`
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`

	// FooterOnly links are left out of the hero block.
	FooterOnly bool `json:"footer_only" yaml:"footer_only"`
}

type Education struct {
	Degree      string `json:"degree" yaml:"degree"`
	Institution string `json:"institution" yaml:"institution"`
	Detail      string `json:"detail" yaml:"detail"`
}

type Profile struct {
	Name          string       `json:"name" yaml:"name"`
	ShortName     string       `json:"short_name" yaml:"short_name"`
	Title         string       `json:"title" yaml:"title"`
	Summary       string       `json:"summary" yaml:"summary"`
	Background    []string     `json:"background" yaml:"background"`
	AvatarURL     string       `json:"avatar_url" yaml:"avatar_url"`
	Contact       Contact      `json:"contact" yaml:"contact"`
	Links         []SocialLink `json:"links" yaml:"links"`
	Education     []Education  `json:"education" yaml:"education"`
	ContactPitch  string       `json:"contact_pitch" yaml:"contact_pitch"`
	CopyrightYear int          `json:"copyright_year" yaml:"copyright_year"`
}

// Clone returns a deep copy, so the shared definition stays untouched.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	out := *p
	out.Background = append([]string(nil), p.Background...)
	out.Links = append([]SocialLink(nil), p.Links...)
	out.Education = append([]Education(nil), p.Education...)
	return &out
}

type Repository interface {
	Get(ctx context.Context) (*Profile, error)
}
