// Package section defines the fixed set of page sections and the
// scroll-spy that decides which one is in view.
package section

import "strings"

// ID identifies one of the page sections. It doubles as the anchor id in
// the rendered markup.
type ID string

const (
	Home       ID = "home"
	About      ID = "about"
	Experience ID = "experience"
	Research   ID = "research"
	Projects   ID = "projects"
	Skills     ID = "skills"
	Contact    ID = "contact"
)

var order = []ID{Home, About, Experience, Research, Projects, Skills, Contact}

var labels = map[ID]string{
	Home:       "Home",
	About:      "About",
	Experience: "Experience",
	Research:   "Research",
	Projects:   "Projects",
	Skills:     "Skills",
	Contact:    "Contact",
}

// All returns the section ids in page order. The order is part of the
// contract between the scroll-spy and the navigation.
func All() []ID {
	out := make([]ID, len(order))
	copy(out, order)
	return out
}

// Label is the navigation caption of the section.
func (id ID) Label() string {
	return labels[id]
}

func (id ID) Valid() bool {
	_, ok := labels[id]
	return ok
}

func (id ID) String() string {
	return string(id)
}

// Parse maps raw input onto a known section id.
func Parse(raw string) (ID, bool) {
	id := ID(strings.ToLower(strings.TrimSpace(raw)))
	if !id.Valid() {
		return "", false
	}
	return id, true
}
