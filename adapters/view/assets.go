package view

import _ "embed"

//go:embed assets/scrollspy.js
var scrollSpyScript []byte

// ScrollSpyScript is the client half of the page: scroll-spy highlighting
// and smooth navigation.
func ScrollSpyScript() []byte {
	return scrollSpyScript
}
