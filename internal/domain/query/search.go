package query

import (
	"strings"

	"github.com/GriffinCanCode/pagelab/internal/domain/catalog"
)

// SearchUsers keeps users whose name, email or city contains term,
// ignoring case. An empty term matches every user.
func SearchUsers(users []catalog.User, term string) []catalog.User {
	if term == "" {
		return Filter(users, func(catalog.User) bool { return true })
	}

	needle := strings.ToLower(term)
	return Filter(users, func(u catalog.User) bool {
		return strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) ||
			strings.Contains(strings.ToLower(u.City), needle)
	})
}
