package nav

import "github.com/kanisa-app/kanisa/core/user"

// Route is a navigable destination with an optional role restriction.
// A route with no Roles is visible to everyone, including anonymous
// visitors; a restricted route requires an authenticated identity whose
// role is in the set.
type Route struct {
	Label string      `json:"label"`
	Path  string      `json:"path"`
	Roles []user.Role `json:"roles,omitempty"`
}

// Routes mirrors the app's sidebar.
var Routes = []Route{
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "Courses", Path: "/courses"},
	{Label: "My Learning", Path: "/my-learning"},
	{Label: "Leaderboard", Path: "/leaderboard"},
	{Label: "Profile", Path: "/profile"},
	{Label: "Admin", Path: "/admin", Roles: []user.Role{user.RoleAdmin}},
	{Label: "Volunteer Courses", Path: "/volunteer-courses", Roles: []user.Role{user.RoleVolunteer, user.RoleAdmin}},
}

// Visible decides route visibility; usr is nil for anonymous visitors.
func Visible(r Route, usr *user.User) bool {
	if len(r.Roles) == 0 {
		return true
	}
	if usr == nil {
		return false
	}
	for _, role := range r.Roles {
		if usr.Role == role {
			return true
		}
	}
	return false
}

// VisibleRoutes filters Routes down to what usr may see.
func VisibleRoutes(usr *user.User) []Route {
	visible := make([]Route, 0, len(Routes))
	for _, r := range Routes {
		if Visible(r, usr) {
			visible = append(visible, r)
		}
	}
	return visible
}
