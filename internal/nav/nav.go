// Package nav turns listing interactions into route changes and holds the
// static route table the views are mounted on.
package nav

import (
	"net/url"
	"strings"
)

// Router is the navigation primitive the dispatcher forwards to.
type Router interface {
	Navigate(path string)
}

// Dispatcher forwards listing clicks to a Router.
type Dispatcher struct {
	router Router
}

func NewDispatcher(r Router) *Dispatcher {
	return &Dispatcher{router: r}
}

// GoToListing requests the detail route for id. The id is not checked
// against any catalog; the detail view handles unknown ids.
func (d *Dispatcher) GoToListing(id string) {
	d.router.Navigate(ListingPath(id))
}

// ListingPath returns the detail route for id.
func ListingPath(id string) string {
	return "/property/" + url.PathEscape(id)
}

// RouteName identifies a view in the route table.
type RouteName string

const (
	RouteHome      RouteName = "home"
	RouteListings  RouteName = "listings"
	RouteProperty  RouteName = "property"
	RouteFavorites RouteName = "favorites"
	RouteDashboard RouteName = "dashboard"
)

// Route maps a path pattern to a view. Segments starting with ':' capture
// a path parameter.
type Route struct {
	Name    RouteName
	Pattern string
	Title   string
}

// Params holds captured path parameters.
type Params map[string]string

// Routes is the application route table, in tab order.
var Routes = []Route{
	{Name: RouteHome, Pattern: "/", Title: "Home"},
	{Name: RouteListings, Pattern: "/listings", Title: "Listings"},
	{Name: RouteProperty, Pattern: "/property/:id", Title: "Property"},
	{Name: RouteFavorites, Pattern: "/favorites", Title: "Favorites"},
	{Name: RouteDashboard, Pattern: "/dashboard", Title: "Dashboard"},
}

// PathFor returns the literal path of a parameterless route.
func PathFor(name RouteName) string {
	for _, r := range Routes {
		if r.Name == name && !strings.Contains(r.Pattern, ":") {
			return r.Pattern
		}
	}
	return "/"
}

// Match resolves path against the route table.
func Match(path string) (Route, Params, bool) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	got := splitPath(path)
	for _, r := range Routes {
		if params, ok := matchPattern(splitPath(r.Pattern), got); ok {
			return r, params, true
		}
	}
	return Route{}, nil, false
}

func matchPattern(pattern, path []string) (Params, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}
	params := Params{}
	for i, seg := range pattern {
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			v, err := url.PathUnescape(path[i])
			if err != nil || v == "" {
				return nil, false
			}
			params[name] = v
			continue
		}
		if seg != path[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
