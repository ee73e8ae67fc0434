package wordpress

import (
	urlkit "github.com/goliatone/go-urlkit"
)

const routeGroup = "wp"

const (
	routePosts      = "posts"
	routePost       = "post"
	routeCategories = "categories"
	routeTags       = "tags"
	routeMedia      = "media"
	routeMediaItem  = "mediaItem"
)

// newRouteManager wires every REST endpoint this client touches. Query
// parameters (search, slug, status, lang) are attached per call through the
// route builders.
func newRouteManager(baseURL string) *urlkit.RouteManager {
	return urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    routeGroup,
				BaseURL: baseURL,
				Paths: map[string]string{
					routePosts:      "/posts",
					routePost:       "/posts/:id",
					routeCategories: "/categories",
					routeTags:       "/tags",
					routeMedia:      "/media",
					routeMediaItem:  "/media/:id",
				},
			},
		},
	})
}
