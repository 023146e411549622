package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/Nigam11/skillhub-front/internal/client/routes"
)

type viewFunc func(ctx context.Context, r routes.Route) error

// Router maps route paths to views. It implements session.Navigator.
type Router struct {
	mu      sync.Mutex
	views   map[routes.Name]viewFunc
	current string
}

func NewRouter() *Router {
	return &Router{views: make(map[routes.Name]viewFunc)}
}

func (r *Router) Handle(name routes.Name, v viewFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[name] = v
}

// Navigate parses path and renders the matching view.
func (r *Router) Navigate(ctx context.Context, path string) error {
	route, err := routes.Parse(path)
	if err != nil {
		return err
	}

	r.mu.Lock()
	view, ok := r.views[route.Name]
	if ok {
		r.current = path
	}
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: no view for %q", routes.ErrUnknownRoute, path)
	}
	return view(ctx, route)
}

// Current returns the last path navigated to.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
