package router

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrUnknownRoute is returned when navigating to a path with no route.
var ErrUnknownRoute = errors.New("router: unknown route")

// Navigation is one resolved navigation: the target path and its parameters.
type Navigation struct {
	Path   string
	Params map[string]string
}

// Param returns a navigation parameter, or "".
func (n Navigation) Param(name string) string {
	return n.Params[name]
}

// Param is a name/value navigation parameter.
type Param struct {
	Name  string
	Value string
}

func WithParam(name, value string) Param {
	return Param{Name: name, Value: value}
}

// Navigator is the navigation handle given to controllers.
type Navigator interface {
	Go(ctx context.Context, path string, params ...Param) error
}

// Listener is notified after every navigation.
type Listener func(ctx context.Context, nav Navigation)

// Router resolves paths against Routes and notifies listeners of every path change.
type Router struct {
	mu        sync.Mutex
	current   Navigation
	listeners []Listener
	logger    *logrus.Logger
}

func New(logger *logrus.Logger) *Router {
	return &Router{logger: logger}
}

// Current returns the last navigation.
func (r *Router) Current() Navigation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Subscribe registers l for every subsequent navigation.
func (r *Router) Subscribe(l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, l)
}

// Go navigates to path, following redirect routes, and notifies listeners synchronously.
// Listeners may navigate again; the nested navigation completes before Go returns.
func (r *Router) Go(ctx context.Context, path string, params ...Param) error {
	path = strings.Trim(path, "/")
	route, ok := Lookup(path)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRoute, path)
	}
	if route.Redirect != "" {
		path = route.Redirect
	}

	nav := Navigation{Path: path, Params: map[string]string{}}
	for _, p := range params {
		nav.Params[p.Name] = p.Value
	}

	r.mu.Lock()
	r.current = nav
	listeners := append([]Listener(nil), r.listeners...)
	r.mu.Unlock()

	r.logger.WithField("path", path).Debug("Router.Go")

	for _, l := range listeners {
		l(ctx, nav)
	}
	return nil
}

// ParsePath splits "statements?accountNumber=1" into a path and parameters.
func ParsePath(raw string) (string, []Param, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", nil, fmt.Errorf("router: parse %q: %w", raw, err)
	}
	var params []Param
	for name, values := range u.Query() {
		if len(values) > 0 {
			params = append(params, WithParam(name, values[0]))
		}
	}
	return strings.Trim(u.Path, "/"), params, nil
}
