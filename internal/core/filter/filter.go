// Package filter holds the name sets of framework-internal components that
// never appear in a snapshot.
package filter

import "sort"

// Set is a plain membership set of component names.
type Set map[string]struct{}

// NewSet builds a Set from names. Empty names are ignored.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		if n != "" {
			s[n] = struct{}{}
		}
	}
	return s
}

// Has reports membership. A nil Set contains nothing.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the members in sorted order.
func (s Set) Names() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Filters groups the exclusion sets of the supported meta-frameworks.
type Filters struct {
	// NextJS lists default components of the server-rendering framework.
	NextJS Set
	// Remix lists default components of the file-route framework.
	Remix Set
}

// Excludes reports whether name belongs to either framework's defaults.
func (f Filters) Excludes(name string) bool {
	return f.NextJS.Has(name) || f.Remix.Has(name)
}

// Default returns the built-in exclusion sets.
func Default() Filters {
	return Filters{
		NextJS: NewSet(DefaultNextJS...),
		Remix:  NewSet(DefaultRemix...),
	}
}

// None returns filters that exclude nothing.
func None() Filters {
	return Filters{}
}

// DefaultNextJS are the components Next.js mounts around an application.
var DefaultNextJS = []string{
	"ReactDevOverlay",
	"ErrorBoundaryHandler",
	"ErrorBoundary",
	"HotReload",
	"Portal",
	"ServerRoot",
	"AppRouter",
	"AppContainer",
	"Root",
	"RedirectBoundary",
	"RedirectErrorBoundary",
	"NotFoundBoundary",
	"NotFoundErrorBoundary",
	"LoadingBoundary",
	"ScrollAndFocusHandler",
	"InnerScrollAndFocusHandler",
	"InnerLayoutRouter",
	"OuterLayoutRouter",
	"RenderFromTemplateContext",
	"TemplateContext",
	"PathnameContextProviderAdapter",
	"HeadManagerContext",
	"RouterContext",
	"Head",
	"Container",
}

// DefaultRemix are the components Remix mounts around an application.
var DefaultRemix = []string{
	"RemixBrowser",
	"RemixErrorBoundary",
	"RemixRootDefaultErrorBoundary",
	"RemixCatchBoundary",
	"RemixRoute",
	"RemixRouteError",
	"RouterProvider",
	"DataRouterContext",
	"DataRouterStateContext",
	"DataRoutes",
	"Outlet",
	"Scripts",
	"Links",
	"Meta",
	"LiveReload",
	"ScrollRestoration",
	"Await",
}
