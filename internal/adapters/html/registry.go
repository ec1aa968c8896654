// Package html implements an in-process host registry that renders registered assets as HTML tags.
package html

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/encore/internal/core/domain"
	"go.trai.ch/encore/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.HostRegistry              = (*Registry)(nil)
	_ ports.TemplateDirectoryProvider = (*Registry)(nil)
	_ ports.RenderingRegistry         = (*Registry)(nil)
)

var tags = template.Must(template.New("tags").Parse(`
{{- define "script" }}<script id="{{ .Handle }}-js" src="{{ .Src }}"></script>
{{ end -}}
{{- define "style" }}<link rel="stylesheet" id="{{ .Handle }}-css" href="{{ .Src }}" media="{{ .Media }}">
{{ end -}}
`))

// asset is a registered script or style.
type asset struct {
	Handle   string
	URL      string
	Deps     []string
	Version  string
	InFooter bool
	Media    string
}

// Src returns the asset URL with the version appended as the ver query parameter.
// The existing query is kept byte for byte.
func (a *asset) Src() string {
	if a.Version == "" {
		return a.URL
	}
	base, fragment, hasFragment := strings.Cut(a.URL, "#")
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	src := base + sep + "ver=" + url.QueryEscape(a.Version)
	if hasFragment {
		src += "#" + fragment
	}
	return src
}

// queue tracks one kind of asset: what is registered, what is enqueued, and what was printed.
type queue struct {
	assets   map[string]*asset
	graph    *domain.Graph
	enqueued []string
	done     map[string]bool
	warned   map[string]bool
}

func newQueue() *queue {
	return &queue{
		assets: make(map[string]*asset),
		graph:  domain.NewGraph(),
		done:   make(map[string]bool),
		warned: make(map[string]bool),
	}
}

func (q *queue) register(a *asset) error {
	if _, exists := q.assets[a.Handle]; exists {
		return nil
	}
	if err := q.graph.Add(a.Handle, a.Deps); err != nil {
		return err
	}
	q.assets[a.Handle] = a
	return nil
}

func (q *queue) enqueue(handle string) error {
	if _, exists := q.assets[handle]; !exists {
		return zerr.With(domain.ErrHandleNotRegistered, "handle", handle)
	}
	if !slices.Contains(q.enqueued, handle) {
		q.enqueued = append(q.enqueued, handle)
	}
	return nil
}

// Registry implements ports.HostRegistry by keeping assets in memory and printing them as tags.
// The first registration of a handle wins; later registrations of the same handle are ignored.
type Registry struct {
	mu          sync.Mutex
	logger      ports.Logger
	templateDir string
	scripts     *queue
	styles      *queue
}

// NewRegistry creates an empty Registry. templateDir is reported as the host template directory.
func NewRegistry(logger ports.Logger, templateDir string) *Registry {
	return &Registry{
		logger:      logger,
		templateDir: templateDir,
		scripts:     newQueue(),
		styles:      newQueue(),
	}
}

// TemplateDirectory returns the theme directory the registry was created with.
func (r *Registry) TemplateDirectory() string {
	return r.templateDir
}

// RegisterScript makes a script known under handle.
func (r *Registry) RegisterScript(handle, src string, deps []string, version string, inFooter bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.scripts.register(&asset{
		Handle:   handle,
		URL:      src,
		Deps:     slices.Clone(deps),
		Version:  version,
		InFooter: inFooter,
	})
}

// RegisterStyle makes a stylesheet known under handle.
func (r *Registry) RegisterStyle(handle, src string, deps []string, version, media string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.styles.register(&asset{
		Handle:  handle,
		URL:     src,
		Deps:    slices.Clone(deps),
		Version: version,
		Media:   media,
	})
}

// EnqueueScript marks a registered script for output.
func (r *Registry) EnqueueScript(handle string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scripts.enqueue(handle)
}

// EnqueueStyle marks a registered stylesheet for output.
func (r *Registry) EnqueueStyle(handle string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.styles.enqueue(handle)
}

// Enqueued returns the enqueued script and style handles, in enqueue order.
func (r *Registry) Enqueued() (scripts, styles []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.scripts.enqueued), slices.Clone(r.styles.enqueued)
}

// RenderHead writes the enqueued styles and the enqueued scripts that do not belong in the footer.
// Footer scripts needed by a head script are printed in the head as well.
func (r *Registry) RenderHead(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.render(w, r.styles, r.styles.enqueued, "style"); err != nil {
		return err
	}

	var headRoots []string
	for _, handle := range r.scripts.enqueued {
		if !r.scripts.assets[handle].InFooter {
			headRoots = append(headRoots, handle)
		}
	}
	return r.render(w, r.scripts, headRoots, "script")
}

// RenderFooter writes every enqueued asset that was not printed by RenderHead.
func (r *Registry) RenderFooter(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.render(w, r.styles, r.styles.enqueued, "style"); err != nil {
		return err
	}
	return r.render(w, r.scripts, r.scripts.enqueued, "script")
}

// render prints roots and their dependencies, dependencies first, skipping handles already printed.
func (r *Registry) render(w io.Writer, q *queue, roots []string, tmpl string) error {
	order, missing, err := q.graph.Order(roots)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}

	for _, handle := range missing {
		if q.warned[handle] {
			continue
		}
		q.warned[handle] = true
		r.logger.Warn(fmt.Sprintf("skipping unregistered %s dependency %q", tmpl, handle))
	}

	for _, handle := range order {
		if q.done[handle] {
			continue
		}
		if err := tags.ExecuteTemplate(w, tmpl, q.assets[handle]); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "handle", handle)
		}
		q.done[handle] = true
	}
	return nil
}
