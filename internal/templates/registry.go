// Package templates manages named template definitions loaded from YAML
// files, so clients can match against "buy_button" instead of shipping a
// template image with every request.
package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/template-match-mcp/internal/imaging"
)

// Definition describes one named template.
type Definition struct {
	// Name is the lookup key, unique within a registry.
	Name string `yaml:"name"`

	// Path locates the template image, relative to the registry base path
	// unless absolute.
	Path string `yaml:"path"`

	// Threshold, when set, switches matching for this template to
	// threshold-filtered mode with this value. 0 means best-match mode.
	Threshold float64 `yaml:"threshold,omitempty"`

	// Simplify applies foreground masking to the template before matching.
	Simplify bool `yaml:"simplify,omitempty"`

	// Preload loads the template image at registry load time instead of on
	// first use.
	Preload bool `yaml:"preload,omitempty"`
}

// registryFile is the top-level structure of a registry YAML file.
type registryFile struct {
	Templates []Definition `yaml:"templates"`
}

// Registry is a thread-safe collection of template definitions backed by an
// image cache.
type Registry struct {
	mu       sync.RWMutex
	defs     map[string]Definition
	basePath string
	cache    *imaging.ImageCache
}

// NewRegistry creates an empty registry. basePath is the directory template
// image paths resolve against; cache must not be nil.
func NewRegistry(basePath string, cache *imaging.ImageCache) *Registry {
	return &Registry{
		defs:     make(map[string]Definition),
		basePath: basePath,
		cache:    cache,
	}
}

// LoadFromFile merges template definitions from a YAML file into the
// registry. A definition with an existing name replaces it. Templates
// marked preload are decoded immediately; a preload failure fails the load.
func (r *Registry) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read template file %s: %w", path, err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse template file %s: %w", path, err)
	}

	for i, def := range file.Templates {
		if def.Name == "" {
			return fmt.Errorf("template %d in %s: name cannot be empty", i+1, path)
		}
		if def.Path == "" {
			return fmt.Errorf("template %q in %s: path cannot be empty", def.Name, path)
		}
	}

	r.mu.Lock()
	for _, def := range file.Templates {
		r.defs[def.Name] = def
	}
	r.mu.Unlock()

	for _, def := range file.Templates {
		if !def.Preload {
			continue
		}
		if _, err := r.cache.Load(r.resolve(def)); err != nil {
			return fmt.Errorf("failed to preload template %q: %w", def.Name, err)
		}
	}

	return nil
}

// Get returns the definition registered under name.
func (r *Registry) Get(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// Names lists the registered template names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// Resolve returns the definition registered under name together with the
// resolved path of its template image.
func (r *Registry) Resolve(name string) (Definition, string, error) {
	def, ok := r.Get(name)
	if !ok {
		return Definition{}, "", fmt.Errorf("unknown template: %s", name)
	}
	return def, r.resolve(def), nil
}

// resolve turns a definition path into an absolute-or-cwd-relative path.
func (r *Registry) resolve(def Definition) string {
	if filepath.IsAbs(def.Path) || r.basePath == "" {
		return def.Path
	}
	return filepath.Join(r.basePath, def.Path)
}
