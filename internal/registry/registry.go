// Package registry holds the static catalog of known status pages and
// resolves user-supplied service tokens against it.
package registry

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/cases"
)

//go:embed services.yaml
var defaultServices []byte

// Source identifies the wire format of a status endpoint.
type Source string

// Supported status endpoint formats.
const (
	SourceSummary Source = "summary" // Statuspage-style summary.json
	SourceAtom    Source = "atom"    // Atom incident history feed
	SourceRSS     Source = "rss"     // RSS incident history feed
)

// Service describes one registered status page.
type Service struct {
	ID      string   `koanf:"-" json:"id"`
	Name    string   `koanf:"name" json:"name" validate:"required"`
	URL     string   `koanf:"url" json:"url" validate:"required,url"`
	Source  Source   `koanf:"source" json:"source" validate:"omitempty,oneof=summary atom rss"`
	Aliases []string `koanf:"aliases" json:"aliases,omitempty"`
}

type catalog struct {
	Default  string             `koanf:"default" validate:"required"`
	Services map[string]Service `koanf:"services" validate:"required,min=1"`
}

// Registry maps canonical service identifiers to status endpoints.
// Immutable after Load.
type Registry struct {
	services  map[string]Service
	aliases   map[string]string
	defaultID string
}

var foldCaser = cases.Fold()

// normalize folds a user-supplied token to its canonical lookup form.
func normalize(token string) string {
	return foldCaser.String(strings.TrimSpace(token))
}

// Load builds the registry from the embedded defaults, optionally merged
// with a YAML file at path. The file may override existing entries or add
// new ones.
func Load(path string) (*Registry, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultServices), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load built-in services: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load services file %s: %w", path, err)
		}
	}

	var cat catalog
	if err := k.Unmarshal("", &cat); err != nil {
		return nil, fmt.Errorf("unmarshal services: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cat); err != nil {
		return nil, fmt.Errorf("invalid services config: %w", err)
	}

	r := &Registry{
		services:  make(map[string]Service, len(cat.Services)),
		aliases:   make(map[string]string),
		defaultID: normalize(cat.Default),
	}

	for id, svc := range cat.Services {
		if svc.Source == "" {
			svc.Source = SourceSummary
		}
		if err := validate.Struct(svc); err != nil {
			return nil, fmt.Errorf("invalid service %q: %w", id, err)
		}

		id = normalize(id)
		svc.ID = id
		r.services[id] = svc

		// Every canonical identifier is an alias of itself.
		for _, alias := range append([]string{id}, svc.Aliases...) {
			alias = normalize(alias)
			if owner, ok := r.aliases[alias]; ok && owner != id {
				return nil, fmt.Errorf("alias %q claimed by both %q and %q", alias, owner, id)
			}
			r.aliases[alias] = id
		}
	}

	if _, ok := r.services[r.defaultID]; !ok {
		return nil, fmt.Errorf("default service %q is not registered", cat.Default)
	}

	return r, nil
}

// Resolve maps a service token to its registered service. Tokens are
// case-insensitive and surrounding whitespace is ignored. An empty token
// resolves to the default service.
func (r *Registry) Resolve(token string) (Service, error) {
	key := normalize(token)
	if key == "" {
		key = r.defaultID
	}

	id, ok := r.aliases[key]
	if !ok {
		return Service{}, &UnknownServiceError{Token: strings.TrimSpace(token), Known: r.IDs()}
	}
	return r.services[id], nil
}

// Default returns the service used when no token is given.
func (r *Registry) Default() Service {
	return r.services[r.defaultID]
}

// IDs returns all canonical service identifiers, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.services))
	for id := range r.services {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Services returns all registered services ordered by identifier.
func (r *Registry) Services() []Service {
	ids := r.IDs()
	out := make([]Service, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.services[id])
	}
	return out
}
