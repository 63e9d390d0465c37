// Package locale maps (language, key, args) to display strings with a
// defined fallback chain: requested language, then Turkish, then a literal
// <key> placeholder.
package locale

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/afklabs/afk-responder/internal/biz/domain"
)

// FallbackLanguage is the secondary language tried on a bundle miss.
const FallbackLanguage = domain.LangTurkish

// Args carries template substitution values. Placeholders use {name} form.
type Args map[string]string

// Resolver resolves localized strings from the built-in bundles, optionally
// shadowed by a YAML override file.
type Resolver struct {
	bundles map[string]map[string]string
}

// NewResolver returns a resolver over the built-in bundles.
func NewResolver() *Resolver {
	bundles := make(map[string]map[string]string, len(builtins))
	for lang, b := range builtins {
		m := make(map[string]string, len(b))
		for k, v := range b {
			m[k] = v
		}
		bundles[lang] = m
	}
	return &Resolver{bundles: bundles}
}

// NewResolverFromFile returns a resolver with overrides merged over the
// built-ins. A missing path is not an error; a malformed file is.
func NewResolverFromFile(path string) (*Resolver, error) {
	r := NewResolver()
	if path == "" {
		return r, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("read locales file: %w", err)
	}
	var overrides map[string]map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse locales file: %w", err)
	}
	for lang, kv := range overrides {
		b := r.bundles[lang]
		if b == nil {
			b = make(map[string]string, len(kv))
			r.bundles[lang] = b
		}
		for k, v := range kv {
			b[k] = v
		}
	}
	return r, nil
}

// Get resolves key in lang, interpolating args. On a bundle or key miss the
// fallback language is tried; a key absent everywhere yields "<key>" so the
// caller always gets non-empty text.
func (r *Resolver) Get(lang, key string, args Args) string {
	tmpl, ok := r.lookup(lang, key)
	if !ok {
		tmpl, ok = r.lookup(FallbackLanguage, key)
	}
	if !ok {
		return "<" + key + ">"
	}
	return interpolate(tmpl, args)
}

func (r *Resolver) lookup(lang, key string) (string, bool) {
	b, ok := r.bundles[lang]
	if !ok {
		return "", false
	}
	v, ok := b[key]
	return v, ok
}

// interpolate replaces {name} placeholders. Placeholders with no matching
// arg are left verbatim; the template is always returned, never an error.
func interpolate(tmpl string, args Args) string {
	if len(args) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(args)*2)
	for k, v := range args {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
