package audio

import (
	"os"
	"path/filepath"
	"strings"

	gocache "github.com/patrickmn/go-cache"
)

// extensions lists recognized sound file extensions in preference
// order.
var extensions = []string{".wav", ".mp3", ".ogg", ".m4a", ".flac"}

// Resolver locates the sound file for a sound identifier under a fixed
// search root. Lookups are cached for the process lifetime, misses
// included, since neither the rule table nor the filesystem is
// expected to change mid-run.
type Resolver struct {
	root     string
	category string
	cache    *gocache.Cache
}

// NewResolver creates a resolver over root/category.
func NewResolver(root, category string) *Resolver {
	return &Resolver{
		root:     root,
		category: category,
		cache:    gocache.New(gocache.NoExpiration, 0),
	}
}

type resolution struct {
	path  string
	found bool
}

// Resolve returns the on-disk path for a sound id, trying each
// recognized extension in order. Identifiers carrying path separators
// or parent-directory traversal are rejected outright — an event
// payload must never reach files outside the sound root — and the
// rejection reads as "not found", not an error.
func (r *Resolver) Resolve(id string) (string, bool) {
	if !ValidID(id) {
		return "", false
	}

	if v, ok := r.cache.Get(id); ok {
		res := v.(resolution)
		return res.path, res.found
	}

	res := resolution{}
	for _, ext := range extensions {
		candidate := filepath.Join(r.root, r.category, id+ext)
		if _, err := os.Stat(candidate); err == nil {
			res = resolution{path: candidate, found: true}
			break
		}
	}

	r.cache.Set(id, res, gocache.NoExpiration)
	return res.path, res.found
}

// Root returns the resolver's search directory.
func (r *Resolver) Root() string {
	return filepath.Join(r.root, r.category)
}

// ValidID reports whether a sound identifier is safe to resolve.
func ValidID(id string) bool {
	if id == "" {
		return false
	}
	return !strings.ContainsAny(id, `/\`) && !strings.Contains(id, "..")
}
