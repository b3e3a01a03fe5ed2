// internal/words/words.go
//
// Dictionary provider for the solver.
//
// Responsibilities:
//   - Load named dictionaries from a configured directory ("<name>.json" as a
//     flat JSON string array, or "<name>.txt" one word per line), falling back
//     to the embedded default english list.
//   - Normalize words to lowercase and drop non-alphabetic entries.
//   - Serve repeat lookups from an in-memory read-through cache.
//   - Distinguish "unknown dictionary" from "malformed dictionary data".
//
// Cache notes:
//   • Cached word lists are immutable once stored; callers must not mutate
//     the returned slice.
//   • Population is check-then-write under RWMutex; a racing double load
//     writes identical content, so the last write winning is harmless.
//
// Environment:
//   DICT_DIR=/path/to/dictionaries  (optional; embedded default otherwise)

package words

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/assets"
)

// DefaultName is the dictionary used when a request names none.
const DefaultName = "english"

var (
	// ErrNotFound means no dictionary with the requested name exists.
	ErrNotFound = errors.New("dictionary not found")
	// ErrBadFormat means the dictionary file exists but is not a flat list
	// of strings.
	ErrBadFormat = errors.New("invalid dictionary format")
)

// Provider loads and caches named word lists.
type Provider struct {
	dir   string
	mu    sync.RWMutex
	cache map[string][]string
}

// NewProvider constructs a Provider reading from dir. An empty dir serves
// only the embedded default dictionary.
func NewProvider(dir string) *Provider {
	return &Provider{dir: dir, cache: make(map[string][]string)}
}

// Load returns the word list for name (lowercased, alphabetic words only).
// Results are cached for the life of the process. The returned slice is
// shared; callers must treat it as read-only.
func (p *Provider) Load(name string) ([]string, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		name = DefaultName
	}
	// Trim a ".json" suffix so clients using the original storage names
	// ("english.json") keep working.
	name = strings.TrimSuffix(name, ".json")
	if !validName(name) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	p.mu.RLock()
	list, ok := p.cache[name]
	p.mu.RUnlock()
	if ok {
		return list, nil
	}

	list, err := p.read(name)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.cache[name] = list
	p.mu.Unlock()
	log.Info().Str("dictionary", name).Int("words", len(list)).Msg("dictionary loaded")
	return list, nil
}

// read resolves name to a file (or the embedded default) and parses it.
func (p *Provider) read(name string) ([]string, error) {
	if p.dir != "" {
		jsonPath := filepath.Join(p.dir, name+".json")
		if raw, err := os.ReadFile(jsonPath); err == nil {
			return parseJSON(name, raw)
		}
		txtPath := filepath.Join(p.dir, name+".txt")
		if raw, err := os.ReadFile(txtPath); err == nil {
			return normalize(strings.Split(string(raw), "\n")), nil
		}
	}
	if name == DefaultName {
		lines, err := assets.EnglishList()
		if err != nil {
			return nil, fmt.Errorf("embedded default dictionary: %w", err)
		}
		return normalize(lines), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// parseJSON decodes a flat JSON string array. Anything else (objects,
// numbers, nested arrays) is a format error, not a not-found.
func parseJSON(name string, raw []byte) ([]string, error) {
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: %q is not a flat list of strings", ErrBadFormat, name)
	}
	return normalize(list), nil
}

// normalize lowercases, trims, and keeps only alphabetic words.
func normalize(in []string) []string {
	out := make([]string, 0, len(in))
	for _, w := range in {
		w = strings.TrimSpace(strings.ToLower(w))
		if w != "" && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// validName permits simple identifiers only, so a dictionary name can never
// escape the configured directory.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !(r == '-' || r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// Stats returns the cached dictionary names (sorted) with their word counts.
func (p *Provider) Stats() map[string]int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]int, len(p.cache))
	for name, list := range p.cache {
		out[name] = len(list)
	}
	return out
}

// Names returns the cached dictionary names in sorted order.
func (p *Provider) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.cache))
	for name := range p.cache {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
