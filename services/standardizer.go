package services

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"coffee-dashboard/models"
	"coffee-dashboard/utils"
)

// Standardizer collapses spelling variants of roaster and origin names to one
// canonical display form. Results are memoized by cache snapshot version so
// re-standardizing the same snapshot costs nothing.
type Standardizer struct {
	logger *utils.Logger

	mu          sync.Mutex
	lastVersion uint64
	lastResult  []*models.Bean
}

// NewStandardizer creates a new Standardizer
func NewStandardizer(logger *utils.Logger) *Standardizer {
	return &Standardizer{logger: logger}
}

// normalizeKey lowercases, trims and strips diacritics so accented and plain
// spellings of the same name hit the same table entry.
func normalizeKey(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return s
	}
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}

// StandardizeRoaster returns the canonical spelling of a roaster name, or the
// input unchanged when no variant matches.
func StandardizeRoaster(name string) string {
	if name == "" {
		return name
	}
	if canon, ok := roasterCanonical[normalizeKey(name)]; ok {
		return canon
	}
	return name
}

// StandardizeOrigin returns the canonical spelling of an origin name, or the
// input unchanged when no variant matches.
func StandardizeOrigin(name string) string {
	if name == "" {
		return name
	}
	if canon, ok := originCanonical[normalizeKey(name)]; ok {
		return canon
	}
	return name
}

// Standardize returns a record set of equal length and id order with roaster
// and origin names canonicalized. Input records are never mutated; when no
// record needs a change the input slice is returned as-is to skip the copy.
func (s *Standardizer) Standardize(beans []*models.Bean) []*models.Bean {
	if len(beans) == 0 {
		return beans
	}

	changed := false
	for _, b := range beans {
		if StandardizeRoaster(b.Roaster) != b.Roaster || StandardizeOrigin(b.Origin) != b.Origin {
			changed = true
			break
		}
	}
	if !changed {
		return beans
	}

	result := make([]*models.Bean, len(beans))
	for i, b := range beans {
		clone := *b
		clone.Roaster = StandardizeRoaster(b.Roaster)
		clone.Origin = StandardizeOrigin(b.Origin)
		result[i] = &clone
	}
	return result
}

// StandardizeVersion memoizes Standardize by the store's snapshot version.
// Version zero is never cached.
func (s *Standardizer) StandardizeVersion(version uint64, beans []*models.Bean) []*models.Bean {
	s.mu.Lock()
	defer s.mu.Unlock()

	if version != 0 && version == s.lastVersion && s.lastResult != nil {
		return s.lastResult
	}

	result := s.Standardize(beans)
	s.lastVersion = version
	s.lastResult = result
	return result
}
