// Package timezones exposes a curated catalog of IANA zones for the
// timezone picker, with typo-tolerant search over city names.
package timezones

import (
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

// Option is one selectable zone. City and Region are derived from the
// IANA identifier for display.
type Option struct {
	ID     string
	City   string
	Region string
}

// Options returns the full catalog in region-grouped display order.
func Options() []Option {
	return append([]Option(nil), catalog...)
}

// Regions lists region groups in the order they appear in the catalog.
func Regions() []string {
	seen := make(map[string]bool, 8)
	out := make([]string, 0, 8)
	for _, opt := range catalog {
		if seen[opt.Region] {
			continue
		}
		seen[opt.Region] = true
		out = append(out, opt.Region)
	}
	return out
}

// Find looks up a catalog entry by IANA id.
func Find(id string) (Option, bool) {
	for _, opt := range catalog {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Load resolves an IANA id to a location. An empty id means the host's
// local zone. Identifiers outside the catalog still load if the
// platform knows them.
func Load(id string) (*time.Location, error) {
	if strings.TrimSpace(id) == "" {
		return time.Local, nil
	}
	return time.LoadLocation(id)
}

// Locate is the lenient Load: unknown ids fall back to the host zone
// so a stale setting never breaks rendering. Validation paths use Load
// and surface the error instead.
func Locate(id string) *time.Location {
	loc, err := Load(id)
	if err != nil {
		return time.Local
	}
	return loc
}

type scoredOption struct {
	opt   Option
	score float64
	index int
}

// Search ranks the catalog against a query. Exact and substring hits
// on the city or id rank first; close misspellings are kept by
// normalized edit distance. An empty query returns the catalog order.
func Search(query string, limit int) []Option {
	q := normalize(query)
	if q == "" {
		out := Options()
		if limit > 0 && len(out) > limit {
			out = out[:limit]
		}
		return out
	}
	ranked := make([]scoredOption, 0, len(catalog))
	for i, opt := range catalog {
		score, ok := matchScore(opt, q)
		if !ok {
			continue
		}
		ranked = append(ranked, scoredOption{opt: opt, score: score, index: i})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].index < ranked[j].index
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]Option, len(ranked))
	for i, row := range ranked {
		out[i] = row.opt
	}
	return out
}

func matchScore(opt Option, q string) (float64, bool) {
	city := normalize(opt.City)
	id := normalize(opt.ID)
	switch {
	case city == q || id == q:
		return 3, true
	case strings.HasPrefix(city, q):
		return 2.5, true
	case strings.Contains(city, q):
		return 2, true
	case strings.Contains(id, q):
		return 1.5, true
	}
	dist := levenshtein.ComputeDistance(city, q)
	maxlen := len(city)
	if len(q) > maxlen {
		maxlen = len(q)
	}
	if maxlen == 0 {
		return 0, false
	}
	norm := float64(dist) / float64(maxlen)
	if norm >= 0.5 {
		return 0, false
	}
	return 1 - norm, true
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", " ")
	return s
}
