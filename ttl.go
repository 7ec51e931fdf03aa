package rustdocs

import "time"

// TTLClass buckets cached content by how quickly it can go stale.
type TTLClass int

// TTL classes.
const (
	// TTLSearch covers registry search results.
	TTLSearch TTLClass = iota
	// TTLLatest covers pages resolved through the "latest" pointer.
	TTLLatest
	// TTLVersioned covers pages at a pinned version, which never change.
	TTLVersioned
)

func (c TTLClass) String() string {
	switch c {
	case TTLSearch:
		return "search"
	case TTLLatest:
		return "latest"
	case TTLVersioned:
		return "versioned"
	default:
		return "unknown"
	}
}

// TTLPolicy maps each TTLClass to a duration.
type TTLPolicy struct {
	Search    time.Duration
	Latest    time.Duration
	Versioned time.Duration
}

// DefaultTTLPolicy returns 30 minutes for searches, 2 hours for latest
// pages and 24 hours for pinned versions.
func DefaultTTLPolicy() TTLPolicy {
	return TTLPolicy{
		Search:    30 * time.Minute,
		Latest:    2 * time.Hour,
		Versioned: 24 * time.Hour,
	}
}

// ClassFor returns TTLLatest for the "latest" sentinel (or an empty version)
// and TTLVersioned otherwise.
func ClassFor(version string) TTLClass {
	if NormalizeVersion(version) == LatestVersion {
		return TTLLatest
	}
	return TTLVersioned
}

// Duration returns the TTL for class. Unset fields fall back to
// DefaultTTLPolicy.
func (p TTLPolicy) Duration(class TTLClass) time.Duration {
	def := DefaultTTLPolicy()
	switch class {
	case TTLSearch:
		return orDefault(p.Search, def.Search)
	case TTLLatest:
		return orDefault(p.Latest, def.Latest)
	default:
		return orDefault(p.Versioned, def.Versioned)
	}
}

// ForVersion is shorthand for p.Duration(ClassFor(version)).
func (p TTLPolicy) ForVersion(version string) time.Duration {
	return p.Duration(ClassFor(version))
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
