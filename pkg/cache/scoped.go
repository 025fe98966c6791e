package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// This is useful when several casegen servers share one Redis database.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "casegen:staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// BatchKey generates a prefixed key for batch caching.
func (k *ScopedKeyer) BatchKey(constraintsHash string, opts BatchKeyOpts) string {
	return k.prefix + k.inner.BatchKey(constraintsHash, opts)
}
