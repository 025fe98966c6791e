package cache

// Keyer builds cache keys.
type Keyer interface {
	// BatchKey returns the key for a batch generated from the constraint
	// document with the given hash.
	BatchKey(constraintsHash string, opts BatchKeyOpts) string
}

// BatchKeyOpts are the request parameters that change a batch's content.
// Version identifies the generator output format, so entries written by an
// older release are never served after generation changes.
type BatchKeyOpts struct {
	Version string `json:"version"`
	Seed    int64  `json:"seed"`
	Count   int    `json:"count"`
}

// DefaultKeyer produces keys of the form "batch:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// BatchKey implements Keyer.
func (DefaultKeyer) BatchKey(constraintsHash string, opts BatchKeyOpts) string {
	return hashKey("batch", constraintsHash, opts)
}
