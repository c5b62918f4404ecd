package cache

// ScopedKeyer prefixes every key of another Keyer. Two tools sharing one
// Redis database use it to keep their entries apart:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "graphcolor:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner (DefaultKeyer if nil) with prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ColoringKey returns the prefixed coloring key.
func (k *ScopedKeyer) ColoringKey(graphHash string, opts ColoringKeyOpts) string {
	return k.prefix + k.inner.ColoringKey(graphHash, opts)
}
