package types

// DefaultMap is a generic map wrapper that returns default values for missing
// keys, storing the generated value on first access.
//
//	m := NewDefaultMap[string](func() []string { return nil })
//	m.Set("0xabc", append(m.Get("0xabc"), "tx"))
type DefaultMap[K comparable, V any] struct {
	data        map[K]V  // underlying map storing the key-value pairs
	keys        []K      // keys in first-access order
	defaultFunc func() V // function used to generate default values for missing keys
}

// NewDefaultMap creates a new DefaultMap with a user-defined default function.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get retrieves the value associated with the given key. If the key is not
// present, the default value is generated, stored and returned.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.Set(key, val)
	return val
}

// Set assigns a value to the given key.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	if _, ok := d.data[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.data[key] = val
}

// Keys returns the keys in the order they were first stored.
func (d *DefaultMap[K, V]) Keys() []K {
	return d.keys
}

// ToMap returns the underlying map used by the DefaultMap.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}
