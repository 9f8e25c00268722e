package util

// DefaultIfZero returns defaultVal if v is the zero value of V, and v
// otherwise.
func DefaultIfZero[V comparable](v, defaultVal V) V {
	var zeroVal V
	if v == zeroVal {
		return defaultVal
	}
	return v
}
