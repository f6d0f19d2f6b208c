package util

// Val returns the value p points at, or fallback when p is nil.
func Val[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}

	return fallback
}
