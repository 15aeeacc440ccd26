package hwio

// IsPow2 reports whether n is a non-zero power of two.
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
