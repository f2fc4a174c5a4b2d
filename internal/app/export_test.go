package app

// SetCompareHash swaps the bcrypt comparison for the duration of a test.
func SetCompareHash(fn func(hash, password []byte) error) (restore func()) {
	prev := compareHash
	compareHash = fn
	return func() { compareHash = prev }
}
