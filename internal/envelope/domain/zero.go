package domain

// Zero overwrites b in place. Key material, derived secrets and plaintext
// buffers are passed here once they are no longer needed.
func Zero(b []byte) {
	clear(b)
}
