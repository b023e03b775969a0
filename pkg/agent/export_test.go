package agent

// SetMaxBodyBytes lowers the page size limit for a test
func SetMaxBodyBytes(n int64) (restore func()) {
	prev := maxBodyBytes
	maxBodyBytes = n
	return func() { maxBodyBytes = prev }
}
