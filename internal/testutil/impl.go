package testutil

// SentinelBug returns a maximum function that answers 1 whenever the first
// value is sentinel, the same shape of bug examplemax carries.
func SentinelBug(sentinel int32) func(a, b int32) int32 {
	return func(a, b int32) int32 {
		if a == sentinel {
			return 1
		}
		if a > b {
			return a
		}
		return b
	}
}
