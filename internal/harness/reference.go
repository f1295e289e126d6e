package harness

// ReferenceMax is the default reference model.
func ReferenceMax(a, b int32) int32 {
	return max(a, b)
}
