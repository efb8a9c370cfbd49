package logger

// CollectErrorEntriesExported exports collectErrorEntries for testing.
func CollectErrorEntriesExported(err error) []ErrorEntry {
	return collectErrorEntries(err)
}

// FormatErrorEntriesExported exports formatErrorEntries for testing.
func FormatErrorEntriesExported(entries []ErrorEntry) string {
	return formatErrorEntries(entries)
}
