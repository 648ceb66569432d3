package config

import "os"

// JournalPath is empty when no move journal should be kept.
func JournalPath() string {
	return os.Getenv("SWEEPER_JOURNAL")
}
