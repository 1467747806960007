package tickets

// Config bounds the dashboard scan.
type Config struct {
	// APIKeyConfigured reports whether a tracker API key was provided
	// at startup. Without one the scan cannot run at all.
	APIKeyConfigured bool

	// DaysBack is the scan window in days. Zero falls back to
	// DefaultDaysBack.
	DaysBack int
}

const DefaultDaysBack = 14
