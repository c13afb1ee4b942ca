package config

// Default paths used when the corresponding environment variables are unset
const (
	// DefaultDatabasePath is the sqlite fallback database location
	DefaultDatabasePath = "./edtailor.db"

	// DefaultSeedDataDir is where the JSON fixture files live
	DefaultSeedDataDir = "./seed_data"
)
