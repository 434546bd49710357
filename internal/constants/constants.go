package constants

const (
	AppName = "habits"
	Version = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	ConfigFileName = "config.toml"
	HabitsFileName = "habits.json"
	TodosFileName  = "todos.json"
	SQLiteFileName = "habits.db"
	LockFileName   = "habits.lock"
	LogFileName    = "habits.log"

	// Storage backends
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)
