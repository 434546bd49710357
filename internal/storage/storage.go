package storage

import (
	"fmt"
	"path/filepath"

	"github.com/iblamekonradzuse/habit-tracker/internal/constants"
)

// NewProvider constructs the backend named in the configuration. The
// zero value of backend selects JSON.
func NewProvider(backend, dataDir string) (Provider, error) {
	switch backend {
	case "", constants.BackendJSON:
		return NewJSONStore(dataDir), nil
	case constants.BackendSQLite:
		return NewSQLiteStore(filepath.Join(dataDir, constants.SQLiteFileName)), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want %q or %q)", backend, constants.BackendJSON, constants.BackendSQLite)
	}
}
