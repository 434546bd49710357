package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/iblamekonradzuse/habit-tracker/internal/constants"
)

type Keymap struct {
	Quit        string `toml:"quit"`
	Up          string `toml:"up"`
	Down        string `toml:"down"`
	Toggle      string `toml:"toggle"`
	Delete      string `toml:"delete"`
	NextTab     string `toml:"next_tab"`
	PreviousTab string `toml:"previous_tab"`
	AddHabit    string `toml:"add_habit"`
	AddCategory string `toml:"add_category"`
	AddTodo     string `toml:"add_todo"`
	Edit        string `toml:"edit"`
	Rename      string `toml:"rename"`
	DayForward  string `toml:"day_forward"`
	DayBack     string `toml:"day_back"`
	WeekForward string `toml:"week_forward"`
	WeekBack    string `toml:"week_back"`
	Confirm     string `toml:"confirm"`
	Cancel      string `toml:"cancel"`
}

type Config struct {
	DataDir string `toml:"data_dir"`
	Backend string `toml:"backend"`
	Debug   bool   `toml:"debug"`
	Keys    Keymap `toml:"keys"`
}

// Dir returns the configuration directory, honoring the HABITS_CONFIG_DIR
// override used in tests and scripts.
func Dir() (string, error) {
	if dir := os.Getenv("HABITS_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, constants.AppName), nil
}

// LoadOrCreate reads the TOML config at path, writing defaults first if
// it does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default(filepath.Dir(path))
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Dir(path)
	}
	if cfg.Backend == "" {
		cfg.Backend = constants.BackendJSON
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func Default(dataDir string) Config {
	return Config{
		DataDir: dataDir,
		Backend: constants.BackendJSON,
		Keys: Keymap{
			Quit:        "q",
			Up:          "k",
			Down:        "j",
			Toggle:      " ",
			Delete:      "d",
			NextTab:     "tab",
			PreviousTab: "shift+tab",
			AddHabit:    "a",
			AddCategory: "A",
			AddTodo:     "t",
			Edit:        "e",
			Rename:      "r",
			DayForward:  "l",
			DayBack:     "h",
			WeekForward: "]",
			WeekBack:    "[",
			Confirm:     "enter",
			Cancel:      "esc",
		},
	}
}
