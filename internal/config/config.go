package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/logger"
	"github.com/pkg/errors"
)

const (
	defaultAppName          = "clubhouse"
	defaultDBPath           = "data/club.db"
	defaultExportDir        = "exports"
	defaultPromNamespace    = "club"
	defaultOverdueGraceDays = 35
	defaultSponsorAlertDays = 30
)

var (
	defaultMemberCategories  = []string{"U9", "U11", "U13", "U15", "U17", "First Team", "Veterans", "Social"}
	defaultIncomeCategories  = []string{model.DuesCategory, "Sponsorship", "Events", "Canteen", "Donations", "Other Income"}
	defaultExpenseCategories = []string{"Referees", "Equipment", "Travel", "Maintenance", "Utilities", "Other Expense"}
)

var config *Config

// Config holds every setting of the application. Only this struct must be
// used to read configuration values, no direct access to env or files.
type Config struct {
	AppEnv   string `env:"APP_ENV"`
	AppName  string `env:"APP_NAME"`
	AppDebug bool   `env:"APP_DEBUG"`
	LogLevel string `env:"LOG_LEVEL"`

	DBPath          string `env:"DB_PATH"`
	DBBusyTimeoutMs int    `env:"DB_BUSY_TIMEOUT_MS"`

	ExportDir       string `env:"EXPORT_DIR"`
	MetricsTextfile string `env:"METRICS_TEXTFILE"`
	PromNamespace   string `env:"PROM_NAMESPACE"`

	ClubName    string `env:"CLUB_NAME"`
	ClubCity    string `env:"CLUB_CITY"`
	ClubSport   string `env:"CLUB_SPORT"`
	ClubPhone   string `env:"CLUB_PHONE"`
	ClubEmail   string `env:"CLUB_EMAIL"`
	ClubAddress string `env:"CLUB_ADDRESS"`

	MemberCategories  string `env:"MEMBER_CATEGORIES"`
	IncomeCategories  string `env:"INCOME_CATEGORIES"`
	ExpenseCategories string `env:"EXPENSE_CATEGORIES"`

	OverdueGraceDays int `env:"OVERDUE_GRACE_DAYS"`
	SponsorAlertDays int `env:"SPONSOR_ALERT_DAYS"`
}

// ClubSettings is the club identity and the configured category lists,
// handed to the services and exporters.
type ClubSettings struct {
	Name              string
	City              string
	Sport             string
	Phone             string
	Email             string
	Address           string
	MemberCategories  []string
	IncomeCategories  []string
	ExpenseCategories []string
	OverdueGraceDays  int
	SponsorAlertDays  int
}

// EnvPath picks the env file to load: the --env=path argument when that file
// exists, otherwise ./.env when present, otherwise none.
func EnvPath(args []string) string {
	for _, v := range args {
		if path, ok := strings.CutPrefix(v, "--env="); ok {
			if _, err := os.Stat(path); err != nil {
				logger.Error("failed to open the passed env file", "path", path, "error", err)
				return ""
			}
			return path
		}
	}
	if _, err := os.Stat(".env"); err != nil {
		return ""
	}
	return ".env"
}

func Load(path string) error {
	logger.Info("loading configs..", "path", path)
	c := &Config{}
	var err error
	if path != "" {
		logger.Info("trying to publish env from file", "path", path)
		err = godotenv.Load(path)
		if err != nil {
			return errors.Wrapf(err, "failed to load configuration file %s", path)
		}
	}

	_, err = env.UnmarshalFromEnviron(c)
	if err != nil {
		return errors.Wrap(err, "failed to map env variables to Configuration object")
	}
	c.applyDefaults()

	config = c
	return nil
}

func Get() *Config {
	if config == nil {
		logger.Panic("Config is not initialized")
	}
	return config
}

// Set replaces the loaded configuration. Used by tests and tools that build
// a Config by hand.
func Set(c *Config) {
	c.applyDefaults()
	config = c
}

func (c *Config) applyDefaults() {
	if c.AppEnv == "" {
		c.AppEnv = "dev"
	}
	if c.AppName == "" {
		c.AppName = defaultAppName
	}
	if c.DBPath == "" {
		c.DBPath = defaultDBPath
	}
	if c.ExportDir == "" {
		c.ExportDir = defaultExportDir
	}
	if c.PromNamespace == "" {
		c.PromNamespace = defaultPromNamespace
	}
	if c.ClubName == "" {
		c.ClubName = "Sports Club"
	}
	if c.OverdueGraceDays <= 0 {
		c.OverdueGraceDays = defaultOverdueGraceDays
	}
	if c.SponsorAlertDays <= 0 {
		c.SponsorAlertDays = defaultSponsorAlertDays
	}
}

// Club returns the settings consumed by the services and export layers.
func (c *Config) Club() ClubSettings {
	return ClubSettings{
		Name:              c.ClubName,
		City:              c.ClubCity,
		Sport:             c.ClubSport,
		Phone:             c.ClubPhone,
		Email:             c.ClubEmail,
		Address:           c.ClubAddress,
		MemberCategories:  splitList(c.MemberCategories, defaultMemberCategories),
		IncomeCategories:  splitList(c.IncomeCategories, defaultIncomeCategories),
		ExpenseCategories: splitList(c.ExpenseCategories, defaultExpenseCategories),
		OverdueGraceDays:  c.OverdueGraceDays,
		SponsorAlertDays:  c.SponsorAlertDays,
	}
}

// EnsureDirs creates the directories holding the database file and exports.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{filepath.Dir(c.DBPath), c.ExportDir} {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create directory %s", dir)
		}
	}
	return nil
}

// splitList parses a comma separated list; an empty value yields fallback.
func splitList(raw string, fallback []string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), fallback...)
	}
	return out
}

// HasCategory reports whether category is one of the configured values.
func HasCategory(categories []string, category string) bool {
	for _, c := range categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}
