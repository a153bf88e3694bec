package types

import "errors"

// Supported store backend names.
const (
	StoreMemory   = "memory"
	StoreXLSX     = "xlsx"
	StoreGSheets  = "gsheets"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// TelegramConfig enables the optional save notification. Blank token
// disables it.
type TelegramConfig struct {
	Token  string `mapstructure:"token" yaml:"token"`
	ChatID int64  `mapstructure:"chat_id" yaml:"chat_id"`
}

// Config holds backend selection and parameters for the opsboard CLI.
type Config struct {
	Store string `mapstructure:"store" yaml:"store"`

	// xlsx backend: path to the workbook file.
	Workbook string `mapstructure:"workbook" yaml:"workbook"`

	// gsheets backend: spreadsheet ID and optional service-account key file.
	SpreadsheetID   string `mapstructure:"spreadsheet_id" yaml:"spreadsheet_id"`
	CredentialsFile string `mapstructure:"credentials_file" yaml:"credentials_file"`

	// postgres backend: connection string.
	DSN string `mapstructure:"dsn" yaml:"dsn"`

	// sqlite backend: directory holding the database file.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	Telegram TelegramConfig `mapstructure:"telegram" yaml:"telegram"`

	// Users is the static credential table.
	Users []Credential `mapstructure:"users" yaml:"users"`

	// StrictSave pins saves to the base revision observed at load and aborts
	// with ErrStaleBase on mismatch. Off by default: the faithful behavior is
	// last-write-wins whole-table overwrite.
	StrictSave bool `mapstructure:"strict_save" yaml:"strict_save"`
}

// Config validation errors.
var (
	ErrStoreEmpty    = errors.New("store must not be empty")
	ErrStoreUnknown  = errors.New("unknown store backend")
	ErrWorkbookEmpty = errors.New("xlsx store requires workbook path")
	ErrSpreadsheetID = errors.New("gsheets store requires spreadsheet_id")
	ErrDSNEmpty      = errors.New("postgres store requires dsn")
	ErrNoUsers       = errors.New("credential table must not be empty")
)

// knownStores lists the backends that Validate accepts.
var knownStores = map[string]bool{
	StoreMemory:   true,
	StoreXLSX:     true,
	StoreGSheets:  true,
	StorePostgres: true,
	StoreSQLite:   true,
}

// Validate checks that the Config is well-formed, returning a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Store == "" {
		return ErrStoreEmpty
	}
	if !knownStores[c.Store] {
		return ErrStoreUnknown
	}
	switch c.Store {
	case StoreXLSX:
		if c.Workbook == "" {
			return ErrWorkbookEmpty
		}
	case StoreGSheets:
		if c.SpreadsheetID == "" {
			return ErrSpreadsheetID
		}
	case StorePostgres:
		if c.DSN == "" {
			return ErrDSNEmpty
		}
	}
	if len(c.Users) == 0 {
		return ErrNoUsers
	}
	return nil
}
