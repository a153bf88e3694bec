// Root command for the opsboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dukaforge/opsboard/internal/auth"
	"github.com/dukaforge/opsboard/internal/notify"
	"github.com/dukaforge/opsboard/internal/paths"
	"github.com/dukaforge/opsboard/internal/sheet"
	"github.com/dukaforge/opsboard/pkg/opsboard"
	"github.com/dukaforge/opsboard/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagUser      string
	flagPassword  string
	flagJSON      bool
)

// appContext carries everything one invocation needs: the loaded config, the
// logged-in session, the opened store, and the optional notifier. Built fresh
// in PersistentPreRunE and discarded when the command exits; the session
// never outlives the invocation.
type appContext struct {
	cfg      types.Config
	session  *types.Session
	store    sheet.Store
	notifier *notify.Telegram
}

// app is the context for the running invocation.
var app *appContext

var rootCmd = &cobra.Command{
	Use:     "opsboard",
	Short:   "Opsboard is a spreadsheet-backed operations dashboard",
	Version: opsboard.Version,
	Long: `Opsboard manages the production, packing, store, ecommerce, and order
worksheets of a shared spreadsheet. Every command loads the whole worksheet,
works on it in memory, and saves by overwriting the whole worksheet.`,
	PersistentPreRunE: initApp,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory for the sqlite store (default: $(CWD)/.opsboard-db)")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "username (default: $OPSBOARD_USER)")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "password (default: $OPSBOARD_PASSWORD)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(newModuleCmd(types.ModuleProduction))
	rootCmd.AddCommand(newModuleCmd(types.ModulePacking))
	rootCmd.AddCommand(newStoreCmd())
	rootCmd.AddCommand(newEcommerceCmd())
	rootCmd.AddCommand(newOrderCmd())
}

// initApp loads configuration, logs the user in, and opens the store.
// The version and init commands run without a session.
func initApp(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	// Backend credentials may live in a .env next to the checkout.
	_ = godotenv.Load()

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	cfg, err := buildConfig(v)
	if err != nil {
		return err
	}

	if cmd.Name() == "init" {
		app = &appContext{cfg: cfg}
		return nil
	}

	username := flagUser
	if username == "" {
		username = os.Getenv("OPSBOARD_USER")
	}
	password := flagPassword
	if password == "" {
		password = os.Getenv("OPSBOARD_PASSWORD")
	}
	session, err := auth.Login(cfg.Users, username, password)
	if err != nil {
		return err
	}

	store, err := openStore(cmd, cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store, err)
	}

	notifier, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)
	if err != nil {
		return fmt.Errorf("telegram notifier: %w", err)
	}

	app = &appContext{cfg: cfg, session: session, store: store, notifier: notifier}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("opsboard v" + opsboard.Version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the default configuration file",
	Long:  `Init resolves the configuration directory and writes a commented default config.yaml if none exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}
		fmt.Printf("configuration directory: %s\n", configDir)
		fmt.Printf("store backend: %s\n", app.cfg.Store)
		return nil
	},
}
