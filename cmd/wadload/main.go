package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/jchantrell/wadload/internal/config"
	"github.com/jchantrell/wadload/internal/iwad"
)

var (
	cfg     *config.Config
	cfgFile string

	wadDir     string
	files      []string
	shdev      bool
	regdev     bool
	comdev     bool
	dbPath     string
	logLevel   string
	logFormat  string
	noProgress bool
)

var rootCmd = &cobra.Command{
	Use:   "wadload",
	Short: "Inspect and extract lumps from Doom WAD archives",
	Long: `wadload loads a primary IWAD plus any number of patch WADs and standalone
lump files, resolving lump names the way the game does: files given later
override earlier ones, and later directory entries override earlier entries in
the same archive.

The IWAD is searched for in DOOMWADDIR (or the current directory). Prefix a
--file path with ~ to re-read it from disk on every lump read.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load .env: %w", err)
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if cmd.Flags().Changed("wad-dir") {
			cfg.WadDir = wadDir
		}
		if cmd.Flags().Changed("file") {
			cfg.Files = files
		}
		if cmd.Flags().Changed("database") {
			cfg.Database = dbPath
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = logFormat
		}
		switch {
		case shdev:
			cfg.DevMode = iwad.DevShareware
		case regdev:
			cfg.DevMode = iwad.DevRegistered
		case comdev:
			cfg.DevMode = iwad.DevCommercial
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		var level slog.Level
		switch cfg.LogLevel {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}

		var handler slog.Handler
		if cfg.LogFormat == "json" {
			handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})
		} else {
			handler = tint.NewHandler(os.Stderr, &tint.Options{
				Level: level,
			})
		}

		slog.SetDefault(slog.New(handler))

		slog.Debug("Configuration",
			"wad_dir", cfg.WadDir,
			"files", cfg.Files,
			"dev_mode", cfg.DevMode,
			"database", cfg.Database,
			"log_level", cfg.LogLevel,
			"log_format", cfg.LogFormat)

		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.doomrc, then ./.doomrc)")
	rootCmd.PersistentFlags().StringVarP(&wadDir, "wad-dir", "w", "", "directory searched for the IWAD (default $DOOMWADDIR or pwd)")
	rootCmd.PersistentFlags().StringArrayVarP(&files, "file", "f", []string{}, "patch WAD or .lmp file loaded after the IWAD, repeat for more, in order")
	rootCmd.PersistentFlags().BoolVar(&shdev, "shdev", false, "load shareware developer data next to the executable")
	rootCmd.PersistentFlags().BoolVar(&regdev, "regdev", false, "load registered developer data next to the executable")
	rootCmd.PersistentFlags().BoolVar(&comdev, "comdev", false, "load commercial developer data next to the executable")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "database", "d", "", "index database file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable progress bar")
	rootCmd.MarkFlagsMutuallyExclusive("shdev", "regdev", "comdev")
}
