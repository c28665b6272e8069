package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ringmap/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "ringmap [file]",
	Short: "terminal viewer for polygon datasets",
	Long: `ringmap renders GeoJSON, WKT, CSV and KML datasets as braille maps in
the terminal. Polygon rings are simplified on the fly at the current zoom,
and the mouse inspects the nearest feature boundary.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.Float64("tolerance", 1, "screen-space simplification tolerance in braille pixels")
	flags.String("log-file", "", "append debug logs to this file")
	flags.Bool("debug", false, "enable debug logging")
	cobra.CheckErr(viper.BindPFlags(flags))
	viper.SetEnvPrefix("ringmap")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// readConfig loads an optional .ringmap.yaml from the working directory or
// the home directory. A missing file is fine.
func readConfig() error {
	viper.SetConfigName(".ringmap")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "read config")
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	if err := readConfig(); err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if path := viper.GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return errors.Wrap(err, "open log file")
		}
		defer f.Close()
		log.SetOutput(f)
	}
	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}

	opts := tui.Options{Tolerance: viper.GetFloat64("tolerance")}
	if len(args) == 1 {
		opts.Path = args[0]
	}
	p := tea.NewProgram(tui.New(opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run program")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ringmap:", err)
		os.Exit(1)
	}
}
