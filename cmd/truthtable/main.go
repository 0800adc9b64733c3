// Command truthtable prints truth tables for propositional logic statements.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"nickandperla.net/truthtable/internal/config"
	"nickandperla.net/truthtable/pkg/truthtable"
)

var (
	// Global flags
	verbose      bool
	configPath   string
	dbPath       string
	storeBackend string
	maxVariables int
	noColor      bool

	cfg    *config.Config
	logger *zap.Logger
	calc   *truthtable.Calculator
)

// errReported marks an error whose message has already been shown to the user.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "truthtable [statements]",
	Short: "Print the truth table of propositional logic statements",
	Long: `truthtable compiles comma-separated logic statements and prints the value
of each statement under every assignment of its variables.

Operators may be written as words or symbols:
  not p, !p, ¬p          negation
  p and q, p & q, p /\ q conjunction
  p or q, p | q, p \/ q  disjunction
  p then q, p -> q       implication
  p <-> q, p = q         biconditional
  p xor q, p (+) q       exclusive-or
  T, true, F, false      constants

Example:
  truthtable "p -> q, not p or q"

With no arguments, statements are read from stdin, or an interactive prompt
starts when stdin is a terminal.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runCompute,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "truthtable.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path for the table cache")
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "", "Table cache backend: sqlite, memory or none")
	rootCmd.PersistentFlags().IntVar(&maxVariables, "max-vars", 0, "Maximum number of variables (0 uses the config value)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(replCmd, lastCmd, historyCmd, clearCmd, configCmd)
}

func main() {
	err := rootCmd.Execute()
	cleanup()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// setup loads the config, applies flag overrides and builds the logger and calculator.
func setup(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd, args); err != nil {
		return err
	}

	var err error
	logger, err = cfg.Logging.NewLogger(verbose)
	if err != nil {
		return err
	}

	opts := []truthtable.Option{
		truthtable.WithLogger(logger),
		truthtable.WithMaxVariables(cfg.Limits.MaxVariables),
		truthtable.WithMaxStatements(cfg.Limits.MaxStatements),
	}
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		opts = append(opts, truthtable.WithSQLiteStore(cfg.Store.Path))
	case config.BackendMemory:
		opts = append(opts, truthtable.WithMemoryStore())
	}

	calc, err = truthtable.New(opts...)
	if err != nil {
		return err
	}
	logger.Debug("calculator ready",
		zap.String("config", configPath),
		zap.String("store", cfg.Store.Backend),
		zap.Int("max_variables", cfg.Limits.MaxVariables),
	)
	return nil
}

// loadConfig loads the config file and environment, then applies flag overrides.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags win over file and environment
	if dbPath != "" {
		cfg.Store.Backend = config.BackendSQLite
		cfg.Store.Path = dbPath
	}
	if storeBackend != "" {
		cfg.Store.Backend = storeBackend
	}
	if maxVariables > 0 {
		cfg.Limits.MaxVariables = maxVariables
	}
	if noColor {
		cfg.Display.Color = false
	}
	return cfg.Validate()
}

// runCompute evaluates statements from the arguments or stdin, or starts the REPL.
func runCompute(cmd *cobra.Command, args []string) error {
	r := newRenderer(cmd.OutOrStdout(), cfg.Display)

	if len(args) > 0 {
		return compute(r, strings.Join(args, " "))
	}

	if isTerminal(os.Stdin) {
		return runREPL(cmd.InOrStdin(), r)
	}

	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	// Each line of piped input is one computation
	for _, line := range strings.Split(string(input), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := compute(r, line); err != nil {
			return err
		}
	}
	return nil
}

// compute runs one computation and prints the table or the error banner.
func compute(r *renderer, input string) error {
	t, elapsed, err := timed(func() (*truthtable.Table, error) {
		return calc.ComputeTruthTable(input)
	})
	if err != nil {
		r.Error(err)
		return errReported
	}
	r.Table(t, elapsed)
	return nil
}

// cleanup runs after every command, including failed ones.
func cleanup() {
	if calc != nil {
		calc.Close()
	}
	if logger != nil {
		_ = logger.Sync()
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
