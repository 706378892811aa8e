// Command scicalc evaluates calculator expressions from the command line, an
// interactive prompt, or an HTTP API.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/scicalc"
	"github.com/zephyrtronium/scicalc/internal/config"
	"github.com/zephyrtronium/scicalc/internal/logging"
	"github.com/zephyrtronium/scicalc/internal/repl"
	"github.com/zephyrtronium/scicalc/internal/server"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "scicalc:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "scicalc [expression...]",
		Short:         "Floating-point scientific calculator",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Version = version + " (commit=" + commit + ", built=" + date + ")"
	root.SetVersionTemplate("scicalc version {{.Version}}\n")

	root.PersistentFlags().String("config", "", "YAML configuration file")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error, or none (env SCICALC_LOG_LEVEL)")
	root.PersistentFlags().Int("max-depth", scicalc.DefaultMaxDepth, "maximum parenthesis nesting, 0 for unlimited (env SCICALC_MAX_DEPTH)")

	eval := newEvalCmd()
	root.Flags().AddFlagSet(eval.Flags())
	root.RunE = eval.RunE
	root.AddCommand(eval, newReplCmd(), newBuiltinsCmd(), newServeCmd())
	return root
}

// loadConfig loads the configuration file named by --config and applies the
// persistent flags over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.MaxDepth, _ = cmd.Flags().GetInt("max-depth")
	}
	if cmd.Flags().Changed("fmt") {
		cfg.Format, _ = cmd.Flags().GetString("fmt")
	}
	return cfg, nil
}

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions given as arguments or read from input",
		Long: "Evaluate each argument as an expression. With --in, or when no arguments\n" +
			"are given, the input is read as well: as one expression, or one per line\n" +
			"with -n.",
		RunE: runEval,
	}
	cmd.Flags().String("in", "", "input file, - for stdin (default stdin if no args given)")
	cmd.Flags().String("fmt", "%g", "result formatting verb")
	cmd.Flags().BoolP("lines", "n", false, "treat separate input lines as separate expressions")
	cmd.Flags().Bool("echo", false, "print the grouping of each expression")
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	inname, _ := cmd.Flags().GetString("in")
	lines, _ := cmd.Flags().GetBool("lines")
	echo, _ := cmd.Flags().GetBool("echo")

	var srcs []string
	f, err := infile(cmd, inname, len(args) == 0)
	if err != nil {
		return err
	}
	if f != nil {
		s, err := readExprs(f, lines)
		if err != nil {
			return err
		}
		srcs = append(srcs, s...)
	}
	srcs = append(srcs, args...)

	out := cmd.OutOrStdout()
	verb := cfg.Format + "\n"
	failed := 0
	for _, src := range srcs {
		e, err := scicalc.Parse(src, cfg.Options()...)
		var r float64
		if err == nil {
			if echo {
				fmt.Fprintf(out, "%v : ", e)
			}
			r, err = e.Eval()
		}
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			failed++
			continue
		}
		fmt.Fprintf(out, verb, r)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
	}
	return nil
}

// infile opens the input named by inname. With an empty name, the input is
// stdin if std is true and nothing otherwise.
func infile(cmd *cobra.Command, inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		cmd.PostRunE = func(*cobra.Command, []string) error { return f.Close() }
		return f, nil
	case inname == "-", std:
		return cmd.InOrStdin(), nil
	}
	return nil, nil
}

// readExprs reads the whole input as one expression, or each non-blank line
// as its own expression if lines is true.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			srcs = append(srcs, sc.Text())
		}
	}
	return srcs, sc.Err()
}

func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			echo, _ := cmd.Flags().GetBool("echo")
			r := repl.New(cfg.Format, echo, cfg.Options()...)
			in, out := cmd.InOrStdin(), cmd.OutOrStdout()
			if in == os.Stdin && out == os.Stdout {
				return r.RunTerminal(os.Stdin, os.Stdout)
			}
			return r.Run(in, out)
		},
	}
	cmd.Flags().String("fmt", "%g", "result formatting verb")
	cmd.Flags().Bool("echo", false, "print the grouping of each expression")
	return cmd
}

func newBuiltinsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "builtins",
		Short: "List the recognized constants, functions, and operators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, b := range scicalc.Builtins() {
				extra := ""
				switch b.Kind {
				case scicalc.TokenConst:
					extra = "= " + strconv.FormatFloat(b.Value, 'g', -1, 64)
				case scicalc.TokenOp:
					extra = "precedence " + strconv.Itoa(b.Prec)
				}
				fmt.Fprintf(out, "%-6s %-9s %-22s %s\n", b.Kind, b.Name, strings.Join(b.Spellings, " "), extra)
			}
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().String("host", "", "bind address (default 0.0.0.0, env SCICALC_HOST)")
	cmd.Flags().Int("port", 0, "HTTP server port (default 8080, env SCICALC_PORT)")
	cmd.Flags().Int("cache-size", -1, "number of results to cache, 0 to disable (default 1024)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("host"); v != "" {
		cfg.Server.Host = v
	}
	if v, _ := cmd.Flags().GetInt("port"); v != 0 {
		cfg.Server.Port = v
	}
	if v, _ := cmd.Flags().GetInt("cache-size"); v >= 0 {
		cfg.Server.CacheSize = v
	}

	log := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	srv := server.New(log, cfg.Server.CacheSize, cfg.Options()...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			log.Error("shutdown", "err", err)
		}
	}()

	err = srv.Listen(cfg.Addr())
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	return err
}
