package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/sboard"
	"github.com/aretw0/sboard/internal/config"
	"github.com/aretw0/sboard/internal/logging"
	"github.com/aretw0/sboard/internal/presentation/tui"
	"github.com/aretw0/sboard/pkg/adapters/file"
	"github.com/aretw0/sboard/pkg/adapters/redis"
	"github.com/aretw0/sboard/pkg/ports"
	"github.com/spf13/cobra"
)

var (
	cfg    = config.Default()
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "sboard",
	Short: "sboard reads Storyboard Pro project documents",
	Long: `sboard loads a .sboard project and navigates its timeline, scenes, panels,
layer graphs and asset library. It never modifies the document.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "", "Project document (.sboard)")
	rootCmd.PersistentFlags().String("doc", "", "Document name to read from redis (when configured) or --dir, instead of --file")
	rootCmd.PersistentFlags().String("dir", ".", "Directory of .sboard documents used by --doc when redis is not configured")
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}

// setup loads the configuration and builds the logger. Flags win over the file.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if f, _ := cmd.Flags().GetString("file"); f != "" {
		cfg.File = f
	}
	logger = logging.New(logging.ParseLevel(cfg.LogLevel))
	return nil
}

// openProject loads the project named by --doc or --file.
func openProject(cmd *cobra.Command) (*sboard.Project, error) {
	opts := []sboard.Option{sboard.WithLogger(logger)}

	if doc, _ := cmd.Flags().GetString("doc"); doc != "" {
		src, closeSrc := documentSource(cmd)
		defer closeSrc()
		return sboard.OpenSource(contextOf(cmd), src, doc, opts...)
	}

	if cfg.File == "" {
		return nil, fmt.Errorf("no project document: pass --file or set file in %s", config.DefaultPath)
	}
	return sboard.Open(cfg.File, opts...)
}

// documentSource returns the redis source when redis.addr is configured and
// the --dir directory otherwise.
func documentSource(cmd *cobra.Command) (ports.DocumentSource, func()) {
	if cfg.Redis.Addr != "" {
		src := redisSource()
		return src, func() { _ = src.Close() }
	}
	dir, _ := cmd.Flags().GetString("dir")
	return file.New(dir), func() {}
}

func redisSource() *redis.Source {
	return redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
		redis.WithPrefix(cfg.Redis.Prefix),
		redis.WithTTL(cfg.Redis.TTL),
	)
}

// emit writes a markdown report, styled with glamour when stdout is a terminal.
func emit(cmd *cobra.Command, markdown string) error {
	w := cmd.OutOrStdout()
	if f, ok := w.(*os.File); ok {
		out, err := tui.Render(f, markdown)
		if err != nil {
			return err
		}
		markdown = out
	}
	_, err := io.WriteString(w, markdown)
	return err
}

func docName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func logAttrs(p *sboard.Project) []any {
	return []any{slog.String("project", p.Name), slog.String("title", p.Title())}
}
