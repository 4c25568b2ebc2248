package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage the project documents addressed by --doc",
}

var pushCmd = &cobra.Command{
	Use:   "push <file> [name]",
	Short: "Publish a project file to redis",
	Long:  `Stores the bytes of <file> under [name] (default: the file base name) so other commands can read it with --doc.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is not configured")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		name := docName(args[0])
		if len(args) == 2 {
			name = args[1]
		}

		src := redisSource()
		defer src.Close()
		if err := src.Put(contextOf(cmd), name, data); err != nil {
			return err
		}
		logger.Info("document published", "name", name, "bytes", len(data))
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}

var listDocsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the documents in redis or --dir",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, closeSrc := documentSource(cmd)
		defer closeSrc()

		names, err := src.List(contextOf(cmd))
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

var removeDocCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a document from redis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is not configured")
		}
		src := redisSource()
		defer src.Close()
		return src.Delete(contextOf(cmd), args[0])
	},
}

func init() {
	docsCmd.AddCommand(pushCmd, listDocsCmd, removeDocCmd)
	rootCmd.AddCommand(docsCmd)
}
