// Command bbsgraph is the interactive console driver: it generates random
// directed weighted graphs from a Blum–Blum–Shub bit stream and answers
// path and cycle queries against them, snapshotting each graph to disk
// before it is replaced.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bbsgraph/bbs"
	"github.com/katalvlaran/bbsgraph/session"
)

var (
	flagSaveDir string
	flagBits    int
)

// rootCmd runs the menu loop; there are no subcommands, the menu is the
// whole surface, mirroring the five fixed actions of the system.
var rootCmd = &cobra.Command{
	Use:   "bbsgraph",
	Short: "Random directed weighted graphs with DFS path and cycle queries",
	Long: `bbsgraph builds small directed, weighted graphs from a Blum-Blum-Shub
pseudorandom bit stream and answers two structural questions about them:
does a path exist between two vertices (and at what cost), and does a
directed cycle exist (and through which vertices).

Each new generation snapshots the previous graph, together with the last
path and cycle found, into the save directory as a plain-text report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))

		gen, err := bbs.Generate(flagBits)
		if err != nil {
			return fmt.Errorf("initializing generator: %w", err)
		}

		sess, err := session.New(
			session.WithSource(gen),
			session.WithSaveDir(flagSaveDir),
			session.WithLogger(logger),
		)
		if err != nil {
			return err
		}

		m := &menu{
			session: sess,
			in:      cmd.InOrStdin(),
			out:     cmd.OutOrStdout(),
		}

		return m.run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagSaveDir, "save-dir", session.DefaultSaveDir,
		"directory for graph snapshots (created if absent)")
	rootCmd.Flags().IntVar(&flagBits, "bits", bbs.DefaultBitLength,
		"bit length of the generated BBS primes")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
