package cmd

import (
	"bufio"
	"fmt"
	"os"

	cmdversion "fdtree/internal/cmd/version"
	"fdtree/internal/config"
	"fdtree/internal/fsnode"
	"fdtree/internal/render"
	"fdtree/internal/util"
	"fdtree/version"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag"
	"golang.org/x/term"
)

var (
	configPath string
	depth      int
	showSize   bool
	noLogTime  bool
	logLevel   zerolog.Level = zerolog.InfoLevel
	colorMode  config.ColorMode
	charset    config.Charset
)

var rootCmd = &cobra.Command{
	Use:   "fdtree [PATH]...",
	Short: "Print directory trees, tolerating unreadable entries",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		util.SetupZerolog(noLogTime, logLevel)

		cfg := findAndDecodeConfig()
		if cmd.Flags().Changed("depth") {
			cfg.Walk.Depth = depth
		}
		if cmd.Flags().Changed("size") {
			cfg.Output.ShowSize = showSize
		}
		if cmd.Flags().Changed("color") {
			cfg.Output.Color = colorMode
		}
		if cmd.Flags().Changed("charset") {
			cfg.Output.Charset = charset
		}

		graph := render.Unicode
		if cfg.Output.Charset == config.CharsetASCII {
			graph = render.ASCII
		}
		colorize := cfg.Output.Color.Colorize(term.IsTerminal(int(os.Stdout.Fd())))

		renderer := render.New[fsnode.Entry, *fsnode.Iter](render.Options{
			Graph:    graph,
			Style:    render.NewStyle(colorize),
			MaxDepth: cfg.Walk.Depth,
			ShowSize: cfg.Output.ShowSize,
		})

		paths := args
		if len(paths) == 0 {
			paths = []string{"."}
		}

		out := bufio.NewWriter(os.Stdout)
		defer out.Flush()

		errs := 0
		for i, path := range paths {
			if i > 0 {
				fmt.Fprintln(out)
			}
			log.Debug().Str("Path", path).Int("Depth", cfg.Walk.Depth).Msg("Rendering tree")
			root := fsnode.NewEntry(fsnode.Cwd(), path)
			errs += renderer.Tree(out, root)
			root.Close()
		}
		out.Flush()

		if errs > 0 {
			log.Warn().Int("Errors", errs).Msg("Walk finished with captured errors")
		}
	},
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if version.IsDebug() {
		logLevel = zerolog.DebugLevel // default debug level in debug mode
	}

	rootCmd.AddCommand(cmdversion.VersionCmd)

	rootCmd.Flags().StringVarP(&configPath, "config", "c", internalDefaultConfigPath, "Path to config file")
	rootCmd.Flags().IntVarP(&depth, "depth", "d", -1, "Levels shown below each root, negative for unlimited")
	rootCmd.Flags().BoolVarP(&showSize, "size", "s", false, "Show sizes of non-directory entries")
	rootCmd.Flags().BoolVarP(&noLogTime, "no-log-time", "", false, "Use log format without time")
	rootCmd.Flags().VarP(
		enumflag.New(&colorMode, "MODE", config.ColorModeIds, enumflag.EnumCaseInsensitive),
		"color", "",
		"Colorize error annotations; can be 'auto', 'always', 'never'")
	rootCmd.Flags().VarP(
		enumflag.New(&charset, "CHARSET", config.CharsetIds, enumflag.EnumCaseInsensitive),
		"charset", "",
		"Glyph set for tree drawing; can be 'unicode', 'ascii'")
	rootCmd.Flags().VarP(
		enumflag.New(&logLevel, "LEVEL", util.ZerologLevelIds, enumflag.EnumCaseInsensitive),
		"level", "l",
		"Sets logging level; can be 'trace', 'debug', 'info', 'warning', 'error', 'fatal', 'panic'")
}
