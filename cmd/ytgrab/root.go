package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytgrab/ytgrab/internal/app"
	"github.com/ytgrab/ytgrab/internal/download"
	"github.com/ytgrab/ytgrab/internal/execute"
	"github.com/ytgrab/ytgrab/internal/grab"
	"github.com/ytgrab/ytgrab/internal/logging"
	"github.com/ytgrab/ytgrab/internal/metadata"
	"github.com/ytgrab/ytgrab/internal/selector"
	"github.com/ytgrab/ytgrab/internal/termui"
)

var outputDir string

var rootCmd = &cobra.Command{
	Use:   "ytgrab [flags] URL",
	Short: "Download YouTube videos with an interactive format picker",
	Long: `ytgrab fetches the list of available download formats for a video,
lets you pick one in an interactive terminal list and then downloads
it through yt-dlp, showing speed and ETA while it runs.

When stdin or stdout is not a terminal, ytgrab falls back to a plain
prompt that reads the format code from standard input.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory to save the video into (default: current directory)")
}

func run(ctx context.Context, link string) error {
	ctx, log := logging.NewContextSL(ctx, "run_id", genRunID())

	dir := outputDir
	if dir == "" {
		dir = viper.GetString("OUTPUT_DIR")
	}
	dir, err := download.EnsureOutputDir(dir)
	if err != nil {
		return err
	}

	tool := viper.GetString("YTDLP_PATH")
	if tool == "" {
		tool = "yt-dlp"
	}
	log.Infof("Starting run. link=%q outputDir=%q tool=%q", link, dir, tool)

	runner := execute.NewToolRunner()
	ctrl := grab.NewController(metadata.New(runner, tool), download.New(runner, tool))

	var p app.Presenter
	if sess, serr := termui.Init(); serr != nil {
		log.Warnf("Interactive session unavailable, using plain prompt: %v", serr)
		p = selector.NewPlainPresenter(os.Stdin, os.Stdout, os.Stderr)
	} else {
		p = sess
	}
	defer p.Close()

	return ctrl.Run(ctx, p, link, dir)
}

func genRunID() string {
	return uuid.NewString()
}
