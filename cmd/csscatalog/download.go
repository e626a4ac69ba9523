package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"css-catalog/internal/crawler"
	"css-catalog/internal/metrics"
	"css-catalog/internal/storage"
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Fetch reference pages into the download directory",
	Long: `download scans the CSS reference index and stores the primary page of every
listed item, plus its secondary page when the item kind has one. Pages already
present are skipped, so an interrupted download can simply be restarted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		metrics.Serve(ctx, cfg.MetricsAddr, log)

		docs, err := storage.Open(cfg.DownloadDir)
		if err != nil {
			return err
		}
		st, err := crawler.Run(ctx, crawlerOptions(cfg), docs, log)
		if err != nil {
			return err
		}
		if st.Failed > 0 {
			log.Warn("Some pages could not be downloaded", zap.Int("failed", st.Failed))
		}
		return nil
	},
}

func init() {
	f := downloadCmd.Flags()
	f.Int("max-items", 0, "stop after N indexed items (0 = all)")
	f.Float64("rate", 0, "requests per second to one host (default 1)")
	f.String("user-agent", "", "HTTP User-Agent string")
	bind(f.Lookup("max-items"), "max_items")
	bind(f.Lookup("rate"), "requests_per_host")
	bind(f.Lookup("user-agent"), "user_agent")

	rootCmd.AddCommand(downloadCmd)
}

// bind ties a flag to a config key; an unset flag leaves the key to
// env, file or default.
func bind(fl *pflag.Flag, key string) {
	if err := viper.BindPFlag(key, fl); err != nil {
		panic(err)
	}
}
