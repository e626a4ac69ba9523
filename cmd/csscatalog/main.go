// Command csscatalog downloads CSS reference pages and turns them into a
// search-index catalog.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"css-catalog/internal/catalog"
	"css-catalog/internal/config"
	"css-catalog/internal/crawler"
	"css-catalog/internal/metrics"
	"css-catalog/internal/pipeline"
	"css-catalog/internal/storage"
)

var (
	cfg config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "csscatalog [output]",
	Short: "Build a search-index catalog of CSS properties, at-rules, functions and selectors",
	Long: `csscatalog reads the pages stored in the download directory, extracts
summaries, formal syntax, property tables and value descriptions, and writes a
single JSON catalog ready for index import.

With --download the reference pages are fetched first; pages already on disk
are not fetched again.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("config")
		var err error
		if cfg, err = config.Load(viper.GetViper(), file); err != nil {
			return err
		}
		log = config.NewLogger(cfg.LogLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			cfg.Output = args[0]
		}
		ctx := cmd.Context()
		metrics.Serve(ctx, cfg.MetricsAddr, log)

		docs, err := storage.Open(cfg.DownloadDir)
		if err != nil {
			return err
		}
		if download, _ := cmd.Flags().GetBool("download"); download {
			if _, err := crawler.Run(ctx, crawlerOptions(cfg), docs, log); err != nil {
				return err
			}
		}
		return populate(ctx, docs)
	},
}

func populate(ctx context.Context, docs *storage.Documents) (err error) {
	topics, err := catalog.LoadTopics(cfg.TopicsFile)
	if err != nil {
		return err
	}
	sink, err := storage.NewSink(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection, log)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, sink.Close(context.Background()))
	}()

	res, err := pipeline.Populate(ctx, pipeline.Options{
		Output:          cfg.Output,
		Compress:        cfg.Compress,
		Topics:          topics,
		WebPlatformBase: cfg.WebPlatformBase,
	}, docs, sink, log)
	if err != nil {
		return err
	}
	log.Info(fmt.Sprintf("Found %d items.", res.Items))
	return nil
}

func crawlerOptions(c config.Config) crawler.Options {
	return crawler.Options{
		MDNBase:         c.MDNBase,
		IndexPath:       c.IndexPath,
		WebPlatformBase: c.WebPlatformBase,
		MaxItems:        c.MaxItems,
		RequestsPerHost: c.RequestsPerHost,
		RobotsTimeout:   c.RobotsTimeout,
		FetchTimeout:    c.FetchTimeout,
		UserAgent:       c.UserAgent,
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.String("download-dir", "", "directory holding downloaded pages (default ./downloaded)")
	pf.String("log-level", "", "none, normal or debug (default normal)")
	pf.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :2112")
	bind(pf.Lookup("download-dir"), "download_dir")
	bind(pf.Lookup("log-level"), "log_level")
	bind(pf.Lookup("metrics-addr"), "metrics_addr")

	f := rootCmd.Flags()
	f.BoolP("download", "d", false, "download reference pages before building the catalog")
	f.Bool("compress", true, "also write a bzip2 copy of the catalog")
	f.String("topics", "", "YAML file replacing the built-in topic table")
	f.String("mongo-uri", "", "mirror records into this MongoDB deployment")
	bind(f.Lookup("compress"), "compress")
	bind(f.Lookup("topics"), "topics_file")
	bind(f.Lookup("mongo-uri"), "mongo_uri")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "csscatalog:", err)
		stop()
		os.Exit(1)
	}
}
