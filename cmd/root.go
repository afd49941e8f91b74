package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"portfolio-gallery/pkg/catalog"
	"portfolio-gallery/pkg/config"
	"portfolio-gallery/pkg/models"
	"portfolio-gallery/pkg/services"
)

// app carries what every command needs once flags are parsed
type app struct {
	viper   *viper.Viper
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{viper: config.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "portfolio-gallery",
		Short: "Portfolio Gallery presents a fixed set of image galleries, a bio and a contact form",
		Long: `Portfolio Gallery serves a single page portfolio: a navigation bar of galleries,
inline image previews and a full screen lightbox. The same galleries can be browsed
from the terminal, listed, inspected and exported.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	// Define persistent flags that override environment variables and the config file
	flags := rootCmd.PersistentFlags()
	flags.StringP("port", "p", "", "Set the PORT (overrides environment variable)")
	flags.StringP("bucket", "b", "", "Set the BUCKET_NAME holding gallery images (overrides environment variable)")
	flags.StringP("catalog", "c", "", "Set the CATALOG_FILE to load galleries from (overrides environment variable)")
	flags.String("views", "", "Set the VIEWS_DIR holding pug templates (overrides environment variable)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	_ = a.viper.BindPFlag(config.KeyPort, flags.Lookup("port"))
	_ = a.viper.BindPFlag(config.KeyBucketName, flags.Lookup("bucket"))
	_ = a.viper.BindPFlag(config.KeyCatalogFile, flags.Lookup("catalog"))
	_ = a.viper.BindPFlag(config.KeyViewsDir, flags.Lookup("views"))

	// Add commands to root
	rootCmd.AddCommand(newListGalleriesCmd(a))
	rootCmd.AddCommand(newShowGalleryCmd(a))
	rootCmd.AddCommand(newExportCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newBrowseCmd(a))

	return rootCmd
}

// init loads configuration and builds the logger
func (a *app) init() error {
	cfg, err := config.FromViper(a.viper)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

// loadCatalog reads the catalog and, when a bucket is configured, replaces
// gallery images with the bucket's contents
func (a *app) loadCatalog(ctx context.Context) (*models.Catalog, error) {
	c, err := catalog.Load(a.cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	if a.cfg.BucketName == "" {
		return c, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	source, err := catalog.NewBucketSource(ctx, a.cfg.BucketName, a.cfg.SignedURLTTL, a.logger)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	return source.Enrich(ctx, c)
}

// service loads the catalog and wraps it in a service
func (a *app) service(ctx context.Context) (*services.Service, error) {
	c, err := a.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Catalog loaded", zap.Strings("galleries", c.IDs()))
	return services.NewService(c, a.cfg.SessionTTL, a.logger), nil
}
