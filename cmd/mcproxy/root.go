// Command mcproxy is the proxy's command-line entry point: load config,
// set up logging, start the listener, and shut down cleanly on signal
// (mirrors cmd/gate/gate.go's Run shape).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zegevlier/mc-proxy-v2/pkg/config"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/plugin"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/plugin/grpcplugin"
)

var (
	configFile string
	dnsServer  string
	logDir     string
	pluginAddr string
)

// NewRootCommand builds the root "mcproxy" cobra command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcproxy",
		Short: "A Minecraft Java Edition man-in-the-middle proxy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "config.yaml", "path to the configuration file")
	cmd.Flags().StringVar(&dnsServer, "dns-server", "1.1.1.1:53", "DNS server used for SRV resolution")
	cmd.Flags().StringVar(&logDir, "log-dir", "./logs", "directory for per-connection packet logs")
	cmd.Flags().StringVar(&pluginAddr, "plugin-addr", "", "address of a remote gRPC plugin (empty disables it)")
	return cmd
}

func run() (err error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}
	defer log.Sync()

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("error validating config: %w", err)
	}

	var handlers []plugin.EventHandler
	if pluginAddr != "" {
		client := grpcplugin.Dial(pluginAddr, log.Named("plugin.grpc"))
		defer client.Close()
		handlers = append(handlers, client)
	}
	plugins := plugin.NewRegistry(handlers...)

	ln := proxy.New(cfg, log, plugins, dnsServer, logDir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer func() { signal.Stop(sig); close(sig) }()

	go func() {
		s, ok := <-sig
		if !ok {
			return
		}
		log.Info("received shutdown signal", zap.Stringer("signal", s))
		cancel()
		_ = ln.Shutdown()
	}()

	return ln.Run(ctx)
}

func newLogger(debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}
