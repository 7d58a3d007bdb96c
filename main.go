package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"time"

	"github.com/filetug/kupo/pkg/config"
	"github.com/filetug/kupo/pkg/fsutils"
	"github.com/filetug/kupo/pkg/klog"
	"github.com/filetug/kupo/pkg/kupo"
	"github.com/filetug/kupo/pkg/profiling"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

const memProfilingInterval = 10 * time.Second

var osExit = os.Exit
var osGetwd = os.Getwd
var osStat = os.Stat
var httpListenAndServe = http.ListenAndServe

func main() {
	if err := newRootCmd().Execute(); err != nil {
		osExit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath, logFile, cpuProfile, memProfile, pprofAddr string
	cmd := &cobra.Command{
		Use:          "kupo [DIR]",
		Short:        "A terminal file browser",
		Long:         "kupo browses DIR (the working directory by default) with a parent, current and preview pane.",
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logFile != "" {
				cfg.Logging.Output = logFile
			}
			log, closer, err := klog.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
			if err != nil {
				return err
			}
			defer func() {
				_ = closer.Close()
			}()
			defer func() {
				if r := recover(); r != nil {
					log.WithField("panic", r).Error("recovered from panic")
					err = fmt.Errorf("recovered from panic: %v", r)
				}
			}()

			dir, err := startDir(args)
			if err != nil {
				return err
			}
			if cpuProfile != "" {
				stopCPU, err := profiling.StartCPU(cpuProfile)
				if err != nil {
					return err
				}
				defer stopCPU()
			}
			if memProfile != "" {
				defer profiling.StartHeap(memProfile, memProfilingInterval, log)()
			}
			if pprofAddr != "" {
				startPprofServer(pprofAddr, log)
			}

			log.WithField("dir", dir).Info("starting kupo")
			return run(newApp(dir, cfg, log))
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default is "+config.DefaultConfigPath()+")")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to `file` (\"-\" disables logging)")
	cmd.Flags().StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	cmd.Flags().StringVar(&memProfile, "memprofile", "", "write memory profile to `file`")
	cmd.Flags().StringVar(&pprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
	return cmd
}

func startPprofServer(addr string, log logrus.FieldLogger) {
	listenAndServe := httpListenAndServe
	go func() {
		if err := listenAndServe(addr, nil); err != nil {
			log.WithError(err).Error("pprof server stopped")
		}
	}()
}

// startDir resolves the directory to open from the command line.
func startDir(args []string) (string, error) {
	if len(args) == 0 {
		return osGetwd()
	}
	dir, err := filepath.Abs(fsutils.ExpandHome(args[0]))
	if err != nil {
		return "", err
	}
	info, err := osStat(dir)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: not a directory", args[0])
	}
	return dir, nil
}

var setupApp = kupo.SetupApp

var newApp = func(dir string, cfg *config.Config, log logrus.FieldLogger) *tview.Application {
	app := tview.NewApplication()
	setupApp(app, dir, kupo.WithConfig(cfg), kupo.WithLogger(log))
	return app
}

type application interface{ Run() error }

var run = func(app application) error {
	return app.Run()
}
