// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Panels shows a tree of resizable panel groups in the terminal.  The
boundary between two panels is resized by dragging its handle with the
mouse.

Usage:

	panels [--config layout.yaml] [--log-file panels.log] [--log-level debug]

Without a layout file a canvas between two sidebars is shown whereas
the left sidebar has a fixed bottom panel and the right sidebar three
flexible panels, see the config package for the layout file format.
The sizes of the root group's panels are reported in the status bar:

	panels: default layout
	Lorem ipsum dolor   │Lorem ipsum dolor sit amet, consectetur  │Lorem ipsum
	...
	sizes: 20 40 20

A loaded layout file is read anew with 'r'.  Quit with 'q', ctrl-c or
ctrl-d.
*/
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/slukits/panels/cmd/panels/config"
	"github.com/slukits/panels/cmd/panels/controller"
	"github.com/slukits/panels/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	configFlag   string
	logFileFlag  string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "panels",
	Short: "Show resizable panel groups in the terminal",
	Long: `Show a tree of resizable panel groups in the terminal whose
panels are resized by dragging the handles between them.

Examples:
  panels                                    # default layout
  panels --config layout.yaml               # layout file
  panels --log-file /tmp/panels.log --log-level debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "",
		"layout file (default: built-in layout)")
	rootCmd.Flags().StringVar(&logFileFlag, "log-file", "",
		"log file overriding the layout's logging settings")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "",
		"log level: debug, info, warn or error")
}

func run(cmd *cobra.Command, args []string) error {
	l := config.Default()
	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		l = loaded
	}
	if logFileFlag != "" {
		l.Logging.File = logFileFlag
	}
	if logLevelFlag != "" {
		l.Logging.Level = logLevelFlag
	}
	if err := logger.Init(l.Logging); err != nil {
		return err
	}
	defer logger.Close()

	var fatal error
	controller.New(controller.InitFactories{
		Layout: l,
		Fatal: func(ii ...interface{}) {
			fatal = errors.New(fmt.Sprint(ii...))
			logger.Error("fatal", "err", fatal)
		},
	})
	return fatal
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
