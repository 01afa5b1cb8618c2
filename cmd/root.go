/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var (
	cfgFile string
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "youdict",
	Short: "Youdao dictionary lookups from the command line",
	Long: `Look up a word or phrase with the Youdao translation API and copy
the chosen translation to the clipboard.

Two provider profiles are supported:
  - openapi   signed requests (appKey + app secret, MD5 signature)
  - legacy    unsigned fanyi.youdao.com requests (key + keyfrom)

Configuration is read from flags, YOUDICT_* environment variables, a .env
file and $HOME/.config/youdict/config.yaml, in that order of priority.

Use "youdict lookup --help" for one-shot lookups and "youdict suggest" for an
interactive session.`,
	Version:      version,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default $HOME/.config/youdict/config.yaml)")
	flags.String("profile", "", "Provider profile: openapi or legacy")
	flags.String("key", "", "Youdao appKey (openapi) or key (legacy)")
	flags.String("keyfrom", "", "Youdao app secret (openapi) or keyfrom (legacy)")
	flags.String("endpoint", "", "Override the profile endpoint URL")
	flags.String("locale", "", "Locale for labels (zh, en)")
	flags.Duration("timeout", 0, "HTTP timeout (default 10s)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: text or json")

	v.BindPFlag("profile", flags.Lookup("profile"))
	v.BindPFlag("key", flags.Lookup("key"))
	v.BindPFlag("keyfrom", flags.Lookup("keyfrom"))
	v.BindPFlag("endpoint", flags.Lookup("endpoint"))
	v.BindPFlag("locale", flags.Lookup("locale"))
	v.BindPFlag("timeout", flags.Lookup("timeout"))
	v.BindPFlag("log.level", flags.Lookup("log-level"))
	v.BindPFlag("log.format", flags.Lookup("log-format"))
}
