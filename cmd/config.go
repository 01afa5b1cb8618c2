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
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/youdict/internal/config"
	"github.com/valpere/youdict/internal/translator"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  `Print the configuration after merging flags, environment, .env and config file. Credentials are masked.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(true)
		if err != nil {
			return err
		}
		cfg := a.Config
		profile := cfg.ProviderProfile()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "profile\t%s (%s)\n", profile.Name, profile.Scheme)
		fmt.Fprintf(w, "endpoint\t%s\n", profile.Endpoint)
		fmt.Fprintf(w, "key\t%s\n", config.Masked(cfg.Key))
		fmt.Fprintf(w, "keyfrom\t%s\n", config.Masked(cfg.KeyFrom))
		fmt.Fprintf(w, "user_agent\t%s\n", cfg.UserAgent)
		fmt.Fprintf(w, "timeout\t%s\n", cfg.Timeout)
		fmt.Fprintf(w, "delay\t%s\n", cfg.Delay)
		fmt.Fprintf(w, "locale\t%s\n", a.Locale.Locale())
		fmt.Fprintf(w, "log\t%s/%s\n", cfg.Log.Level, cfg.Log.Format)
		if used := v.ConfigFileUsed(); used != "" {
			fmt.Fprintf(w, "config file\t%s\n", used)
		}
		for _, action := range a.Suggester.Actions() {
			fmt.Fprintf(w, "action %s\t%s (%s)\n", action.Name, action.Label, action.ShortDesc)
		}
		return w.Flush()
	},
}

var signSalt string

var signCmd = &cobra.Command{
	Use:   "sign <query>...",
	Short: "Print the signed request for a query",
	Long: `Print the MD5 signature and request URL the openapi profile would send
for a query. Useful for checking credentials against the Youdao console.

Example:
  youdict sign good --salt 1234`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}

		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return fmt.Errorf("query is empty")
		}

		profile := cfg.ProviderProfile()
		if profile.Scheme != translator.SchemeSigned {
			fmt.Fprintf(cmd.ErrOrStderr(), "Profile %s is unsigned; showing the openapi signature anyway\n", profile.Name)
			profile = translator.ProfileOpenAPI
		}

		salt := signSalt
		if salt == "" {
			salt = translator.NewNonce()
		}
		builder := translator.NewBuilder(profile, cfg.Credentials())
		builder.Nonce = func() string { return salt }
		apiURL, _ := builder.Build(query)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "salt: %s\n", salt)
		fmt.Fprintf(out, "sign: %s\n", translator.Sign(cfg.Key, query, salt, cfg.KeyFrom))
		fmt.Fprintf(out, "url:  %s\n", apiURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(signCmd)

	signCmd.Flags().StringVar(&signSalt, "salt", "", "Salt (nonce) to sign with (default random)")
}
