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
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"
)

var (
	lookupCopy        int
	lookupJSON        bool
	lookupNoClipboard bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>...",
	Short: "Look up a word or phrase",
	Long: `Look up a word or phrase and print the ranked candidates: the primary
translation first, then dictionary explanations, then web definitions.

Example:
  youdict lookup good
  youdict lookup good morning --copy 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(lookupNoClipboard)
		if err != nil {
			return err
		}

		input := strings.Join(args, " ")
		items := a.Suggester.Suggest(cmd.Context(), input)

		out := cmd.OutOrStdout()
		if lookupJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(items); err != nil {
				return err
			}
		} else if err := printItems(out, a, items); err != nil {
			return err
		}

		if lookupCopy > 0 {
			return copyItem(cmd.ErrOrStderr(), a, items, lookupCopy)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().IntVarP(&lookupCopy, "copy", "c", 0, "Copy the N-th result (1-based) to the clipboard")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "Print results as JSON")
	lookupCmd.Flags().BoolVar(&lookupNoClipboard, "no-clipboard", false, "Do not touch the system clipboard")
}
