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
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/valpere/youdict/internal/suggest"
)

var suggestNoClipboard bool

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Interactive lookup session",
	Long: `Read one query per line from stdin and print suggestions as they arrive.

A new line cancels the lookup still running for the previous one, so only
results for the latest input are shown. Enter ":N" to copy the N-th result
of the latest list to the clipboard.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(suggestNoClipboard)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		for _, item := range a.Suggester.Catalog() {
			fmt.Fprintf(out, "%s - %s\n", item.Label, item.ShortDesc)
		}

		session := a.NewSession()
		defer session.Close()

		var (
			mu     sync.Mutex
			latest []suggest.Item
		)
		deliver := func(items []suggest.Item) {
			mu.Lock()
			defer mu.Unlock()
			latest = items
			printItems(out, a, items)
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if ctx.Err() != nil {
				break
			}
			line := scanner.Text()

			if rest, ok := strings.CutPrefix(strings.TrimSpace(line), ":"); ok {
				n, err := strconv.Atoi(rest)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "invalid selection %q\n", line)
					continue
				}
				// Let the latest cycle deliver before selecting from it.
				session.Wait()
				mu.Lock()
				if err := copyItem(out, a, latest, n); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
				mu.Unlock()
				continue
			}

			session.Submit(ctx, line, deliver)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		session.Wait()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().BoolVar(&suggestNoClipboard, "no-clipboard", false, "Do not touch the system clipboard")
}
