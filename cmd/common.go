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
	"io"
	"os"
	"text/tabwriter"

	"github.com/valpere/youdict/internal/app"
	"github.com/valpere/youdict/internal/clipboard"
	"github.com/valpere/youdict/internal/config"
	"github.com/valpere/youdict/internal/suggest"
)

// newApp loads configuration and wires the application. noClipboard swaps
// the system clipboard for an in-memory one.
func newApp(noClipboard bool) (*app.App, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, err
	}

	var clip clipboard.Writer = clipboard.System{}
	if noClipboard {
		clip = &clipboard.Memory{}
	}

	logger := app.NewLogger(cfg.Log, os.Stderr)
	return app.New(cfg, logger, clip), nil
}

func printItems(w io.Writer, a *app.App, items []suggest.Item) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, a.Locale.T("no_results", nil))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTRANSLATION\tDESCRIPTION")
	for i, item := range items {
		num := fmt.Sprintf("%d", i+1)
		if item.Category == suggest.CategoryError {
			num = "!"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", num, item.Label, item.ShortDesc)
	}
	return tw.Flush()
}

// copyItem copies the n-th (1-based) item of items.
func copyItem(w io.Writer, a *app.App, items []suggest.Item, n int) error {
	if n < 1 || n > len(items) {
		return fmt.Errorf("no item %d (have %d)", n, len(items))
	}
	item := items[n-1]
	if item.Category != suggest.CategoryResult {
		return fmt.Errorf("item %d is not a translation", n)
	}
	if err := a.Suggester.Execute(item, suggest.ActionCopy); err != nil {
		return fmt.Errorf("failed to copy: %w", err)
	}
	fmt.Fprintln(w, a.Locale.T("copied", map[string]any{"Text": item.Label}))
	return nil
}
