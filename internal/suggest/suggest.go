// Package suggest adapts lookups to a launcher-style suggestion list: every
// outcome of a cycle becomes either a list of selectable items, a single error
// item, or nothing.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/valpere/youdict/internal/clipboard"
	"github.com/valpere/youdict/internal/i18n"
	"github.com/valpere/youdict/internal/translator"
)

const (
	ActionCopy = "0_copy"
	Keyword    = "yd"
)

type Category int

const (
	CategoryKeyword Category = iota
	CategoryResult
	CategoryError
)

type Item struct {
	Category  Category `json:"category"`
	Label     string   `json:"label"`
	ShortDesc string   `json:"short_desc"`
	Target    string   `json:"target"`
	Data      string   `json:"data,omitempty"`
}

type Action struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	ShortDesc string `json:"short_desc"`
}

// Payload is the content of Item.Data.
type Payload struct {
	Word        string
	Translation string
}

func (p Payload) Encode() string {
	return url.Values{"word": {p.Word}, "translation": {p.Translation}}.Encode()
}

func DecodePayload(data string) (Payload, error) {
	values, err := url.ParseQuery(data)
	if err != nil {
		return Payload{}, fmt.Errorf("invalid item data: %w", err)
	}
	if !values.Has("translation") {
		return Payload{}, fmt.Errorf("invalid item data: missing translation")
	}
	return Payload{Word: values.Get("word"), Translation: values.Get("translation")}, nil
}

// Lookuper fetches ordered results for one query.
type Lookuper interface {
	Lookup(ctx context.Context, query string) ([]translator.Result, error)
}

type Suggester struct {
	lookup Lookuper
	clip   clipboard.Writer
	tr     *i18n.Translator
	logger *slog.Logger
}

func New(lookup Lookuper, clip clipboard.Writer, tr *i18n.Translator, logger *slog.Logger) *Suggester {
	if logger == nil {
		logger = slog.Default()
	}
	return &Suggester{lookup: lookup, clip: clip, tr: tr, logger: logger}
}

// Catalog returns the keyword item that opens the lookup.
func (s *Suggester) Catalog() []Item {
	return []Item{{
		Category:  CategoryKeyword,
		Label:     Keyword,
		ShortDesc: s.tr.T("keyword_desc", nil),
		Target:    Keyword,
	}}
}

func (s *Suggester) Actions() []Action {
	return []Action{{
		Name:      ActionCopy,
		Label:     s.tr.T("action_copy_label", nil),
		ShortDesc: s.tr.T("action_copy_desc", nil),
	}}
}

// Suggest runs one cycle for input. It never returns an error: failures are
// rendered as a single error item, while empty input, soft failures and
// cancelled cycles produce no items.
func (s *Suggester) Suggest(ctx context.Context, input string) []Item {
	word := strings.TrimSpace(input)
	if word == "" {
		return nil
	}

	logger := s.logger.With("cycle", uuid.NewString())
	logger.Debug("lookup", "query", word)

	results, err := s.lookup.Lookup(ctx, input)
	switch {
	case err == nil:
	case errors.Is(err, translator.ErrEmptyQuery):
		return nil
	case ctx.Err() != nil:
		logger.Debug("cycle cancelled", "error", err)
		return nil
	case errors.Is(err, translator.ErrNetwork):
		logger.Warn("lookup failed", "error", err)
		return []Item{s.errorItem(input, err.Error())}
	default:
		logger.Error("failed to decode response", "query", word, "error", err)
		return []Item{s.errorItem(input, s.tr.T("error_detail", map[string]any{"Detail": err.Error()}))}
	}

	logger.Debug("lookup done", "results", len(results))
	if len(results) == 0 {
		return nil
	}

	encoded := url.QueryEscape(word)
	items := make([]Item, 0, len(results))
	for idx, res := range results {
		items = append(items, Item{
			Category:  CategoryResult,
			Label:     res.Translation,
			ShortDesc: res.Description,
			Target:    strconv.Itoa(idx) + res.Translation,
			Data:      Payload{Word: encoded, Translation: res.Translation}.Encode(),
		})
	}
	return items
}

func (s *Suggester) errorItem(input, desc string) Item {
	return Item{
		Category:  CategoryError,
		Label:     input,
		ShortDesc: desc,
		Target:    input,
	}
}

// Execute runs action on a selected item. An empty action is the default
// copy action. Error and keyword items are ignored.
func (s *Suggester) Execute(item Item, action string) error {
	if item.Category != CategoryResult || item.Data == "" {
		return nil
	}
	if action != "" && action != ActionCopy {
		return fmt.Errorf("unknown action %q", action)
	}

	payload, err := DecodePayload(item.Data)
	if err != nil {
		return err
	}
	if err := s.clip.WriteAll(payload.Translation); err != nil {
		return err
	}
	s.logger.Debug("copied translation", "translation", payload.Translation)
	return nil
}
