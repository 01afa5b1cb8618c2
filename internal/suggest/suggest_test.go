package suggest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valpere/youdict/internal/clipboard"
	"github.com/valpere/youdict/internal/i18n"
	"github.com/valpere/youdict/internal/translator"
)

type stubLookup struct {
	results []translator.Result
	err     error
	calls   int
	queries []string
}

func (s *stubLookup) Lookup(ctx context.Context, query string) ([]translator.Result, error) {
	s.calls++
	s.queries = append(s.queries, query)
	return s.results, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSuggester(lookup Lookuper, clip clipboard.Writer) *Suggester {
	return New(lookup, clip, i18n.NewTranslator(i18n.DefaultLocale), discardLogger())
}

func TestSuggest_Results(t *testing.T) {
	lookup := &stubLookup{results: []translator.Result{
		{Translation: "好", Description: "good"},
		{Translation: "好处", Description: "音标：[gʊd] "},
		{Translation: "好处", Description: "other"},
	}}
	s := newSuggester(lookup, &clipboard.Memory{})

	items := s.Suggest(context.Background(), " good ")

	require.Len(t, items, 3)
	assert.Equal(t, "好", items[0].Label)
	assert.Equal(t, "good", items[0].ShortDesc)
	assert.Equal(t, "0好", items[0].Target)
	assert.Equal(t, "1好处", items[1].Target)
	assert.Equal(t, "2好处", items[2].Target)
	for _, item := range items {
		assert.Equal(t, CategoryResult, item.Category)
	}

	payload, err := DecodePayload(items[1].Data)
	require.NoError(t, err)
	assert.Equal(t, Payload{Word: "good", Translation: "好处"}, payload)
}

func TestSuggest_EmptyInput(t *testing.T) {
	lookup := &stubLookup{}
	s := newSuggester(lookup, &clipboard.Memory{})

	assert.Nil(t, s.Suggest(context.Background(), ""))
	assert.Nil(t, s.Suggest(context.Background(), " \t "))
	assert.Zero(t, lookup.calls)
}

func TestSuggest_SoftFailure(t *testing.T) {
	s := newSuggester(&stubLookup{results: []translator.Result{}}, &clipboard.Memory{})

	assert.Empty(t, s.Suggest(context.Background(), "good"))
}

func TestSuggest_NetworkError(t *testing.T) {
	err := fmt.Errorf("%w: HTTP 503: Service Unavailable", translator.ErrNetwork)
	s := newSuggester(&stubLookup{err: err}, &clipboard.Memory{})

	items := s.Suggest(context.Background(), "good")

	require.Len(t, items, 1)
	assert.Equal(t, CategoryError, items[0].Category)
	assert.Equal(t, "good", items[0].Label)
	assert.Equal(t, err.Error(), items[0].ShortDesc)
	assert.Empty(t, items[0].Data)
}

func TestSuggest_DecodeError(t *testing.T) {
	err := fmt.Errorf("%w: missing errorCode", translator.ErrDecode)
	s := newSuggester(&stubLookup{err: err}, &clipboard.Memory{})

	items := s.Suggest(context.Background(), "good ")

	require.Len(t, items, 1)
	assert.Equal(t, CategoryError, items[0].Category)
	assert.Equal(t, "good ", items[0].Label)
	assert.Equal(t, "Error: "+err.Error(), items[0].ShortDesc)
}

func TestSuggest_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newSuggester(&stubLookup{err: context.Canceled}, &clipboard.Memory{})

	assert.Nil(t, s.Suggest(ctx, "good"))
}

func TestExecute_CopiesTranslation(t *testing.T) {
	clip := &clipboard.Memory{}
	s := newSuggester(&stubLookup{results: []translator.Result{{Translation: "良好,美好", Description: "good"}}}, clip)

	items := s.Suggest(context.Background(), "good")
	require.Len(t, items, 1)

	require.NoError(t, s.Execute(items[0], ""))
	assert.Equal(t, "良好,美好", clip.Text())

	clip.WriteAll("")
	require.NoError(t, s.Execute(items[0], ActionCopy))
	assert.Equal(t, "良好,美好", clip.Text())
}

func TestExecute_IgnoresNonResultItems(t *testing.T) {
	clip := &clipboard.Memory{}
	s := newSuggester(&stubLookup{}, clip)

	require.NoError(t, s.Execute(Item{Category: CategoryError, Label: "good", Data: Payload{Translation: "x"}.Encode()}, ""))
	require.NoError(t, s.Execute(Item{Category: CategoryResult, Label: "good"}, ""))
	assert.Empty(t, clip.Text())
}

func TestExecute_UnknownAction(t *testing.T) {
	s := newSuggester(&stubLookup{}, &clipboard.Memory{})

	err := s.Execute(Item{Category: CategoryResult, Data: Payload{Translation: "x"}.Encode()}, "open")
	assert.Error(t, err)
}

type failingClipboard struct{}

func (failingClipboard) WriteAll(string) error { return errors.New("no display") }

func TestExecute_ClipboardError(t *testing.T) {
	s := newSuggester(&stubLookup{}, failingClipboard{})

	err := s.Execute(Item{Category: CategoryResult, Data: Payload{Translation: "x"}.Encode()}, "")
	assert.EqualError(t, err, "no display")
}

func TestDecodePayload_Invalid(t *testing.T) {
	_, err := DecodePayload("word=good")
	assert.Error(t, err)

	_, err = DecodePayload("%zz")
	assert.Error(t, err)
}

func TestCatalogAndActions(t *testing.T) {
	s := newSuggester(&stubLookup{}, &clipboard.Memory{})

	catalog := s.Catalog()
	require.Len(t, catalog, 1)
	assert.Equal(t, Keyword, catalog[0].Label)
	assert.Equal(t, "有道翻译", catalog[0].ShortDesc)

	actions := s.Actions()
	require.Len(t, actions, 1)
	assert.Equal(t, ActionCopy, actions[0].Name)
	assert.Equal(t, "复制到剪切板", actions[0].Label)
}
