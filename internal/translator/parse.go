package translator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// object keeps the raw members of a JSON object. Lookups are exact-case,
// unlike struct field matching in encoding/json.
type object map[string]json.RawMessage

// optional decodes key into dst. A missing key or a JSON null reports false.
func (o object) optional(key string, dst any) (bool, error) {
	raw, ok := o[key]
	if !ok || isNull(raw) {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrDecode, key, err)
	}
	return true, nil
}

// required decodes key into dst and fails with ErrDecode when it is absent.
func (o object) required(section, key string, dst any) error {
	ok, err := o.optional(key, dst)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: missing %s%s", ErrDecode, section, key)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null"
}

// Parser maps a provider response body onto results.
type Parser struct {
	Profile Profile
	Labels  Labels
}

func NewParser(profile Profile) *Parser {
	return &Parser{Profile: profile, Labels: DefaultLabels}
}

// Parse decodes raw and returns results in provider order: the top-level
// translation, then basic explanations, then web definitions. A non-success
// errorCode yields an empty slice and no error; the other sections are not
// looked at in that case.
func (p *Parser) Parse(raw []byte) ([]Result, error) {
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: response is not valid UTF-8", ErrDecode)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: response is not a JSON object", ErrDecode)
	}

	var resp object
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	code, ok := resp["errorCode"]
	if !ok {
		return nil, fmt.Errorf("%w: missing errorCode", ErrDecode)
	}

	results := make([]Result, 0)
	if string(bytes.TrimSpace(code)) != p.Profile.SuccessCode {
		return results, nil
	}

	if p.Profile.EmitTranslation {
		var translation []string
		ok, err := resp.optional("translation", &translation)
		if err != nil {
			return nil, err
		}
		if ok {
			var query string
			if err := resp.required("", "query", &query); err != nil {
				return nil, err
			}
			results = append(results, Result{
				Translation: strings.Join(translation, ","),
				Description: query,
			})
		}
	}

	basicResults, err := p.parseBasic(resp)
	if err != nil {
		return nil, err
	}
	results = append(results, basicResults...)

	webResults, err := p.parseWeb(resp)
	if err != nil {
		return nil, err
	}
	results = append(results, webResults...)

	return results, nil
}

func (p *Parser) parseBasic(resp object) ([]Result, error) {
	var basic object
	ok, err := resp.optional("basic", &basic)
	if err != nil || !ok {
		return nil, err
	}

	var desc strings.Builder
	for _, phonetic := range []struct{ key, label string }{
		{"phonetic", p.Labels.Phonetic},
		{"uk-phonetic", p.Labels.UK},
		{"us-phonetic", p.Labels.US},
	} {
		var value string
		ok, err := basic.optional(phonetic.key, &value)
		if err != nil {
			return nil, err
		}
		if ok {
			desc.WriteString(phonetic.label + "[" + value + "] ")
		}
	}

	var explains []string
	if err := basic.required("basic.", "explains", &explains); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(explains))
	for _, explain := range explains {
		results = append(results, Result{Translation: explain, Description: desc.String()})
	}
	return results, nil
}

func (p *Parser) parseWeb(resp object) ([]Result, error) {
	var web []object
	ok, err := resp.optional("web", &web)
	if err != nil || !ok {
		return nil, err
	}

	results := make([]Result, 0, len(web))
	for i, entry := range web {
		section := fmt.Sprintf("web[%d].", i)
		var (
			key   string
			value []string
		)
		if err := entry.required(section, "key", &key); err != nil {
			return nil, err
		}
		if err := entry.required(section, "value", &value); err != nil {
			return nil, err
		}

		values := strings.Join(value, ",")
		if p.Profile.WebKeyAsTranslation {
			results = append(results, Result{Translation: key, Description: values})
		} else {
			results = append(results, Result{Translation: values, Description: key})
		}
	}
	return results, nil
}
