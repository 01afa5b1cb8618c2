package translator

import (
	"errors"
	"time"
)

var (
	// ErrEmptyQuery is returned when the trimmed input is empty. Callers skip
	// the cycle without showing anything.
	ErrEmptyQuery = errors.New("empty query")
	// ErrNetwork wraps transport failures and non-2xx responses.
	ErrNetwork = errors.New("network error")
	// ErrDecode wraps invalid UTF-8, invalid JSON and missing required fields.
	ErrDecode = errors.New("decode error")
)

type Scheme int

const (
	SchemeUnsigned Scheme = iota
	SchemeSigned
)

func (s Scheme) String() string {
	if s == SchemeSigned {
		return "signed"
	}
	return "unsigned"
}

// Profile describes one provider variant: how its URL is built and how its
// response body maps onto results.
type Profile struct {
	Name     string
	Scheme   Scheme
	Endpoint string

	// SuccessCode is the raw JSON token of errorCode that means success.
	SuccessCode string
	// EmitTranslation enables the top-level "translation" result.
	EmitTranslation bool
	// WebKeyAsTranslation swaps the web section mapping: key becomes the
	// translation and the joined values become the description.
	WebKeyAsTranslation bool
}

var ProfileOpenAPI = Profile{
	Name:            "openapi",
	Scheme:          SchemeSigned,
	Endpoint:        "http://openapi.youdao.com/api",
	SuccessCode:     `"0"`,
	EmitTranslation: true,
}

var ProfileLegacy = Profile{
	Name:                "legacy",
	Scheme:              SchemeUnsigned,
	Endpoint:            "http://fanyi.youdao.com/openapi.do",
	SuccessCode:         `0`,
	WebKeyAsTranslation: true,
}

// LookupProfile returns the built-in profile with the given name.
func LookupProfile(name string) (Profile, bool) {
	switch name {
	case ProfileOpenAPI.Name:
		return ProfileOpenAPI, true
	case ProfileLegacy.Name:
		return ProfileLegacy, true
	}
	return Profile{}, false
}

// Credentials are the two configured strings. For the signed scheme Key is
// the appKey and KeyFrom the app secret.
type Credentials struct {
	Key     string `mapstructure:"key" json:"key"`
	KeyFrom string `mapstructure:"keyfrom" json:"keyfrom"`
}

type ServiceConfig struct {
	UserAgent string        `mapstructure:"user_agent" json:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout" json:"timeout"`
}

// Result is one candidate. A slice of results keeps provider order.
type Result struct {
	Translation string `json:"translation"`
	Description string `json:"description"`
}

// Labels prefix the phonetic transcriptions in the basic section description.
type Labels struct {
	Phonetic string
	UK       string
	US       string
}

var DefaultLabels = Labels{
	Phonetic: "音标：",
	UK:       "英：",
	US:       "美：",
}
