package autocomplete

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"autocomplete/internal/config"
	apperrors "autocomplete/internal/errors"
)

// Attribute names read from the host element.
const (
	AttrName              = "name"
	AttrValue             = "value"
	AttrSearchValue       = "search-value"
	AttrSearchText        = "search-text"
	AttrDebounce          = "debounce"
	AttrMinLength         = "min-length"
	AttrMinLengthLegacy   = "minlength"
	AttrClearListOnSelect = "clear-list-on-select"
	AttrList              = "list"
	AttrOpen              = "open"
	AttrPlaceholder       = "placeholder"
)

const (
	DefaultDebounce  = 300 * time.Millisecond
	DefaultMinLength = 3
)

// Config is the widget's initial state as parsed from attributes.
type Config struct {
	Name              string
	Value             *string // nil until committed or set by attribute
	SearchText        string
	Debounce          time.Duration
	MinLength         int
	ClearListOnSelect bool
	List              string // id of an external candidate list
	Open              bool
	Placeholder       string
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Debounce:  DefaultDebounce,
		MinLength: DefaultMinLength,
	}
}

// SettingsConfig returns defaults taken from the loaded configuration
// (debounce-ms, min-length, clear-list-on-select), falling back to the
// built-ins for missing or negative values.
func SettingsConfig() Config {
	cfg := DefaultConfig()
	cfg.Debounce = config.Debounce()
	if n := config.GetInt(config.KeyMinLength); n >= 0 {
		cfg.MinLength = n
	}
	cfg.ClearListOnSelect = config.GetBool(config.KeyClearListOnSelect)
	return cfg
}

// ParseAttributes overlays attrs onto base. Malformed numbers keep the base
// value and are reported in the returned error; the Config is always usable.
func ParseAttributes(attrs map[string]string, base Config) (Config, error) {
	cfg := base
	var errs []error

	if v, ok := attrs[AttrName]; ok {
		cfg.Name = v
	}
	if v, ok := attrs[AttrValue]; ok {
		value := v
		cfg.Value = &value
	}
	if v, ok := attrs[AttrSearchText]; ok {
		cfg.SearchText = v
	}
	if v, ok := attrs[AttrSearchValue]; ok {
		cfg.SearchText = v
	}
	if v, ok := attrs[AttrDebounce]; ok {
		ms, err := parseNonNegative(AttrDebounce, v)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Debounce = time.Duration(ms) * time.Millisecond
		}
	}
	for _, name := range []string{AttrMinLengthLegacy, AttrMinLength} {
		v, ok := attrs[name]
		if !ok {
			continue
		}
		n, err := parseNonNegative(name, v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cfg.MinLength = n
	}
	if v, ok := attrs[AttrClearListOnSelect]; ok {
		cfg.ClearListOnSelect = boolAttr(v)
	}
	if v, ok := attrs[AttrList]; ok {
		cfg.List = strings.TrimSpace(v)
	}
	if v, ok := attrs[AttrOpen]; ok {
		cfg.Open = boolAttr(v)
	}
	if v, ok := attrs[AttrPlaceholder]; ok {
		cfg.Placeholder = v
	}

	return cfg, apperrors.Join(errs...)
}

// boolAttr treats presence as true, except for the literal "false".
func boolAttr(v string) bool {
	return strings.TrimSpace(strings.ToLower(v)) != "false"
}

func parseNonNegative(name, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err == nil && n < 0 {
		err = fmt.Errorf("must not be negative")
	}
	if err != nil {
		return 0, apperrors.New(apperrors.CodeInvalidAttribute,
			fmt.Sprintf("invalid %s attribute %q", name, v), err)
	}
	return n, nil
}
