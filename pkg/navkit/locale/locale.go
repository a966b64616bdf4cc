// Package locale provides the localized labels used by navkit's navigation
// chrome (dialog buttons, footer hints and confirmation presets).
//
// Messages ship as embedded go-i18n TOML files. English is the bundle's
// default language and the fallback for any language without a file.
package locale

import (
	"embed"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message identifiers.
const (
	Cancel         = "Cancel"
	AreYouSure     = "AreYouSure"
	Back           = "Back"
	Close          = "Close"
	Select         = "Select"
	Scroll         = "Scroll"
	DismissTitle   = "DismissTitle"
	DismissConfirm = "DismissConfirm"
	DiscardTitle   = "DiscardTitle"
	DiscardMessage = "DiscardMessage"
	DiscardConfirm = "DiscardConfirm"
	NoItems        = "NoItems"
)

// Compiled-in English text, used when a message file is missing an entry.
var defaults = map[string]string{
	Cancel:         "Cancel",
	AreYouSure:     "Are you sure?",
	Back:           "Back",
	Close:          "Close",
	Select:         "Select",
	Scroll:         "Scroll",
	DismissTitle:   "Are you sure you want to dismiss?",
	DismissConfirm: "Dismiss",
	DiscardTitle:   "Do you want to discard?",
	DiscardMessage: "You have unsaved changes",
	DiscardConfirm: "Discard Changes",
	NoItems:        "No items available",
}

//go:embed locales/*.toml
var messageFiles embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error

	currentMu sync.RWMutex
	current   *Localizer
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		// English first so it is the matcher's fallback.
		files := []string{"locales/active.en.toml"}
		others, err := fs.Glob(messageFiles, "locales/*.toml")
		if err != nil {
			bundleErr = err
			return
		}
		for _, f := range others {
			if f != files[0] {
				files = append(files, f)
			}
		}

		for _, f := range files {
			data, err := messageFiles.ReadFile(f)
			if err != nil {
				bundleErr = err
				return
			}
			if _, err := b.ParseMessageFileBytes(data, path.Base(f)); err != nil {
				bundleErr = err
				return
			}
		}

		bundle = b
	})
	return bundle, bundleErr
}

// Localizer resolves message identifiers for a preferred language list.
type Localizer struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// New creates a Localizer for the given language preferences, most preferred
// first. Entries may be BCP 47 tags or Accept-Language strings.
func New(langs ...string) *Localizer {
	b, err := loadBundle()
	if err != nil || b == nil {
		return &Localizer{tag: language.English}
	}

	tag := language.English
	if len(langs) > 0 {
		matcher := language.NewMatcher(b.LanguageTags())
		desired, _, _ := language.ParseAcceptLanguage(strings.Join(langs, ","))
		if len(desired) > 0 {
			_, index, confidence := matcher.Match(desired...)
			if confidence != language.No {
				tag = b.LanguageTags()[index]
			}
		}
	}

	prefs := append(append([]string{}, langs...), language.English.String())
	return &Localizer{
		localizer: i18n.NewLocalizer(b, prefs...),
		tag:       tag,
	}
}

// Language returns the best supported language for this localizer.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Text returns the localized text for id. Unknown identifiers are returned as is.
func (l *Localizer) Text(id string) string {
	fallback, known := defaults[id]
	if !known {
		fallback = id
	}

	if l == nil || l.localizer == nil {
		return fallback
	}

	text, err := l.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil || text == "" {
		return fallback
	}
	return text
}

// SetLanguage replaces the package-level localizer used by T.
func SetLanguage(langs ...string) {
	l := New(langs...)
	currentMu.Lock()
	current = l
	currentMu.Unlock()
}

// Default returns the package-level localizer, English until SetLanguage is called.
func Default() *Localizer {
	currentMu.RLock()
	l := current
	currentMu.RUnlock()
	if l != nil {
		return l
	}

	currentMu.Lock()
	defer currentMu.Unlock()
	if current == nil {
		current = New()
	}
	return current
}

// T localizes id with the package-level localizer.
func T(id string) string {
	return Default().Text(id)
}
