package i18n

import (
	"encoding/json"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	mu sync.RWMutex
	i  *I18N
)

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

type MessageFile struct {
	Name    string
	Content []byte
}

// Message is an alias for i18n.Message to avoid requiring users to import go-i18n directly
type Message = i18n.Message

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

func install(bundle *i18n.Bundle, langs ...string) {
	mu.Lock()
	defer mu.Unlock()
	i = &I18N{localizer: i18n.NewLocalizer(bundle, langs...), bundle: bundle}
}

func current() *I18N {
	mu.RLock()
	defer mu.RUnlock()
	return i
}

func InitI18N(messageFilePaths []string) error {
	bundle := newBundle()

	for _, messageFile := range messageFilePaths {
		if _, err := bundle.LoadMessageFile(messageFile); err != nil {
			return err
		}
	}

	install(bundle, language.English.String())
	return nil
}

func InitI18NFromBytes(messageFiles []MessageFile) error {
	bundle := newBundle()

	for _, messageFile := range messageFiles {
		if _, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name); err != nil {
			return err
		}
	}

	install(bundle, language.English.String())
	return nil
}

// SetLanguage switches the active localizer. It is a no-op before InitI18N.
func SetLanguage(lang language.Tag) {
	cur := current()
	if cur == nil {
		return
	}
	install(cur.bundle, lang.String())
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// Localize resolves message in the active language.
// Without an initialised bundle, or when no translation exists, the message's Other text is returned.
func Localize(message *Message, templateData map[string]interface{}) string {
	if message == nil {
		return "I18N Error: nil message"
	}

	cur := current()
	if cur == nil {
		return message.Other
	}

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
	}

	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := cur.localizer.Localize(config)
	if err != nil {
		if message.Other != "" {
			return message.Other
		}
		return "I18N Error"
	}
	return msg
}

// GetString retrieves a localized string by key.
// If the key is not found, the key itself is returned.
func GetString(key string) string {
	cur := current()
	if cur == nil {
		return key
	}
	msg, err := cur.localizer.Localize(&i18n.LocalizeConfig{
		MessageID: key,
	})
	if err != nil {
		return key
	}
	return msg
}
