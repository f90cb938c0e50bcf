// Package seed reads the initial deck of a card store from a JSON or YAML file.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/leitner/internal/card"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for seed files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported seed file format")

// Entry is the seed record of one word. The word itself is the key of the entry in the file.
type Entry struct {
	Translation string        `json:"translation" yaml:"translation" validate:"required"`
	Category    int           `json:"category" yaml:"category" validate:"min=0,max=8"`
	LastUpdate  string        `json:"last_update" yaml:"last_update"`
	Examples    card.Examples `json:"examples" yaml:"examples"`
}

// EntryError reports the word whose entry could not be turned into a card.
type EntryError struct {
	Word string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("seed entry %q: %v", e.Word, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads the seed file at path.
func Load(path string) ([]card.Card, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer f.Close()

	cards, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("Decode(%s) > %w", path, err)
	}
	slog.Default().Debug("loaded seed file", "path", path, "cards", len(cards))
	return cards, nil
}

// Decode reads seed entries from r and converts them into unsaved cards ordered by word.
// A single invalid entry fails the whole decode.
func Decode(r io.Reader, format Format) ([]card.Card, error) {
	entries := map[string]Entry{}
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&entries)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&entries)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode %s seed > %w", format, err)
	}

	validate := newValidator()
	words := make([]string, 0, len(entries))
	for word := range entries {
		words = append(words, word)
	}
	slices.Sort(words)

	cards := make([]card.Card, 0, len(words))
	for _, word := range words {
		c, err := toCard(validate, word, entries[word])
		if err != nil {
			return nil, &EntryError{Word: word, Err: err}
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func toCard(validate *validator.Validate, word string, entry Entry) (card.Card, error) {
	if strings.TrimSpace(word) == "" {
		return card.Card{}, errors.New("word is empty")
	}
	if err := validate.Struct(entry); err != nil {
		return card.Card{}, err
	}

	c := card.NewCard(entry.Translation, word, entry.Examples)
	c.Category = card.Category(entry.Category)
	if entry.LastUpdate != "" {
		day, err := card.ParseDayStamp(entry.LastUpdate)
		if err != nil {
			return card.Card{}, err
		}
		c.LastUpdate = &day
	}
	if err := c.Validate(); err != nil {
		return card.Card{}, err
	}
	return c, nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}
