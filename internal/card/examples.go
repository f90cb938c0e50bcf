package card

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

const (
	LangFrench  = "fr"
	LangEnglish = "en"
)

// Examples maps a language tag to its example sentences.
// The sequences of different languages are translations of each other, index by index.
type Examples map[string][]string

// Example returns the example sentence at idx for lang, wrapping idx around the number of sentences.
// The second value is false when no example is available for lang.
func (e Examples) Example(lang string, idx int) (string, bool) {
	sentences := e[lang]
	if len(sentences) == 0 {
		return "", false
	}
	idx %= len(sentences)
	if idx < 0 {
		idx += len(sentences)
	}
	return sentences[idx], true
}

// Count returns the number of example pairs.
func (e Examples) Count() int {
	if n := len(e[LangFrench]); n > 0 {
		return n
	}
	return len(e[LangEnglish])
}

// Validate checks that the french and english sequences line up.
func (e Examples) Validate() error {
	fr, hasFr := e[LangFrench]
	en, hasEn := e[LangEnglish]
	if hasFr && hasEn && len(fr) != len(en) {
		return fmt.Errorf("examples have %d %s and %d %s sentences", len(fr), LangFrench, len(en), LangEnglish)
	}
	return nil
}

// Value implements driver.Valuer.
func (e Examples) Value() (driver.Value, error) {
	if e == nil {
		return "{}", nil
	}
	b, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(examples) > %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (e *Examples) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*e = Examples{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into examples", src)
	}

	res := Examples{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &res); err != nil {
			return fmt.Errorf("json.Unmarshal(examples) > %w", err)
		}
	}
	*e = res
	return nil
}
