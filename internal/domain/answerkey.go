package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// AnswerKeyKind tags the shape of a stored correct answer. The raw
// payload has no fixed schema, so the shape is decided once when the
// row is loaded instead of being re-sniffed on every evaluation.
type AnswerKeyKind int

const (
	KeyUnknown AnswerKeyKind = iota
	KeyByIndex               // correct option position
	KeyByValue               // scalar matched against option value or label
	KeyByBool                // boolean truth value
	KeyByLabel               // display label match only
	KeyByText                // free-text reference answer
)

// AnswerKey is the decoded, tagged form of a question's correct answer.
// KeyUnknown marks genuinely malformed stored data; evaluation of such
// a key yields an ungraded verdict rather than an error.
type AnswerKey struct {
	Kind  AnswerKeyKind `json:"kind"`
	Index int           `json:"index,omitempty"`
	Value string        `json:"value,omitempty"`
	Bool  bool          `json:"bool,omitempty"`
	Label string        `json:"label,omitempty"`
	Text  string        `json:"text,omitempty"`
	// ValueOnly is set when the stored payload named the option value
	// explicitly ({"value": ...}); bare scalars also allow a label match.
	ValueOnly bool `json:"value_only,omitempty"`
}

func (k AnswerKeyKind) String() string {
	switch k {
	case KeyByIndex:
		return "by_index"
	case KeyByValue:
		return "by_value"
	case KeyByBool:
		return "by_bool"
	case KeyByLabel:
		return "by_label"
	case KeyByText:
		return "by_text"
	default:
		return "unknown"
	}
}

// DecodeAnswerKey parses a raw correct-answer payload into its tagged
// form. The question kind disambiguates bare numbers: on choice
// questions they are option indexes, elsewhere they are scalar values.
// Object payloads are resolved by field, in order: index, value, label,
// text. Anything else decodes to KeyUnknown.
func DecodeAnswerKey(raw []byte, kind QuestionKind) AnswerKey {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return AnswerKey{Kind: KeyUnknown}
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return AnswerKey{Kind: KeyUnknown}
	}

	switch val := v.(type) {
	case json.Number:
		if kind == KindChoice {
			if i, err := strconv.Atoi(val.String()); err == nil {
				return AnswerKey{Kind: KeyByIndex, Index: i}
			}
		}
		return AnswerKey{Kind: KeyByValue, Value: val.String()}
	case string:
		return AnswerKey{Kind: KeyByValue, Value: val}
	case bool:
		return AnswerKey{Kind: KeyByBool, Bool: val, Value: strconv.FormatBool(val)}
	case map[string]interface{}:
		return decodeObjectKey(val)
	}
	return AnswerKey{Kind: KeyUnknown}
}

func decodeObjectKey(obj map[string]interface{}) AnswerKey {
	if idx, ok := obj["index"]; ok {
		if n, ok := idx.(json.Number); ok {
			if i, err := strconv.Atoi(n.String()); err == nil {
				return AnswerKey{Kind: KeyByIndex, Index: i}
			}
		}
	}
	if value, ok := obj["value"]; ok {
		if s, ok := scalarToString(value); ok {
			return AnswerKey{Kind: KeyByValue, Value: s, ValueOnly: true}
		}
	}
	if label, ok := obj["label"]; ok {
		if s, ok := label.(string); ok {
			return AnswerKey{Kind: KeyByLabel, Label: s}
		}
	}
	if text, ok := obj["text"]; ok {
		if s, ok := text.(string); ok {
			return AnswerKey{Kind: KeyByText, Text: s}
		}
	}
	return AnswerKey{Kind: KeyUnknown}
}

// EncodeAnswerKey renders a tagged key back into its canonical loose
// JSON form, the inverse of DecodeAnswerKey. KeyUnknown encodes as
// JSON null.
func EncodeAnswerKey(key AnswerKey) ([]byte, error) {
	switch key.Kind {
	case KeyByIndex:
		return json.Marshal(key.Index)
	case KeyByValue:
		if key.ValueOnly {
			return json.Marshal(map[string]string{"value": key.Value})
		}
		return json.Marshal(key.Value)
	case KeyByBool:
		return json.Marshal(key.Bool)
	case KeyByLabel:
		return json.Marshal(map[string]string{"label": key.Label})
	case KeyByText:
		return json.Marshal(map[string]string{"text": key.Text})
	default:
		return []byte("null"), nil
	}
}

func scalarToString(v interface{}) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case json.Number:
		return val.String(), true
	}
	return "", false
}
