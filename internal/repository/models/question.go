package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// OptionRecord is the stored form of one answer option.
type OptionRecord struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// OptionSlice stores answer options as a JSON CLOB.
type OptionSlice []OptionRecord

// Value implements the driver.Valuer interface
func (o OptionSlice) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (o *OptionSlice) Scan(value interface{}) error {
	if value == nil {
		*o = OptionSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("OptionSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*o = OptionSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, o)
}

// Question is the persistence model for a quiz question. The answer key
// is kept as the raw JSON payload; decoding into the tagged domain form
// happens in the adapter.
type Question struct {
	ID         string         `db:"id"`
	Prompt     string         `db:"prompt"`
	QType      string         `db:"qtype"`
	Difficulty string         `db:"difficulty"`
	Topic      sql.NullString `db:"topic"`
	Options    OptionSlice    `db:"options"`
	AnswerKey  string         `db:"answer_key"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
	DeletedAt  sql.NullTime   `db:"deleted_at"`
}

func (Question) TableName() string {
	return "questions"
}
