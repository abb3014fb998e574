package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"skillforge_backend/internal/quiz"
)

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(dest interface{}, value interface{}) error {
	if value == nil {
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for JSON column")
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}

// StringList is an ordered list of strings stored as a JSON column
// (course topics, material id sets).
type StringList []string

func (l StringList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *StringList) Scan(value interface{}) error {
	return jsonScan(l, value)
}

// StringMap is a string-keyed map stored as a JSON column (attempt answers,
// per-question feedback).
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) { return jsonValue(m) }
func (m *StringMap) Scan(value interface{}) error {
	return jsonScan(m, value)
}

// QuestionList stores a quiz's ordered question sequence as a JSON column.
// Order in the array is display and traversal order.
type QuestionList []quiz.Question

func (l QuestionList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *QuestionList) Scan(value interface{}) error {
	return jsonScan(l, value)
}

// MaterialList stores a course's materials as a JSON column, insertion
// ordered.
type MaterialList []CourseMaterial

func (l MaterialList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *MaterialList) Scan(value interface{}) error {
	return jsonScan(l, value)
}
