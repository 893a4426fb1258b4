package model

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"time"
)

// DateLayout — единственный допустимый формат даты.
const DateLayout = "2006-01-02"

var dateRe = regexp.MustCompile(`^\d{4}-(0\d|1[0-2])-([0-2]\d|3[01])$`)

// Date — календарная дата без времени. В БД хранится строкой YYYY-MM-DD,
// поэтому сравнение в запросах лексикографическое.
// Нулевое значение — «дата не задана»; 0001-01-01 остаётся обычной датой.
type Date struct {
	t     time.Time
	valid bool
}

// NewDate строит дату из компонент.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), valid: true}
}

// DateOf отбрасывает время у t (в его часовом поясе).
func DateOf(t time.Time) Date {
	return NewDate(t.Date())
}

// ParseDate строго разбирает YYYY-MM-DD: формат и существование дня.
func ParseDate(s string) (Date, error) {
	if !dateRe.MatchString(s) {
		return Date{}, fmt.Errorf("date %q: expected format YYYY-MM-DD", s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("date %q: %w", s, err)
	}
	return Date{t: t, valid: true}, nil
}

// IsZero сообщает, что дата не задана.
func (d Date) IsZero() bool { return !d.valid }

// AddDays сдвигает дату на n дней.
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n), valid: d.valid} }

// Before сообщает, что d строго раньше o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// String возвращает YYYY-MM-DD или пустую строку для нулевой даты.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// GormDataType хранит дату текстом во всех диалектах.
func (Date) GormDataType() string { return "string" }

// Value реализует driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan реализует sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v.UTC())
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

func (d *Date) scanString(s string) error {
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
