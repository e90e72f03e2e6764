package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date representa uma data de calendário (sem componente de hora),
// serializada sempre no formato YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(value string) (Date, error) {
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return Date{}, fmt.Errorf("data inválida %q: %w", value, err)
	}
	return Date{Time: parsed}, nil
}

// AddDays retorna uma nova data deslocada em dias de calendário
func (d Date) AddDays(days int) Date {
	return Date{Time: d.Time.AddDate(0, 0, days)}
}

func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

func (d Date) String() string {
	return d.Time.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Value implementa driver.Valuer para colunas DATE
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implementa sql.Scanner; o driver pq devolve DATE como time.Time
func (d *Date) Scan(src any) error {
	switch value := src.(type) {
	case time.Time:
		d.Time = time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case string:
		parsed, err := ParseDate(value)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(value))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("tipo inesperado para Date: %T", src)
	}
}
