package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	// MinutesPerDay количество минут в сутках
	MinutesPerDay = 24 * 60

	timeOfDayLayoutLen = len("15:04")
)

var (
	// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда значение выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time of day out of range")
)

// TimeOfDay время суток в минутах от полуночи (0..1439)
type TimeOfDay int

// NewTimeOfDay создает время суток из часов и минут
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrTimeOutOfRange, hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// TimeOfDayFromTime извлекает время суток из time.Time (секунды отбрасываются)
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// ParseTimeOfDay парсит строку строго в формате HH:MM (24 часа)
// "9:00", "24:00", "12:60", "12:00:00" - ошибка
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != timeOfDayLayoutLen || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, ok := parseTwoDigits(s[0], s[1])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, ok := parseTwoDigits(s[3], s[4])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return t, nil
}

func parseTwoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// Hour возвращает час
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute возвращает минуту часа
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// Minutes возвращает количество минут от полуночи
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// IsValid проверяет, что значение лежит в пределах суток
func (t TimeOfDay) IsValid() bool {
	return t >= 0 && t < MinutesPerDay
}

// String возвращает время в формате HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// On возвращает момент времени: дата date в её часовом поясе + время суток
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, date.Location())
}

// MarshalJSON сериализует время как строку "HH:MM"
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON парсит время из строки "HH:MM"
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer, в БД хранится количество минут
func (t TimeOfDay) Value() (driver.Value, error) {
	return int64(t), nil
}

// Scan реализует sql.Scanner
func (t *TimeOfDay) Scan(src interface{}) error {
	var v int64
	switch value := src.(type) {
	case int64:
		v = value
	case int32:
		v = int64(value)
	case []byte:
		if _, err := fmt.Sscanf(string(value), "%d", &v); err != nil {
			return fmt.Errorf("types: scan TimeOfDay from %q: %v", value, err)
		}
	default:
		return fmt.Errorf("types: cannot scan %T into TimeOfDay", src)
	}

	if v < 0 || v >= MinutesPerDay {
		return fmt.Errorf("%w: %d", ErrTimeOutOfRange, v)
	}
	*t = TimeOfDay(v)
	return nil
}
