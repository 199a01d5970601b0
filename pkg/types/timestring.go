package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString время в формате "HH:MM" без привязки к дате и таймзоне
// Используется для времени начала и конца бронирования
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией
// Принимает "HH:MM" и "HH:MM:SS" (секунды отбрасываются - так хранит БД)
// Часы обязаны быть с ведущим нулём: сравнения TimeString лексикографические,
// и "9:00" сломало бы порядок относительно "10:00"
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) >= 8 && s[2] == ':' {
		if _, err := time.Parse("15:04:05", s[:8]); err == nil {
			return TimeString(s[:5]), nil
		}
	}
	if len(s) != 5 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет корректность формата
func (t TimeString) Validate() error {
	_, err := NewTimeStringFromString(string(t))
	return err
}

// minutes возвращает количество минут с начала суток
func (t TimeString) minutes() (int, error) {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, t)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время через delta минут
// Выход за пределы суток считается ошибкой - бронирования не пересекают полночь
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	m, err := t.minutes()
	if err != nil {
		return "", err
	}
	m += delta
	if m < 0 || m > 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, t, delta)
	}
	if m == 24*60 {
		// Конец последнего слота может упираться в конец суток
		return TimeString("24:00"), nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Scan реализует sql.Scanner
// Postgres возвращает TIME как строку "HH:MM:SS" или time.Time
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
