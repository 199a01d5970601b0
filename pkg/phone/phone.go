// Package phone валидация и нормализация тайских мобильных номеров.
// Номер состоит из 10 цифр и начинается с 0, при вводе допускается
// группировка дефисами 3-3-4 (например "081-234-5678").
package phone

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidPhone возвращается при некорректном формате номера
	ErrInvalidPhone = errors.New("invalid phone number")
)

const digits = 10

// Normalize убирает дефисы и проверяет формат
// Возвращает канонический вид из 10 цифр - в нём номер хранится и сравнивается
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	// Допустимы только цифры и дефисы в позициях 3-3-4
	stripped := strings.ReplaceAll(s, "-", "")
	if len(stripped) != digits {
		return "", ErrInvalidPhone
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return "", ErrInvalidPhone
		}
	}
	if stripped[0] != '0' {
		return "", ErrInvalidPhone
	}

	// Если дефисы есть - они должны стоять по схеме 3-3-4
	if strings.Contains(s, "-") && s != Format(stripped) {
		return "", ErrInvalidPhone
	}

	return stripped, nil
}

// Validate проверяет, что строка является корректным номером
func Validate(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}

// Format возвращает каноническое отображение номера с дефисами 3-3-4
// Ожидает уже нормализованный номер; иначе возвращает вход как есть
func Format(normalized string) string {
	if len(normalized) != digits {
		return normalized
	}
	return normalized[:3] + "-" + normalized[3:6] + "-" + normalized[6:]
}

// Equal сравнивает два номера без учета дефисов
func Equal(a, b string) bool {
	na, errA := Normalize(a)
	nb, errB := Normalize(b)
	if errA != nil || errB != nil {
		return false
	}
	return na == nb
}
