package model

import (
	"errors"
	"time"
	"unicode/utf8"
)

// Card представляет цифровую визитку (доменная модель)
type Card struct {
	ID        string  // Непрозрачный идентификатор (hex)
	Name      string  // Полное имя
	JobTitle  string  // Должность
	Bio       *string // Краткое описание (nil если не задано)
	Email     string  // Электронная почта
	Phone     string  // Номер телефона
	LinkedIn  *string // Ссылка на LinkedIn (nil если не задана)
	GitHub    *string // Ссылка на GitHub (nil если не задана)
	Theme     Theme   // Тема оформления
	CreatedAt string  // Дата создания в формате ISO-8601
}

// CreatedAtLayout формат временной метки создания (аналог date('c'))
const CreatedAtLayout = time.RFC3339

// FormatCreatedAt форматирует время в формат CreatedAt
func FormatCreatedAt(t time.Time) string {
	return t.Format(CreatedAtLayout)
}

// Validate проверяет инварианты карточки перед сохранением:
// все обязательные поля непусты, тема из перечисления
func (c *Card) Validate() error {
	if c.ID == "" {
		return errors.New("id cannot be empty")
	}
	if c.Name == "" {
		return errors.New("name cannot be empty")
	}
	if c.JobTitle == "" {
		return errors.New("job title cannot be empty")
	}
	if c.Email == "" {
		return errors.New("email cannot be empty")
	}
	if c.Phone == "" {
		return errors.New("phone cannot be empty")
	}
	if !c.Theme.Valid() {
		return errors.New("invalid theme")
	}
	return nil
}

// IsEmpty проверяет, пуста ли карточка
func (c *Card) IsEmpty() bool {
	return c.ID == "" && c.Name == "" && c.Email == ""
}

// Initial возвращает первую букву имени для аватара (поддерживает любой алфавит)
func (c *Card) Initial() string {
	r, size := utf8.DecodeRuneInString(c.Name)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// OptionalString превращает пустую строку в nil
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue возвращает значение опциональной строки или ""
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
