// Пакет validator проверяет данные формы создания визитки.
//
// Все правила выполняются независимо: ошибки собираются за один проход,
// чтобы вызывающий код мог показать все проблемы сразу.
package validator

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"

	"mycard-service/internal/model"
)

// Ограничения длины в символах Unicode (не в байтах)
const (
	MaxNameLength     = 100
	MaxJobTitleLength = 100
	MaxBioLength      = 300
)

// Сообщения об ошибках по полям
const (
	MsgNameRequired     = "name is required"
	MsgNameTooLong      = "name is too long"
	MsgJobTitleRequired = "job title is required"
	MsgJobTitleTooLong  = "job title is too long"
	MsgBioTooLong       = "bio must not exceed 300 characters"
	MsgEmailRequired    = "email is required"
	MsgEmailInvalid     = "email format is invalid"
	MsgPhoneRequired    = "phone number is required"
	MsgPhoneInvalid     = "phone number format is invalid"
	MsgURLInvalid       = "please enter a link starting with http or https"
)

// trimCutset символы, срезаемые по краям значений: пробел, \t, \n, \r, NUL, \v.
// Прочие пробельные символы Unicode (например, NBSP) считаются содержимым.
const trimCutset = " \t\n\r\x00\x0B"

var (
	phonePattern = regexp.MustCompile(`^[\d\s+\-]{6,20}$`)
	urlPattern   = regexp.MustCompile(`(?i)^https?://`)
)

// Fields нормализованные значения формы (всегда содержит все восемь ключей)
type Fields map[string]string

// Errors ошибки валидации: имя поля -> сообщение
type Errors map[string]string

// Error реализует интерфейс error
func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has проверяет наличие ошибки для поля
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Fields возвращает отсортированный список полей с ошибками
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Validate проверяет сырые поля формы и возвращает ошибки и нормализованные значения.
// Отсутствующие ключи считаются пустыми строками. Функция чистая и детерминированная.
func Validate(raw map[string]string) (Errors, Fields) {
	clean := make(Fields, len(model.FormFields()))
	for _, field := range model.FormFields() {
		clean[field] = Trim(raw[field])
	}

	errs := make(Errors)

	// Имя
	switch name := clean[model.FieldFullName]; {
	case name == "":
		errs[model.FieldFullName] = MsgNameRequired
	case !withinLength(name, MaxNameLength):
		errs[model.FieldFullName] = MsgNameTooLong
	}

	// Должность
	switch title := clean[model.FieldJobTitle]; {
	case title == "":
		errs[model.FieldJobTitle] = MsgJobTitleRequired
	case !withinLength(title, MaxJobTitleLength):
		errs[model.FieldJobTitle] = MsgJobTitleTooLong
	}

	// Описание опционально
	if !withinLength(clean[model.FieldBio], MaxBioLength) {
		errs[model.FieldBio] = MsgBioTooLong
	}

	// Email
	switch email := clean[model.FieldEmail]; {
	case email == "":
		errs[model.FieldEmail] = MsgEmailRequired
	case !IsEmail(email):
		errs[model.FieldEmail] = MsgEmailInvalid
	}

	// Телефон
	switch phone := clean[model.FieldPhone]; {
	case phone == "":
		errs[model.FieldPhone] = MsgPhoneRequired
	case !phonePattern.MatchString(phone):
		errs[model.FieldPhone] = MsgPhoneInvalid
	}

	// Ссылки на профили опциональны
	for _, field := range []string{model.FieldLinkedIn, model.FieldGitHub} {
		if v := clean[field]; v != "" && !urlPattern.MatchString(v) {
			errs[field] = MsgURLInvalid
		}
	}

	// Тема: неизвестное значение заменяется на modern без ошибки
	clean[model.FieldTheme] = string(model.NormalizeTheme(clean[model.FieldTheme]))

	return errs, clean
}

// Trim срезает по краям только символы trimCutset
func Trim(s string) string {
	return strings.Trim(s, trimCutset)
}

// withinLength проверяет, что длина в символах Unicode не превышает limit
func withinLength(s string, limit int) bool {
	return govalidator.RuneLength(s, "0", strconv.Itoa(limit))
}

// IsEmail проверяет синтаксис адреса: один адрес без отображаемого имени,
// только ASCII, в домене есть точка, метки домена без подчеркиваний
// и без точки в конце.
func IsEmail(s string) bool {
	if !govalidator.IsASCII(s) || !govalidator.IsEmail(s) {
		return false
	}

	domain := s[strings.LastIndexByte(s, '@')+1:]
	return !strings.ContainsRune(domain, '_') && !strings.HasSuffix(domain, ".")
}
