package model

// Theme тема оформления визитки
type Theme string

const (
	ThemeModern       Theme = "modern"
	ThemeProfessional Theme = "professional"
	ThemeCreative     Theme = "creative"
)

// DefaultTheme используется для любых неизвестных или пустых значений
const DefaultTheme = ThemeModern

// Themes возвращает все допустимые темы
func Themes() []Theme {
	return []Theme{ThemeModern, ThemeProfessional, ThemeCreative}
}

// Valid проверяет, входит ли тема в перечисление
func (t Theme) Valid() bool {
	switch t {
	case ThemeModern, ThemeProfessional, ThemeCreative:
		return true
	}
	return false
}

// NormalizeTheme приводит произвольное значение к допустимой теме.
// Неизвестное значение молча заменяется на DefaultTheme, это не ошибка.
func NormalizeTheme(s string) Theme {
	t := Theme(s)
	if !t.Valid() {
		return DefaultTheme
	}
	return t
}

// Accent возвращает классы градиента для шапки визитки
func (t Theme) Accent() string {
	switch t {
	case ThemeProfessional:
		return "from-emerald-500 to-teal-600"
	case ThemeCreative:
		return "from-orange-500 to-rose-500"
	default:
		return "from-indigo-500 to-purple-600"
	}
}
