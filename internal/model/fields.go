package model

// Имена полей формы создания визитки
const (
	FieldFullName = "full_name"
	FieldJobTitle = "job_title"
	FieldBio      = "bio"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldLinkedIn = "linkedin"
	FieldGitHub   = "github"
	FieldTheme    = "theme"
)

// FormFields возвращает все поля формы в порядке отображения
func FormFields() []string {
	return []string{
		FieldFullName,
		FieldJobTitle,
		FieldBio,
		FieldEmail,
		FieldPhone,
		FieldLinkedIn,
		FieldGitHub,
		FieldTheme,
	}
}
