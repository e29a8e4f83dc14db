package converter

import (
	"net/url"

	"mycard-service/internal/model"
)

// Record представление визитки в JSON-файле хранилища.
// Опциональные поля сериализуются как null.
type Record struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	JobTitle  string  `json:"job_title"`
	Bio       *string `json:"bio"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	LinkedIn  *string `json:"linkedin"`
	GitHub    *string `json:"github"`
	Theme     string  `json:"theme"`
	CreatedAt string  `json:"created_at"`
}

// CardDTO представление визитки во внешних API (HTTP и gRPC)
type CardDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	JobTitle  string  `json:"job_title"`
	Bio       *string `json:"bio"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	LinkedIn  *string `json:"linkedin"`
	GitHub    *string `json:"github"`
	Theme     string  `json:"theme"`
	Accent    string  `json:"accent"`
	Initial   string  `json:"initial"`
	CreatedAt string  `json:"created_at"`
	URL       string  `json:"url"`
}

// ShareURL возвращает относительную ссылку на публичную страницу визитки
func ShareURL(id string) string {
	return "/card?id=" + url.QueryEscape(id)
}

// RecordToModel конвертирует запись хранилища в доменную модель.
// Неизвестная тема заменяется на тему по умолчанию, отсутствующая дата остается пустой.
func RecordToModel(r Record) model.Card {
	return model.Card{
		ID:        r.ID,
		Name:      r.Name,
		JobTitle:  r.JobTitle,
		Bio:       r.Bio,
		Email:     r.Email,
		Phone:     r.Phone,
		LinkedIn:  r.LinkedIn,
		GitHub:    r.GitHub,
		Theme:     model.NormalizeTheme(r.Theme),
		CreatedAt: r.CreatedAt,
	}
}

// ModelToRecord конвертирует доменную модель в запись хранилища
func ModelToRecord(c model.Card) Record {
	return Record{
		ID:        c.ID,
		Name:      c.Name,
		JobTitle:  c.JobTitle,
		Bio:       c.Bio,
		Email:     c.Email,
		Phone:     c.Phone,
		LinkedIn:  c.LinkedIn,
		GitHub:    c.GitHub,
		Theme:     string(c.Theme),
		CreatedAt: c.CreatedAt,
	}
}

// ModelsToRecords конвертирует слайс доменных моделей в записи хранилища
func ModelsToRecords(cards []model.Card) []Record {
	records := make([]Record, len(cards))
	for i, card := range cards {
		records[i] = ModelToRecord(card)
	}
	return records
}

// ModelToDTO конвертирует доменную модель во внешнее представление
func ModelToDTO(c model.Card) *CardDTO {
	return &CardDTO{
		ID:        c.ID,
		Name:      c.Name,
		JobTitle:  c.JobTitle,
		Bio:       c.Bio,
		Email:     c.Email,
		Phone:     c.Phone,
		LinkedIn:  c.LinkedIn,
		GitHub:    c.GitHub,
		Theme:     string(c.Theme),
		Accent:    c.Theme.Accent(),
		Initial:   c.Initial(),
		CreatedAt: c.CreatedAt,
		URL:       ShareURL(c.ID),
	}
}

// DTOToModel конвертирует внешнее представление в доменную модель
func DTOToModel(dto *CardDTO) model.Card {
	if dto == nil {
		return model.Card{}
	}

	return model.Card{
		ID:        dto.ID,
		Name:      dto.Name,
		JobTitle:  dto.JobTitle,
		Bio:       dto.Bio,
		Email:     dto.Email,
		Phone:     dto.Phone,
		LinkedIn:  dto.LinkedIn,
		GitHub:    dto.GitHub,
		Theme:     model.NormalizeTheme(dto.Theme),
		CreatedAt: dto.CreatedAt,
	}
}
