package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
	"gopkg.in/yaml.v3"

	"mycard-service/internal/converter"
)

// Форматы вывода
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// cardView представление визитки для вывода в терминал
type cardView struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	JobTitle  string `json:"job_title" yaml:"job_title"`
	Bio       string `json:"bio,omitempty" yaml:"bio,omitempty"`
	Email     string `json:"email" yaml:"email"`
	Phone     string `json:"phone" yaml:"phone"`
	LinkedIn  string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty" yaml:"github,omitempty"`
	Theme     string `json:"theme" yaml:"theme"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	URL       string `json:"url" yaml:"url"`
}

func newCardView(card *converter.CardDTO) cardView {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	return cardView{
		ID:        card.ID,
		Name:      card.Name,
		JobTitle:  card.JobTitle,
		Bio:       deref(card.Bio),
		Email:     card.Email,
		Phone:     card.Phone,
		LinkedIn:  deref(card.LinkedIn),
		GitHub:    deref(card.GitHub),
		Theme:     card.Theme,
		CreatedAt: card.CreatedAt,
		URL:       card.URL,
	}
}

// printCard выводит визитку в выбранном формате
func printCard(w io.Writer, format string, card *converter.CardDTO) error {
	if card == nil {
		return errors.New("empty response from server")
	}
	view := newCardView(card)

	switch format {
	case formatYAML:
		data, err := yaml.Marshal(view)
		if err != nil {
			return err
		}
		// Разделитель документов для потока из watch
		_, err = fmt.Fprintf(w, "%s---\n", data)
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(view)
	}
}

// describeError превращает gRPC статус с деталями в читаемую ошибку
func describeError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", st.Code(), st.Message())

	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.BadRequest:
			for _, v := range d.GetFieldViolations() {
				fmt.Fprintf(&b, "\n  %s: %s", v.GetField(), v.GetDescription())
			}
		case *errdetails.ErrorInfo:
			fmt.Fprintf(&b, " (%s)", d.GetReason())
		}
	}

	return errors.New(b.String())
}
