package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycard-service/internal/model"
)

func validInput() map[string]string {
	return map[string]string{
		model.FieldFullName: "Omar",
		model.FieldJobTitle: "Engineer",
		model.FieldEmail:    "omar@x.com",
		model.FieldPhone:    "+1 555 0100",
	}
}

func TestValidate_Valid(t *testing.T) {
	errs, clean := Validate(validInput())

	assert.Empty(t, errs)
	assert.Equal(t, "Omar", clean[model.FieldFullName])
	assert.Equal(t, "modern", clean[model.FieldTheme])
}

func TestValidate_AlwaysReturnsAllFields(t *testing.T) {
	errs, clean := Validate(nil)

	assert.NotEmpty(t, errs)
	require.Len(t, clean, len(model.FormFields()))
	for _, field := range model.FormFields() {
		_, ok := clean[field]
		assert.True(t, ok, "field %s missing from normalized output", field)
	}
}

func TestValidate_TrimsValues(t *testing.T) {
	in := validInput()
	in[model.FieldFullName] = "  Omar \t"
	in[model.FieldBio] = "   "
	in[model.FieldTheme] = " creative "

	errs, clean := Validate(in)

	assert.Empty(t, errs)
	assert.Equal(t, "Omar", clean[model.FieldFullName])
	assert.Equal(t, "", clean[model.FieldBio])
	assert.Equal(t, "creative", clean[model.FieldTheme])
}

func TestValidate_RequiredFields(t *testing.T) {
	for _, field := range []string{model.FieldFullName, model.FieldJobTitle, model.FieldEmail, model.FieldPhone} {
		t.Run(field, func(t *testing.T) {
			in := validInput()
			delete(in, field)

			errs, _ := Validate(in)

			require.Len(t, errs, 1)
			assert.True(t, errs.Has(field))
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	errs, _ := Validate(map[string]string{
		model.FieldEmail:    "not-an-email",
		model.FieldPhone:    "abc",
		model.FieldLinkedIn: "ftp://x",
		model.FieldGitHub:   "github.com/omar",
		model.FieldBio:      strings.Repeat("b", 301),
	})

	assert.Equal(t, []string{
		model.FieldBio,
		model.FieldEmail,
		model.FieldFullName,
		model.FieldGitHub,
		model.FieldJobTitle,
		model.FieldLinkedIn,
		model.FieldPhone,
	}, errs.Fields())
	assert.Equal(t, MsgEmailInvalid, errs[model.FieldEmail])
	assert.Equal(t, MsgPhoneInvalid, errs[model.FieldPhone])
}

func TestValidate_LengthLimits(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
	}{
		{"bio 300", model.FieldBio, strings.Repeat("a", 300), false},
		{"bio 301", model.FieldBio, strings.Repeat("a", 301), true},
		{"bio 300 multibyte", model.FieldBio, strings.Repeat("ع", 300), false},
		{"name 100", model.FieldFullName, strings.Repeat("n", 100), false},
		{"name 101", model.FieldFullName, strings.Repeat("n", 101), true},
		{"name 100 cyrillic", model.FieldFullName, strings.Repeat("ж", 100), false},
		{"job title 101", model.FieldJobTitle, strings.Repeat("j", 101), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in[tt.field] = tt.value

			errs, _ := Validate(in)

			assert.Equal(t, tt.wantErr, errs.Has(tt.field))
		})
	}
}

func TestValidate_ProfileLinks(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"ftp://x", true},
		{"www.linkedin.com/in/omar", true},
		{"https://x", false},
		{"http://x", false},
		{"HTTPS://LinkedIn.com/in/omar", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			in := validInput()
			in[model.FieldLinkedIn] = tt.value
			in[model.FieldGitHub] = tt.value

			errs, clean := Validate(in)

			assert.Equal(t, tt.wantErr, errs.Has(model.FieldLinkedIn))
			assert.Equal(t, tt.wantErr, errs.Has(model.FieldGitHub))
			if tt.value == "" {
				assert.Equal(t, "", clean[model.FieldLinkedIn])
			}
		})
	}
}

func TestValidate_Phone(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"+1 555 0100", false},
		{"0500-123-456", false},
		{"123456", false},
		{"12345", true},
		{"123456789012345678901", true},
		{"+1 (555) 0100", true},
		{"phone", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			in := validInput()
			in[model.FieldPhone] = tt.value

			errs, _ := Validate(in)

			assert.Equal(t, tt.wantErr, errs.Has(model.FieldPhone))
		})
	}
}

func TestValidate_ThemeNeverErrors(t *testing.T) {
	for _, theme := range []string{"", "modern", "professional", "creative", "neon", "<script>"} {
		in := validInput()
		in[model.FieldTheme] = theme

		errs, clean := Validate(in)

		assert.Empty(t, errs)
		assert.True(t, model.Theme(clean[model.FieldTheme]).Valid())
	}
}

func TestValidate_Deterministic(t *testing.T) {
	in := validInput()
	in[model.FieldEmail] = "bad"

	errs1, clean1 := Validate(in)
	errs2, clean2 := Validate(in)

	assert.Equal(t, errs1, errs2)
	assert.Equal(t, clean1, clean2)
	assert.Equal(t, "bad", in[model.FieldEmail], "input must not be modified")
}

func TestIsEmail(t *testing.T) {
	valid := []string{"omar@x.com", "first.last+tag@example.co.uk", "a_b@sub.domain.org"}
	invalid := []string{"", "omar", "omar@", "@x.com", "omar@x", "Omar <omar@x.com>", "omar@x.com, b@y.com", "omar@.com", "omar@x.com.",
		"a@-x.com", "a@x_y.com", "омар@x.com"}

	for _, s := range valid {
		assert.True(t, IsEmail(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsEmail(s), s)
	}
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "Omar", Trim("\x00\x0B \tOmar\r\n"))
	// NBSP и прочие пробельные символы Unicode не срезаются
	assert.Equal(t, "\u00a0Omar\u00a0", Trim(" \u00a0Omar\u00a0 "))
}

func TestValidate_NBSPIsContent(t *testing.T) {
	in := validInput()
	in[model.FieldFullName] = "\u00a0\u00a0"

	errs, clean := Validate(in)

	assert.False(t, errs.Has(model.FieldFullName))
	assert.Equal(t, "\u00a0\u00a0", clean[model.FieldFullName])
}

func TestErrors_Error(t *testing.T) {
	errs := Errors{
		model.FieldPhone: MsgPhoneRequired,
		model.FieldEmail: MsgEmailRequired,
	}

	assert.Equal(t, "validation failed: email: email is required; phone: phone number is required", errs.Error())
}
