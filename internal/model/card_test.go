package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTheme(t *testing.T) {
	tests := []struct {
		in   string
		want Theme
	}{
		{"modern", ThemeModern},
		{"professional", ThemeProfessional},
		{"creative", ThemeCreative},
		{"", ThemeModern},
		{"neon", ThemeModern},
		{"Creative", ThemeModern},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTheme(tt.in))
		})
	}
}

func TestThemeAccent(t *testing.T) {
	assert.Equal(t, "from-indigo-500 to-purple-600", ThemeModern.Accent())
	assert.Equal(t, "from-emerald-500 to-teal-600", ThemeProfessional.Accent())
	assert.Equal(t, "from-orange-500 to-rose-500", ThemeCreative.Accent())
	assert.Equal(t, ThemeModern.Accent(), Theme("unknown").Accent())
}

func TestCard_Initial(t *testing.T) {
	c := Card{Name: "Омар"}
	assert.Equal(t, "О", c.Initial())

	c = Card{Name: "عمر"}
	assert.Equal(t, "ع", c.Initial())

	c = Card{}
	assert.Equal(t, "", c.Initial())
}

func TestCard_Validate(t *testing.T) {
	valid := Card{
		ID:       "abc",
		Name:     "Omar",
		JobTitle: "Engineer",
		Email:    "omar@x.com",
		Phone:    "+1 555 0100",
		Theme:    ThemeModern,
	}
	assert.NoError(t, valid.Validate())

	noID := valid
	noID.ID = ""
	assert.Error(t, noID.Validate())

	noJobTitle := valid
	noJobTitle.JobTitle = ""
	assert.EqualError(t, noJobTitle.Validate(), "job title cannot be empty")

	// Неразрывные пробелы - содержимое, а не пустое значение
	nbspName := valid
	nbspName.Name = "\u00a0\u00a0"
	assert.NoError(t, nbspName.Validate())

	badTheme := valid
	badTheme.Theme = "neon"
	assert.Error(t, badTheme.Validate())
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(""))

	s := OptionalString("bio")
	if assert.NotNil(t, s) {
		assert.Equal(t, "bio", *s)
	}
	assert.Equal(t, "bio", StringValue(s))
	assert.Equal(t, "", StringValue(nil))
}
