package stylebook_test

import (
	"testing"

	"github.com/fwojciec/stylebook"
	"github.com/stretchr/testify/assert"
)

func TestCheckRenderable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "plain text", text: "Use plain language."},
		{name: "unicode", text: "Māori and Torres Strait Islander – “quotes”"},
		{name: "tabs and newlines", text: "a\tb\nc"},
		{name: "markup-like text", text: "a < b & c > d"},
		{name: "invalid utf-8", text: "bad \xff byte", wantErr: true},
		{name: "control character", text: "bell \a", wantErr: true},
		{name: "nul", text: "nul \x00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := stylebook.CheckRenderable(tt.text)
			if tt.wantErr {
				assert.Equal(t, stylebook.EINVALID, stylebook.ErrorCode(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "clean", stylebook.SanitizeText("clean"))
	assert.Equal(t, "bad byte", stylebook.SanitizeText("bad \xffbyte"))
	assert.Equal(t, "bell", stylebook.SanitizeText("be\all"))
	assert.NoError(t, stylebook.CheckRenderable(stylebook.SanitizeText("x\x00\xfey")))
}
