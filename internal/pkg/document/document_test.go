package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_Txt(t *testing.T) {
	content := "John Doe\nSenior Software Engineer\njohn.doe@example.com\n\n" +
		"SKILLS\nPython, Go, Docker, Kubernetes, PostgreSQL, Redis, Linux, Git"
	text, err := ExtractText("resume.TXT", []byte(content))
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestExtractText_TooShort(t *testing.T) {
	_, err := ExtractText("resume.txt", []byte("hello world"))
	assert.ErrorIs(t, err, ErrTextTooShort)
}

func TestExtractText_Unsupported(t *testing.T) {
	testCases := []struct {
		name     string
		filename string
	}{
		{
			name:     "老版 doc",
			filename: "resume.doc",
		},
		{
			name:     "图片",
			filename: "resume.png",
		},
		{
			name:     "没有扩展名",
			filename: "resume",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractText(tc.filename, []byte("abc"))
			assert.ErrorIs(t, err, ErrUnsupportedType)
		})
	}
}

func TestExtractText_BadPDF(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("not a pdf"))
	assert.Error(t, err)
}
