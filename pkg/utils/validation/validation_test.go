package validation

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImage(t *testing.T) {
	t.Run("Accepts Allowed Types", func(t *testing.T) {
		for _, name := range []string{"foto.jpg", "foto.JPEG", "planta.png", "capa.webp"} {
			file := &multipart.FileHeader{Filename: name, Size: 1024}
			assert.NoError(t, ValidateImage(file), name)
		}
	})

	t.Run("Rejects Other Types", func(t *testing.T) {
		file := &multipart.FileHeader{Filename: "contrato.pdf", Size: 1024}
		assert.ErrorIs(t, ValidateImage(file), ErrFileType)
	})

	t.Run("Rejects Oversized Files", func(t *testing.T) {
		file := &multipart.FileHeader{Filename: "foto.jpg", Size: MaxImageSize + 1}
		assert.ErrorIs(t, ValidateImage(file), ErrFileSize)
	})

	t.Run("Rejects Missing File", func(t *testing.T) {
		assert.ErrorIs(t, ValidateImage(nil), ErrFileRequired)
	})
}

func TestStruct(t *testing.T) {
	type form struct {
		Name   string `validate:"required,min=2"`
		Email  string `validate:"omitempty,email"`
		Status string `validate:"required,oneof=new contacted"`
	}

	t.Run("Valid Input", func(t *testing.T) {
		assert.NoError(t, Struct(&form{Name: "Ana", Status: "new"}))
	})

	t.Run("Blank Optional Email Passes", func(t *testing.T) {
		assert.NoError(t, Struct(&form{Name: "Ana", Email: "", Status: "new"}))
	})

	t.Run("Invalid Email", func(t *testing.T) {
		err := Struct(&form{Name: "Ana", Email: "nope", Status: "new"})
		assert.EqualError(t, err, "email must be a valid email address")
	})

	t.Run("Too Short", func(t *testing.T) {
		err := Struct(&form{Name: "A", Status: "new"})
		assert.EqualError(t, err, "name must be at least 2 characters")
	})

	t.Run("Enum Violation", func(t *testing.T) {
		err := Struct(&form{Name: "Ana", Status: "archived"})
		assert.EqualError(t, err, "status must be one of: new contacted")
	})
}
