//go:build unit

package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"weekly-booking/internal/pkg/errs"
	"weekly-booking/internal/pkg/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults with a generated secret", func(t *testing.T) {
		s, err := settings.Load(filepath.Join(t.TempDir(), "settings.json"))

		require.NoError(t, err)
		assert.Equal(t, settings.DefaultYearsToFuture, s.YearsToFuture)
		assert.Equal(t, settings.DefaultCompanyName, s.CompanyName)
		assert.Equal(t, settings.DefaultLanguage, s.MomentLanguage)
		assert.Len(t, s.SessionSecret, 64)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeFile(t, "settings.json",
			`{"yearsToFuture": 3, "company_name": "Dental", "moment_language": "fi", "session_secret": "abc"}`)

		s, err := settings.Load(path)

		require.NoError(t, err)
		assert.Equal(t, settings.Settings{
			YearsToFuture:  3,
			CompanyName:    "Dental",
			MomentLanguage: "fi",
			SessionSecret:  "abc",
		}, s)
	})

	t.Run("zero horizon is kept and negative is clamped", func(t *testing.T) {
		zero, err := settings.Load(writeFile(t, "settings.json", `{"yearsToFuture": 0}`))
		require.NoError(t, err)
		assert.Equal(t, 0, zero.YearsToFuture)

		negative, err := settings.Load(writeFile(t, "settings.json", `{"yearsToFuture": -2}`))
		require.NoError(t, err)
		assert.Equal(t, 0, negative.YearsToFuture)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		_, err := settings.Load(writeFile(t, "settings.json", `{"yearsToFuture": `))

		assert.Error(t, err)
	})
}

func TestLoadAdminAccount(t *testing.T) {
	t.Run("valid account", func(t *testing.T) {
		path := writeFile(t, "admin.json", `{"username": "admin", "password_hash": "$2a$04$hash"}`)

		acc, err := settings.LoadAdminAccount(path)

		require.NoError(t, err)
		assert.Equal(t, "admin", acc.Username)
		assert.Equal(t, "$2a$04$hash", acc.PasswordHash)
	})

	t.Run("missing file aborts startup", func(t *testing.T) {
		_, err := settings.LoadAdminAccount(filepath.Join(t.TempDir(), "admin.json"))

		assert.True(t, errs.Is(err, settings.ErrAdminAccountMissing))
	})

	t.Run("incomplete or malformed account is invalid", func(t *testing.T) {
		for _, content := range []string{`{"username": "admin"}`, `{"password_hash": "$2a$04$hash"}`, `{}`, `not json`} {
			_, err := settings.LoadAdminAccount(writeFile(t, "admin.json", content))

			assert.True(t, errs.Is(err, settings.ErrAdminAccountInvalid), content)
		}
	})
}
