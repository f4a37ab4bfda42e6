// Package settings reads the operator-managed files that sit next to the
// binary: settings.json (booking horizon, branding, locale, session secret)
// and admin.json (the single administrator account).
package settings

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strings"

	"weekly-booking/internal/pkg/errs"
)

const (
	DefaultYearsToFuture = 1
	DefaultCompanyName   = "Doctor"
	DefaultLanguage      = "en"
)

var (
	ErrAdminAccountMissing = errs.New("admin account file not found")
	ErrAdminAccountInvalid = errs.New("admin account file is invalid")
)

type Settings struct {
	YearsToFuture  int    `json:"yearsToFuture"`
	CompanyName    string `json:"company_name"`
	MomentLanguage string `json:"moment_language"`
	SessionSecret  string `json:"session_secret"`
}

type fileSettings struct {
	YearsToFuture  *int   `json:"yearsToFuture"`
	CompanyName    string `json:"company_name"`
	MomentLanguage string `json:"moment_language"`
	SessionSecret  string `json:"session_secret"`
}

type AdminAccount struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

// Load returns defaults when the file does not exist. A file that exists but
// cannot be parsed is an error.
func Load(path string) (Settings, error) {
	var f fileSettings

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Settings{}, errs.Wrapf(err, "read settings %s", path)
	default:
		if err := json.Unmarshal(raw, &f); err != nil {
			return Settings{}, errs.Wrapf(err, "parse settings %s", path)
		}
	}

	return f.withDefaults()
}

func (f fileSettings) withDefaults() (Settings, error) {
	s := Settings{
		YearsToFuture:  DefaultYearsToFuture,
		CompanyName:    f.CompanyName,
		MomentLanguage: f.MomentLanguage,
		SessionSecret:  f.SessionSecret,
	}
	if f.YearsToFuture != nil {
		s.YearsToFuture = max(*f.YearsToFuture, 0)
	}
	if strings.TrimSpace(s.CompanyName) == "" {
		s.CompanyName = DefaultCompanyName
	}
	if strings.TrimSpace(s.MomentLanguage) == "" {
		s.MomentLanguage = DefaultLanguage
	}
	if s.SessionSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return Settings{}, err
		}
		s.SessionSecret = secret
	}
	return s, nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "generate session secret")
	}
	return hex.EncodeToString(buf), nil
}

// LoadAdminAccount fails with ErrAdminAccountMissing when the file is absent;
// the server refuses to start without it.
func LoadAdminAccount(path string) (AdminAccount, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return AdminAccount{}, errs.Mark(errs.Wrapf(err, "admin account %s", path), ErrAdminAccountMissing)
		}
		return AdminAccount{}, errs.Wrapf(err, "read admin account %s", path)
	}

	var acc AdminAccount
	if err := json.Unmarshal(raw, &acc); err != nil {
		return AdminAccount{}, errs.Mark(err, ErrAdminAccountInvalid)
	}
	if acc.Username == "" || acc.PasswordHash == "" {
		return AdminAccount{}, ErrAdminAccountInvalid
	}
	return acc, nil
}
