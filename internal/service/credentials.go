// File: internal/service/credentials.go
package service

import (
	"errors"
	"regexp"

	"service-market/internal/model"
)

// Allowed credential characters: latin letters, digits and ASCII punctuation.
const credentialCharset = "A-Za-z0-9!@#$%^&*()_\\-+=\\[\\]{};:'\",.<>/?\\\\|`~"

var (
	loginRE    = regexp.MustCompile("^[" + credentialCharset + "]{3,50}$")
	passwordRE = regexp.MustCompile("^[" + credentialCharset + "]{6,80}$")
)

const (
	MsgBadLogin    = "Логин: 3-50 символов, латиница/цифры/знаки."
	MsgBadPassword = "Пароль: 6-80 символов, латиница/цифры/знаки."
)

// ValidLogin reports whether a login satisfies the charset and 3-50 length.
func ValidLogin(login string) bool {
	return loginRE.MatchString(login)
}

// ValidPassword reports whether a password satisfies the charset and 6-80 length.
func ValidPassword(password string) bool {
	return passwordRE.MatchString(password)
}

// AuthenticateAccount checks a plaintext password against the account hash.
func AuthenticateAccount(account model.Account, password string) error {
	if err := ComparePassword(account.PasswordHash, password); err != nil {
		return errors.New("invalid password")
	}
	return nil
}
