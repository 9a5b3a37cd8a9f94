package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// UsernamePattern - логин сотрудника после NormalizeUsername:
// строчные латинские буквы, цифры, точка и подчеркивание, начинается с буквы
var UsernamePattern = regexp.MustCompile(`^[a-z][a-z0-9._]*$`)

const (
	// MinUsernameLen минимальная длина логина
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина логина
	MaxUsernameLen = 32
	// MinPasswordLen минимальная длина пароля сотрудника
	MinPasswordLen = 8
	// maxPasswordLen bcrypt учитывает только первые 72 байта
	maxPasswordLen = 72
)

// Журнал аудита должен называть конкретного человека,
// поэтому общие учетные записи не регистрируются
var sharedAccounts = map[string]struct{}{
	"admin":         {},
	"administrator": {},
	"root":          {},
	"system":        {},
	"guest":         {},
	"staff":         {},
}

// NormalizeUsername приводит логин к каноническому виду: "Maria.K " и
// "maria.k" - один и тот же сотрудник
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidateUsername проверяет нормализованный логин сотрудника
func ValidateUsername(username string) error {
	switch {
	case username == "":
		return fmt.Errorf("username cannot be empty")
	case len(username) < MinUsernameLen:
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	case len(username) > MaxUsernameLen:
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	case !UsernamePattern.MatchString(username):
		return fmt.Errorf("username must start with a letter and contain only lowercase letters, numbers, dots and underscores")
	case strings.Contains(username, ".."):
		return fmt.Errorf("username cannot contain consecutive dots")
	}

	if _, shared := sharedAccounts[username]; shared {
		return fmt.Errorf("username %q is a shared account name, register under your own name", username)
	}

	return nil
}

// ValidatePassword проверяет пароль сотрудника
func ValidatePassword(username, password string) error {
	switch {
	case password == "":
		return fmt.Errorf("password cannot be empty")
	case len(password) < MinPasswordLen:
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	case len(password) > maxPasswordLen:
		return fmt.Errorf("password must not exceed %d bytes", maxPasswordLen)
	case username != "" && strings.Contains(strings.ToLower(password), username):
		return fmt.Errorf("password must not contain the username")
	}
	return nil
}
