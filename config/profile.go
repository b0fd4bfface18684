package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/dasdy/shellmenu/model"
)

var (
	ErrNoHostProfile = errors.New("no configuration for the current hostname")
	ErrNoUserProfile = errors.New("no configuration for the current user")
)

var envVariable = regexp.MustCompile(`\$[A-Z_]+`)

// ResolveProfile picks the screen configuration path for host and user.
// Exact names win over the "*" wildcard. Lookups ignore case since viper
// lowercases keys.
func ResolveProfile(profiles map[string]map[string]string, host, user string) (string, error) {
	users, ok := lookup(profiles, host)
	if !ok {
		return "", fmt.Errorf("%w (%s)", ErrNoHostProfile, host)
	}

	path, ok := lookup(users, user)
	if !ok {
		return "", fmt.Errorf("%w (%s)", ErrNoUserProfile, user)
	}

	return path, nil
}

func lookup[V any](m map[string]V, name string) (V, bool) {
	if v, ok := m[name]; ok {
		return v, true
	}

	if v, ok := m[strings.ToLower(name)]; ok {
		return v, true
	}

	v, ok := m[model.Wildcard]

	return v, ok
}

// ExpandEnv replaces $NAME references (upper case letters and underscores)
// with their value. Unset variables are left untouched.
func ExpandEnv(path string, getenv func(string) (string, bool)) string {
	return envVariable.ReplaceAllStringFunc(path, func(ref string) string {
		if value, ok := getenv(ref[1:]); ok {
			return value
		}

		return ref
	})
}

// ScreenPath resolves the screen configuration file for host and user, with
// environment variables expanded and relative paths taken from baseDir.
func ScreenPath(settings *model.Settings, host, user, baseDir string) (string, error) {
	path, err := ResolveProfile(settings.Profiles, host, user)
	if err != nil {
		return "", err
	}

	expanded := ExpandEnv(path, os.LookupEnv)
	slog.DebugContext(packageCtx(), "Resolved screen configuration",
		"host", host,
		"user", user,
		"path", expanded)

	return ResolvePath(expanded, baseDir), nil
}
