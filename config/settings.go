package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dasdy/shellmenu/logging"
	"github.com/dasdy/shellmenu/model"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	AppName  = "shellmenu"
	FileName = "shell-menu"

	// KeyDelimiter replaces viper's "." so host and user names may contain dots.
	KeyDelimiter = "::"

	KeyProfiles = "configurations"
	KeyExitKey  = "exit_key"
	KeyStyle    = "style"
	KeyVMargin  = KeyStyle + KeyDelimiter + "vmargin"
	KeyHMargin  = KeyStyle + KeyDelimiter + "hmargin"
	KeyHPadding = KeyStyle + KeyDelimiter + "hpadding"
)

func packageCtx() context.Context {
	return logging.PackageCtx("config")
}

// NewViper returns the viper instance holding the main configuration, with
// defaults and SHELLMENU_* environment overrides.
func NewViper() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter(KeyDelimiter))

	style := model.DefaultStyle()
	v.SetDefault(KeyExitKey, model.DefaultExitKey)
	v.SetDefault(KeyVMargin, style.VMargin)
	v.SetDefault(KeyHMargin, style.HMargin)
	v.SetDefault(KeyHPadding, style.HPadding)

	v.SetEnvPrefix(AppName)
	v.SetEnvKeyReplacer(strings.NewReplacer(KeyDelimiter, "_"))
	v.AutomaticEnv()

	return v
}

// ReadInConfig loads cfgFile, or searches SearchPaths for shell-menu.{json,yaml,toml}.
// found is false when no file exists; this is not an error.
func ReadInConfig(v *viper.Viper, cfgFile string) (found bool, err error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		for _, p := range SearchPaths() {
			v.AddConfigPath(p)
		}

		v.SetConfigName(FileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}

		return false, fmt.Errorf("could not read main configuration: %w", err)
	}

	slog.DebugContext(packageCtx(), "Read main configuration", "file", v.ConfigFileUsed())

	return true, nil
}

// Settings decodes the main configuration held by v.
func Settings(v *viper.Viper) (*model.Settings, error) {
	profiles, err := Profiles(v)
	if err != nil {
		return nil, err
	}

	style := model.Style{}

	for key, dst := range map[string]*int{
		KeyVMargin:  &style.VMargin,
		KeyHMargin:  &style.HMargin,
		KeyHPadding: &style.HPadding,
	} {
		n, err := toInt(v.Get(key))
		if err != nil {
			return nil, model.NewConfigError(KeyStyle, strings.TrimPrefix(key, KeyStyle+KeyDelimiter), err)
		}

		*dst = n
	}

	if err := ValidateStyle(style); err != nil {
		return nil, err
	}

	exitKey := v.GetString(KeyExitKey)
	if exitKey == "" {
		return nil, model.NewConfigError("main", KeyExitKey, model.ErrMissingField)
	}

	return &model.Settings{Profiles: profiles, Style: style, ExitKey: exitKey}, nil
}

// Profiles decodes the host -> user -> screen path table. A missing table
// is empty, not an error.
func Profiles(v *viper.Viper) (map[string]map[string]string, error) {
	raw := v.Get(KeyProfiles)
	if raw == nil {
		return map[string]map[string]string{}, nil
	}

	hosts, err := cast.ToStringMapE(raw)
	if err != nil {
		return nil, model.NewConfigError(KeyProfiles, "", fmt.Errorf("%w: %w", model.ErrUnsupportedValue, err))
	}

	profiles := make(map[string]map[string]string, len(hosts))

	for host, users := range hosts {
		paths, err := cast.ToStringMapStringE(users)
		if err != nil {
			return nil, model.NewConfigError(KeyProfiles, host, fmt.Errorf("%w: %w", model.ErrUnsupportedValue, err))
		}

		profiles[host] = paths
	}

	return profiles, nil
}

func ValidateStyle(style model.Style) error {
	for field, n := range map[string]int{
		"vmargin":  style.VMargin,
		"hmargin":  style.HMargin,
		"hpadding": style.HPadding,
	} {
		if n < 0 {
			return model.NewConfigError(KeyStyle, field, fmt.Errorf("%w: %d", model.ErrNegative, n))
		}
	}

	return nil
}
