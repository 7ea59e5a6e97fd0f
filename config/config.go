// Package config wires the viper settings engine: defaults, environment
// bindings and the optional config file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/ericyan/omniplayer/key"
	"github.com/ericyan/omniplayer/player"
)

// Name is used for the config file and the environment prefix.
const Name = "omniplayer"

// EnvKeyReplacer maps setting names to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Dir returns the directory searched for the config file.
func Dir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	return filepath.Join(dir, Name)
}

// Setup registers defaults and env bindings and reads omniplayer.yaml if
// one exists. A missing file is fine.
func Setup() error {
	viper.SetConfigName(Name)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix(Name)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// PlayerOptions turns the player.* settings into construction options.
// Disabling player.loop adds the loop plugin to the ignore list.
func PlayerOptions() []player.Option {
	opts := []player.Option{
		player.WithSize(viper.GetFloat64(key.PlayerWidth), viper.GetFloat64(key.PlayerHeight)),
		player.WithInactive(viper.GetDuration(key.PlayerInactive)),
		player.WithVolume(viper.GetFloat64(key.PlayerVolume)),
		player.WithControls(viper.GetBool(key.PlayerControls)),
		player.WithControlsList(viper.GetStringSlice(key.PlayerControlsList)...),
		player.WithAutoplay(viper.GetBool(key.PlayerAutoplay)),
	}

	ignores := viper.GetStringSlice(key.PlayerIgnores)
	if !viper.GetBool(key.PlayerLoop) && !lo.Contains(ignores, "loop") {
		ignores = append(ignores, "loop")
	}
	if len(ignores) > 0 {
		opts = append(opts, player.WithIgnores(ignores...))
	}

	if lang := viper.GetString(key.PlayerLang); lang != "" {
		opts = append(opts, player.WithLang(lang))
	}
	if ua := viper.GetString(key.PlayerUserAgent); ua != "" {
		opts = append(opts, player.WithUserAgent(ua))
	}

	return opts
}
