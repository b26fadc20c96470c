package config

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// New returns the process environment as a key/value map.
func New() map[string]string {
	environ := os.Environ()
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, _ := strings.Cut(entry, "=")
		if key != "" {
			env[key] = value
		}
	}
	return env
}

// Load reads .env (if present) into the environment, snapshots it with New and
// replaces every "ssm:<name>" value with the decrypted SSM parameter.
func Load(ctx context.Context) (map[string]string, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded, using process environment")
	}

	c := New()
	if !hasSecretRefs(c) {
		return c, nil
	}

	client, err := newSSMClient(ctx, GetString(c, "AWS_REGION", ""))
	if err != nil {
		return nil, err
	}
	if err := ResolveSecrets(ctx, c, client); err != nil {
		return nil, err
	}
	return c, nil
}

// lookup returns the trimmed value for key. Unset and blank values count as
// missing. A nil map is an empty config.
func lookup(config map[string]string, key string) (string, bool) {
	v := strings.TrimSpace(config[key])
	return v, v != ""
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if v, ok := lookup(config, key); ok {
		return v
	}
	return defaultValue
}

// GetInt falls back to defaultValue when the value does not parse.
func GetInt(config map[string]string, key string, defaultValue int) int {
	v, ok := lookup(config, key)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("not an integer, using default")
		return defaultValue
	}
	return n
}

func GetBool(config map[string]string, key string, defaultValue bool) bool {
	v, ok := lookup(config, key)
	if !ok {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("not a boolean, using default")
		return defaultValue
	}
	return b
}

// GetSeconds reads an integer number of seconds as a time.Duration.
func GetSeconds(config map[string]string, key string, defaultSeconds int) time.Duration {
	return time.Duration(GetInt(config, key, defaultSeconds)) * time.Second
}

// GetList splits a comma separated value, dropping blanks.
func GetList(config map[string]string, key string) []string {
	raw := GetString(config, key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
