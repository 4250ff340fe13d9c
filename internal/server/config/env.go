package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "TASKKEEPER_"

// parseEnv overlays config with TASKKEEPER_* variables. Values come from
// the process environment first, then from the dotenv file. When envFile is
// empty, ".env" in the working directory is used if it exists.
func parseEnv(config *Config, envFile string) error {
	fileVars, err := readEnvFile(envFile)
	if err != nil {
		return err
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(envPrefix + key); ok {
			return v, true
		}
		v, ok := fileVars[envPrefix+key]
		return v, ok
	}

	strs := map[string]*string{
		"GRPC_ADDR":          &config.EndpointAddrGRPC,
		"METRICS_ADDR":       &config.MetricsAddr,
		"DATABASE_DSN":       &config.DatabaseDSN,
		"SECRET_KEY":         &config.SecretKey,
		"SIGNING_ALGORITHM":  &config.SigningAlgorithm,
		"REVOCATION_BACKEND": &config.RevocationBackend,
		"REDIS_ADDR":         &config.RedisAddr,
		"REDIS_PASSWORD":     &config.RedisPassword,
		"LOG_LEVEL":          &config.LogLevel,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"ACCESS_TOKEN_TTL":  &config.AccessTokenValidityDuration,
		"REFRESH_TOKEN_TTL": &config.RefreshTokenValidityDuration,
		"PRUNE_INTERVAL":    &config.PruneInterval,
	}
	for key, dst := range durations {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, key, err)
		}
		*dst = d
	}

	if v, ok := lookup("BCRYPT_COST"); ok {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sBCRYPT_COST: %w", envPrefix, err)
		}
		config.BcryptCost = cost
	}

	return nil
}

func readEnvFile(path string) (map[string]string, error) {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return vars, nil
}
