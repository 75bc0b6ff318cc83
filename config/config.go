package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/session"
)

type Config struct {
	TcpAddr  string
	WsAddr   string
	Timeouts session.Timeouts
}

// Load reads the process environment. Values from the given .env files (default ".env") fill
// in whatever the environment leaves unset; missing files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return Config{}, err
		}
	}

	conf := Config{
		TcpAddr: env("UNO_TCP_ADDR", ":9999"),
		WsAddr:  env("UNO_WS_ADDR", ":9998"),
	}
	var err error
	if conf.Timeouts.JoinWindow, err = duration("UNO_JOIN_WINDOW", consts.JoinWindow); err != nil {
		return Config{}, err
	}
	if conf.Timeouts.Turn, err = duration("UNO_TURN_TIMEOUT", consts.PlayTimeout); err != nil {
		return Config{}, err
	}
	if conf.Timeouts.Color, err = duration("UNO_COLOR_TIMEOUT", consts.ColorTimeout); err != nil {
		return Config{}, err
	}
	if conf.Timeouts.RobotDelay, err = duration("UNO_ROBOT_DELAY", consts.RobotDelay); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func duration(key string, def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}
