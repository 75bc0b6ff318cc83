package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	conf, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, ":9999", conf.TcpAddr)
	require.Equal(t, ":9998", conf.WsAddr)
	require.Equal(t, consts.JoinWindow, conf.Timeouts.JoinWindow)
	require.Equal(t, consts.PlayTimeout, conf.Timeouts.Turn)
	require.Equal(t, consts.ColorTimeout, conf.Timeouts.Color)
	require.Equal(t, consts.RobotDelay, conf.Timeouts.RobotDelay)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("UNO_WS_ADDR", "")
	t.Setenv("UNO_TURN_TIMEOUT", "15s")

	conf, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Empty(t, conf.WsAddr)
	require.Equal(t, 15*time.Second, conf.Timeouts.Turn)
}

func TestLoadDotEnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("UNO_TCP_ADDR=:7000\nUNO_COLOR_TIMEOUT=5s\n"), 0o600))
	t.Setenv("UNO_TCP_ADDR", ":8000")
	t.Cleanup(func() { _ = os.Unsetenv("UNO_COLOR_TIMEOUT") })

	conf, err := config.Load(file)
	require.NoError(t, err)
	require.Equal(t, ":8000", conf.TcpAddr)
	require.Equal(t, 5*time.Second, conf.Timeouts.Color)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("UNO_JOIN_WINDOW", "soon")
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
