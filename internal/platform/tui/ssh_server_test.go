package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "no-such-game"
	cfg.HostKeyPath = t.TempDir() + "/host_key"

	_, err := NewSSHServer(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-game")
}

func TestSessionConfigUsesPTYSize(t *testing.T) {
	s := &SSHServer{config: DefaultSSHServerConfig()}

	a := s.sessionConfig(120, 40)
	assert.Equal(t, 120, a.ScreenW)
	assert.Equal(t, 40, a.ScreenH)
	assert.Equal(t, s.config.Game.BoardH, a.BoardH)
	assert.Equal(t, s.config.Game.FoodCount, a.FoodCount)
	assert.NotZero(t, a.Seed)
}
