package logger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/knowledge-vault-bot/internal/config"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"local", "production"} {
		l, err := New(&config.Config{Env: env})
		require.NoError(t, err, env)
		require.NotNil(t, l)
		_ = l.Sync()
	}
}
