package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommonLogger(t *testing.T) {
	l, err := CommonLogger(NewConfig(`tests`))
	require.NoError(t, err, "Failed to create logger")
	require.NotNil(t, l)
	require.True(t, l.Enabled(context.Background(), slog.LevelDebug))
}
