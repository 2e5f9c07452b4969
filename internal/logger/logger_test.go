package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, mode := range []string{"development", "production", "PROD", ""} {
		t.Run(mode, func(t *testing.T) {
			l, err := New(mode)
			require.NoError(t, err)
			assert.NotNil(t, l.SugaredLogger)
		})
	}
}

func TestWith_CarriesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := FromZap(zap.New(core)).With("run_id", "abc")

	l.Warn("bad data in SALARY for Jane Doe", "field", "SALARY")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "bad data in SALARY for Jane Doe", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "abc", ctx["run_id"])
	assert.Equal(t, "SALARY", ctx["field"])
}
