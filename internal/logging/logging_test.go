package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSON(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	require.NoError(t, Setup("info", false, &buf))

	log.Debug().Msg("hidden")
	log.Info().Str("route", "/healthz").Msg("served")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "/healthz", line["route"])
	assert.Equal(t, "served", line["message"])
	assert.Contains(t, line, "time")
}

func TestSetup_DefaultLevelIsWarn(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	require.NoError(t, Setup("", false, &buf))

	log.Info().Msg("quiet")
	assert.Empty(t, buf.String())

	log.Warn().Msg("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestSetup_Pretty(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, Setup("debug", true, &buf))

	log.Debug().Msg("console line")
	assert.Contains(t, buf.String(), "DBG")
	assert.Contains(t, buf.String(), "console line")
}

func TestSetup_InvalidLevel(t *testing.T) {
	assert.Error(t, Setup("loud", false, nil))
}
