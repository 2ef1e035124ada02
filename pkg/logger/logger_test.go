package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Out: &buf})

	l.Info().Str("order", "BJJ-1").Msg("orden creada")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "BJJ-1", line["order"])
	assert.Equal(t, "orden creada", line["message"])
	assert.Contains(t, line, "time")
}

func TestNew_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Out: &buf})

	l.Info().Msg("oculto")
	sub := l.Component("cart")
	sub.Debug().Msg("oculto")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("visible")
	l.Error().Msg("también")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "también")
}

func TestComponent_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "debug", Out: &buf})

	cart := l.Component("cart")
	cart.Debug().Int("lines", 2).Msg("carrito restaurado")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "cart", line["component"])
	assert.EqualValues(t, 2, line["lines"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"), "nivel desconocido cae a info")
}
