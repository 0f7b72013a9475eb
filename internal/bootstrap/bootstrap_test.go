package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProbe_EstadoInicialYMarcado(t *testing.T) {
	probe := NewProbe("local")

	assert.False(t, probe.DatabaseReady())
	assert.Equal(t, "local", probe.StorageMode())

	probe.MarkDatabaseReady()
	assert.True(t, probe.DatabaseReady())
}

func TestProbe_Uptime(t *testing.T) {
	probe := NewProbe("local")
	time.Sleep(10 * time.Millisecond)

	assert.GreaterOrEqual(t, probe.Uptime(), 10*time.Millisecond)
}
