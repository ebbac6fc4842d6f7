package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryNotifierDrainIsOneShot(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryNotifier()

	require.NoError(t, m.Notify(ctx, 7, Success("guardado")))
	require.NoError(t, m.Notify(ctx, 7, Warning("completa tu perfil")))
	require.NoError(t, m.Notify(ctx, 8, Info("otro usuario")))

	got, err := m.Drain(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, LevelSuccess, got[0].Level)
	assert.Equal(t, "completa tu perfil", got[1].Text)

	got, err = m.Drain(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	got, _ = m.Drain(ctx, 8)
	assert.Len(t, got, 1)
}

func TestMemoryNotifierSubscribe(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryNotifier()

	ch, cancel, err := m.Subscribe(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, m.Notify(ctx, 7, Error("denegado")))
	select {
	case n := <-ch:
		assert.Equal(t, LevelError, n.Level)
	case <-time.After(time.Second):
		t.Fatal("notice not delivered to subscriber")
	}

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)

	// delivery after unsubscribe still queues
	require.NoError(t, m.Notify(ctx, 7, Info("later")))
	got, _ := m.Drain(ctx, 7)
	assert.Len(t, got, 2)
}

func TestNoticeResponse(t *testing.T) {
	assert.Nil(t, Notice{}.Response())

	r := Warning("cuidado").Response()
	require.NotNil(t, r)
	assert.Equal(t, "warning", r.Level)
	assert.Equal(t, "cuidado", r.Text)
}
