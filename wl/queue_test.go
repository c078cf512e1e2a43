package wl

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/elliotmr/wlclient/internal/config"
	"github.com/elliotmr/wlclient/wl/wlp"
)

func scaleEvent(n int32) wlp.Event {
	return wlp.Event{Sender: 3, Kind: wlp.KindOutput, Opcode: wlp.EvOutputScale, Args: []interface{}{n}}
}

func TestQueueOrderAndBound(t *testing.T) {
	q := NewQueue(3, nil)
	for i := int32(1); i <= 5; i++ {
		q.HandleEvent(scaleEvent(i))
	}
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, uint64(2), q.Dropped())

	for i := int32(1); i <= 3; i++ {
		ev, ok := q.Poll()
		require.True(t, ok)
		assert.Equal(t, i, ev.Int(0))
	}
	_, ok := q.Poll()
	assert.False(t, ok)
}

func TestQueueFilterAndFlush(t *testing.T) {
	q := NewQueue(0, func(ev wlp.Event) bool { return ev.Kind == wlp.KindOutput })
	q.HandleEvent(wlp.Event{Kind: wlp.KindSeat, Opcode: wlp.EvSeatName, Args: []interface{}{"seat0"}})
	for i := int32(1); i <= 4; i++ {
		q.HandleEvent(scaleEvent(i))
	}
	require.Equal(t, 4, q.Len())

	n := q.Flush(func(ev wlp.Event) bool { return ev.Int(0)%2 == 0 })
	assert.Equal(t, 2, n)
	ev, _ := q.Poll()
	assert.Equal(t, int32(1), ev.Int(0))
	ev, _ = q.Poll()
	assert.Equal(t, int32(3), ev.Int(0))

	q.HandleEvent(scaleEvent(9))
	assert.Equal(t, 1, q.Flush(nil))
	assert.Zero(t, q.Len())
}

func TestQueueWait(t *testing.T) {
	q := NewQueue(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := q.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	go func() {
		time.Sleep(10 * time.Millisecond)
		q.HandleEvent(scaleEvent(1))
		q.HandleEvent(scaleEvent(2))
	}()
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := int32(1); i <= 2; i++ {
		ev, err := q.Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, i, ev.Int(0))
	}
}

func TestQueueClosesDroppedFDs(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()
	fd, err := unix.Dup(int(r.Fd()))
	require.NoError(t, err)

	q := NewQueue(1, nil)
	q.HandleEvent(scaleEvent(1))
	q.HandleEvent(wlp.Event{
		Kind:   wlp.KindKeyboard,
		Opcode: wlp.EvKeyboardKeymap,
		Args:   []interface{}{uint32(1), fd, uint32(0)},
	})
	assert.Equal(t, uint64(1), q.Dropped())

	_, err = unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0)
	assert.ErrorIs(t, err, unix.EBADF)
}

func TestQueueAsListener(t *testing.T) {
	c, fake := newTestClient(t, config.Default())
	q := NewQueue(0, func(ev wlp.Event) bool { return ev.Kind == wlp.KindRegistry })
	c.Context().AddListener(q)

	fake.removeGlobal(2)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ev, err := q.Wait(ctx)
	require.NoError(t, err)
	name, ok := ev.AsGlobalRemove()
	require.True(t, ok)
	assert.Equal(t, uint32(2), name)
}
