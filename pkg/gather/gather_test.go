package gather_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/storefront-client/pkg/gather"
)

func TestAll_NoCortaEnElPrimerError(t *testing.T) {
	var done atomic.Int32
	errBoom := errors.New("boom")

	tasks := []gather.Task{
		func(ctx context.Context) error { done.Add(1); return errBoom },
		func(ctx context.Context) error { done.Add(1); return nil },
		func(ctx context.Context) error { done.Add(1); return nil },
	}

	var mu sync.Mutex
	var failedIdx []int
	res := gather.All(context.Background(), 2, tasks, func(i int, err error) {
		mu.Lock()
		defer mu.Unlock()
		failedIdx = append(failedIdx, i)
		assert.ErrorIs(t, err, errBoom)
	})

	assert.Equal(t, int32(3), done.Load(), "todas las tareas deben ejecutarse")
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.Failed)
	assert.ErrorIs(t, res.Err, errBoom)
	assert.Equal(t, []int{0}, failedIdx)
}

func TestAll_SinTareas(t *testing.T) {
	res := gather.All(context.Background(), 0, nil, nil)
	assert.Equal(t, 0, res.Total)
	assert.NoError(t, res.Err)
}

func TestAll_TodasBien(t *testing.T) {
	tasks := make([]gather.Task, 10)
	for i := range tasks {
		tasks[i] = func(ctx context.Context) error { return nil }
	}
	res := gather.All(context.Background(), 0, tasks, nil)
	assert.Equal(t, 10, res.Total)
	assert.Zero(t, res.Failed)
	assert.NoError(t, res.Err)
}
