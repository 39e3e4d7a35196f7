package resource_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/assetcore/internal/resource"
)

// TestCreate_ConcurrentSameName verifies the locked check-then-insert
// path: racing Create calls for one name must all observe the same
// underlying object.
func TestCreate_ConcurrentSameName(t *testing.T) {
	r := resource.New()
	workers := runtime.GOMAXPROCS(0) * 4
	if workers < 8 {
		workers = 8
	}

	handles := make([]*note, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			n, err := resource.Create[note](r, "shared", validProps())
			if err != nil {
				t.Error(err)
				return
			}
			handles[slot] = n
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.Same(t, handles[0], handles[i])
	}
	require.Equal(t, 1, r.Len())
}

// TestRegistry_ConcurrentMixedOperations exercises create, add, get,
// exists and remove from many goroutines at once. The assertions are
// deliberately weak; the value of the test is running it under -race.
func TestRegistry_ConcurrentMixedOperations(t *testing.T) {
	r := resource.New()
	require.NoError(t, resource.Register[note](r))

	workers := runtime.GOMAXPROCS(0) * 2
	if workers < 4 {
		workers = 4
	}
	const iterations = 100

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			name := fmt.Sprintf("res-%d", worker%4)
			for j := 0; j < iterations; j++ {
				switch j % 5 {
				case 0:
					_, _ = resource.Create[note](r, name, validProps())
				case 1:
					_, _ = resource.Get[note](r, name)
				case 2:
					r.Exists(name)
				case 3:
					n := &note{}
					_ = n.Initialize(validProps())
					resource.Add[note](r, name, n)
				case 4:
					r.Remove(name)
				}
			}
		}(i)
	}
	wg.Wait()

	require.LessOrEqual(t, r.Len(), 4)
}
