package deque

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DequeTestSuite struct {
	suite.Suite
}

func TestDequeTestSuite(t *testing.T) {
	suite.Run(t, new(DequeTestSuite))
}

func (ts *DequeTestSuite) TestPushAndTakeSingleThreaded() {
	d := New[int](4)
	for i := 0; i < 10; i++ {
		d.PushBottom(i)
	}
	ts.Equal(10, d.Size())

	for i := 9; i >= 0; i-- {
		v, ok := d.TakeBottom()
		ts.True(ok)
		ts.Equal(i, v)
	}

	_, ok := d.TakeBottom()
	ts.False(ok)
}

func (ts *DequeTestSuite) TestPopTopFIFOOrder() {
	d := New[int](4)
	for i := 0; i < 5; i++ {
		d.PushBottom(i)
	}

	for i := 0; i < 5; i++ {
		v, ok := d.PopTop()
		ts.True(ok)
		ts.Equal(i, v)
	}

	_, ok := d.PopTop()
	ts.False(ok)
}

func (ts *DequeTestSuite) TestGrowPreservesOrder() {
	d := New[int](2)
	const n = 200
	for i := 0; i < n; i++ {
		d.PushBottom(i)
	}
	ts.GreaterOrEqual(d.Capacity(), int64(n))

	for i := 0; i < n; i++ {
		v, ok := d.PopTop()
		ts.True(ok)
		ts.Equal(i, v)
	}
}

func (ts *DequeTestSuite) TestEmpty() {
	d := New[int](4)
	ts.True(d.Empty())
	d.PushBottom(1)
	ts.False(d.Empty())
}

// TestSingleElementRace reproduces scenario 6: a deque holding one value
// is raced by the owner's TakeBottom against several concurrent thieves.
// Exactly one observer should win.
func (ts *DequeTestSuite) TestSingleElementRace() {
	const thieves = 8
	const trials = 500

	var wins int64
	for trial := 0; trial < trials; trial++ {
		d := New[int](4)
		d.PushBottom(trial)

		var wg sync.WaitGroup
		var localWins int64

		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := d.TakeBottom(); ok {
				atomic.AddInt64(&localWins, 1)
			}
		}()

		for i := 0; i < thieves; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, ok := d.PopTop(); ok {
					atomic.AddInt64(&localWins, 1)
				}
			}()
		}

		wg.Wait()
		ts.Equal(int64(1), localWins, "exactly one observer must win the race")
		wins += localWins
	}
	ts.Equal(int64(trials), wins)
}

// TestConcurrentStealNoLossNoDuplication pushes a known set of values from
// a single owner, then has many thieves race pop_top while the owner
// concurrently drains via take_bottom; the union of everything observed
// must equal exactly what was pushed, with no duplicates.
func (ts *DequeTestSuite) TestConcurrentStealNoLossNoDuplication() {
	const n = 5000
	const thieves = 6

	d := New[int](16)
	for i := 0; i < n; i++ {
		d.PushBottom(i)
	}

	seen := make([]int32, n)
	var wg sync.WaitGroup

	for i := 0; i < thieves; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				v, ok := d.PopTop()
				if !ok {
					if d.Empty() {
						return
					}
					continue
				}
				if atomic.AddInt32(&seen[v], 1) != 1 {
					ts.Fail("value observed more than once", "value=%d", v)
				}
			}
		}()
	}

	for {
		v, ok := d.TakeBottom()
		if !ok {
			break
		}
		if atomic.AddInt32(&seen[v], 1) != 1 {
			ts.Fail("value observed more than once", "value=%d", v)
		}
	}

	wg.Wait()

	for v, count := range seen {
		ts.Equal(int32(1), count, "value %d should be observed exactly once", v)
	}
}
