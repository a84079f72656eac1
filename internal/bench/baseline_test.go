package bench

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"
)

type BaselineTestSuite struct {
	suite.Suite
}

func TestBaselineTestSuite(t *testing.T) {
	suite.Run(t, new(BaselineTestSuite))
}

func (ts *BaselineTestSuite) TestRoundRobinRunsEveryTask() {
	var count int64
	tasks := make([]func(), 50)
	for i := range tasks {
		tasks[i] = func() { atomic.AddInt64(&count, 1) }
	}

	RoundRobin(4, tasks)
	ts.Equal(int64(50), atomic.LoadInt64(&count))
}

func (ts *BaselineTestSuite) TestChunkedRunsEveryTask() {
	var count int64
	tasks := make([]func(), 50)
	for i := range tasks {
		tasks[i] = func() { atomic.AddInt64(&count, 1) }
	}

	Chunked(4, tasks)
	ts.Equal(int64(50), atomic.LoadInt64(&count))
}

func (ts *BaselineTestSuite) TestChunkedFewerTasksThanWorkers() {
	var count int64
	tasks := []func(){
		func() { atomic.AddInt64(&count, 1) },
		func() { atomic.AddInt64(&count, 1) },
	}

	Chunked(8, tasks)
	ts.Equal(int64(2), atomic.LoadInt64(&count))
}

func (ts *BaselineTestSuite) TestRoundRobinSingleWorker() {
	var count int64
	tasks := make([]func(), 10)
	for i := range tasks {
		tasks[i] = func() { atomic.AddInt64(&count, 1) }
	}

	RoundRobin(1, tasks)
	ts.Equal(int64(10), atomic.LoadInt64(&count))
}
