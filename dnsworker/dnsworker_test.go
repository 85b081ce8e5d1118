// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dnsworker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gleak"
)

var _ = Describe("DNS lookup worker pool", func() {

	BeforeEach(func() {
		goodgos := Goroutines()
		DeferCleanup(func() {
			Eventually(Goroutines).WithTimeout(3 * time.Second).WithPolling(250 * time.Millisecond).
				ShouldNot(HaveLeaked(goodgos))
		})
	})

	DescribeTable("clamps the pool size",
		func(size, expected int) {
			Expect(ClampSize(size)).To(Equal(expected))
			pool := New(size)
			defer pool.StopWait()
			Expect(pool.Size()).To(Equal(expected))
		},
		Entry("way too many", 1000, MaxWorkers),
		Entry("just too many", 51, MaxWorkers),
		Entry("maximum", 50, 50),
		Entry("in range", 7, 7),
		Entry("minimum", 1, 1),
		Entry("none", 0, MinWorkers),
		Entry("negative", -5, MinWorkers),
	)

	It("runs a goroutine-limited set of tasks", NodeTimeout(30*time.Second), func(ctx context.Context) {
		const poolsize = 3

		pool := New(poolsize)

		var inflight, maxInflight, done int32
		var mu sync.Mutex
		taskfn := func() {
			n := atomic.AddInt32(&inflight, 1)
			mu.Lock()
			if n > maxInflight {
				maxInflight = n
			}
			mu.Unlock()
			time.Sleep(100 * time.Millisecond)
			atomic.AddInt32(&inflight, -1)
			atomic.AddInt32(&done, 1)
		}

		numtasks := poolsize * 4
		for i := 0; i < numtasks; i++ {
			pool.Submit(taskfn)
		}
		pool.StopWait()

		// StopWait is the join barrier, so all tasks must have completed by now.
		Expect(atomic.LoadInt32(&done)).To(Equal(int32(numtasks)),
			"number of submitted and executed tasks mismatch")
		Expect(maxInflight).To(BeNumerically("<=", poolsize))
		Expect(maxInflight).To(BeNumerically(">", 1))
	})

	It("survives repeated stops", func() {
		pool := New(1)
		pool.Submit(func() {})
		pool.StopWait()
		Expect(pool.StopWait).NotTo(Panic())
	})

})
