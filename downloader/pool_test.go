package downloader_test

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/airbusgeo/goes-archiver/common"
	"github.com/airbusgeo/goes-archiver/downloader"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func makeTasks(n int) []common.FetchTask {
	start := time.Date(2024, 11, 30, 8, 0, 0, 0, time.UTC)
	tasks := make([]common.FetchTask, n)
	for i := range tasks {
		tasks[i] = common.FetchTask{Timestamp: start.Add(time.Duration(i) * 10 * time.Minute), Dir: "/out"}
	}
	return tasks
}

func outcomeStrings(outcomes []common.FetchOutcome) []string {
	s := make([]string, len(outcomes))
	for i, o := range outcomes {
		if o.Saved() {
			s[i] = common.FormatCompact(o.Timestamp) + " " + o.Path
		} else {
			s[i] = common.FormatCompact(o.Timestamp) + " " + o.Err.Error()
		}
	}
	sort.Strings(s)
	return s
}

var _ = Describe("Pool", func() {
	ctx := context.Background()

	savingUnit := func(ctx context.Context, task common.FetchTask) common.FetchOutcome {
		return common.FetchOutcome{Timestamp: task.Timestamp, Path: common.FormatCompact(task.Timestamp) + ".jpg"}
	}

	Describe("running a batch", func() {
		tasks := makeTasks(20)

		It("should report one outcome per task in dispatch order", func() {
			outcomes := downloader.NewPool(4).Run(ctx, tasks, savingUnit)
			Expect(outcomes).To(HaveLen(len(tasks)))
			for i, o := range outcomes {
				Expect(o.Timestamp).To(Equal(tasks[i].Timestamp))
				Expect(o.Saved()).To(BeTrue())
			}
		})

		It("should yield the same outcomes at any concurrency", func() {
			serial := downloader.NewPool(1).Run(ctx, tasks, savingUnit)
			parallel := downloader.NewPool(8).Run(ctx, tasks, savingUnit)
			Expect(outcomeStrings(parallel)).To(Equal(outcomeStrings(serial)))
		})

		It("should never exceed the admission cap", func() {
			var inflight, peak int32
			unit := func(ctx context.Context, task common.FetchTask) common.FetchOutcome {
				n := atomic.AddInt32(&inflight, 1)
				for {
					p := atomic.LoadInt32(&peak)
					if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inflight, -1)
				return savingUnit(ctx, task)
			}
			downloader.NewPool(3).Run(ctx, makeTasks(30), unit)
			Expect(peak).To(BeNumerically("<=", 3))
			Expect(peak).To(BeNumerically(">", 1))
		})
	})

	Describe("failing tasks", func() {
		tasks := makeTasks(10)

		failOn := func(failing map[int]bool) downloader.FetchUnit {
			return func(ctx context.Context, task common.FetchTask) common.FetchOutcome {
				for i := range tasks {
					if failing[i] && tasks[i].Timestamp.Equal(task.Timestamp) {
						return common.FetchOutcome{Timestamp: task.Timestamp, Err: fmt.Errorf("fetch failed: HTTP 404")}
					}
				}
				return savingUnit(ctx, task)
			}
		}

		It("should not let one failure disturb its siblings", func() {
			outcomes := downloader.NewPool(4).Run(ctx, tasks, failOn(map[int]bool{3: true}))
			Expect(outcomes).To(HaveLen(len(tasks)))
			for i, o := range outcomes {
				if i == 3 {
					Expect(o.Saved()).To(BeFalse())
				} else {
					Expect(o.Saved()).To(BeTrue(), "task %d", i)
				}
			}
		})

		It("should release admission slots on failure paths", func() {
			// more failures than slots: the run can only finish if every
			// failing unit released its slot
			failing := map[int]bool{}
			for i := range tasks {
				failing[i] = i%2 == 0
			}
			outcomes := downloader.NewPool(2).Run(ctx, tasks, failOn(failing))
			saved := 0
			for _, o := range outcomes {
				if o.Saved() {
					saved++
				}
			}
			Expect(saved).To(Equal(len(tasks) / 2))
		})
	})
})
