package domain_test

import (
	"sync"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"

	"github.com/deltamake/deltamake/internal/core/domain"
)

func TestWorker_RunProcessesAssignedTasksThenStops(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		w := domain.NewWorker(0)
		assert.Equal(t, domain.WorkerWaitTask, w.Status())

		var ran []string
		var mu sync.Mutex

		done := make(chan struct{})
		go func() {
			w.Run(func(task *domain.Task) bool {
				mu.Lock()
				ran = append(ran, task.Title)
				mu.Unlock()
				return true
			})
			close(done)
		}()

		synctest.Wait()
		assert.Equal(t, domain.WorkerWaitTask, w.Status())

		first := domain.NewCommandTask("first", "true", true)
		w.Assign(first)
		assert.Same(t, first, w.CurrentTask())

		synctest.Wait()
		assert.Equal(t, domain.WorkerWaitTask, w.Status())

		second := domain.NewCommandTask("second", "true", true)
		w.Assign(second)

		w.Assign(nil)
		<-done

		assert.Equal(t, domain.WorkerStopped, w.Status())
		mu.Lock()
		assert.Equal(t, []string{"first", "second"}, ran)
		mu.Unlock()
	})
}

func TestWorker_RunStopsOnFailure(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		w := domain.NewWorker(0)

		done := make(chan struct{})
		go func() {
			w.Run(func(*domain.Task) bool { return false })
			close(done)
		}()

		synctest.Wait()
		w.Assign(domain.NewCommandTask("bad", "false", true))
		<-done

		assert.Equal(t, domain.WorkerFail, w.Status())
	})
}
