package bot

import "sync"

// Scheduler defers a task so it runs after the current call stack unwinds.
// The returned cancel func prevents a task that has not started yet from
// running.
type Scheduler interface {
	Schedule(task func()) (cancel func())
}

// TaskQueue is a FIFO Scheduler drained explicitly by its owner.
type TaskQueue struct {
	mu    sync.Mutex
	tasks []*queuedTask
}

type queuedTask struct {
	fn        func()
	cancelled bool
}

func NewTaskQueue() *TaskQueue {
	return &TaskQueue{}
}

// Schedule appends a task to the queue.
func (q *TaskQueue) Schedule(task func()) func() {
	t := &queuedTask{fn: task}
	q.mu.Lock()
	q.tasks = append(q.tasks, t)
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		t.cancelled = true
		q.mu.Unlock()
	}
}

// Drain runs queued tasks in order until the queue is empty, including tasks
// scheduled by the tasks it runs. It returns how many tasks ran.
func (q *TaskQueue) Drain() int {
	ran := 0
	for {
		t := q.pop()
		if t == nil {
			return ran
		}
		q.mu.Lock()
		skip := t.cancelled
		q.mu.Unlock()
		if skip {
			continue
		}
		t.fn()
		ran++
	}
}

// Len returns the number of queued tasks, cancelled ones included.
func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

func (q *TaskQueue) pop() *queuedTask {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.tasks) == 0 {
		return nil
	}
	t := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	return t
}
