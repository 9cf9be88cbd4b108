package workers

// Workers aggregates background workers so callers can start them together.
type Workers struct {
	workers []Worker
}

// New builds a Workers aggregate from the given workers.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every registered worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
