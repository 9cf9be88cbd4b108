// Package workers runs the client's background workers, currently the
// periodic favourites sync job, behind a single aggregate with one Run call.
package workers

// Worker is a long-running background task. Run either blocks for the
// worker's lifetime or spawns its own goroutines and returns.
type Worker interface {
	Run()
}
