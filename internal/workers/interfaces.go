// Package workers provides the background workers of the vault daemon
// and a small aggregate for running them together.
package workers

// Worker is a single background process. Run starts it and returns;
// implementations spawn their goroutines internally and wind down when
// the context they were built around is cancelled.
type Worker interface {
	Run()
}
