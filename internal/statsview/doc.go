// Package statsview serves live runtime statistics (heap, goroutines, GC
// pauses) over HTTP while the demo runs. It is only compiled in with the
// statsview build tag:
//
//	go build -tags statsview ./cmd/fungus
//
// Charts are then at localhost:12620/debug/statsview and the standard pprof
// endpoints at localhost:12620/debug/pprof/.
package statsview
