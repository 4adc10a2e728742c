package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/dustin/go-humanize"
)

var previousPause time.Duration

func gcPause() time.Duration {
	runtime.GC()
	var stats debug.GCStats
	debug.ReadGCStats(&stats)
	pause := stats.PauseTotal - previousPause
	previousPause = stats.PauseTotal
	return pause
}

func printMemStats(w io.Writer) {
	var mem runtime.MemStats
	var stat debug.GCStats

	runtime.ReadMemStats(&mem)
	debug.ReadGCStats(&stat)

	fmt.Fprintln(w, "alloc:", humanize.IBytes(mem.Alloc))
	fmt.Fprintln(w, "heap inuse:", humanize.IBytes(mem.HeapInuse))
	fmt.Fprintln(w, "heap objects:", mem.HeapObjects)
	fmt.Fprintln(w, "gc:", stat.NumGC)
	fmt.Fprintln(w, "pause:", gcPause())
}
