package vango

import "sync/atomic"

// ids numbers signals and owners; an ID is never reused in a process.
var ids atomic.Uint64

func nextID() uint64 { return ids.Add(1) }
