//go:build debug

package pfifo

import (
	"sync/atomic"
)

var (
	pushWaits atomic.Int64
	pullWaits atomic.Int64
)

type Stats struct {
	PushWaits int64
	PullWaits int64
}

func statPushWait() { pushWaits.Add(1) }
func statPullWait() { pullWaits.Add(1) }

func SnapshotStats() Stats {
	return Stats{
		PushWaits: pushWaits.Load(),
		PullWaits: pullWaits.Load(),
	}
}

func PrintStat() {

	println(
		"push waits / pull waits :",
		pushWaits.Load(),
		pullWaits.Load(),
	)
}
