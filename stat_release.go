//go:build !debug

package pfifo

func statPushWait() {}
func statPullWait() {}
