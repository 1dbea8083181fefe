//go:build unix

package app

import "syscall"

func suspendProcess() error {
	return syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}
