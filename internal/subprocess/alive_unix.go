//go:build !windows

package subprocess

import "syscall"

// tryWait performs a non-blocking reap of the child. A zombie (exited but
// not yet waited on) must read as dead, so this uses wait4 with WNOHANG
// rather than a signal-0 probe, which a zombie would still answer.
//
// Caller must hold procMu.
func (s *Session) tryWait() bool {
	pid := s.cmd.Process.Pid

	for {
		var status syscall.WaitStatus

		wpid, err := syscall.Wait4(pid, &status, syscall.WNOHANG, nil)
		switch {
		case err == syscall.EINTR:
			continue
		case err != nil:
			// Status unobtainable; treat the process as unusable.
			s.log.Debug("Liveness check failed", "error", err)

			return false
		case wpid == 0:
			return true
		default:
			// Reaped here; the cmd.Wait in Stop will error (ignored) but
			// still releases the pipe ends.
			s.exited = true
			s.log.Debug("Maude subprocess exited", "wait_status", int(status))

			return false
		}
	}
}
