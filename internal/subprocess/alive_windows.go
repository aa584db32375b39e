//go:build windows

package subprocess

import "syscall"

// tryWait checks the child's exit code without blocking. Windows has no
// zombie state, so querying the exit code by pid is sufficient; the
// process object stays valid until cmd.Wait releases it in Stop.
//
// Caller must hold procMu.
func (s *Session) tryWait() bool {
	pid := s.cmd.Process.Pid

	handle, err := syscall.OpenProcess(syscall.PROCESS_QUERY_INFORMATION, false, uint32(pid))
	if err != nil {
		s.log.Debug("Liveness check failed", "error", err)

		return false
	}
	defer syscall.CloseHandle(handle)

	var code uint32
	if err := syscall.GetExitCodeProcess(handle, &code); err != nil {
		s.log.Debug("Liveness check failed", "error", err)

		return false
	}

	if code == syscall.STILL_ACTIVE {
		return true
	}

	s.exited = true

	return false
}
