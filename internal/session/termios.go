//go:build linux || darwin

package session

import "golang.org/x/sys/unix"

// disableEchoAndCanon clears local echo and canonical line buffering on
// the pseudo-terminal so keystrokes pass through raw. ISIG stays enabled
// so an interrupt byte still signals the foreground process group.
func disableEchoAndCanon(fd int) error {
	tio, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	tio.Lflag &^= unix.ECHO | unix.ICANON
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, tio)
}
