//go:build unix

package file

import (
	"os"
	"syscall"
)

// lockExclusive захватывает эксклюзивную flock-блокировку на файле path
// (создаёт его при необходимости). Возвращает функцию освобождения.
func lockExclusive(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o640)
	if err != nil {
		return nil, err
	}

	fd := int(f.Fd())
	if err := syscall.Flock(fd, syscall.LOCK_EX); err != nil {
		f.Close()
		return nil, err
	}

	return func() {
		_ = syscall.Flock(fd, syscall.LOCK_UN)
		_ = f.Close()
	}, nil
}
