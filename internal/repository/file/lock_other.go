//go:build !unix

package file

import "os"

// lockExclusive на платформах без flock ограничивается созданием файла
// блокировки; сериализация обеспечивается только мьютексом репозитория.
func lockExclusive(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o640)
	if err != nil {
		return nil, err
	}

	return func() { _ = f.Close() }, nil
}
