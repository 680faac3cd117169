package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning reports that another ringtimer process holds the lock.
var ErrAlreadyRunning = errors.New("ringtimer already running")

const (
	lockPortMin = 20000
	lockPortMax = 39999
)

// InstanceLock keeps one ring window per user session by holding a
// loopback port derived from the application ID.
type InstanceLock struct {
	listener net.Listener
}

// AcquireInstanceLock binds the port for appID. A bind failure means the
// port is taken, which is reported as ErrAlreadyRunning.
func AcquireInstanceLock(appID string) (*InstanceLock, error) {
	address := LockAddress(appID)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, address)
	}
	return &InstanceLock{listener: listener}, nil
}

// Release frees the port. Safe to call on a nil lock.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	err := lock.listener.Close()
	lock.listener = nil
	return err
}

// LockAddress returns the loopback address used for appID.
func LockAddress(appID string) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appID))
	span := uint32(lockPortMax - lockPortMin + 1)
	return fmt.Sprintf("127.0.0.1:%d", lockPortMin+int(hash.Sum32()%span))
}
