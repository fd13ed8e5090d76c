package websocket

// Semaphore caps concurrent live-feed connections. Acquire never blocks.
type Semaphore struct {
	slots chan struct{}
}

func NewSemaphore(maxConnections int) *Semaphore {
	if maxConnections <= 0 {
		maxConnections = 1
	}
	return &Semaphore{
		slots: make(chan struct{}, maxConnections),
	}
}

func (s *Semaphore) Acquire() bool {
	select {
	case s.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s *Semaphore) Release() {
	select {
	case <-s.slots:
	default:
	}
}

func (s *Semaphore) InUse() int {
	return len(s.slots)
}

func (s *Semaphore) Capacity() int {
	return cap(s.slots)
}
