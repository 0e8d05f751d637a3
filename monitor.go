package ffmpeg

import (
	"sync"
	"time"
)

// InvocationMonitor tracks live ffmpeg processes and invocation counters
// across the whole program. Every bridge invocation is registered here.
type InvocationMonitor struct {
	mu                sync.RWMutex
	liveProcesses     map[int]time.Time // PID -> spawn time
	totalInvocations  int64
	failedInvocations int64
}

var (
	monitorInstance *InvocationMonitor
	monitorOnce     sync.Once
)

// GetMonitor returns the global invocation monitor instance
func GetMonitor() *InvocationMonitor {
	monitorOnce.Do(func() {
		monitorInstance = &InvocationMonitor{
			liveProcesses: make(map[int]time.Time),
		}
	})
	return monitorInstance
}

// TrackProcess registers a newly spawned ffmpeg process
func (m *InvocationMonitor) TrackProcess(pid int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.liveProcesses[pid] = time.Now()
	m.totalInvocations++
}

// UntrackProcess removes a finished ffmpeg process
func (m *InvocationMonitor) UntrackProcess(pid int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.liveProcesses, pid)
}

// RecordFailure increments the failure counter
func (m *InvocationMonitor) RecordFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failedInvocations++
}

// LiveProcesses returns the number of currently live ffmpeg processes
func (m *InvocationMonitor) LiveProcesses() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.liveProcesses)
}

// TotalInvocations returns the total number of invocations attempted
func (m *InvocationMonitor) TotalInvocations() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalInvocations
}

// FailedInvocations returns the number of failed invocations
func (m *InvocationMonitor) FailedInvocations() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.failedInvocations
}

// SuccessRate returns the success rate as a percentage
func (m *InvocationMonitor) SuccessRate() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return successRate(m.totalInvocations, m.failedInvocations)
}

// OldestProcess returns the age of the oldest live process. A large value
// here usually means a hung ffmpeg that should have had a Timeout set.
func (m *InvocationMonitor) OldestProcess() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return oldestAge(m.liveProcesses)
}

// MonitorStats is a snapshot of the monitor counters
type MonitorStats struct {
	LiveProcesses     int
	TotalInvocations  int64
	FailedInvocations int64
	SuccessRate       float64
	OldestProcessAge  time.Duration
}

// GetStats returns a consistent snapshot of all counters
func (m *InvocationMonitor) GetStats() MonitorStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return MonitorStats{
		LiveProcesses:     len(m.liveProcesses),
		TotalInvocations:  m.totalInvocations,
		FailedInvocations: m.failedInvocations,
		SuccessRate:       successRate(m.totalInvocations, m.failedInvocations),
		OldestProcessAge:  oldestAge(m.liveProcesses),
	}
}

// Reset clears all monitoring statistics
func (m *InvocationMonitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.liveProcesses = make(map[int]time.Time)
	m.totalInvocations = 0
	m.failedInvocations = 0
}

func successRate(total, failed int64) float64 {
	if total == 0 {
		return 100.0
	}
	return float64(total-failed) / float64(total) * 100.0
}

func oldestAge(live map[int]time.Time) time.Duration {
	if len(live) == 0 {
		return 0
	}

	oldest := time.Now()
	for _, spawned := range live {
		if spawned.Before(oldest) {
			oldest = spawned
		}
	}

	return time.Since(oldest)
}
