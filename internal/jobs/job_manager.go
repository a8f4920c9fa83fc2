package jobs

import (
	"fmt"
)

// JobManager owns the background schedules started next to the HTTP server.
type JobManager struct {
	expiry *UnpaidOrderExpiryJob
}

func NewJobManager(expiry *UnpaidOrderExpiryJob) *JobManager {
	return &JobManager{expiry: expiry}
}

func (jm *JobManager) StartAll() error {
	if err := jm.expiry.Start(); err != nil {
		return fmt.Errorf("start unpaid order expiry: %w", err)
	}
	return nil
}

// StopAll blocks until an expiry run in progress has finished.
func (jm *JobManager) StopAll() {
	jm.expiry.Stop()
}
