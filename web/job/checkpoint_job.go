// Package job contains the scheduled maintenance tasks of the web server.
package job

import (
	"attendix/database"
	"attendix/logger"
)

// CheckpointJob periodically flushes the sqlite WAL so the database file
// stays compact between restarts. Only scheduled for the sqlite driver.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("wal checkpoint failed:", err)
	}
}
