package worker

// Log Messages - Worker Pool
const (
	// LogMsgWorkerJobFailed is logged when a worker fails to process a job
	LogMsgWorkerJobFailed = "Worker job failed"

	// LogMsgWorkerJobPanicked is logged when a job panics inside a worker
	LogMsgWorkerJobPanicked = "Worker job panicked"
)
