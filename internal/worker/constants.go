package worker

// Pool log messages
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
)

// Timer log messages
const (
	LogMsgWorkerShuttingDown     = "Shutting down worker"
	LogMsgWorkerShutdownComplete = "Worker shutdown complete"
	LogMsgWorkerShutdownTimeout  = "Worker shutdown timeout, some executions may still be running"
	LogMsgTimerCancelled         = "Cancelled pending execution"
)

// Adventure worker log messages
const (
	LogMsgSchedulingResolution = "Scheduling adventure resolution"
	LogMsgExecutingResolution  = "Executing scheduled adventure resolution"
	LogMsgResolutionSkipped    = "Adventure resolution skipped, session gone"
	LogMsgFailedToResolve      = "Failed to resolve adventure"
	LogMsgBadAdventurePayload  = "Unreadable adventure event payload"
	LogMsgSweepCompleted       = "Stale adventures swept"
)
