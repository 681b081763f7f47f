package domain

// JobStatus is a project's production phase.
type JobStatus string

const (
	JobUnassigned JobStatus = "UNASSIGNED"
	JobNew        JobStatus = "NEW"
	JobStarted    JobStatus = "STARTED"
	JobTranslated JobStatus = "TRANSLATED"
	JobRecorded   JobStatus = "RECORDED"
	JobQA         JobStatus = "QA"
	JobUploaded   JobStatus = "UPLOADED"
)

// workflowSteps are the statuses the tracker renders and accepts, in display
// order. UNASSIGNED precedes them but is only ever set at creation.
var workflowSteps = []JobStatus{
	JobNew,
	JobStarted,
	JobTranslated,
	JobRecorded,
	JobQA,
	JobUploaded,
}

// WorkflowSteps returns a copy of the interactive statuses in display order.
func WorkflowSteps() []JobStatus {
	out := make([]JobStatus, len(workflowSteps))
	copy(out, workflowSteps)
	return out
}

// Valid reports whether s is any known status, UNASSIGNED included.
func (s JobStatus) Valid() bool {
	return s == JobUnassigned || s.Selectable()
}

// Selectable reports whether s may be chosen from the tracker.
func (s JobStatus) Selectable() bool {
	return s.Step() > 0
}

// Step is the 1-based position of s in the tracker, or 0 when s is not a
// tracker step.
func (s JobStatus) Step() int {
	for i, step := range workflowSteps {
		if step == s {
			return i + 1
		}
	}
	return 0
}

// Passed reports whether the tracker shows step as completed while the
// project sits at s.
func (s JobStatus) Passed(step JobStatus) bool {
	return s.Step() > step.Step() && step.Step() > 0
}

// Finalizable reports whether a project in status s may be finalized.
func (s JobStatus) Finalizable() bool {
	return s == JobUploaded
}
