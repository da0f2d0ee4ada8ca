package models

import "time"

// RunEventType names the journal event kinds.
type RunEventType string

const (
	EventRequested                RunEventType = "REQUESTED"
	EventSpecFetched              RunEventType = "SPEC_FETCHED"
	EventSpecFetchFailed          RunEventType = "SPEC_FETCH_FAILED"
	EventScenarioCreated          RunEventType = "SCENARIO_CREATED"
	EventScenarioGenerationFailed RunEventType = "SCENARIO_GENERATION_FAILED"
	EventExecutionStarted         RunEventType = "EXECUTION_STARTED"
	EventExecutionSuccess         RunEventType = "EXECUTION_SUCCESS"
	EventExecutionFailed          RunEventType = "EXECUTION_FAILED"
	EventAISuccess                RunEventType = "AI_SUCCESS"
	EventAIFailed                 RunEventType = "AI_FAILED"
	EventQAEvalStarted            RunEventType = "QA_EVAL_STARTED"
	EventQAEvalDone               RunEventType = "QA_EVAL_DONE"
	EventQAEvalFailed             RunEventType = "QA_EVAL_FAILED"
	EventComplete                 RunEventType = "COMPLETE"
	EventFailed                   RunEventType = "FAILED"
	EventCancelled                RunEventType = "CANCELLED"
)

// RunEvent is one journal record. Events for a run are totally ordered by
// Seq, allocated at persistence time.
type RunEvent struct {
	ID           string         `json:"id,omitempty"`
	RunID        string         `json:"run_id"`
	Seq          int            `json:"seq"`
	Type         RunEventType   `json:"type"`
	Payload      map[string]any `json:"payload,omitempty"`
	ScenarioID   string         `json:"scenario_id,omitempty"`
	StepResultID string         `json:"step_result_id,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// AppendEventRequest contains the caller-supplied fields for a journal
// append; seq and timestamps are assigned by the journal. ErrorKind is
// folded into the payload and, on failure transitions, recorded on the run.
type AppendEventRequest struct {
	Type         RunEventType   `json:"type"`
	Payload      map[string]any `json:"payload,omitempty"`
	ScenarioID   string         `json:"scenario_id,omitempty"`
	StepResultID string         `json:"step_result_id,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	ErrorKind    *ErrorKind     `json:"error_kind,omitempty"`
}
