package models

// MaxSearchHistory is the number of distinct recent search terms kept per session
const MaxSearchHistory = 5

// ViewState is the explicit application state the pipeline runs against
type ViewState struct {
	Category string   `json:"category" form:"category"`
	Search   string   `json:"search" form:"search"`
	Color    BucketID `json:"color" form:"color"`
}

// RunState is the lifecycle of a pipeline run, pushed to websocket clients
type RunState string

const (
	RunLoading RunState = "loading"
	RunReady   RunState = "ready"
	RunFailed  RunState = "failed"
)

// RunEvent is broadcast whenever a session's pipeline run changes state
type RunEvent struct {
	SessionID  string   `json:"session_id"`
	Generation uint64   `json:"generation"`
	State      RunState `json:"state"`
	Count      int      `json:"count"`
	Error      string   `json:"error,omitempty"`
}
