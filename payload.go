package workflow

// Optional fields are pointers so that an absent value and an empty value
// both survive an export/import round trip.

// StartData is the payload of the entry node.
type StartData struct {
	Label    string   `json:"label"`
	Title    string   `json:"title"`
	Metadata Metadata `json:"metadata"`
}

// TaskData is the payload of a human task.
type TaskData struct {
	Label        string            `json:"label"`
	Title        string            `json:"title"`
	Description  *string           `json:"description,omitempty"`
	Assignee     *string           `json:"assignee,omitempty"`
	DueDate      *string           `json:"dueDate,omitempty"`
	CustomFields map[string]string `json:"customFields"`
}

// ApprovalData is the payload of an approval gate.
// ApproverRole is free text; ApproverRoles lists what the editor suggests.
type ApprovalData struct {
	Label                string   `json:"label"`
	Title                string   `json:"title"`
	ApproverRole         *string  `json:"approverRole,omitempty"`
	AutoApproveThreshold *float64 `json:"autoApproveThreshold,omitempty"`
}

// AutomatedData is the payload of a step backed by an automation action.
type AutomatedData struct {
	Label        string            `json:"label"`
	Title        string            `json:"title"`
	ActionID     *string           `json:"actionId,omitempty"`
	ActionParams map[string]string `json:"actionParams"`
}

// EndData is the payload of a terminal node. It has no title.
type EndData struct {
	Label       string  `json:"label"`
	EndMessage  *string `json:"endMessage,omitempty"`
	ShowSummary *bool   `json:"showSummary,omitempty"`
}

func (StartData) Kind() Kind     { return KindStart }
func (TaskData) Kind() Kind      { return KindTask }
func (ApprovalData) Kind() Kind  { return KindApproval }
func (AutomatedData) Kind() Kind { return KindAutomated }
func (EndData) Kind() Kind       { return KindEnd }

func (d StartData) DisplayLabel() string     { return d.Label }
func (d TaskData) DisplayLabel() string      { return d.Label }
func (d ApprovalData) DisplayLabel() string  { return d.Label }
func (d AutomatedData) DisplayLabel() string { return d.Label }
func (d EndData) DisplayLabel() string       { return d.Label }

func (d StartData) TitleText() (string, bool)     { return d.Title, true }
func (d TaskData) TitleText() (string, bool)      { return d.Title, true }
func (d ApprovalData) TitleText() (string, bool)  { return d.Title, true }
func (d AutomatedData) TitleText() (string, bool) { return d.Title, true }
func (EndData) TitleText() (string, bool)         { return "", false }

func (StartData) isPayload()     {}
func (TaskData) isPayload()      {}
func (ApprovalData) isPayload()  {}
func (AutomatedData) isPayload() {}
func (EndData) isPayload()       {}

// String returns a pointer to s, for filling optional payload fields.
func String(s string) *string { return &s }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// deref returns the pointed-to string or "".
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
