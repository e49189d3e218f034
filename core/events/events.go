package events

// ScheduleEvent is published when a scheduling run starts.
type ScheduleEvent struct {
	RunID    string
	Strategy string
	Dates    int
	Members  int
}

// AssignmentEvent is published for every date that received a member.
type AssignmentEvent struct {
	RunID    string
	Date     string
	MemberID string
	Score    float64
}

// SkipEvent is published for every requested date left unassigned.
type SkipEvent struct {
	RunID string
	Date  string
}
