package domain

// PollResult lists the message identifiers currently addressed to a user.
// Degraded is set when group fan-out could not be resolved, in which case
// MessageIDs only holds direct messages and DegradedCause says why.
type PollResult struct {
	MessageIDs    []MessageID
	Degraded      bool
	DegradedCause error
}

// Inbox is the set of messages a user has not acknowledged yet, oldest first.
type Inbox struct {
	Messages []Message
	Degraded bool
}
