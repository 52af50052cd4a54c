// Package model defines data structures for the conversation dashboard.
package model

// RawInteraction is one inbound/outbound message pair candidate as the
// ingestion webhook delivers it. Only the counterparty identifier is
// reliably present; everything else is free-form.
type RawInteraction struct {
	ID       string `json:"id"`
	From     string `json:"from"`
	Inbound  string `json:"msg,omitempty"`
	Outbound string `json:"send_msg,omitempty"`

	// ReceivedAt ("tempo") is the primary timestamp; LoggedAt
	// ("timestamp") is the fallback when it is missing.
	ReceivedAt Timestamp `json:"tempo"`
	LoggedAt   Timestamp `json:"timestamp"`
	RepliedAt  Timestamp `json:"time_sended"`

	AgentID string `json:"id_agente,omitempty"`
}

// BestTime returns the record's best available timestamp: the received
// time when known, else the logged time. The result may itself be unknown.
func (r RawInteraction) BestTime() Timestamp {
	if r.ReceivedAt.Known() {
		return r.ReceivedAt
	}
	return r.LoggedAt
}

// Answered reports whether the record carries an outbound reply.
func (r RawInteraction) Answered() bool {
	return r.Outbound != ""
}
