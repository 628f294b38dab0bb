package models

import "time"

// Realtime message type constants
const (
	MsgJoinPoll      = "join_poll"
	MsgUpdateResults = "update_results"
)

// Realtime message types

type JoinPollMsg struct {
	Type   string `json:"type"`
	PollID string `json:"poll_id"`
}

type UpdateResultsMsg struct {
	Type    string         `json:"type"`
	PollID  string         `json:"poll_id"`
	Results map[string]int `json:"results"`
}

// Response types

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type Poll struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	CreatedAt time.Time `json:"created_at"`
}

type Option struct {
	ID       string `json:"id"`
	PollID   string `json:"poll_id"`
	Label    string `json:"label"`
	Votes    int    `json:"votes"`
	Position int    `json:"-"` // creation order, keeps option listing stable
}

type PollWithOptions struct {
	Poll    Poll     `json:"poll"`
	Options []Option `json:"options"`
}

// TotalVotes returns the number of accepted votes across all options.
func (p *PollWithOptions) TotalVotes() int {
	total := 0
	for _, opt := range p.Options {
		total += opt.Votes
	}
	return total
}

// Results returns the option label -> vote count mapping pushed to
// realtime subscribers.
func (p *PollWithOptions) Results() map[string]int {
	results := make(map[string]int, len(p.Options))
	for _, opt := range p.Options {
		results[opt.Label] = opt.Votes
	}
	return results
}

// Tally is the snapshot broadcast to a poll's room after an accepted vote.
// Seq is the poll's total accepted vote count at the moment the vote
// committed; it increases by exactly one per accepted vote, so it doubles
// as a monotonic version for ordering broadcasts.
type Tally struct {
	PollID  string         `json:"poll_id"`
	Seq     int            `json:"seq"`
	Results map[string]int `json:"results"`
}
