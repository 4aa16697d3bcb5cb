package actions

import (
	"zero.dev/zero/internal/commitmsg"
)

// RepositoryContext is the repository state a commit is proposed from.
// It is built once per invocation and not modified afterwards.
type RepositoryContext struct {
	Diff      string
	Branch    string
	RecentLog string
	Files     []string
}

// Origin records where a proposed commit message came from
type Origin int

const (
	// OriginModel means the model produced the message
	OriginModel Origin = iota
	// OriginFallback means the message was generated locally
	OriginFallback
)

func (o Origin) String() string {
	if o == OriginFallback {
		return "fallback"
	}
	return "model"
}

// ProposedAction is a commit awaiting confirmation
type ProposedAction struct {
	Message string
	Type    commitmsg.Type
	Origin  Origin
}

// CommitState is the terminal state of a commit run
type CommitState int

const (
	// StateDone means the commit was created
	StateDone CommitState = iota
	// StateNothingStaged means there was nothing to commit
	StateNothingStaged
	// StateAborted means the secret scan stopped the run
	StateAborted
	// StateCancelled means the user declined or interrupted the confirmation
	StateCancelled
	// StateFailed means context collection, the model or git failed
	StateFailed
)

func (s CommitState) String() string {
	switch s {
	case StateDone:
		return "done"
	case StateNothingStaged:
		return "nothing-staged"
	case StateAborted:
		return "aborted"
	case StateCancelled:
		return "cancelled"
	default:
		return "failed"
	}
}
