package highlight

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CommitContext provides context for highlight commit guards.
type CommitContext struct {
	ChapterID     string
	Text          string
	CrossesBlocks bool // selection spans more than one block-level element
}

// CanCommitHighlight evaluates whether a selection can become a highlight.
// Rules:
// - Chapter must be identified
// - Selected text must be non-empty
// - Selection must not span multiple block-level elements
func CanCommitHighlight(ctx CommitContext) GuardResult {
	if ctx.ChapterID == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "no chapter context for highlight",
		}
	}

	if ctx.Text == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "cannot highlight an empty selection",
		}
	}

	if ctx.CrossesBlocks {
		return GuardResult{
			Allowed: false,
			Reason:  "cannot highlight text that spans multiple paragraphs or elements",
		}
	}

	return GuardResult{Allowed: true}
}
