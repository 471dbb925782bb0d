// Package verification decides whether a user has completed a campaign's gate items.
package verification

import (
	"context"

	"subgate/internal/observability"
	"subgate/internal/platform"
	"subgate/internal/store"
)

// MembershipChecker is the slice of the chat platform the verifier needs.
type MembershipChecker interface {
	GetChatMember(ctx context.Context, chatID string, userID int64) (platform.MemberStatus, error)
}

// Result lists the unsatisfied items in campaign order.
type Result struct {
	Satisfied bool
	Missing   []store.GateItem
}

type Verifier struct {
	checker MembershipChecker
	logger  *observability.Logger
}

func New(checker MembershipChecker, logger *observability.Logger) Verifier {
	return Verifier{checker: checker, logger: logger}
}

// CheckSatisfaction evaluates every item without short-circuiting. A channel is
// satisfied only when the platform confirms a present membership status; any
// query failure counts as missing. Links are always satisfied.
func (v Verifier) CheckSatisfaction(ctx context.Context, userID int64, items []store.GateItem) Result {
	missing := make([]store.GateItem, 0)

	for _, item := range items {
		switch it := item.(type) {
		case store.ChannelItem:
			if !v.isMember(ctx, userID, it) {
				missing = append(missing, it)
			}
		case store.LinkItem:
			// unverifiable
		}
	}

	return Result{Satisfied: len(missing) == 0, Missing: missing}
}

func (v Verifier) isMember(ctx context.Context, userID int64, ch store.ChannelItem) bool {
	status, err := v.checker.GetChatMember(ctx, ch.ChatID, userID)
	if err != nil {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "chat_id", Value: ch.ChatID},
			observability.Field{Key: "error_kind", Value: platform.KindOf(err).String()},
		)
		v.logger.WarnWithError(ctx, "membership check failed, treating as not subscribed", err)
		return false
	}
	return status.Present()
}
