// Package flow implements the per-user conversation state machine.
//
// Inbound events are routed by the session's current step to a step handler.
// Handlers validate input against the attribute maps before mutating any
// session field; validation failures never change state and always re-render
// the same step's prompt.
package flow

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/kykylib/shoebot/internal/catalog"
	"github.com/kykylib/shoebot/internal/models"
	"github.com/kykylib/shoebot/internal/order"
)

// prevStep maps each non-initial step to its immediately preceding step for
// backward navigation. Stepping back re-enters the step without discarding
// already-accumulated answers.
var prevStep = map[models.Step]models.Step{
	models.StepWantToBuy:    models.StepAskName,
	models.StepAskSize:      models.StepWantToBuy,
	models.StepAskStyle:     models.StepAskSize,
	models.StepAskType:      models.StepAskStyle,
	models.StepConfirm:      models.StepAskType,
	models.StepMoreShopping: models.StepConfirm,
}

// Engine drives one session per user through the ordering conversation.
type Engine struct {
	sessions *SessionStore
	catalog  catalog.Store
	resolver *order.Resolver
}

// NewEngine creates a conversation engine over the given session store,
// catalog store, and order resolver.
func NewEngine(sessions *SessionStore, cat catalog.Store, res *order.Resolver) *Engine {
	return &Engine{sessions: sessions, catalog: cat, resolver: res}
}

// Sessions exposes the underlying session store for inspection surfaces.
func (e *Engine) Sessions() *SessionStore {
	return e.sessions
}

// HandleEvent routes one inbound event to the appropriate handler.
func (e *Engine) HandleEvent(ctx context.Context, ev models.Event) ([]models.Reply, error) {
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	switch ev.Kind {
	case models.EventReset:
		return e.Reset(ev.UserID), nil
	case models.EventText:
		return e.HandleText(ctx, ev.UserID, ev.Text)
	case models.EventAction:
		return e.HandleAction(ctx, ev.UserID, ev.Action)
	default:
		return nil, fmt.Errorf("unsupported event kind %q", ev.Kind)
	}
}

// Reset clears any existing session and re-enters the initial step.
func (e *Engine) Reset(userID string) []models.Reply {
	e.sessions.Delete(userID)
	e.sessions.GetOrCreate(userID)
	slog.Info("Engine session reset", "userID", userID)
	return []models.Reply{models.PromptReply(models.Prompt{Text: MsgAskName})}
}

// HandleText processes free text or a button-label echo for the user's
// current step. The engine mutates a snapshot copy and publishes it back
// through the store, so in-flight sessions are never written in place.
func (e *Engine) HandleText(ctx context.Context, userID, text string) ([]models.Reply, error) {
	text = strings.TrimSpace(text)

	sess, ok := e.sessions.Snapshot(userID)
	if !ok {
		// First contact: greet and ask for a name before consuming input.
		e.sessions.GetOrCreate(userID)
		slog.Info("Engine first contact", "userID", userID)
		return []models.Reply{models.PromptReply(models.Prompt{Text: MsgAskName})}, nil
	}

	if text == LabelHome {
		return e.Reset(userID), nil
	}
	if text == LabelBack {
		replies := e.stepBack(ctx, &sess)
		e.sessions.Put(&sess)
		return replies, nil
	}

	var replies []models.Reply
	switch sess.Step {
	case models.StepAskName:
		replies = e.handleAskName(&sess, text)
	case models.StepWantToBuy:
		replies = e.handleWantToBuy(ctx, &sess, text)
	case models.StepAskSize:
		replies = e.handleAskSize(ctx, &sess, text)
	case models.StepAskStyle:
		replies = e.handleAskStyle(&sess, text)
	case models.StepAskType:
		replies = e.handleAskType(ctx, &sess, text)
	case models.StepConfirm:
		// Confirmation is driven by a distinct action signal, not free text.
		replies = e.promptFor(ctx, &sess, MsgUseButtons)
	case models.StepMoreShopping:
		replies = e.handleMoreShopping(ctx, &sess, text)
	default:
		return nil, fmt.Errorf("session %s in unknown step %q", userID, sess.Step)
	}
	e.commit(&sess)
	return replies, nil
}

// commit publishes the mutated session copy unless its handler ended the
// conversation and deleted the session.
func (e *Engine) commit(sess *models.Session) {
	if _, ok := e.sessions.Get(sess.UserID); ok {
		e.sessions.Put(sess)
	}
}

// HandleAction processes a confirm/cancel signal. Actions delivered while the
// session is not awaiting confirmation are ignored.
func (e *Engine) HandleAction(ctx context.Context, userID string, action models.Action) ([]models.Reply, error) {
	sess, ok := e.sessions.Snapshot(userID)
	if !ok || sess.Step != models.StepConfirm || sess.Pending == nil {
		slog.Debug("Engine ignoring action outside confirmation step", "userID", userID, "action", action)
		return nil, nil
	}

	decision := order.DecisionCancel
	if action == models.ActionConfirm {
		decision = order.DecisionConfirm
	}
	outcome, err := e.resolver.Finalize(sess.Pending, sess.Name, decision)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize order for %s: %w", userID, err)
	}

	sess.Pending = nil
	sess.Step = models.StepMoreShopping
	e.sessions.Put(&sess)
	slog.Info("Engine order finalized", "userID", userID, "confirmed", outcome.Confirmed, "orderID", outcome.OrderID)

	return []models.Reply{
		{Outcome: outcome},
		models.PromptReply(yesNoPrompt(MsgMoreShopping)),
	}, nil
}

func (e *Engine) handleAskName(sess *models.Session, text string) []models.Reply {
	if text == "" {
		return []models.Reply{models.PromptReply(models.Prompt{Text: MsgAskName})}
	}
	sess.Name = text
	sess.Step = models.StepWantToBuy
	return []models.Reply{models.PromptReply(yesNoPrompt(fmt.Sprintf(MsgGreetFmt, sess.Name)))}
}

func (e *Engine) handleWantToBuy(ctx context.Context, sess *models.Session, text string) []models.Reply {
	switch text {
	case LabelYes:
		prompt, err := e.sizePrompt(ctx)
		if err != nil {
			slog.Error("Engine size prompt failed", "error", err, "userID", sess.UserID)
			return e.promptFor(ctx, sess, MsgStoreTrouble)
		}
		sess.Step = models.StepAskSize
		return []models.Reply{models.PromptReply(prompt)}
	case LabelNo:
		e.sessions.Delete(sess.UserID)
		return []models.Reply{models.TextReply(MsgGoodbye)}
	default:
		return []models.Reply{models.PromptReply(yesNoPrompt(MsgPickKeyboard))}
	}
}

func (e *Engine) handleAskSize(ctx context.Context, sess *models.Session, text string) []models.Reply {
	size, err := strconv.Atoi(text)
	if err != nil || size < 0 {
		return []models.Reply{models.PromptReply(freeTextPrompt(MsgSizeFormatHint))}
	}

	sizes, err := e.catalog.ListDistinctSizes(ctx)
	if err != nil {
		slog.Error("Engine size lookup failed", "error", err, "userID", sess.UserID)
		return []models.Reply{
			models.TextReply(MsgStoreTrouble),
			models.PromptReply(freeTextPrompt(MsgSizeFormatHint)),
		}
	}
	if !containsInt(sizes, size) {
		return []models.Reply{models.PromptReply(freeTextPrompt(MsgSizeUnavailable))}
	}

	sess.Size = size
	sess.Step = models.StepAskStyle
	return []models.Reply{models.PromptReply(stylePrompt())}
}

func (e *Engine) handleAskStyle(sess *models.Session, text string) []models.Reply {
	style, ok := StyleFromLabel(text)
	if !ok {
		return []models.Reply{models.PromptReply(choicesPrompt(MsgStyleFromKeyboard, StyleLabels()))}
	}
	sess.Style = style
	sess.Step = models.StepAskType
	return []models.Reply{models.PromptReply(typePrompt(style))}
}

func (e *Engine) handleAskType(ctx context.Context, sess *models.Session, text string) []models.Reply {
	shoeType, ok := TypeFromLabel(text)
	if !ok || !containsType(ValidTypesFor(sess.Style), shoeType) {
		return []models.Reply{models.PromptReply(choicesPrompt(MsgTypeFromKeyboard, TypeLabelsFor(sess.Style)))}
	}
	sess.Type = shoeType

	offer, err := e.resolver.Resolve(ctx, sess.Size, sess.Style, sess.Type)
	if err != nil {
		slog.Error("Engine resolve failed", "error", err, "userID", sess.UserID)
		return []models.Reply{
			models.TextReply(MsgStoreTrouble),
			models.PromptReply(typePrompt(sess.Style)),
		}
	}
	if offer == nil {
		sess.Step = models.StepMoreShopping
		return []models.Reply{
			models.TextReply(MsgNoMatch),
			models.PromptReply(yesNoPrompt(MsgTryOther)),
		}
	}

	sess.Pending = offer
	sess.Step = models.StepConfirm
	slog.Info("Engine offer presented", "userID", sess.UserID, "brand", offer.Brand, "model", offer.Model)
	return []models.Reply{{Offer: offer}}
}

func (e *Engine) handleMoreShopping(ctx context.Context, sess *models.Session, text string) []models.Reply {
	switch text {
	case LabelYes:
		prompt, err := e.sizePrompt(ctx)
		if err != nil {
			slog.Error("Engine size prompt failed", "error", err, "userID", sess.UserID)
			return e.promptFor(ctx, sess, MsgStoreTrouble)
		}
		sess.Step = models.StepAskSize
		return []models.Reply{models.PromptReply(prompt)}
	case LabelNo:
		e.sessions.Delete(sess.UserID)
		return []models.Reply{models.TextReply(MsgThanksShopping)}
	default:
		return []models.Reply{models.PromptReply(yesNoPrompt(MsgPickKeyboard))}
	}
}

// stepBack moves the session to the immediately preceding step and re-issues
// that step's prompt. Accumulated answers for steps still ahead are kept.
func (e *Engine) stepBack(ctx context.Context, sess *models.Session) []models.Reply {
	prev, ok := prevStep[sess.Step]
	if !ok {
		// Already at the initial step.
		return e.promptFor(ctx, sess, "")
	}
	if prev == models.StepConfirm && sess.Pending == nil {
		// Confirmation has nothing to show without a pending offer; re-enter
		// the nearest meaningful predecessor instead.
		prev = models.StepAskType
	}
	sess.Step = prev
	slog.Debug("Engine stepped back", "userID", sess.UserID, "step", sess.Step)
	return e.promptFor(ctx, sess, "")
}

// promptFor re-renders the prompt for the session's current step. A non-empty
// notice is prefixed as its own message.
func (e *Engine) promptFor(ctx context.Context, sess *models.Session, notice string) []models.Reply {
	var replies []models.Reply
	if notice != "" {
		replies = append(replies, models.TextReply(notice))
	}

	switch sess.Step {
	case models.StepAskName:
		replies = append(replies, models.PromptReply(models.Prompt{Text: MsgAskName}))
	case models.StepWantToBuy:
		replies = append(replies, models.PromptReply(yesNoPrompt(fmt.Sprintf(MsgGreetFmt, sess.Name))))
	case models.StepAskSize:
		prompt, err := e.sizePrompt(ctx)
		if err != nil {
			// The size list is unavailable; keep the step answerable anyway.
			slog.Error("Engine size prompt failed", "error", err, "userID", sess.UserID)
			replies = append(replies,
				models.TextReply(MsgStoreTrouble),
				models.PromptReply(freeTextPrompt(MsgSizeFormatHint)))
			return replies
		}
		replies = append(replies, models.PromptReply(prompt))
	case models.StepAskStyle:
		replies = append(replies, models.PromptReply(stylePrompt()))
	case models.StepAskType:
		replies = append(replies, models.PromptReply(typePrompt(sess.Style)))
	case models.StepConfirm:
		if sess.Pending == nil {
			replies = append(replies, models.PromptReply(typePrompt(sess.Style)))
			break
		}
		replies = append(replies, models.Reply{Offer: sess.Pending})
	case models.StepMoreShopping:
		replies = append(replies, models.PromptReply(yesNoPrompt(MsgMoreShopping)))
	}
	return replies
}

// sizePrompt queries current availability and builds the size question. The
// size list is fetched fresh on every entry into the size step.
func (e *Engine) sizePrompt(ctx context.Context) (models.Prompt, error) {
	sizes, err := e.catalog.ListDistinctSizes(ctx)
	if err != nil {
		return models.Prompt{}, fmt.Errorf("failed to list available sizes: %w", err)
	}
	rendered := make([]string, len(sizes))
	for i, size := range sizes {
		rendered[i] = strconv.Itoa(size)
	}
	return freeTextPrompt(fmt.Sprintf(MsgSizesFmt, strings.Join(rendered, ", "))), nil
}

func stylePrompt() models.Prompt {
	return choicesPrompt(MsgAskStyle, StyleLabels())
}

func typePrompt(style models.Style) models.Prompt {
	return choicesPrompt(MsgAskType, TypeLabelsFor(style))
}

func yesNoPrompt(text string) models.Prompt {
	return models.Prompt{Text: text, Choices: []string{LabelYes, LabelNo}, AllowBack: true, AllowHome: true}
}

func freeTextPrompt(text string) models.Prompt {
	return models.Prompt{Text: text, AllowBack: true, AllowHome: true}
}

func choicesPrompt(text string, choices []string) models.Prompt {
	return models.Prompt{Text: text, Choices: choices, AllowBack: true, AllowHome: true}
}

func containsInt(values []int, want int) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func containsType(values []models.ShoeType, want models.ShoeType) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
