package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Adventure_Go/internal/character"
	"github.com/osse101/Adventure_Go/internal/combat"
	"github.com/osse101/Adventure_Go/internal/concurrency"
	"github.com/osse101/Adventure_Go/internal/content"
	"github.com/osse101/Adventure_Go/internal/difficulty"
	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/event"
	"github.com/osse101/Adventure_Go/internal/logger"
	"github.com/osse101/Adventure_Go/internal/monster"
	"github.com/osse101/Adventure_Go/internal/repository"
	"github.com/osse101/Adventure_Go/internal/reward"
)

// Service runs adventures: one live session per group, resolved once
type Service interface {
	// Start opens a new session. Monster may name a template; empty draws one.
	Start(ctx context.Context, groupID, starterID, monsterName string) (*domain.Session, error)
	Join(ctx context.Context, groupID, userID string, action domain.Action) (*domain.Session, error)
	Leave(ctx context.Context, groupID, userID string) (*domain.Session, error)
	React(ctx context.Context, groupID, marker string) (*domain.Session, error)
	Get(ctx context.Context, groupID string) (*domain.Session, error)
	Active(ctx context.Context) []*domain.Session

	// Resolve runs combat for a session exactly once. Later calls return
	// domain.ErrSessionNotFound or domain.ErrSessionNotOpen.
	Resolve(ctx context.Context, groupID string, sessionID uuid.UUID) (*Result, error)
	// Sweep force-closes sessions older than the TTL
	Sweep(ctx context.Context, now time.Time) int
}

// Result is a finished adventure
type Result struct {
	Session *domain.Session
	Outcome combat.Outcome
	Grants  []reward.Grant
}

// Durations are the countdowns per monster class
type Durations struct {
	Normal   time.Duration
	Miniboss time.Duration
	Boss     time.Duration
}

// For picks the countdown for a monster
func (d Durations) For(m domain.Monster) time.Duration {
	switch {
	case m.Boss:
		return d.Boss
	case m.Miniboss != nil:
		return d.Miniboss
	default:
		return d.Normal
	}
}

// Config tunes the session service
type Config struct {
	EntryCost          int64
	RestrictConcurrent bool
	TTL                time.Duration
	ResolveLockTimeout time.Duration
	Durations          Durations
}

func (c Config) withDefaults() Config {
	if c.TTL <= 0 {
		c.TTL = DefaultTTL
	}
	if c.ResolveLockTimeout <= 0 {
		c.ResolveLockTimeout = DefaultResolveLockTimeout
	}
	if c.Durations.Normal <= 0 {
		c.Durations.Normal = DefaultNormalDuration
	}
	if c.Durations.Miniboss <= 0 {
		c.Durations.Miniboss = DefaultMinibossDuration
	}
	if c.Durations.Boss <= 0 {
		c.Durations.Boss = DefaultBossDuration
	}
	return c
}

type service struct {
	registry   *Registry
	repo       repository.Character
	ledger     repository.Ledger
	locks      *concurrency.LockManager
	catalog    *content.Catalog
	selector   monster.Selector
	difficulty difficulty.Engine
	resolver   *combat.Resolver
	rewards    *reward.Engine
	publisher  event.Publisher
	now        func() time.Time
	cfg        Config
}

// Deps are the collaborators of the session service
type Deps struct {
	Registry   *Registry
	Repo       repository.Character
	Ledger     repository.Ledger
	Locks      *concurrency.LockManager
	Catalog    *content.Catalog
	Selector   monster.Selector
	Difficulty difficulty.Engine
	Resolver   *combat.Resolver
	Rewards    *reward.Engine
	Publisher  event.Publisher
}

// NewService creates a new session service
func NewService(deps Deps, cfg Config) Service {
	if deps.Registry == nil {
		deps.Registry = NewRegistry()
	}
	return &service{
		registry:   deps.Registry,
		repo:       deps.Repo,
		ledger:     deps.Ledger,
		locks:      deps.Locks,
		catalog:    deps.Catalog,
		selector:   deps.Selector,
		difficulty: deps.Difficulty,
		resolver:   deps.Resolver,
		rewards:    deps.Rewards,
		publisher:  deps.Publisher,
		now:        time.Now,
		cfg:        cfg.withDefaults(),
	}
}

func (s *service) Start(ctx context.Context, groupID, starterID, monsterName string) (*domain.Session, error) {
	log := logger.FromContext(ctx)

	if existing, ok := s.registry.Get(groupID); ok {
		return nil, &domain.SessionActiveError{GroupID: groupID, SessionID: existing.ID}
	}

	c, err := character.LoadOrCreate(ctx, s.repo, s.catalog, starterID, s.now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadChallenger, err)
	}
	sheet := character.Compute(c, s.catalog)
	ch := monster.Challenger{Stats: sheet.Total, Rebirths: c.Rebirths}

	var m domain.ScaledMonster
	if monsterName != "" {
		m, err = s.selector.Named(ctx, groupID, monsterName, ch)
	} else {
		m, err = s.selector.Choose(ctx, groupID, ch)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextStart, err)
	}

	sess := domain.NewSession(groupID, starterID, m, s.cfg.Durations.For(m.Template), s.now())
	if err := s.registry.Create(sess); err != nil {
		return nil, err
	}
	snap := sess.Snapshot()

	log.Info(LogMsgSessionStarted, "groupID", groupID, "sessionID", snap.ID, "monster", m.DisplayName(), "deadline", snap.Deadline())
	s.publish(ctx, event.NewAdventureStartedEvent(snap))
	return snap, nil
}

func (s *service) Join(ctx context.Context, groupID, userID string, action domain.Action) (*domain.Session, error) {
	log := logger.FromContext(ctx)

	action, err := domain.ParseAction(string(action))
	if err != nil {
		return nil, err
	}

	var veto error
	if s.cfg.EntryCost > 0 {
		balance, err := s.ledger.Balance(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextCheckBalance, err)
		}
		if balance < s.cfg.EntryCost {
			veto = domain.ErrInsufficientFunds
		}
	}
	if veto == nil && s.cfg.RestrictConcurrent && s.registry.InOtherSession(groupID, userID) {
		veto = domain.ErrAlreadyInAdventure
	}

	snap, err := s.registry.Update(groupID, func(sess *domain.Session) error {
		if veto != nil {
			sess.Remove(userID)
			return veto
		}
		sess.Move(userID, action)
		return nil
	})
	if err != nil {
		if veto != nil {
			log.Info(LogMsgJoinVetoed, "groupID", groupID, "userID", userID, "reason", veto.Error())
		}
		return nil, fmt.Errorf("%s: %w", ErrContextJoin, err)
	}

	log.Debug(LogMsgParticipantJoined, "groupID", groupID, "userID", userID, "action", action)
	return snap, nil
}

func (s *service) Leave(ctx context.Context, groupID, userID string) (*domain.Session, error) {
	snap, err := s.registry.Update(groupID, func(sess *domain.Session) error {
		if !sess.Remove(userID) {
			return domain.ErrParticipantNotJoined
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgParticipantLeft, "groupID", groupID, "userID", userID)
	return snap, nil
}

func (s *service) React(_ context.Context, groupID, marker string) (*domain.Session, error) {
	if marker == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.registry.Update(groupID, func(sess *domain.Session) error {
		sess.Reacted[marker] = true
		return nil
	})
}

func (s *service) Get(_ context.Context, groupID string) (*domain.Session, error) {
	snap, ok := s.registry.Get(groupID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return snap, nil
}

func (s *service) Active(_ context.Context) []*domain.Session {
	return s.registry.List()
}

func (s *service) Resolve(ctx context.Context, groupID string, sessionID uuid.UUID) (*Result, error) {
	log := logger.FromContext(ctx)

	sess, err := s.registry.Claim(groupID, sessionID)
	if err != nil {
		log.Debug(LogMsgResolveSkipped, "groupID", groupID, "sessionID", sessionID, "reason", err.Error())
		return nil, err
	}
	defer s.registry.Remove(groupID, sessionID)

	log.Info(LogMsgResolving, "groupID", groupID, "sessionID", sessionID, "participants", len(sess.Participants()))

	order := uniqueParticipants(sess)
	lockCtx, cancel := context.WithTimeout(ctx, s.cfg.ResolveLockTimeout)
	defer cancel()
	unlock, err := s.locks.LockAll(lockCtx, order)
	if err != nil {
		s.publish(ctx, event.NewAdventureExpiredEvent(sess.ID, groupID, ReasonLockTimeout))
		return nil, fmt.Errorf("%s: %w", ErrContextLockAll, err)
	}
	defer unlock()

	now := s.now()
	parts := make(map[string]*reward.Participant, len(order))
	fighters := make(map[string]combat.Fighter, len(order))
	for _, id := range order {
		c, err := character.LoadOrCreate(ctx, s.repo, s.catalog, id, now)
		if err != nil {
			log.Warn(LogMsgParticipantSkipped, "userID", id, "error", err)
			sess.Remove(id)
			continue
		}
		action, _ := sess.RosterOf(id)
		sheet := character.Compute(c, s.catalog)
		balance, err := s.ledger.Balance(ctx, id)
		if err != nil {
			log.Warn(LogMsgLedgerFailed, "userID", id, "error", err)
		}
		parts[id] = &reward.Participant{Character: c, Sheet: sheet, Action: action, Balance: balance}
		fighters[id] = combat.NewFighter(c, sheet)
	}

	out := s.resolver.Resolve(combat.Input{Session: sess, Fighters: fighters})
	grants := s.rewards.Settle(out, order, parts)

	for i := range grants {
		g := &grants[i]
		if err := s.repo.Save(ctx, parts[g.UserID].Character); err != nil {
			log.Error(LogMsgSaveFailed, "userID", g.UserID, "error", err)
			continue
		}
		s.settleCurrency(ctx, g)
	}

	s.difficulty.Record(groupID, difficultyResult(out))

	for _, g := range grants {
		if g.Level.LeveledUp() {
			s.publish(ctx, event.NewLevelUpEvent(g.UserID, g.Level.OldLevel, g.Level.NewLevel, g.Level.PointsGained))
		}
	}
	s.publish(ctx, event.NewAdventureResolvedEvent(resolvedPayload(sess, out, grants, now)))

	log.Info(LogMsgResolved, "groupID", groupID, "sessionID", sessionID, "success", out.Success,
		"slain", out.Slain, "persuaded", out.Persuaded, "rewardAmount", out.RewardAmount)

	sess.State = domain.SessionClosed
	return &Result{Session: sess, Outcome: out, Grants: grants}, nil
}

// settleCurrency moves the grant's currency after the character is saved
func (s *service) settleCurrency(ctx context.Context, g *reward.Grant) {
	log := logger.FromContext(ctx)
	switch {
	case g.Currency > 0:
		if _, err := s.ledger.Deposit(ctx, g.UserID, g.Currency); err != nil {
			log.Error(LogMsgLedgerFailed, "userID", g.UserID, "amount", g.Currency, "error", err)
		}
	case g.Penalty > 0:
		if _, err := s.ledger.Withdraw(ctx, g.UserID, g.Penalty); err != nil {
			if !errors.Is(err, domain.ErrInsufficientFunds) {
				log.Error(LogMsgLedgerFailed, "userID", g.UserID, "amount", -g.Penalty, "error", err)
				return
			}
			// balance moved since it was read; take what is left
			if bal, berr := s.ledger.Balance(ctx, g.UserID); berr == nil && bal > 0 {
				if _, err := s.ledger.Withdraw(ctx, g.UserID, min(bal, g.Penalty)); err != nil {
					log.Error(LogMsgLedgerFailed, "userID", g.UserID, "error", err)
				}
			}
		}
	}
}

func (s *service) Sweep(ctx context.Context, now time.Time) int {
	log := logger.FromContext(ctx)
	swept := 0
	for _, sess := range s.registry.Expired(now, s.cfg.TTL) {
		if !s.registry.Remove(sess.GroupID, sess.ID) {
			continue
		}
		swept++
		log.Warn(LogMsgSessionSwept, "groupID", sess.GroupID, "sessionID", sess.ID, "age", now.Sub(sess.CreatedAt))
		s.publish(ctx, event.NewAdventureExpiredEvent(sess.ID, sess.GroupID, ReasonStale))
	}
	return swept
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", e.Type, "error", err)
	}
}

func uniqueParticipants(sess *domain.Session) []string {
	seen := make(map[string]bool)
	var out []string
	for _, id := range sess.Participants() {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// difficultyResult summarises an outcome for the difficulty history
func difficultyResult(out combat.Outcome) difficulty.Result {
	damage := out.Attack + out.Magic
	r := difficulty.Result{
		Kind:      difficulty.KindAttack,
		Amount:    damage,
		PartySize: len(out.Participants()),
		Success:   out.Success,
	}
	if out.Diplomacy > damage {
		r.Kind = difficulty.KindTalk
		r.Amount = out.Diplomacy
	}
	return r
}

func resolvedPayload(sess *domain.Session, out combat.Outcome, grants []reward.Grant, now time.Time) event.AdventureResolvedPayloadV1 {
	p := event.AdventureResolvedPayloadV1{
		SessionID:  sess.ID,
		GroupID:    sess.GroupID,
		Monster:    sess.Monster.DisplayName(),
		Success:    out.Success,
		Slain:      out.Slain,
		Persuaded:  out.Persuaded,
		GateFailed: out.GateFailed,
		Attack:     out.Attack,
		Magic:      out.Magic,
		Diplomacy:  out.Diplomacy,
		Timestamp:  now.Unix(),
	}
	for _, g := range grants {
		po := event.ParticipantOutcomeV1{
			UserID:     g.UserID,
			Action:     string(g.Action),
			Fumbled:    g.Fumbled,
			Crit:       g.Crit,
			XP:         g.XP,
			Currency:   g.Currency,
			PetXP:      g.PetXP,
			PetBonus:   g.PetBonus,
			Penalty:    g.Penalty,
			CanRebirth: g.CanRebirth,
		}
		if g.Level.LeveledUp() {
			po.NewLevel = g.Level.NewLevel
		}
		for _, ct := range domain.ChestTypes {
			for i := 0; i < g.Chests.Get(ct); i++ {
				po.Chests = append(po.Chests, string(ct))
			}
		}
		p.Participants = append(p.Participants, po)
	}
	return p
}
