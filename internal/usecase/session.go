package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rocketscienceinc/hexstorm-backend/internal/apperror"
	"github.com/rocketscienceinc/hexstorm-backend/internal/entity"
	"github.com/rocketscienceinc/hexstorm-backend/internal/hexstorm"
)

const (
	DefaultResetDelay = 5 * time.Second

	OpponentDisconnectedMessage = "Opponent disconnected. Resetting game."

	saveResultTimeout = 5 * time.Second
)

// Client is a connected participant. Send must not block: it is called while the session is locked.
type Client interface {
	ID() string
	Send(event entity.Event)
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	List(ctx context.Context, limit int64) ([]*entity.Result, error)
}

type SessionConfig struct {
	Radius     int
	ResetDelay time.Duration
	Rand       *rand.Rand
}

// Session owns the single shared game. Every mutation runs under mu and is broadcast before unlocking.
type Session struct {
	logger     *slog.Logger
	results    resultRepo
	resetDelay time.Duration

	mu         sync.Mutex
	rng        *rand.Rand
	game       *entity.Game
	clients    map[string]Client
	epoch      uint64
	resetTimer *time.Timer
	closed     bool

	ctx    context.Context
	cancel context.CancelFunc
	saves  sync.WaitGroup
}

// NewSession generates the first board. results may be nil, which disables match history.
func NewSession(ctx context.Context, logger *slog.Logger, conf SessionConfig, results resultRepo) (*Session, error) {
	rng := conf.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	radius := conf.Radius
	if radius == 0 {
		radius = entity.DefaultRadius
	}

	resetDelay := conf.ResetDelay
	if resetDelay <= 0 {
		resetDelay = DefaultResetDelay
	}

	game, err := entity.NewGame(radius, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Session{
		logger:     logger.With("component", "session"),
		results:    results,
		resetDelay: resetDelay,

		rng:     rng,
		game:    game,
		clients: make(map[string]Client),

		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Connect attaches a client to the first free slot, or as a spectator when both are taken.
func (that *Session) Connect(client Client) (entity.Slot, error) {
	log := that.logger.With("method", "Connect", "clientID", client.ID())

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return entity.NoSlot, apperror.ErrSessionClosed
	}

	that.clients[client.ID()] = client

	slot := that.game.FreeSlot()
	if slot == entity.NoSlot {
		log.Info("spectator connected")
		client.Send(entity.SpectatorEvent{})
	} else {
		log.Info("player connected", "slot", slot)
		that.game.Player(slot).ConnectionID = client.ID()
		client.Send(entity.AssignPlayerEvent{Slot: slot})
	}

	client.Send(entity.GameStateEvent{State: that.game.Clone()})

	if slot != entity.NoSlot && that.tryStartLocked() {
		log.Info("game started")
		that.broadcastLocked()
	}

	return slot, nil
}

// Move applies a color choice for the client. Rejected moves leave the session untouched.
func (that *Session) Move(clientID string, color entity.Color) error {
	result, err := that.move(clientID, color)
	if err != nil {
		return err
	}

	if result != nil {
		go that.saveResult(result)
	}

	return nil
}

func (that *Session) move(clientID string, color entity.Color) (*entity.Result, error) {
	log := that.logger.With("method", "Move", "clientID", clientID)

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return nil, apperror.ErrSessionClosed
	}

	if _, ok := that.clients[clientID]; !ok {
		return nil, apperror.ErrUnknownClient
	}

	slot := that.game.SlotOf(clientID)
	if slot == entity.NoSlot {
		return nil, apperror.ErrSpectator
	}

	won, err := hexstorm.MakeTurn(that.game, slot, color)
	if err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("move applied", "slot", slot, "color", color, "score", that.game.Player(slot).Score)

	that.broadcastLocked()

	if !won {
		return nil, nil
	}

	log.Info("game won", "winner", slot)
	that.scheduleResetLocked()

	if that.results == nil {
		return nil, nil
	}

	// counted under the lock so Close cannot miss it
	that.saves.Add(1)

	return that.game.Result(time.Now()), nil
}

// Disconnect detaches a client. A player leaving a running game resets it for everyone.
func (that *Session) Disconnect(clientID string) {
	log := that.logger.With("method", "Disconnect", "clientID", clientID)

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.clients[clientID]; !ok {
		return
	}
	delete(that.clients, clientID)

	if that.closed {
		return
	}

	slot := that.game.SlotOf(clientID)
	if slot == entity.NoSlot {
		log.Info("spectator disconnected")
		return
	}

	that.game.Player(slot).ConnectionID = ""

	if !that.game.IsOngoing() {
		log.Info("player left", "slot", slot)
		return
	}

	log.Info("player left a running game, resetting", "slot", slot)

	if opponent := that.game.Player(slot.Opponent()); opponent.IsAttached() {
		that.sendLocked(opponent.ConnectionID, entity.GameErrorEvent{Message: OpponentDisconnectedMessage})
	}

	that.resetLocked()
	that.broadcastLocked()
}

// Snapshot returns a private copy of the current game.
func (that *Session) Snapshot() *entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.Clone()
}

// Results lists the most recent finished matches, newest first.
func (that *Session) Results(ctx context.Context, limit int64) ([]*entity.Result, error) {
	if that.results == nil {
		return nil, apperror.ErrResultsDisabled
	}

	results, err := that.results.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return results, nil
}

// Close stops the pending reset and waits for in-flight result saves.
func (that *Session) Close() {
	that.mu.Lock()
	that.closed = true
	that.epoch++
	that.stopTimerLocked()
	that.mu.Unlock()

	that.saves.Wait()
	that.cancel()
}

func (that *Session) tryStartLocked() bool {
	if !that.game.BothAttached() {
		return false
	}

	return hexstorm.Start(that.game)
}

func (that *Session) resetLocked() {
	that.epoch++
	that.stopTimerLocked()
	that.game.Reset(that.rng)
}

func (that *Session) stopTimerLocked() {
	if that.resetTimer != nil {
		that.resetTimer.Stop()
		that.resetTimer = nil
	}
}

func (that *Session) scheduleResetLocked() {
	that.stopTimerLocked()

	epoch := that.epoch
	that.resetTimer = time.AfterFunc(that.resetDelay, func() {
		that.resetAfterWin(epoch)
	})
}

func (that *Session) resetAfterWin(epoch uint64) {
	log := that.logger.With("method", "resetAfterWin")

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed || epoch != that.epoch {
		log.Debug("stale reset skipped", "epoch", epoch, "current", that.epoch)
		return
	}

	that.resetLocked()

	if that.tryStartLocked() {
		log.Info("new game started")
	}

	that.broadcastLocked()
}

// saveResult runs outside the lock. The caller has already added it to saves.
func (that *Session) saveResult(result *entity.Result) {
	defer that.saves.Done()

	log := that.logger.With("method", "saveResult")

	ctx, cancel := context.WithTimeout(that.ctx, saveResultTimeout)
	defer cancel()

	if err := that.results.Save(ctx, result); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("result save canceled", "winner", result.Winner)
			return
		}

		log.Error("failed to save result", "winner", result.Winner, "error", err)
	}
}
