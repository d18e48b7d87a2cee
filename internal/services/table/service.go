package table

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/mcoot/scrabb-go/internal/dependencies/clock"
	"github.com/mcoot/scrabb-go/internal/dependencies/random"
	"github.com/mcoot/scrabb-go/internal/model"
	"github.com/mcoot/scrabb-go/internal/services/rules"
	"github.com/mcoot/scrabb-go/internal/services/tilebag"
)

const idAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Config holds configuration for the table service
type Config struct {
	// Capacity is the most tables held at once. Creating one more drops the
	// least recently used table.
	Capacity int
	// IDLength is the length of generated table IDs
	IDLength int
}

// DefaultConfig returns the default table configuration
func DefaultConfig() Config {
	return Config{
		Capacity: 1024,
		IDLength: 8,
	}
}

// CreateOptions customises a new table
type CreateOptions struct {
	// Layout replaces the standard bonus cells when set
	Layout *model.BonusLayout
}

// entry is one hosted table. mu serializes everything done to it, so each
// play is validated against the board left by the previous one.
type entry struct {
	mu     sync.Mutex
	table  *model.Table
	engine *rules.Engine
	bag    *tilebag.Bag
}

// Service hosts independent tables in memory. Tables share no state; calls
// against the same table are serialized, calls against different tables run
// in parallel.
type Service struct {
	mu     sync.Mutex
	tables *simplelru.LRU[model.TableID, *entry]
	config Config
	clock  clock.Clock
	random random.Random
	logger *slog.Logger
}

// New creates a new table service
func New(cfg Config, clk clock.Clock, rnd random.Random, logger *slog.Logger) (*Service, error) {
	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("table capacity must be positive, got %d", cfg.Capacity)
	}
	if cfg.IDLength <= 0 {
		cfg.IDLength = DefaultConfig().IDLength
	}
	logger = logger.With(slog.String("component", "table"))

	tables, err := simplelru.NewLRU[model.TableID, *entry](cfg.Capacity, func(id model.TableID, _ *entry) {
		logger.Info("table released", slog.String("table_id", string(id)))
	})
	if err != nil {
		return nil, err
	}

	return &Service{
		tables: tables,
		config: cfg,
		clock:  clk,
		random: rnd,
		logger: logger,
	}, nil
}

// Create starts a new table with an empty board and a full bag
func (s *Service) Create(ctx context.Context, opts CreateOptions) (*model.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	board := model.NewBoard()
	if opts.Layout != nil {
		var err error
		board, err = model.NewBoardWithLayout(*opts.Layout)
		if err != nil {
			return nil, err
		}
	}

	now := s.clock.Now()
	bag := tilebag.New(s.random)

	s.mu.Lock()
	id := s.newID()
	e := &entry{
		table: &model.Table{
			ID:        id,
			Board:     board,
			Plays:     []model.PlayRecord{},
			CreatedAt: now,
			UpdatedAt: now,
		},
		engine: rules.New(board, s.logger.With(slog.String("table_id", string(id)))),
		bag:    bag,
	}
	snapshot := e.snapshot()
	s.tables.Add(id, e)
	s.mu.Unlock()

	s.logger.Info("table created",
		slog.String("table_id", string(id)),
		slog.Bool("custom_layout", opts.Layout != nil),
	)

	return snapshot, nil
}

// newID picks an unused ID. Caller must hold s.mu.
func (s *Service) newID() model.TableID {
	for attempt := 1; ; attempt++ {
		id := model.TableID(s.random.String(s.config.IDLength, idAlphabet))
		if id == "" {
			id = model.TableID(fmt.Sprintf("T%d", s.tables.Len()+attempt))
		}
		if !s.tables.Contains(id) {
			return id
		}
	}
}

// Get returns a snapshot of the table
func (s *Service) Get(ctx context.Context, id model.TableID) (*model.Table, error) {
	e, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot(), nil
}

// Delete removes a table
func (s *Service) Delete(ctx context.Context, id model.TableID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	removed := s.tables.Remove(id)
	s.mu.Unlock()
	if !removed {
		return model.ErrTableNotFound
	}
	s.logger.Info("table deleted", slog.String("table_id", string(id)))
	return nil
}

// Len returns the number of hosted tables
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tables.Len()
}

// Play validates, scores and commits a play on the table
func (s *Service) Play(ctx context.Context, id model.TableID, placements []model.Placement) (*model.PlayResult, error) {
	if err := CheckPlacements(placements); err != nil {
		return nil, err
	}
	e, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	result, err := e.engine.Play(placements)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	words := make([]string, len(result.Words))
	for i, w := range result.Words {
		words[i] = w.Word.Text()
	}
	e.table.Plays = append(e.table.Plays, model.PlayRecord{
		Number:      len(e.table.Plays) + 1,
		Orientation: result.Orientation,
		Words:       words,
		TilesPlaced: result.TilesPlaced,
		Bingo:       result.Bingo,
		Score:       result.Score,
		PlayedAt:    now,
	})
	e.table.TotalScore += result.Score
	e.table.UpdatedAt = now

	return result, nil
}

// Draw takes up to n tiles from the table's bag
func (s *Service) Draw(ctx context.Context, id model.TableID, n int) ([]*model.Tile, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidCount, n)
	}
	e, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	tiles := e.bag.Draw(n)
	e.table.UpdatedAt = s.clock.Now()
	s.logger.Debug("tiles drawn",
		slog.String("table_id", string(id)),
		slog.Int("requested", n),
		slog.Int("drawn", len(tiles)),
		slog.Int("remaining", e.bag.Len()),
	)
	return tiles, nil
}

// Exchange returns tiles to the table's bag in return for fresh ones
func (s *Service) Exchange(ctx context.Context, id model.TableID, tiles []*model.Tile) ([]*model.Tile, error) {
	for _, t := range tiles {
		if err := CheckTile(t); err != nil {
			return nil, err
		}
	}
	e, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	fresh, err := e.bag.Exchange(tiles)
	if err != nil {
		return nil, err
	}
	e.table.UpdatedAt = s.clock.Now()
	return fresh, nil
}

func (s *Service) lookup(ctx context.Context, id model.TableID) (*entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	e, ok := s.tables.Get(id)
	s.mu.Unlock()
	if !ok {
		return nil, model.ErrTableNotFound
	}
	return e, nil
}

// snapshot copies the table state. Caller must hold e.mu or own e exclusively.
func (e *entry) snapshot() *model.Table {
	t := *e.table
	t.Board = e.table.Board.Clone()
	t.TilesInBag = e.bag.Len()
	t.Plays = make([]model.PlayRecord, len(e.table.Plays))
	copy(t.Plays, e.table.Plays)
	return &t
}

// CheckPlacements rejects input the rules engine must never see:
// off-board coordinates and missing or malformed tiles
func CheckPlacements(placements []model.Placement) error {
	for _, p := range placements {
		if !p.Position().InBounds() {
			return fmt.Errorf("%w: %s", model.ErrInvalidPosition, p.Position())
		}
		if err := CheckTile(p.Tile); err != nil {
			return err
		}
	}
	return nil
}

// CheckTile rejects nil tiles and negative scores
func CheckTile(t *model.Tile) error {
	if t == nil {
		return fmt.Errorf("%w: missing tile", model.ErrInvalidTile)
	}
	if t.Score < 0 {
		return fmt.Errorf("%w: negative score %d", model.ErrInvalidTile, t.Score)
	}
	return nil
}

// ServiceInterface is the table API used by handlers
type ServiceInterface interface {
	Create(ctx context.Context, opts CreateOptions) (*model.Table, error)
	Get(ctx context.Context, id model.TableID) (*model.Table, error)
	Delete(ctx context.Context, id model.TableID) error
	Len() int
	Play(ctx context.Context, id model.TableID, placements []model.Placement) (*model.PlayResult, error)
	Draw(ctx context.Context, id model.TableID, n int) ([]*model.Tile, error)
	Exchange(ctx context.Context, id model.TableID, tiles []*model.Tile) ([]*model.Tile, error)
}

var _ ServiceInterface = (*Service)(nil)
