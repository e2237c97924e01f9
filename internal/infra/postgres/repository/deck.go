package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-deck-bot/internal/infra/postgres"
)

var ErrDeckNotFound = errors.New("deck not found")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var deckColumns = []string{
	"id", "user_id", "title", "entries", "target_language", "ipa_style", "created_at", "updated_at",
}

// DeckRepository provides access to vocabulary decks in the database.
// Entries are stored as a JSONB array.
type DeckRepository struct {
	db postgres.DBTX
}

// NewDeckRepository creates a new DeckRepository with the provided database pool.
func NewDeckRepository(db postgres.DBTX) *DeckRepository {
	return &DeckRepository{db: db}
}

// Create inserts a new deck.
func (r *DeckRepository) Create(ctx context.Context, deck *entities.Deck) error {
	entries, err := json.Marshal(deck.Entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}

	query, args, err := psql.
		Insert("decks").
		Columns(deckColumns...).
		Values(
			deck.ID,
			deck.UserID,
			deck.Title,
			entries,
			string(deck.TargetLanguage),
			string(deck.IPAStyle),
			deck.CreatedAt,
			deck.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert deck: %w", err)
	}

	if _, err := postgres.Executor(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("create deck: %w", err)
	}

	return nil
}

// GetByID retrieves a deck owned by userID.
func (r *DeckRepository) GetByID(ctx context.Context, userID int64, id uuid.UUID) (*entities.Deck, error) {
	query, args, err := psql.
		Select(deckColumns...).
		From("decks").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select deck: %w", err)
	}

	deck, err := scanDeck(postgres.Executor(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDeckNotFound
		}
		return nil, fmt.Errorf("get deck: %w", err)
	}

	return deck, nil
}

// ListByUserID returns the user's decks, newest first.
func (r *DeckRepository) ListByUserID(ctx context.Context, userID int64) ([]*entities.Deck, error) {
	query, args, err := psql.
		Select(deckColumns...).
		From("decks").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list decks: %w", err)
	}

	rows, err := postgres.Executor(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	defer rows.Close()

	var decks []*entities.Deck
	for rows.Next() {
		deck, err := scanDeck(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deck: %w", err)
		}
		decks = append(decks, deck)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate decks: %w", err)
	}

	return decks, nil
}

// Delete removes a deck owned by userID.
func (r *DeckRepository) Delete(ctx context.Context, userID int64, id uuid.UUID) error {
	query, args, err := psql.
		Delete("decks").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete deck: %w", err)
	}

	result, err := postgres.Executor(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrDeckNotFound
	}

	return nil
}

func scanDeck(row pgx.Row) (*entities.Deck, error) {
	var (
		deck     entities.Deck
		entries  []byte
		language string
		style    string
	)
	err := row.Scan(
		&deck.ID,
		&deck.UserID,
		&deck.Title,
		&entries,
		&language,
		&style,
		&deck.CreatedAt,
		&deck.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(entries, &deck.Entries); err != nil {
		return nil, fmt.Errorf("unmarshal entries: %w", err)
	}
	deck.TargetLanguage = entities.TargetLanguage(language)
	deck.IPAStyle = entities.IPAStyle(style)

	return &deck, nil
}
