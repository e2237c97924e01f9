package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-deck-bot/internal/infra/postgres"
)

var (
	ErrSessionNotFound = errors.New("quiz session not found")
	ErrOptimisticLock  = errors.New("quiz session was modified by another process")
)

const sessionColumns = `id, user_id, deck_id, questions, current_question, correct_answers,
		       status, started_at, completed_at, version`

// QuizRepository provides access to quiz session and answer data in the database.
type QuizRepository struct {
	db postgres.DBTX
}

// NewQuizRepository creates a new QuizRepository with the provided database pool.
func NewQuizRepository(db postgres.DBTX) *QuizRepository {
	return &QuizRepository{db: db}
}

// Create stores a new quiz session together with its questions.
func (r *QuizRepository) Create(ctx context.Context, session *entities.QuizSession) (int64, error) {
	questions, err := json.Marshal(session.Questions)
	if err != nil {
		return 0, fmt.Errorf("marshal questions: %w", err)
	}

	query := `
		INSERT INTO quiz_sessions (
			user_id, deck_id, questions, current_question, correct_answers,
			status, started_at, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err = postgres.Executor(ctx, r.db).QueryRow(
		ctx,
		query,
		session.UserID,
		session.DeckID,
		questions,
		session.CurrentQuestion,
		session.CorrectAnswers,
		session.Status,
		session.StartedAt,
		session.Version,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create quiz session: %w", err)
	}

	return id, nil
}

// GetByID retrieves a session owned by userID.
func (r *QuizRepository) GetByID(ctx context.Context, userID, sessionID int64) (*entities.QuizSession, error) {
	query := `SELECT ` + sessionColumns + `
		FROM quiz_sessions
		WHERE id = $1 AND user_id = $2
	`

	session, err := scanSession(postgres.Executor(ctx, r.db).QueryRow(ctx, query, sessionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get quiz session: %w", err)
	}

	return session, nil
}

// GetActiveByUserID retrieves the latest active session for a user.
func (r *QuizRepository) GetActiveByUserID(ctx context.Context, userID int64) (*entities.QuizSession, error) {
	query := `SELECT ` + sessionColumns + `
		FROM quiz_sessions
		WHERE user_id = $1 AND status = 'active'
		ORDER BY started_at DESC
		LIMIT 1
	`

	session, err := scanSession(postgres.Executor(ctx, r.db).QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get active quiz session: %w", err)
	}

	return session, nil
}

// Update stores session progress using optimistic locking.
func (r *QuizRepository) Update(ctx context.Context, session *entities.QuizSession) error {
	query := `
		UPDATE quiz_sessions
		SET current_question = $1,
		    correct_answers = $2,
		    status = $3,
		    completed_at = $4,
		    version = version + 1
		WHERE id = $5 AND version = $6
	`

	result, err := postgres.Executor(ctx, r.db).Exec(
		ctx,
		query,
		session.CurrentQuestion,
		session.CorrectAnswers,
		session.Status,
		session.CompletedAt,
		session.ID,
		session.Version,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrOptimisticLock
	}

	session.Version++

	return nil
}

// AbandonActive marks the user's active sessions as abandoned.
func (r *QuizRepository) AbandonActive(ctx context.Context, userID int64) error {
	query := `
		UPDATE quiz_sessions
		SET status = 'abandoned', version = version + 1
		WHERE user_id = $1 AND status = 'active'
	`

	if _, err := postgres.Executor(ctx, r.db).Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("abandon sessions: %w", err)
	}

	return nil
}

// AbandonStale abandons active sessions started before the cutoff and
// returns how many were closed.
func (r *QuizRepository) AbandonStale(ctx context.Context, startedBefore time.Time) (int64, error) {
	query := `
		UPDATE quiz_sessions
		SET status = 'abandoned', version = version + 1
		WHERE status = 'active' AND started_at < $1
	`

	tag, err := postgres.Executor(ctx, r.db).Exec(ctx, query, startedBefore)
	if err != nil {
		return 0, fmt.Errorf("abandon stale sessions: %w", err)
	}

	return tag.RowsAffected(), nil
}

// SaveAnswer stores the answer given to one question of a session.
func (r *QuizRepository) SaveAnswer(ctx context.Context, answer *entities.QuizAnswer) error {
	query := `
		INSERT INTO quiz_answers (
			session_id, user_id, question_order, kind,
			user_answer, correct_answer, status, answered_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := postgres.Executor(ctx, r.db).Exec(
		ctx,
		query,
		answer.SessionID,
		answer.UserID,
		answer.QuestionOrder,
		string(answer.Kind),
		answer.UserAnswer,
		answer.CorrectAnswer,
		string(answer.Status),
		answer.AnsweredAt,
	)
	if err != nil {
		return fmt.Errorf("save answer: %w", err)
	}

	return nil
}

// ListAnswers returns the answers of a session in question order.
func (r *QuizRepository) ListAnswers(ctx context.Context, sessionID int64) ([]*entities.QuizAnswer, error) {
	query := `
		SELECT id, session_id, user_id, question_order, kind,
		       user_answer, correct_answer, status, answered_at
		FROM quiz_answers
		WHERE session_id = $1
		ORDER BY question_order
	`

	rows, err := postgres.Executor(ctx, r.db).Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	var answers []*entities.QuizAnswer
	for rows.Next() {
		var (
			a      entities.QuizAnswer
			kind   string
			status string
		)
		if err := rows.Scan(
			&a.ID,
			&a.SessionID,
			&a.UserID,
			&a.QuestionOrder,
			&kind,
			&a.UserAnswer,
			&a.CorrectAnswer,
			&status,
			&a.AnsweredAt,
		); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		a.Kind = entities.QuestionKind(kind)
		a.Status = entities.AnswerStatus(status)
		answers = append(answers, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}

	return answers, nil
}

func scanSession(row pgx.Row) (*entities.QuizSession, error) {
	var (
		session   entities.QuizSession
		questions []byte
	)
	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.DeckID,
		&questions,
		&session.CurrentQuestion,
		&session.CorrectAnswers,
		&session.Status,
		&session.StartedAt,
		&session.CompletedAt,
		&session.Version,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(questions, &session.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}

	return &session, nil
}
