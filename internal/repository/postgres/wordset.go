package postgres

import (
	"database/sql"

	"spellingspark/internal/domain"

	"github.com/lib/pq"
)

// WordSetRepo implements repository.WordSetRepository
type WordSetRepo struct {
	db *sql.DB
}

// NewWordSetRepo creates a new word set repository
func NewWordSetRepo(db *sql.DB) *WordSetRepo {
	return &WordSetRepo{db: db}
}

// SaveSet stores a word set under name.
// An existing set with the same name is left untouched and false is returned.
func (r *WordSetRepo) SaveSet(userID int64, name string, words []string) (bool, error) {
	query := `
		INSERT INTO word_sets (user_id, name, words)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, name) DO NOTHING
	`
	res, err := r.db.Exec(query, userID, name, pq.Array(words))
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetSet returns a single set owned by the user, or nil if there is none
func (r *WordSetRepo) GetSet(userID int64, id int) (*domain.WordSet, error) {
	var s domain.WordSet
	query := `
		SELECT id, user_id, name, words, created_at
		FROM word_sets
		WHERE user_id = $1 AND id = $2
	`
	err := r.db.QueryRow(query, userID, id).Scan(
		&s.ID, &s.UserID, &s.Name, pq.Array(&s.Words), &s.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// ListSets returns the user's sets, newest first
func (r *WordSetRepo) ListSets(userID int64, limit, offset int) ([]domain.WordSet, error) {
	query := `
		SELECT id, user_id, name, words, created_at
		FROM word_sets
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []domain.WordSet
	for rows.Next() {
		var s domain.WordSet
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, pq.Array(&s.Words), &s.CreatedAt); err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}

	return sets, rows.Err()
}

// CountSets returns the number of sets the user has saved
func (r *WordSetRepo) CountSets(userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM word_sets WHERE user_id = $1`

	var count int
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// DeleteSet removes a set; false means nothing matched
func (r *WordSetRepo) DeleteSet(userID int64, id int) (bool, error) {
	query := `DELETE FROM word_sets WHERE user_id = $1 AND id = $2`
	res, err := r.db.Exec(query, userID, id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
