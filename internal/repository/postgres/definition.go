package postgres

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"spellingspark/internal/domain"

	"github.com/lib/pq"
)

// DefinitionRepo implements repository.DefinitionRepository.
// Words are stored lower-cased so the cache is shared across spellings.
type DefinitionRepo struct {
	db *sql.DB
}

// NewDefinitionRepo creates a new definition repository
func NewDefinitionRepo(db *sql.DB) *DefinitionRepo {
	return &DefinitionRepo{db: db}
}

// GetDefinitions returns cached definitions keyed by lower-cased word
func (r *DefinitionRepo) GetDefinitions(words []string) (domain.Definitions, error) {
	defs := make(domain.Definitions)
	if len(words) == 0 {
		return defs, nil
	}

	keys := make([]string, len(words))
	for i, w := range words {
		keys[i] = strings.ToLower(w)
	}

	query := `
		SELECT word, definition
		FROM definitions
		WHERE word = ANY($1)
	`
	rows, err := r.db.Query(query, pq.Array(keys))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var word, def string
		if err := rows.Scan(&word, &def); err != nil {
			return nil, err
		}
		defs[word] = def
	}

	return defs, rows.Err()
}

// SaveDefinitions upserts definitions in a single transaction
func (r *DefinitionRepo) SaveDefinitions(defs domain.Definitions) error {
	if len(defs) == 0 {
		return nil
	}

	words := make([]string, 0, len(defs))
	for w := range defs {
		words = append(words, w)
	}
	sort.Strings(words)

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `
		INSERT INTO definitions (word, definition)
		VALUES ($1, $2)
		ON CONFLICT (word)
		DO UPDATE SET definition = EXCLUDED.definition, created_at = NOW()
	`
	for _, w := range words {
		if _, err := tx.Exec(query, strings.ToLower(w), defs[w]); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to save definition of %q: %w", w, err)
		}
	}

	return tx.Commit()
}

// CleanOldDefinitions deletes definitions cached more than days ago
func (r *DefinitionRepo) CleanOldDefinitions(days int) (int64, error) {
	query := `
		DELETE FROM definitions
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	res, err := r.db.Exec(query, days)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
