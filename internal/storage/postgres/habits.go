package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/lmoren/ritual/internal/errors"
	"github.com/lmoren/ritual/internal/models"
)

func (s *Store) AddHabit(habit *models.Habit) error {
	err := s.db.QueryRow(`
		INSERT INTO habits (name, cadence, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`,
		habit.Name, string(habit.Cadence), habit.CreatedAt.Format(time.RFC3339)).Scan(&habit.ID)
	if err != nil {
		return fmt.Errorf("failed to add habit %q: %w", habit.Name, err)
	}
	return nil
}

func (s *Store) GetHabit(id int64) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, cadence, created_at
		FROM habits WHERE id = $1`, id)
	return s.scanHabit(row)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, cadence, created_at
		FROM habits WHERE name = $1`, name)
	return s.scanHabit(row)
}

func (s *Store) scanHabit(row *sql.Row) (models.Habit, error) {
	var h models.Habit
	var cadence, createdAt string

	err := row.Scan(&h.ID, &h.Name, &cadence, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Habit{}, apperrors.NotFoundf("habit")
		}
		return models.Habit{}, err
	}

	if err := s.hydrateHabit(&h, cadence, createdAt); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (s *Store) hydrateHabit(h *models.Habit, cadence, createdAt string) error {
	c, err := models.ParseCadence(cadence)
	if err != nil {
		return fmt.Errorf("corrupt cadence for habit %d: %w", h.ID, err)
	}
	h.Cadence = c

	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return fmt.Errorf("failed to parse created_at for habit %d: %w", h.ID, err)
	}

	h.Completions, err = s.getCompletions(h.ID)
	return err
}

func (s *Store) GetAllHabits() ([]models.Habit, error) {
	return s.queryHabits(`
		SELECT id, name, cadence, created_at
		FROM habits ORDER BY created_at, id`)
}

func (s *Store) GetHabitsByCadence(c models.Cadence) ([]models.Habit, error) {
	return s.queryHabits(`
		SELECT id, name, cadence, created_at
		FROM habits WHERE cadence = $1 ORDER BY created_at, id`, string(c))
}

func (s *Store) queryHabits(query string, args ...interface{}) ([]models.Habit, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var cadence, createdAt string
		if err := rows.Scan(&h.ID, &h.Name, &cadence, &createdAt); err != nil {
			return nil, err
		}
		if err := s.hydrateHabit(&h, cadence, createdAt); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	result, err := s.db.Exec(`
		UPDATE habits SET name = $1, cadence = $2 WHERE id = $3`,
		habit.Name, string(habit.Cadence), habit.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFoundf("habit %d", habit.ID)
	}
	return nil
}

func (s *Store) DeleteHabit(id int64) error {
	result, err := s.db.Exec(`DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFoundf("habit %d", id)
	}
	return nil
}

func (s *Store) AddCompletion(habitID int64, completedAt time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO completions (id, habit_id, completed_at)
		VALUES ($1, $2, $3)`,
		uuid.New().String(), habitID, completedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to add completion for habit %d: %w", habitID, err)
	}
	return nil
}

func (s *Store) getCompletions(habitID int64) ([]time.Time, error) {
	rows, err := s.db.Query(`
		SELECT completed_at FROM completions
		WHERE habit_id = $1
		ORDER BY completed_at`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []time.Time
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse completion for habit %d: %w", habitID, err)
		}
		completions = append(completions, t)
	}
	return completions, rows.Err()
}
