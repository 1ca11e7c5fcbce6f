package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"delivery_backend/internal/models"
)

// QnaRepository defines the interface for question/answer database operations.
type QnaRepository interface {
	CreateQuestion(executor SQLExecutor, question *models.Question) (int64, error)
	GetQuestions(filters models.QuestionFilters) ([]models.Question, int, error)
	GetQuestionByID(questionID int64) (*models.Question, error)
	AnswerQuestion(executor SQLExecutor, questionID int64, answer string, answeredBy int64) error
	DeleteQuestion(executor SQLExecutor, questionID int64) error
}

type qnaRepository struct {
	db *sql.DB
}

// NewQnaRepository creates a new instance of QnaRepository.
func NewQnaRepository(db *sql.DB) QnaRepository {
	return &qnaRepository{db: db}
}

func (r *qnaRepository) CreateQuestion(executor SQLExecutor, question *models.Question) (int64, error) {
	query := `INSERT INTO questions (user_id, store_id, title, content, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`
	now := time.Now()
	var questionID int64
	err := executor.QueryRow(query, question.UserID, question.StoreID, question.Title, question.Content, now, now).Scan(&questionID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating question: %v", ErrDatabaseError, err)
	}
	return questionID, nil
}

const questionSelect = `
	SELECT id, user_id, store_id, title, content, answer, answered_by, answered_at, created_at, updated_at
	FROM questions`

func scanQuestion(row scanner) (*models.Question, error) {
	question := &models.Question{}
	var storeID, answeredBy sql.NullInt64
	var answeredAt sql.NullTime
	err := row.Scan(
		&question.ID, &question.UserID, &storeID, &question.Title, &question.Content,
		&question.Answer, &answeredBy, &answeredAt, &question.CreatedAt, &question.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if storeID.Valid {
		question.StoreID = &storeID.Int64
	}
	if answeredBy.Valid {
		question.AnsweredBy = &answeredBy.Int64
	}
	if answeredAt.Valid {
		question.AnsweredAt = &answeredAt.Time
	}
	return question, nil
}

func (r *qnaRepository) GetQuestions(filters models.QuestionFilters) ([]models.Question, int, error) {
	var conditions []string
	var args []interface{}
	argIdx := 1

	if filters.UserID != nil {
		conditions = append(conditions, "user_id = $"+strconv.Itoa(argIdx))
		args = append(args, *filters.UserID)
		argIdx++
	}
	if filters.StoreID != nil {
		conditions = append(conditions, "store_id = $"+strconv.Itoa(argIdx))
		args = append(args, *filters.StoreID)
		argIdx++
	}
	if filters.Unanswered != nil && *filters.Unanswered {
		conditions = append(conditions, "answer IS NULL")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM questions"+whereClause, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("%w: counting questions: %v", ErrDatabaseError, err)
	}

	query := questionSelect + whereClause + " ORDER BY created_at DESC"
	if filters.PageSize > 0 {
		query += " LIMIT $" + strconv.Itoa(argIdx) + " OFFSET $" + strconv.Itoa(argIdx+1)
		args = append(args, filters.PageSize, (filters.Page-1)*filters.PageSize)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying questions: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning question: %v", ErrDatabaseError, err)
		}
		questions = append(questions, *question)
	}
	return questions, totalCount, rows.Err()
}

func (r *qnaRepository) GetQuestionByID(questionID int64) (*models.Question, error) {
	question, err := scanQuestion(r.db.QueryRow(questionSelect+` WHERE id = $1`, questionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding question %d: %v", ErrDatabaseError, questionID, err)
	}
	return question, nil
}

func (r *qnaRepository) AnswerQuestion(executor SQLExecutor, questionID int64, answer string, answeredBy int64) error {
	now := time.Now()
	result, err := executor.Exec(
		`UPDATE questions SET answer = $1, answered_by = $2, answered_at = $3, updated_at = $3 WHERE id = $4`,
		answer, answeredBy, now, questionID,
	)
	if err != nil {
		return fmt.Errorf("%w: answering question %d: %v", ErrDatabaseError, questionID, err)
	}
	return requireRowsAffected(result)
}

func (r *qnaRepository) DeleteQuestion(executor SQLExecutor, questionID int64) error {
	result, err := executor.Exec(`DELETE FROM questions WHERE id = $1`, questionID)
	if err != nil {
		return fmt.Errorf("%w: deleting question %d: %v", ErrDatabaseError, questionID, err)
	}
	return requireRowsAffected(result)
}
