package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"delivery_backend/internal/models"
)

// NoticeRepository defines the interface for notice database operations.
type NoticeRepository interface {
	CreateNotice(executor SQLExecutor, notice *models.Notice) (int64, error)
	GetNotices(page, pageSize int) ([]models.Notice, int, error)
	GetNoticeByID(noticeID int64) (*models.Notice, error)
	UpdateNotice(executor SQLExecutor, notice *models.Notice) error
	DeleteNotice(executor SQLExecutor, noticeID int64) error
}

type noticeRepository struct {
	db *sql.DB
}

// NewNoticeRepository creates a new instance of NoticeRepository.
func NewNoticeRepository(db *sql.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) CreateNotice(executor SQLExecutor, notice *models.Notice) (int64, error) {
	query := `INSERT INTO notices (author_id, title, content, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`
	now := time.Now()
	var noticeID int64
	err := executor.QueryRow(query, notice.AuthorID, notice.Title, notice.Content, now, now).Scan(&noticeID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating notice: %v", ErrDatabaseError, err)
	}
	return noticeID, nil
}

func (r *noticeRepository) GetNotices(page, pageSize int) ([]models.Notice, int, error) {
	var totalCount int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM notices`).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("%w: counting notices: %v", ErrDatabaseError, err)
	}

	query := `SELECT id, author_id, title, content, created_at, updated_at
	          FROM notices ORDER BY created_at DESC`
	args := []interface{}{}
	if pageSize > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, pageSize, (page-1)*pageSize)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying notices: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	notices := []models.Notice{}
	for rows.Next() {
		var notice models.Notice
		if err := rows.Scan(&notice.ID, &notice.AuthorID, &notice.Title, &notice.Content, &notice.CreatedAt, &notice.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning notice: %v", ErrDatabaseError, err)
		}
		notices = append(notices, notice)
	}
	return notices, totalCount, rows.Err()
}

func (r *noticeRepository) GetNoticeByID(noticeID int64) (*models.Notice, error) {
	notice := &models.Notice{}
	query := `SELECT id, author_id, title, content, created_at, updated_at FROM notices WHERE id = $1`
	err := r.db.QueryRow(query, noticeID).Scan(&notice.ID, &notice.AuthorID, &notice.Title, &notice.Content, &notice.CreatedAt, &notice.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding notice %d: %v", ErrDatabaseError, noticeID, err)
	}
	return notice, nil
}

func (r *noticeRepository) UpdateNotice(executor SQLExecutor, notice *models.Notice) error {
	result, err := executor.Exec(
		`UPDATE notices SET title = $1, content = $2, updated_at = $3 WHERE id = $4`,
		notice.Title, notice.Content, time.Now(), notice.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating notice %d: %v", ErrDatabaseError, notice.ID, err)
	}
	return requireRowsAffected(result)
}

func (r *noticeRepository) DeleteNotice(executor SQLExecutor, noticeID int64) error {
	result, err := executor.Exec(`DELETE FROM notices WHERE id = $1`, noticeID)
	if err != nil {
		return fmt.Errorf("%w: deleting notice %d: %v", ErrDatabaseError, noticeID, err)
	}
	return requireRowsAffected(result)
}
