package services

import (
	"database/sql"
	"errors"
	"fmt"

	"delivery_backend/internal/models"
	"delivery_backend/internal/repositories"
)

// --- Custom Service Errors for Notices ---
var (
	ErrNoticeNotFound = errors.New("notice not found")
)

// --- Notice DTOs ---
type CreateNoticeRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type UpdateNoticeRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// --- NoticeService Interface ---
type NoticeService interface {
	CreateNotice(authorID int64, req CreateNoticeRequest) (*models.Notice, error)
	GetNotices(page, pageSize int) ([]models.Notice, int, error)
	GetNoticeByID(noticeID int64) (*models.Notice, error)
	UpdateNotice(noticeID int64, req UpdateNoticeRequest) (*models.Notice, error)
	DeleteNotice(noticeID int64) error
}

type noticeService struct {
	noticeRepo repositories.NoticeRepository
	db         *sql.DB
}

// NewNoticeService creates a new instance of NoticeService.
func NewNoticeService(noticeRepo repositories.NoticeRepository, db *sql.DB) NoticeService {
	return &noticeService{noticeRepo: noticeRepo, db: db}
}

func (s *noticeService) CreateNotice(authorID int64, req CreateNoticeRequest) (*models.Notice, error) {
	notice := models.Notice{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
	}
	noticeID, err := s.noticeRepo.CreateNotice(s.db, &notice)
	if err != nil {
		return nil, fmt.Errorf("failed to create notice: %w", err)
	}
	return s.GetNoticeByID(noticeID)
}

func (s *noticeService) GetNotices(page, pageSize int) ([]models.Notice, int, error) {
	notices, totalCount, err := s.noticeRepo.GetNotices(page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notices: %w", err)
	}
	return notices, totalCount, nil
}

func (s *noticeService) GetNoticeByID(noticeID int64) (*models.Notice, error) {
	notice, err := s.noticeRepo.GetNoticeByID(noticeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNoticeNotFound
		}
		return nil, fmt.Errorf("failed to get notice: %w", err)
	}
	return notice, nil
}

func (s *noticeService) UpdateNotice(noticeID int64, req UpdateNoticeRequest) (*models.Notice, error) {
	notice, err := s.GetNoticeByID(noticeID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		notice.Title = *req.Title
	}
	if req.Content != nil {
		notice.Content = *req.Content
	}
	if err := s.noticeRepo.UpdateNotice(s.db, notice); err != nil {
		return nil, fmt.Errorf("failed to update notice: %w", err)
	}
	return s.GetNoticeByID(noticeID)
}

func (s *noticeService) DeleteNotice(noticeID int64) error {
	if err := s.noticeRepo.DeleteNotice(s.db, noticeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNoticeNotFound
		}
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	return nil
}
