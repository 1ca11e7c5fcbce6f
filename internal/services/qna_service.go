package services

import (
	"database/sql"
	"errors"
	"fmt"

	"delivery_backend/internal/models"
	"delivery_backend/internal/repositories"
)

// --- Custom Service Errors for Q&A ---
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrAlreadyAnswered  = errors.New("question has already been answered")
	ErrNotAnswerParty   = errors.New("only the store owner or an administrator may answer this question")
)

// --- Q&A DTOs ---
type CreateQuestionRequest struct {
	StoreID *int64 `json:"store_id"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type AnswerQuestionRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// --- QnaService Interface ---
type QnaService interface {
	CreateQuestion(userID int64, req CreateQuestionRequest) (*models.Question, error)
	GetQuestions(filters models.QuestionFilters) ([]models.Question, int, error)
	GetQuestionByID(questionID int64) (*models.Question, error)
	AnswerQuestion(questionID, answererID int64, answererRole string, req AnswerQuestionRequest) (*models.Question, error)
	DeleteQuestion(questionID, requesterID int64, requesterRole string) error
}

type qnaService struct {
	qnaRepo   repositories.QnaRepository
	storeRepo repositories.StoreRepository
	db        *sql.DB
}

// NewQnaService creates a new instance of QnaService.
func NewQnaService(qnaRepo repositories.QnaRepository, storeRepo repositories.StoreRepository, db *sql.DB) QnaService {
	return &qnaService{qnaRepo: qnaRepo, storeRepo: storeRepo, db: db}
}

func (s *qnaService) CreateQuestion(userID int64, req CreateQuestionRequest) (*models.Question, error) {
	if req.StoreID != nil {
		if _, err := s.storeRepo.GetStoreByID(*req.StoreID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrStoreNotFound
			}
			return nil, fmt.Errorf("failed to check store: %w", err)
		}
	}

	question := models.Question{
		UserID:  userID,
		StoreID: req.StoreID,
		Title:   req.Title,
		Content: req.Content,
	}
	questionID, err := s.qnaRepo.CreateQuestion(s.db, &question)
	if err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return s.GetQuestionByID(questionID)
}

func (s *qnaService) GetQuestions(filters models.QuestionFilters) ([]models.Question, int, error) {
	questions, totalCount, err := s.qnaRepo.GetQuestions(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get questions: %w", err)
	}
	return questions, totalCount, nil
}

func (s *qnaService) GetQuestionByID(questionID int64) (*models.Question, error) {
	question, err := s.qnaRepo.GetQuestionByID(questionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return question, nil
}

// AnswerQuestion attaches an answer. Store-scoped questions may be answered
// by that store's owner or an admin; general questions are admin-only.
func (s *qnaService) AnswerQuestion(questionID, answererID int64, answererRole string, req AnswerQuestionRequest) (*models.Question, error) {
	question, err := s.GetQuestionByID(questionID)
	if err != nil {
		return nil, err
	}
	if question.Answer != nil {
		return nil, ErrAlreadyAnswered
	}

	if answererRole != models.RoleAdmin {
		if question.StoreID == nil || answererRole != models.RoleOwner {
			return nil, ErrNotAnswerParty
		}
		store, err := s.storeRepo.GetStoreByID(*question.StoreID)
		if err != nil {
			return nil, fmt.Errorf("failed to check store for question %d: %w", questionID, err)
		}
		if store.OwnerID != answererID {
			return nil, ErrNotAnswerParty
		}
	}

	if err := s.qnaRepo.AnswerQuestion(s.db, questionID, req.Answer, answererID); err != nil {
		return nil, fmt.Errorf("failed to answer question: %w", err)
	}
	return s.GetQuestionByID(questionID)
}

// DeleteQuestion removes a question; allowed for its author or an admin.
func (s *qnaService) DeleteQuestion(questionID, requesterID int64, requesterRole string) error {
	question, err := s.GetQuestionByID(questionID)
	if err != nil {
		return err
	}
	if requesterRole != models.RoleAdmin && question.UserID != requesterID {
		return ErrNotAnswerParty
	}
	if err := s.qnaRepo.DeleteQuestion(s.db, questionID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}
