package service

import (
	"errors"

	"go-portfolio-api/internal/model"
	"go-portfolio-api/internal/repository"
	"go-portfolio-api/internal/ws"

	"gorm.io/gorm"
)

var (
	ErrCVNotFound = errors.New("no CV uploaded")
	ErrCVEmpty    = errors.New("CV file is empty")
)

// CVService manages the single stored CV document. The store holds at
// most one row at any time; replacement is atomic.
type CVService interface {
	Get() (*model.CVResponse, error)
	// GetBinary returns the PDF bytes and the display filename. This is
	// the only path that exposes the payload.
	GetBinary() ([]byte, string, error)
	CreateOrReplace(filename string, data []byte) (*model.CVResponse, error)
	Delete() (bool, error)
	Exists() (bool, error)
}

type cvService struct {
	cvRepo repository.CVRepository
	db     *gorm.DB
	wsHub  *ws.Hub
}

func NewCVService(cvRepo repository.CVRepository, db *gorm.DB, hub *ws.Hub) CVService {
	return &cvService{
		cvRepo: cvRepo,
		db:     db,
		wsHub:  hub,
	}
}

func (s *cvService) Get() (*model.CVResponse, error) {
	cv, err := s.cvRepo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCVNotFound
		}
		return nil, err
	}
	resp := cv.ToResponse()
	return &resp, nil
}

func (s *cvService) GetBinary() ([]byte, string, error) {
	cv, err := s.cvRepo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrCVNotFound
		}
		return nil, "", err
	}
	return cv.FileData, cv.Filename, nil
}

// CreateOrReplace deletes the existing row (if any) and inserts the new
// one inside a single transaction, so readers observe either the old or
// the new CV, never a transient absence. The unique singleton_key index
// keeps concurrent replacers from leaving two rows.
func (s *cvService) CreateOrReplace(filename string, data []byte) (*model.CVResponse, error) {
	if len(data) == 0 {
		return nil, ErrCVEmpty
	}
	if filename == "" {
		filename = "cv.pdf"
	}

	cv := &model.CV{
		Filename: filename,
		FileData: data,
		FileSize: len(data),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.cvRepo.DeleteAll(tx); err != nil {
			return err
		}
		return s.cvRepo.Insert(tx, cv)
	})
	if err != nil {
		return nil, err
	}

	resp := cv.ToResponse()
	s.wsHub.Publish("cv_replaced", resp, "")
	return &resp, nil
}

func (s *cvService) Delete() (bool, error) {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		n, err := s.cvRepo.DeleteAll(tx)
		deleted = n
		return err
	})
	if err != nil {
		return false, err
	}
	if deleted > 0 {
		s.wsHub.Publish("cv_deleted", nil, "")
	}
	return deleted > 0, nil
}

func (s *cvService) Exists() (bool, error) {
	return s.cvRepo.Exists()
}
