// Package store is the query surface the census and annotation code read and
// write through. GormStore backs it with any gorm dialect.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ariebrainware/ward-census/model"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a keyed lookup matches no row.
var ErrNotFound = errors.New("record not found")

// VisitFilter narrows CountVisits. Zero-valued fields are not applied.
type VisitFilter struct {
	Specialty model.Specialty
	Status    model.PatientStatus
}

// Store is the full adapter surface. Consumers should depend on the narrower
// interfaces they declare themselves.
type Store interface {
	CountVisits(ctx context.Context, filter VisitFilter) (int64, error)
	FetchVisitsWithPatients(ctx context.Context) ([]model.Visit, error)
	FetchPatient(ctx context.Context, mrn string) (model.Patient, error)
	FetchNotes(ctx context.Context, mrn string) ([]model.Note, error)
	InsertNote(ctx context.Context, mrn, content, author string) (model.Note, error)
	UpdateNoteContent(ctx context.Context, id, content string) (model.Note, error)
	AdmitPatient(ctx context.Context, patient model.Patient, visit model.Visit) (model.Visit, error)
	DischargeVisit(ctx context.Context, visitID uint, at time.Time) (model.Visit, error)
}

var _ Store = (*GormStore)(nil)

// GormStore implements Store on a gorm connection.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

// AutoMigrate creates the tables GormStore reads and writes.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(&model.Patient{}, &model.Visit{}, &model.Note{}, &model.AccessLog{})
}

func (s *GormStore) CountVisits(ctx context.Context, filter VisitFilter) (int64, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&model.Visit{})
	if filter.Specialty != "" {
		query = query.Where("specialty = ?", filter.Specialty)
	}
	if filter.Status != "" {
		query = query.Where("patient_status = ?", filter.Status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FetchVisitsWithPatients returns every visit newest admission first, with
// its patient preloaded. Patient is nil when the MRN has no patient row.
func (s *GormStore) FetchVisitsWithPatients(ctx context.Context) ([]model.Visit, error) {
	var visits []model.Visit
	err := s.db.WithContext(ctx).
		Preload("Patient").
		Order("admission_date DESC").
		Order("id DESC").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (s *GormStore) FetchPatient(ctx context.Context, mrn string) (model.Patient, error) {
	var patient model.Patient
	if err := s.db.WithContext(ctx).Where("mrn = ?", mrn).First(&patient).Error; err != nil {
		return model.Patient{}, translate(err)
	}
	return patient, nil
}

func (s *GormStore) FetchNotes(ctx context.Context, mrn string) ([]model.Note, error) {
	notes := []model.Note{}
	err := s.db.WithContext(ctx).
		Where("mrn = ?", mrn).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *GormStore) InsertNote(ctx context.Context, mrn, content, author string) (model.Note, error) {
	now := s.now()
	note := model.Note{
		MRN:       mrn,
		Content:   content,
		CreatedBy: author,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&note).Error; err != nil {
		return model.Note{}, err
	}
	return note, nil
}

// UpdateNoteContent rewrites only the content column; id, mrn and the
// creation fields are left as stored.
func (s *GormStore) UpdateNoteContent(ctx context.Context, id, content string) (model.Note, error) {
	var note model.Note
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&note).Error; err != nil {
			return err
		}
		now := s.now()
		if err := tx.Model(&note).Updates(map[string]interface{}{
			"content":    content,
			"updated_at": now,
		}).Error; err != nil {
			return err
		}
		note.Content = content
		note.UpdatedAt = now
		return nil
	})
	if err != nil {
		return model.Note{}, translate(err)
	}
	return note, nil
}

// AdmitPatient registers the patient if the MRN is new and opens an Active
// visit for it in the same transaction. Existing demographics are kept.
func (s *GormStore) AdmitPatient(ctx context.Context, patient model.Patient, visit model.Visit) (model.Visit, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Patient
		err := tx.Where("mrn = ?", patient.MRN).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&patient).Error; err != nil {
				return fmt.Errorf("create patient: %w", err)
			}
			existing = patient
		case err != nil:
			return err
		}

		visit.MRN = existing.MRN
		visit.PatientStatus = model.StatusActive
		visit.DischargeDate = nil
		if visit.AdmissionDate.IsZero() {
			visit.AdmissionDate = s.now()
		}
		if err := tx.Omit("Patient").Create(&visit).Error; err != nil {
			return fmt.Errorf("create visit: %w", err)
		}
		visit.Patient = &existing
		return nil
	})
	if err != nil {
		return model.Visit{}, err
	}
	return visit, nil
}

// DischargeVisit sets status and discharge date together so the two never
// disagree for visits closed through this path.
func (s *GormStore) DischargeVisit(ctx context.Context, visitID uint, at time.Time) (model.Visit, error) {
	var visit model.Visit
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&visit, visitID).Error; err != nil {
			return err
		}
		if visit.PatientStatus == model.StatusDischarged {
			return ErrAlreadyDischarged
		}
		visit.PatientStatus = model.StatusDischarged
		visit.DischargeDate = &at
		return tx.Model(&visit).Updates(map[string]interface{}{
			"patient_status": visit.PatientStatus,
			"discharge_date": at,
		}).Error
	})
	if err != nil {
		return model.Visit{}, translate(err)
	}
	return visit, nil
}

// ErrAlreadyDischarged is returned when discharging a visit twice.
var ErrAlreadyDischarged = errors.New("visit already discharged")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
