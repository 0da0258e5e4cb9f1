package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ariebrainware/ward-census/model"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedData is the on-disk shape of a development seed file.
type SeedData struct {
	Patients []SeedPatient `yaml:"patients"`
}

type SeedPatient struct {
	MRN            string      `yaml:"mrn"`
	Name           string      `yaml:"name"`
	Age            int         `yaml:"age"`
	Gender         string      `yaml:"gender"`
	AssignedDoctor string      `yaml:"assigned_doctor"`
	Visits         []SeedVisit `yaml:"visits"`
	Notes          []SeedNote  `yaml:"notes"`
}

type SeedVisit struct {
	Specialty  string     `yaml:"specialty"`
	Admitted   time.Time  `yaml:"admitted"`
	Discharged *time.Time `yaml:"discharged"`
}

type SeedNote struct {
	Content string    `yaml:"content"`
	Author  string    `yaml:"author"`
	At      time.Time `yaml:"at"`
}

// ParseSeed decodes YAML seed data.
func ParseSeed(raw []byte) (SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return SeedData{}, fmt.Errorf("parse seed: %w", err)
	}
	for i, p := range data.Patients {
		if p.MRN == "" {
			return SeedData{}, fmt.Errorf("parse seed: patient %d has no mrn", i)
		}
	}
	return data, nil
}

// LoadSeedFile reads and decodes a YAML seed file.
func LoadSeedFile(path string) (SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SeedData{}, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(raw)
}

// ApplySeed inserts seed rows. Patients already present are left untouched,
// and their visits and notes are skipped, so reapplying a file is harmless.
func ApplySeed(ctx context.Context, db *gorm.DB, data SeedData) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range data.Patients {
			patient := model.Patient{
				MRN:            p.MRN,
				PatientName:    p.Name,
				Age:            p.Age,
				Gender:         p.Gender,
				AssignedDoctor: p.AssignedDoctor,
			}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&patient)
			if res.Error != nil {
				return fmt.Errorf("seed patient %s: %w", p.MRN, res.Error)
			}
			if res.RowsAffected == 0 {
				continue
			}

			for _, v := range p.Visits {
				visit := model.Visit{
					MRN:           p.MRN,
					AdmissionDate: v.Admitted,
					DischargeDate: v.Discharged,
					Specialty:     model.Specialty(v.Specialty),
					PatientStatus: model.StatusActive,
				}
				if v.Discharged != nil {
					visit.PatientStatus = model.StatusDischarged
				}
				if err := tx.Create(&visit).Error; err != nil {
					return fmt.Errorf("seed visit for %s: %w", p.MRN, err)
				}
			}

			for _, n := range p.Notes {
				note := model.Note{MRN: p.MRN, Content: n.Content, CreatedBy: n.Author, CreatedAt: n.At}
				if err := tx.Create(&note).Error; err != nil {
					return fmt.Errorf("seed note for %s: %w", p.MRN, err)
				}
			}
		}
		return nil
	})
}
