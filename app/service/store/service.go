package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"talentscout/app/config"
	"talentscout/app/model"

	"github.com/samber/do"
	"github.com/samber/oops"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Service struct {
	db     *gorm.DB
	cipher *Cipher
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	cipher, err := NewCipher(cfg.Security.EncryptionKey)
	if err != nil {
		return nil, oops.Errorf("failed to init cipher: %w", err)
	}

	hostPort := strings.SplitN(cfg.DB.Host, ":", 2)
	port := "5432"
	if len(hostPort) == 2 {
		port = hostPort[1]
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		hostPort[0], cfg.DB.User, cfg.DB.Pass, cfg.DB.Database, port)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, oops.Errorf("failed to connect to postgres: %w", err)
	}

	if err = db.AutoMigrate(&CandidateRecord{}); err != nil {
		return nil, oops.Errorf("failed to migrate candidates table: %w", err)
	}

	return &Service{
		db:     db,
		cipher: cipher,
	}, nil
}

// SaveCandidate encrypts contact fields and inserts one screening result.
func (s *Service) SaveCandidate(ctx context.Context, profile model.CandidateProfile, responses map[string]any) error {
	encryptedPhone, err := s.cipher.Encrypt(profile.PhoneNumber)
	if err != nil {
		return fmt.Errorf("failed to encrypt phone number: %w", err)
	}

	encryptedEmail, err := s.cipher.Encrypt(profile.Email)
	if err != nil {
		return fmt.Errorf("failed to encrypt email: %w", err)
	}

	encryptedLocation, err := s.cipher.Encrypt(profile.CurrentLocation)
	if err != nil {
		return fmt.Errorf("failed to encrypt location: %w", err)
	}

	responsesJSON, err := json.Marshal(responses)
	if err != nil {
		return fmt.Errorf("failed to marshal technical responses: %w", err)
	}

	record := CandidateRecord{
		Name:               profile.Name,
		PhoneNumber:        encryptedPhone,
		Email:              encryptedEmail,
		CurrentLocation:    encryptedLocation,
		ExperienceYears:    profile.ExperienceYears,
		DesiredPositions:   profile.DesiredPositions,
		TechStack:          profile.TechStack,
		TechnicalResponses: datatypes.JSON(responsesJSON),
	}

	if err = s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert candidate record: %w", err)
	}

	slog.Info("Saved candidate record",
		"name", profile.Name,
		"id", record.ID)

	return nil
}

// DecryptRecord restores the plaintext contact fields of a stored record,
// for operator tooling only.
func (s *Service) DecryptRecord(record *CandidateRecord) (model.CandidateProfile, error) {
	phone, err := s.cipher.Decrypt(record.PhoneNumber)
	if err != nil {
		return model.CandidateProfile{}, fmt.Errorf("failed to decrypt phone number: %w", err)
	}

	email, err := s.cipher.Decrypt(record.Email)
	if err != nil {
		return model.CandidateProfile{}, fmt.Errorf("failed to decrypt email: %w", err)
	}

	location, err := s.cipher.Decrypt(record.CurrentLocation)
	if err != nil {
		return model.CandidateProfile{}, fmt.Errorf("failed to decrypt location: %w", err)
	}

	return model.CandidateProfile{
		Name:             record.Name,
		PhoneNumber:      phone,
		Email:            email,
		CurrentLocation:  location,
		ExperienceYears:  record.ExperienceYears,
		DesiredPositions: record.DesiredPositions,
		TechStack:        record.TechStack,
	}, nil
}
