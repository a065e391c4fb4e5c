// Package db implements the GORM-backed repository for organisation records
// and their child entities, the summary projection, and the search query.
package db

import (
	"context"
	"errors"
	"fmt"

	e "github.com/gartstein/organisations/internal/organisations/errors"
	"github.com/gartstein/organisations/internal/organisations/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func NewRepository(cfg *Config) (*Repository, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.Migrate(); err != nil {
		return nil, err
	}
	return repo, nil
}

// NewRepositoryFromDB wraps an already-open GORM connection and runs the
// migrations. Tests use this with in-memory SQLite.
func NewRepositoryFromDB(gdb *gorm.DB) (*Repository, error) {
	repo := &Repository{db: gdb}
	if err := repo.Migrate(); err != nil {
		return nil, err
	}
	return repo, nil
}

// Migrate creates the tables and the organisation_summary view.
func (r *Repository) Migrate() error {
	err := r.db.AutoMigrate(
		&models.Organisation{},
		&models.OrganisationAddress{},
		&models.OrganisationPhone{},
		&models.OrganisationEmail{},
		&models.OrganisationWebAddress{},
		&models.OrganisationType{},
		&models.OrganisationAddressPhone{},
		&models.ReferenceCode{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return r.createSummaryView()
}

func (r *Repository) CreateOrganisation(ctx context.Context, org *models.Organisation) error {
	result := r.db.WithContext(ctx).Create(org)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrDuplicateOrganisation
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetOrganisation(ctx context.Context, id int64) (*models.Organisation, error) {
	var org models.Organisation
	result := r.db.WithContext(ctx).First(&org, "organisation_id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &org, nil
}

func (r *Repository) OrganisationExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Organisation{}).
		Where("organisation_id = ?", id).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

// SaveOrganisation writes the full row back, replacing every column.
func (r *Repository) SaveOrganisation(ctx context.Context, org *models.Organisation) error {
	return r.db.WithContext(ctx).Save(org).Error
}

func (r *Repository) DeleteOrganisation(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Organisation{}, "organisation_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// CountOrganisationChildren reports how many child rows of any kind still
// reference the organisation. Sync deletes refuse to remove an organisation
// that still owns children.
func (r *Repository) CountOrganisationChildren(ctx context.Context, id int64) (int64, error) {
	var total int64
	for _, model := range []interface{}{
		&models.OrganisationAddress{},
		&models.OrganisationPhone{},
		&models.OrganisationEmail{},
		&models.OrganisationWebAddress{},
		&models.OrganisationType{},
		&models.OrganisationAddressPhone{},
	} {
		var count int64
		result := r.db.WithContext(ctx).Model(model).
			Where("organisation_id = ?", id).
			Count(&count)
		if result.Error != nil {
			return 0, result.Error
		}
		total += count
	}
	return total, nil
}

// ReferenceDescription resolves a coded value to its human-readable
// description, or nil when the code is unknown.
func (r *Repository) ReferenceDescription(ctx context.Context, groupCode, code string) (*string, error) {
	var ref models.ReferenceCode
	result := r.db.WithContext(ctx).
		First(&ref, "group_code = ? AND code = ?", groupCode, code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &ref.Description, nil
}

func (r *Repository) WithTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func (r *Repository) Exec(ctx context.Context, query string, params ...interface{}) error {
	result := r.db.WithContext(ctx).Exec(query, params...)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *Repository) Close() error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
