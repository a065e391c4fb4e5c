package db

import (
	"context"
	"errors"

	e "github.com/gartstein/organisations/internal/organisations/errors"
	"github.com/gartstein/organisations/internal/organisations/models"
	"gorm.io/gorm"
)

func (r *Repository) CreateAddress(ctx context.Context, address *models.OrganisationAddress) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *Repository) GetAddress(ctx context.Context, id int64) (*models.OrganisationAddress, error) {
	var address models.OrganisationAddress
	if err := r.first(ctx, &address, "organisation_address_id = ?", id); err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *Repository) SaveAddress(ctx context.Context, address *models.OrganisationAddress) error {
	return r.db.WithContext(ctx).Save(address).Error
}

func (r *Repository) DeleteAddress(ctx context.Context, id int64) error {
	return r.delete(ctx, &models.OrganisationAddress{}, "organisation_address_id = ?", id)
}

func (r *Repository) ListAddresses(ctx context.Context, organisationID int64) ([]models.OrganisationAddress, error) {
	var addresses []models.OrganisationAddress
	result := r.db.WithContext(ctx).
		Where("organisation_id = ?", organisationID).
		Order("organisation_address_id").
		Find(&addresses)
	return addresses, result.Error
}

func (r *Repository) CreatePhone(ctx context.Context, phone *models.OrganisationPhone) error {
	return r.db.WithContext(ctx).Create(phone).Error
}

func (r *Repository) GetPhone(ctx context.Context, id int64) (*models.OrganisationPhone, error) {
	var phone models.OrganisationPhone
	if err := r.first(ctx, &phone, "organisation_phone_id = ?", id); err != nil {
		return nil, err
	}
	return &phone, nil
}

func (r *Repository) SavePhone(ctx context.Context, phone *models.OrganisationPhone) error {
	return r.db.WithContext(ctx).Save(phone).Error
}

func (r *Repository) DeletePhone(ctx context.Context, id int64) error {
	return r.delete(ctx, &models.OrganisationPhone{}, "organisation_phone_id = ?", id)
}

func (r *Repository) ListPhones(ctx context.Context, organisationID int64) ([]models.OrganisationPhone, error) {
	var phones []models.OrganisationPhone
	result := r.db.WithContext(ctx).
		Where("organisation_id = ?", organisationID).
		Order("organisation_phone_id").
		Find(&phones)
	return phones, result.Error
}

func (r *Repository) CreateEmail(ctx context.Context, email *models.OrganisationEmail) error {
	return r.db.WithContext(ctx).Create(email).Error
}

func (r *Repository) GetEmail(ctx context.Context, id int64) (*models.OrganisationEmail, error) {
	var email models.OrganisationEmail
	if err := r.first(ctx, &email, "organisation_email_id = ?", id); err != nil {
		return nil, err
	}
	return &email, nil
}

func (r *Repository) SaveEmail(ctx context.Context, email *models.OrganisationEmail) error {
	return r.db.WithContext(ctx).Save(email).Error
}

func (r *Repository) DeleteEmail(ctx context.Context, id int64) error {
	return r.delete(ctx, &models.OrganisationEmail{}, "organisation_email_id = ?", id)
}

func (r *Repository) ListEmails(ctx context.Context, organisationID int64) ([]models.OrganisationEmail, error) {
	var emails []models.OrganisationEmail
	result := r.db.WithContext(ctx).
		Where("organisation_id = ?", organisationID).
		Order("organisation_email_id").
		Find(&emails)
	return emails, result.Error
}

func (r *Repository) CreateWebAddress(ctx context.Context, web *models.OrganisationWebAddress) error {
	return r.db.WithContext(ctx).Create(web).Error
}

func (r *Repository) GetWebAddress(ctx context.Context, id int64) (*models.OrganisationWebAddress, error) {
	var web models.OrganisationWebAddress
	if err := r.first(ctx, &web, "organisation_web_address_id = ?", id); err != nil {
		return nil, err
	}
	return &web, nil
}

func (r *Repository) SaveWebAddress(ctx context.Context, web *models.OrganisationWebAddress) error {
	return r.db.WithContext(ctx).Save(web).Error
}

func (r *Repository) DeleteWebAddress(ctx context.Context, id int64) error {
	return r.delete(ctx, &models.OrganisationWebAddress{}, "organisation_web_address_id = ?", id)
}

func (r *Repository) ListWebAddresses(ctx context.Context, organisationID int64) ([]models.OrganisationWebAddress, error) {
	var webs []models.OrganisationWebAddress
	result := r.db.WithContext(ctx).
		Where("organisation_id = ?", organisationID).
		Order("organisation_web_address_id").
		Find(&webs)
	return webs, result.Error
}

func (r *Repository) ListTypes(ctx context.Context, organisationID int64) ([]models.OrganisationType, error) {
	var types []models.OrganisationType
	result := r.db.WithContext(ctx).
		Where("organisation_id = ?", organisationID).
		Order("organisation_type").
		Find(&types)
	return types, result.Error
}

// ReplaceTypes deletes the stored type set and inserts the replacement within
// one transaction. An empty replacement clears the set.
func (r *Repository) ReplaceTypes(ctx context.Context, organisationID int64, types []models.OrganisationType) error {
	return r.WithTransaction(ctx, func(tx *Repository) error {
		result := tx.db.Delete(&models.OrganisationType{}, "organisation_id = ?", organisationID)
		if result.Error != nil {
			return result.Error
		}
		if len(types) == 0 {
			return nil
		}
		return tx.db.Create(&types).Error
	})
}

func (r *Repository) CreateAddressPhone(ctx context.Context, link *models.OrganisationAddressPhone) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *Repository) GetAddressPhone(ctx context.Context, id int64) (*models.OrganisationAddressPhone, error) {
	var link models.OrganisationAddressPhone
	if err := r.first(ctx, &link, "organisation_address_phone_id = ?", id); err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *Repository) SaveAddressPhone(ctx context.Context, link *models.OrganisationAddressPhone) error {
	return r.db.WithContext(ctx).Save(link).Error
}

func (r *Repository) DeleteAddressPhone(ctx context.Context, id int64) error {
	return r.delete(ctx, &models.OrganisationAddressPhone{}, "organisation_address_phone_id = ?", id)
}

func (r *Repository) ListAddressPhones(ctx context.Context, organisationID int64) ([]models.OrganisationAddressPhone, error) {
	var links []models.OrganisationAddressPhone
	result := r.db.WithContext(ctx).
		Where("organisation_id = ?", organisationID).
		Order("organisation_address_phone_id").
		Find(&links)
	return links, result.Error
}

// DeleteAllChildren removes every child row of every kind for the
// organisation. Used by the migration path before reloading a graph.
func (r *Repository) DeleteAllChildren(ctx context.Context, organisationID int64) error {
	for _, model := range []interface{}{
		&models.OrganisationAddressPhone{},
		&models.OrganisationPhone{},
		&models.OrganisationAddress{},
		&models.OrganisationEmail{},
		&models.OrganisationWebAddress{},
		&models.OrganisationType{},
	} {
		result := r.db.WithContext(ctx).Delete(model, "organisation_id = ?", organisationID)
		if result.Error != nil {
			return result.Error
		}
	}
	return nil
}

func (r *Repository) first(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	result := r.db.WithContext(ctx).First(dest, append([]interface{}{query}, args...)...)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return e.ErrNotFound
		}
		return result.Error
	}
	return nil
}

func (r *Repository) delete(ctx context.Context, model interface{}, query string, id int64) error {
	result := r.db.WithContext(ctx).Delete(model, query, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}
