package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	e "github.com/gartstein/organisations/internal/organisations/errors"
	"github.com/gartstein/organisations/internal/organisations/models"
	"gorm.io/gorm"
)

// businessPhoneType is the phone type code treated as the organisation's
// business line in the summary projection.
const businessPhoneType = "BUS"

// summarySortColumns is the allow-list of sortable summary fields. Sorting is
// built into the SQL ORDER BY, so anything outside this map is rejected rather
// than interpolated.
var summarySortColumns = map[string]string{
	"organisationId":   "organisation_id",
	"organisationName": "organisation_name",
	"active":           "active",
	"cityCode":         "city_code",
	"countyCode":       "county_code",
	"postCode":         "post_code",
	"countryCode":      "country_code",
}

// createSummaryView (re)creates the organisation_summary view: organisation
// columns joined with the primary address and one business phone reached
// through the address-phone link table.
func (r *Repository) createSummaryView() error {
	if err := r.db.Exec(`DROP VIEW IF EXISTS organisation_summary`).Error; err != nil {
		return fmt.Errorf("failed to drop summary view: %w", err)
	}
	err := r.db.Exec(`
		CREATE VIEW organisation_summary AS
		SELECT o.organisation_id,
		       o.organisation_name,
		       o.active,
		       a.flat,
		       a.property,
		       a.street,
		       a.area,
		       a.city_code,
		       a.county_code,
		       a.post_code,
		       a.country_code,
		       (SELECT p.phone_number
		          FROM organisation_phones p
		          JOIN organisation_address_phones ap
		            ON ap.organisation_phone_id = p.organisation_phone_id
		         WHERE ap.organisation_address_id = a.organisation_address_id
		           AND p.phone_type = '` + businessPhoneType + `'
		         ORDER BY p.organisation_phone_id
		         LIMIT 1) AS business_phone_number,
		       (SELECT p.ext_number
		          FROM organisation_phones p
		          JOIN organisation_address_phones ap
		            ON ap.organisation_phone_id = p.organisation_phone_id
		         WHERE ap.organisation_address_id = a.organisation_address_id
		           AND p.phone_type = '` + businessPhoneType + `'
		         ORDER BY p.organisation_phone_id
		         LIMIT 1) AS business_phone_number_extension
		  FROM organisations o
		  LEFT JOIN organisation_addresses a
		    ON a.organisation_id = o.organisation_id
		   AND a.primary_address
	`).Error
	if err != nil {
		return fmt.Errorf("failed to create summary view: %w", err)
	}
	return nil
}

func (r *Repository) GetOrganisationSummary(ctx context.Context, id int64) (*models.OrganisationSummary, error) {
	var summary models.OrganisationSummary
	result := r.db.WithContext(ctx).First(&summary, "organisation_id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &summary, nil
}

// SearchOrganisations matches the name substring case-insensitively against
// the summary projection. sortField must come from the allow-list; sortDir is
// asc or desc. Defaults: sort ascending by organisationName.
func (r *Repository) SearchOrganisations(
	ctx context.Context,
	name string,
	page, size int,
	sortField, sortDir string,
) (*models.OrganisationSummaryPage, error) {
	if sortField == "" {
		sortField = "organisationName"
	}
	column, ok := summarySortColumns[sortField]
	if !ok {
		return nil, fmt.Errorf("%w: %s", e.ErrInvalidSortField, sortField)
	}
	direction := "asc"
	if sortDir != "" {
		direction = strings.ToLower(sortDir)
		if direction != "asc" && direction != "desc" {
			return nil, fmt.Errorf("%w: sort direction %s", e.ErrInvalidSortField, sortDir)
		}
	}
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	query := r.db.WithContext(ctx).Model(&models.OrganisationSummary{})
	if name != "" {
		query = query.Where("LOWER(organisation_name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var content []models.OrganisationSummary
	result := query.
		Order(column + " " + direction).
		Offset(page * size).
		Limit(size).
		Find(&content)
	if result.Error != nil {
		return nil, result.Error
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return &models.OrganisationSummaryPage{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}
