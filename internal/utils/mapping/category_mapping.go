package mapping

import (
	"database/sql"

	"github.com/xpay-app/xpay_backend/internal/core/domain"
	"github.com/xpay-app/xpay_backend/internal/models"
)

// ToModelCategory converts a domain Category to a model Category.
func ToModelCategory(d domain.Category) models.Category {
	m := models.Category{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Description: sql.NullString{String: d.Description, Valid: d.Description != ""},
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.UserID != nil {
		m.UserID = sql.NullString{String: *d.UserID, Valid: true}
	}
	return m
}

// ToDomainCategory converts a model Category to a domain Category.
func ToDomainCategory(m models.Category) domain.Category {
	d := domain.Category{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Description: m.Description.String,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.UserID.Valid {
		userID := m.UserID.String
		d.UserID = &userID
	}
	return d
}

// ToDomainCategorySlice converts a slice of model Categories to domain Categories.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
