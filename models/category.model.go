package models

import (
	"strings"

	"gorm.io/gorm"

	"lms/apperrors"
)

type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Description string `json:"description" gorm:"default:''"`
}

func NewCategory(name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("Category name is required!")
	}
	return &Category{
		Name:        name,
		Slug:        slugify(name),
		Description: strings.TrimSpace(description),
	}, nil
}

func (c *Category) Rename(name, description *string) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return apperrors.Validation("Category name is required!")
		}
		c.Name = trimmed
		c.Slug = slugify(trimmed)
	}
	if description != nil {
		c.Description = strings.TrimSpace(*description)
	}
	return nil
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
