package repository

import "github.com/MUNTAZIR1234/Invoice/internal/domain/entity"

// CompanyRepository stores the single landlord profile.
// Get returns (nil, nil) until a profile has been saved.
type CompanyRepository interface {
	Get() (*entity.CompanyInfo, error)
	Save(company *entity.CompanyInfo) error
}
