package usecase

import (
	"fmt"
	"regexp"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CompanyUseCase manages the landlord profile.
type CompanyUseCase struct {
	repo     repository.CompanyRepository
	defaults entity.CompanyInfo
}

// NewCompanyUseCase builds the use case. defaults is returned by Current
// until a profile is saved.
func NewCompanyUseCase(repo repository.CompanyRepository, defaults entity.CompanyInfo) *CompanyUseCase {
	if defaults.InvoiceSettings == (entity.InvoiceSettings{}) {
		defaults.InvoiceSettings = entity.DefaultInvoiceSettings()
	}
	if defaults.DefaultNotes == "" {
		defaults.DefaultNotes = entity.DefaultNotes
	}
	if defaults.DefaultBankDetails == "" {
		defaults.DefaultBankDetails = entity.DefaultBankDetails
	}
	return &CompanyUseCase{repo: repo, defaults: defaults}
}

// Current returns the saved profile or the defaults.
func (uc *CompanyUseCase) Current() (*entity.CompanyInfo, error) {
	c, err := uc.repo.Get()
	if err != nil {
		return nil, fmt.Errorf("company: get: %w", err)
	}
	if c == nil {
		d := uc.defaults
		return &d, nil
	}
	return c, nil
}

// Get returns the profile as a DTO.
func (uc *CompanyUseCase) Get() (*dto.CompanyResponse, error) {
	c, err := uc.Current()
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(c), nil
}

// Update applies the non-nil fields of in and saves the profile.
func (uc *CompanyUseCase) Update(in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	c, err := uc.Current()
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: company name is required", domain.ErrInvalidInput)
		}
		c.Name = *in.Name
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.DefaultNotes != nil {
		c.DefaultNotes = *in.DefaultNotes
	}
	if in.DefaultBankDetails != nil {
		c.DefaultBankDetails = *in.DefaultBankDetails
	}
	if s := in.InvoiceSettings; s != nil {
		if s.PrimaryColor != "" {
			if !hexColor.MatchString(s.PrimaryColor) {
				return nil, fmt.Errorf("%w: primaryColor must look like #4f46e5", domain.ErrInvalidInput)
			}
			c.InvoiceSettings.PrimaryColor = s.PrimaryColor
		}
		if s.FontFamily != "" {
			switch s.FontFamily {
			case entity.FontHelvetica, entity.FontTimes, entity.FontCourier:
				c.InvoiceSettings.FontFamily = s.FontFamily
			default:
				return nil, fmt.Errorf("%w: unknown font %q", domain.ErrInvalidInput, s.FontFamily)
			}
		}
		if s.HeaderLayout != "" {
			switch s.HeaderLayout {
			case entity.HeaderStandard, entity.HeaderModern:
				c.InvoiceSettings.HeaderLayout = s.HeaderLayout
			default:
				return nil, fmt.Errorf("%w: unknown header layout %q", domain.ErrInvalidInput, s.HeaderLayout)
			}
		}
		if s.ShowBankDetails != nil {
			c.InvoiceSettings.ShowBankDetails = *s.ShowBankDetails
		}
		if s.ShowTenantContact != nil {
			c.InvoiceSettings.ShowTenantContact = *s.ShowTenantContact
		}
	}
	if err := uc.repo.Save(c); err != nil {
		return nil, fmt.Errorf("company: save: %w", err)
	}
	return entityToCompanyResponse(c), nil
}

// IsValidHexColor reports whether s is a #rrggbb colour.
func IsValidHexColor(s string) bool {
	return hexColor.MatchString(s)
}

func entityToCompanyResponse(c *entity.CompanyInfo) *dto.CompanyResponse {
	show, contact := c.InvoiceSettings.ShowBankDetails, c.InvoiceSettings.ShowTenantContact
	return &dto.CompanyResponse{
		Name:               c.Name,
		Address:            c.Address,
		Email:              c.Email,
		DefaultNotes:       c.DefaultNotes,
		DefaultBankDetails: c.DefaultBankDetails,
		InvoiceSettings: dto.InvoiceSettingsDTO{
			PrimaryColor:      c.InvoiceSettings.PrimaryColor,
			FontFamily:        c.InvoiceSettings.FontFamily,
			HeaderLayout:      c.InvoiceSettings.HeaderLayout,
			ShowBankDetails:   &show,
			ShowTenantContact: &contact,
		},
	}
}
