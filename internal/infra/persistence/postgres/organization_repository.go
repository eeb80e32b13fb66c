package postgres

import (
	"context"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// organizationRepository implements the domain.OrganizationRepository interface using GORM.
type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository is the constructor for organizationRepository.
func NewOrganizationRepository(db *gorm.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

// FindByID retrieves a single organization by its unique ID.
func (repo *organizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	var organizationM model.OrganizationModel
	err := repo.db.WithContext(ctx).First(&organizationM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization by id")
	}

	return toOrganizationDomain(&organizationM), nil
}

// List returns all organizations ordered by insertion time ascending.
func (repo *organizationRepository) List(ctx context.Context) ([]*entity.Organization, error) {
	var organizationModels []*model.OrganizationModel
	err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&organizationModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list organizations")
	}

	organizations := make([]*entity.Organization, 0, len(organizationModels))
	for _, organizationM := range organizationModels {
		organizations = append(organizations, toOrganizationDomain(organizationM))
	}

	return organizations, nil
}

// Create persists a new organization row and reloads server-assigned fields.
func (repo *organizationRepository) Create(ctx context.Context, organization *entity.Organization) error {
	organizationM := fromOrganizationDomain(organization)

	if err := repo.db.WithContext(ctx).Create(organizationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required organization information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create organization")
	}

	organization.ID = organizationM.ID
	organization.CreatedAt = organizationM.CreatedAt
	organization.UpdatedAt = organizationM.UpdatedAt

	return nil
}

// Delete removes an organization row.
func (repo *organizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.OrganizationModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete organization")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrganizationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrganizationDomain converts a GORM OrganizationModel to a domain Organization entity.
func toOrganizationDomain(data *model.OrganizationModel) *entity.Organization {
	if data == nil {
		return nil
	}

	return &entity.Organization{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromOrganizationDomain converts a domain Organization entity to a GORM OrganizationModel.
func fromOrganizationDomain(data *entity.Organization) *model.OrganizationModel {
	if data == nil {
		return nil
	}

	return &model.OrganizationModel{
		ID:   data.ID,
		Name: data.Name,
	}
}
