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

// workspaceRepository implements the domain.WorkspaceRepository interface using GORM.
type workspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository is the constructor for workspaceRepository.
func NewWorkspaceRepository(db *gorm.DB) repository.WorkspaceRepository {
	return &workspaceRepository{db: db}
}

// FindByID retrieves a single workspace by its unique ID.
func (repo *workspaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Workspace, error) {
	var workspaceM model.WorkspaceModel
	err := repo.db.WithContext(ctx).First(&workspaceM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkspaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find workspace by id")
	}

	return toWorkspaceDomain(&workspaceM), nil
}

// List returns all workspaces ordered by insertion time ascending.
func (repo *workspaceRepository) List(ctx context.Context) ([]*entity.Workspace, error) {
	var workspaceModels []*model.WorkspaceModel
	err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&workspaceModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workspaces")
	}

	workspaces := make([]*entity.Workspace, 0, len(workspaceModels))
	for _, workspaceM := range workspaceModels {
		workspaces = append(workspaces, toWorkspaceDomain(workspaceM))
	}

	return workspaces, nil
}

// Create persists a new workspace row and reloads server-assigned fields.
func (repo *workspaceRepository) Create(ctx context.Context, workspace *entity.Workspace) error {
	workspaceM := fromWorkspaceDomain(workspace)

	if err := repo.db.WithContext(ctx).Create(workspaceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrWorkspaceAlreadyExists.WrapMessage("workspace name already taken")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required workspace information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create workspace")
	}

	workspace.ID = workspaceM.ID
	workspace.CreatedAt = workspaceM.CreatedAt
	workspace.UpdatedAt = workspaceM.UpdatedAt

	return nil
}

// Delete removes a workspace row. Dependent membership rows go with it via the
// store's cascade rules.
func (repo *workspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.WorkspaceModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete workspace")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWorkspaceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toWorkspaceDomain converts a GORM WorkspaceModel to a domain Workspace entity.
func toWorkspaceDomain(data *model.WorkspaceModel) *entity.Workspace {
	if data == nil {
		return nil
	}

	return &entity.Workspace{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromWorkspaceDomain converts a domain Workspace entity to a GORM WorkspaceModel.
func fromWorkspaceDomain(data *entity.Workspace) *model.WorkspaceModel {
	if data == nil {
		return nil
	}

	return &model.WorkspaceModel{
		ID:   data.ID,
		Name: data.Name,
	}
}
