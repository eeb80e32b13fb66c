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

// membershipRepository implements the domain.MembershipRepository interface using GORM.
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

// FindByUserAndWorkspace retrieves the membership row for the given pair.
func (repo *membershipRepository) FindByUserAndWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) (*entity.Membership, error) {
	var membershipM model.MembershipModel
	err := repo.db.WithContext(ctx).
		First(&membershipM, "user_id = ? AND workspace_id = ?", userID, workspaceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership")
	}

	return toMembershipDomain(&membershipM), nil
}

// Create persists a new membership row. A duplicate pair surfaces as
// already-exists; an unknown user or workspace as a referential-integrity
// violation.
func (repo *membershipRepository) Create(ctx context.Context, membership *entity.Membership) error {
	membershipM := fromMembershipDomain(membership)

	if err := repo.db.WithContext(ctx).Create(membershipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrMembershipAlreadyExists.WrapMessage("membership already granted")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferentialIntegrity.WrapMessage("user or workspace does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create membership")
	}

	membership.CreatedAt = membershipM.CreatedAt

	return nil
}

// Delete removes the membership row for the given pair.
func (repo *membershipRepository) Delete(ctx context.Context, userID, workspaceID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Delete(&model.MembershipModel{}, "user_id = ? AND workspace_id = ?", userID, workspaceID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete membership")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

// DeleteByUserID removes every membership row referencing the user.
// Missing rows are not an error here; the caller is tearing the user down.
func (repo *membershipRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Delete(&model.MembershipModel{}, "user_id = ?", userID).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete memberships by user id")
	}

	return nil
}

// DeleteByWorkspaceID removes every membership row referencing the workspace.
func (repo *membershipRepository) DeleteByWorkspaceID(ctx context.Context, workspaceID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Delete(&model.MembershipModel{}, "workspace_id = ?", workspaceID).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete memberships by workspace id")
	}

	return nil
}

// --- Mapper Functions ---

// toMembershipDomain converts a GORM MembershipModel to a domain Membership entity.
func toMembershipDomain(data *model.MembershipModel) *entity.Membership {
	if data == nil {
		return nil
	}

	return &entity.Membership{
		UserID:      data.UserID,
		WorkspaceID: data.WorkspaceID,
		CreatedAt:   data.CreatedAt,
	}
}

// fromMembershipDomain converts a domain Membership entity to a GORM MembershipModel.
func fromMembershipDomain(data *entity.Membership) *model.MembershipModel {
	if data == nil {
		return nil
	}

	return &model.MembershipModel{
		UserID:      data.UserID,
		WorkspaceID: data.WorkspaceID,
	}
}
