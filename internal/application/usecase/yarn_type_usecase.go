package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

// YarnTypeUseCase manages yarn specifications.
type YarnTypeUseCase struct {
	yarnTypeRepo repository.YarnTypeRepository
}

// NewYarnTypeUseCase builds the use case.
func NewYarnTypeUseCase(yarnTypeRepo repository.YarnTypeRepository) *YarnTypeUseCase {
	return &YarnTypeUseCase{yarnTypeRepo: yarnTypeRepo}
}

// Create registers a yarn type.
func (uc *YarnTypeUseCase) Create(name, note string) (*entity.YarnType, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	yt := &entity.YarnType{
		ID:        uuid.New().String(),
		Name:      name,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.yarnTypeRepo.Create(yt); err != nil {
		return nil, err
	}
	return yt, nil
}

// List returns all yarn types.
func (uc *YarnTypeUseCase) List() ([]*entity.YarnType, error) {
	return uc.yarnTypeRepo.List()
}

// Delete removes a yarn type.
func (uc *YarnTypeUseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.yarnTypeRepo.Delete(id)
}
