package postgres

import (
	"context"

	"reminders/internal/domain/entity"
	domainerrors "reminders/internal/domain/errors"
	"reminders/internal/domain/repository"
	"reminders/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reminderRepository implements the repository.ReminderRepository interface.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

// FindAll returns the user's reminders in creation order.
func (repo *reminderRepository) FindAll(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	var reminderModels []*model.ReminderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&reminderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reminders by user")
	}

	reminders := make([]*entity.Reminder, 0, len(reminderModels))
	for _, reminderM := range reminderModels {
		reminders = append(reminders, toReminderDomain(reminderM))
	}

	return reminders, nil
}

// FindByID retrieves a reminder by its ID.
func (repo *reminderRepository) FindByID(ctx context.Context, id string) (*entity.Reminder, error) {
	var reminderM model.ReminderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reminderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReminderNotFound
		}

		return nil, errors.Wrap(err, "failed to find reminder by ID")
	}

	return toReminderDomain(&reminderM), nil
}

// Save inserts the reminder or replaces the row with the same ID. A replaced
// row keeps its created_at; reminder is refreshed from the stored row.
func (repo *reminderRepository) Save(ctx context.Context, reminder *entity.Reminder) error {
	reminderM := fromReminderDomain(reminder)
	db := repo.db.WithContext(ctx)

	if err := db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(reminderM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrReminderSaveFailed.WrapMessage("missing required reminder information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save reminder")
	}

	var stored model.ReminderModel
	if err := db.Where("id = ?", reminderM.ID).Take(&stored).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to reload saved reminder")
	}
	reminder.CreatedAt = stored.CreatedAt
	reminder.UpdatedAt = stored.UpdatedAt

	return nil
}

// DeleteAll removes every reminder of the user.
func (repo *reminderRepository) DeleteAll(ctx context.Context, userID string) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ReminderModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete reminders")
	}

	return nil
}

// --- Mapper Functions ---

func toReminderDomain(data *model.ReminderModel) *entity.Reminder {
	if data == nil {
		return nil
	}

	return &entity.Reminder{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Location:    data.Location,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromReminderDomain(data *entity.Reminder) *model.ReminderModel {
	if data == nil {
		return nil
	}

	return &model.ReminderModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Location:    data.Location,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
