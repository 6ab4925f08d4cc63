package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// profileGateway implements ProfileGateway on the relational store.
type profileGateway struct {
	db *gorm.DB
}

// NewProfileGateway creates a new ProfileGateway.
func NewProfileGateway(db *gorm.DB) ProfileGateway {
	return &profileGateway{db: db}
}

// Register creates a new user account with a hashed password.
func (g *profileGateway) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	var count int64
	if err := g.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrGatewayUnavailable, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:    strings.ToLower(email),
		Password: string(hashed),
		Name:     name,
	}
	if err := g.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrGatewayUnavailable, err)
	}
	return user, nil
}

// FindByEmail retrieves a profile by its natural key.
func (g *profileGateway) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := g.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrGatewayUnavailable, err)
	}
	return &user, nil
}

// FindByID retrieves a profile by surrogate id.
func (g *profileGateway) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := g.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrGatewayUnavailable, err)
	}
	return &user, nil
}

// Update applies a partial patch to an existing profile and returns
// the updated record.
func (g *profileGateway) Update(ctx context.Context, id string, patch ProfilePatch) (*models.User, error) {
	user, err := g.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.DOB != nil {
		updates["dob"] = *patch.DOB
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if patch.Occupation != nil {
		updates["occupation"] = *patch.Occupation
	}
	if patch.MonthlyIncome != nil {
		updates["monthly_income"] = *patch.MonthlyIncome
	}

	if len(updates) > 0 {
		if err := g.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrGatewayUnavailable, err)
		}
	}
	return user, nil
}

// Upsert inserts or updates a profile keyed by email in a single
// conditional write, so two concurrent first saves for the same email
// cannot both insert. The password column is only written on insert;
// upserting never overwrites an existing credential.
func (g *profileGateway) Upsert(ctx context.Context, profile models.User) (*models.User, error) {
	if strings.TrimSpace(profile.Email) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email is required")
	}
	profile.Email = strings.ToLower(profile.Email)

	if profile.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(profile.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		profile.Password = string(hashed)
	}

	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "phone", "dob", "address", "occupation", "monthly_income", "updated_at",
		}),
	}).Create(&profile).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrGatewayUnavailable, err)
	}

	return g.FindByEmail(ctx, profile.Email)
}

// VerifyPassword checks a plaintext password against the stored hash.
func (g *profileGateway) VerifyPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}
