package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flock/internal/authz"
	"flock/internal/models/db_models"
)

type MemberListOptions struct {
	Status   db_models.MemberStatus
	Role     db_models.MemberRole
	CampID   *uuid.UUID
	Search   string
	Page     int
	PageSize int
}

type MemberRepository interface {
	ListScoped(ctx context.Context, filter authz.ScopeFilter, opts MemberListOptions) ([]db_models.Member, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Member, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Member, error)
	FindByPhone(ctx context.Context, phone string) (*db_models.Member, error)
	FindByUpdateToken(ctx context.Context, token string) (*db_models.Member, error)
	Insert(ctx context.Context, member *db_models.Member) error
	Update(ctx context.Context, member *db_models.Member) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) ListScoped(ctx context.Context, filter authz.ScopeFilter, opts MemberListOptions) ([]db_models.Member, int64, error) {
	tx := r.db.WithContext(ctx).Model(&db_models.Member{})
	tx = filter.Apply(tx, "members")

	if opts.Status != "" {
		tx = tx.Where("status = ?", opts.Status)
	}
	if opts.Role != "" {
		tx = tx.Where("role = ?", opts.Role)
	}
	if opts.CampID != nil {
		tx = tx.Where("camp_id = ?", *opts.CampID)
	}
	if opts.Search != "" {
		like := "%" + opts.Search + "%"
		tx = tx.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if opts.Page > 0 && opts.PageSize > 0 {
		tx = tx.Offset((opts.Page - 1) * opts.PageSize).Limit(opts.PageSize)
	}

	var members []db_models.Member
	if err := tx.Order("last_name, first_name").Find(&members).Error; err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

func (r *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Member, error) {
	var member db_models.Member
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*db_models.Member, error) {
	var member db_models.Member
	err := r.db.WithContext(ctx).First(&member, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByPhone(ctx context.Context, phone string) (*db_models.Member, error) {
	var member db_models.Member
	err := r.db.WithContext(ctx).First(&member, "phone = ?", phone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByUpdateToken(ctx context.Context, token string) (*db_models.Member, error) {
	var member db_models.Member
	err := r.db.WithContext(ctx).
		Where("update_token = ? AND update_token_expiry > ?", token, time.Now()).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) Insert(ctx context.Context, member *db_models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) Update(ctx context.Context, member *db_models.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *memberRepository) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&db_models.Member{})
	return res.RowsAffected, res.Error
}
