package repository

import (
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"gorm.io/gorm"
)

type InvitationRepository struct {
	DB *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{DB: db}
}

func (r *InvitationRepository) FindByToken(token string) (*entity.Invitation, error) {
	var inv entity.Invitation
	if err := r.DB.Where("token = ?", token).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvitationRepository) Create(inv *entity.Invitation) error {
	return r.DB.Create(inv).Error
}

func (r *InvitationRepository) MarkUsed(id uint) error {
	return r.DB.Model(&entity.Invitation{}).Where("id = ?", id).
		Update("used", true).Error
}
