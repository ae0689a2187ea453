package dto

import (
	"github.com/Fairanova/2026-room-booking-backend/shared/constant"
	"github.com/Fairanova/2026-room-booking-backend/shared/model"
	"github.com/Fairanova/2026-room-booking-backend/shared/timezone"
)

type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.TimestampFormat)
	m.ModifiedAt = timezone.Format(model.ModifiedAt, constant.TimestampFormat)
	m.CreatedBy = model.CreatedBy
	m.ModifiedBy = model.ModifiedBy
}
