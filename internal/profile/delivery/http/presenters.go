package http

import (
	"lifelog-engine/internal/model"
	"lifelog-engine/internal/profile"
)

// --- Request DTOs ---

type updateReq struct {
	WeightKg *float64 `json:"weight_kg" binding:"omitempty,gt=0,lt=500"`
	HeightCm *float64 `json:"height_cm" binding:"omitempty,gt=0,lt=300"`
	Age      *int     `json:"age" binding:"omitempty,gt=0,lt=130"`
	Sex      *string  `json:"sex" binding:"omitempty,oneof=male female"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() profile.UpdateInput {
	input := profile.UpdateInput{
		WeightKg: r.WeightKg,
		HeightCm: r.HeightCm,
		Age:      r.Age,
	}
	if r.Sex != nil {
		sex := model.Sex(*r.Sex)
		input.Sex = &sex
	}
	return input
}

// --- Response DTOs ---

type profileResp struct {
	WeightKg *float64 `json:"weight_kg,omitempty"`
	HeightCm *float64 `json:"height_cm,omitempty"`
	Age      *int     `json:"age,omitempty"`
	Sex      string   `json:"sex,omitempty"`
}

func (h *handler) newProfileResp(p model.Profile) profileResp {
	return profileResp{
		WeightKg: p.WeightKg,
		HeightCm: p.HeightCm,
		Age:      p.Age,
		Sex:      string(p.Sex),
	}
}
