package handlers

import (
	"github.com/spec-kit/adsite-service/internal/api/dto"
	"github.com/spec-kit/adsite-service/internal/domain"
)

func userSummary(u *domain.User) dto.UserSummary {
	return dto.UserSummary{
		ID:        u.ID,
		Handle:    u.Handle,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
	}
}

func serviceResponse(s *domain.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		ImagePath:   s.ImagePath,
		CreatedAt:   s.CreatedAt,
	}
}

func serviceResponses(items []domain.Service) []dto.ServiceResponse {
	out := make([]dto.ServiceResponse, 0, len(items))
	for i := range items {
		out = append(out, serviceResponse(&items[i]))
	}
	return out
}

func newsResponse(n *domain.News) dto.NewsResponse {
	return dto.NewsResponse{
		ID:          n.ID,
		Title:       n.Title,
		Content:     n.Content,
		ImagePath:   n.ImagePath,
		PublishedAt: n.PublishedAt,
	}
}

func newsResponses(items []domain.News) []dto.NewsResponse {
	out := make([]dto.NewsResponse, 0, len(items))
	for i := range items {
		out = append(out, newsResponse(&items[i]))
	}
	return out
}

func orderSummary(o *domain.ServiceOrder) dto.OrderSummary {
	return dto.OrderSummary{
		ID:          o.ID,
		ServiceID:   o.ServiceID,
		Description: o.Description,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}

func orderSummaries(items []domain.ServiceOrder) []dto.OrderSummary {
	out := make([]dto.OrderSummary, 0, len(items))
	for i := range items {
		out = append(out, orderSummary(&items[i]))
	}
	return out
}

func supportMessageResponse(m *domain.SupportMessage) dto.SupportMessageResponse {
	return dto.SupportMessageResponse{
		ID:           m.ID,
		OwnerUserID:  m.OwnerUserID,
		SenderUserID: m.SenderUserID,
		Body:         m.Body,
		IsFromStaff:  m.IsFromStaff,
		IsRead:       m.IsRead,
		CreatedAt:    m.CreatedAt,
	}
}

func supportMessageResponses(items []domain.SupportMessage) []dto.SupportMessageResponse {
	out := make([]dto.SupportMessageResponse, 0, len(items))
	for i := range items {
		out = append(out, supportMessageResponse(&items[i]))
	}
	return out
}
