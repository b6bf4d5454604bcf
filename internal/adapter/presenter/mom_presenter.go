package presenter

import (
	"strings"

	"github.com/kamplisrinivas/mom-meeting-system/internal/adapter/dto/mom"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
)

// ToPointResponse converts a MomPoint entity to PointResponse DTO
func ToPointResponse(p *entities.MomPoint) *mom.PointResponse {
	if p == nil {
		return nil
	}

	assignees := make([]mom.AssigneeResponse, 0, len(p.Assignees))
	names := make([]string, 0, len(p.Assignees))
	for _, a := range p.Assignees {
		assignees = append(assignees, mom.AssigneeResponse{
			ID:   a.ID.String(),
			Code: a.Code,
			Name: a.Name,
		})
		names = append(names, a.Name)
	}

	response := &mom.PointResponse{
		ID:              p.ID.String(),
		MeetingID:       p.MeetingID.String(),
		Topic:           p.Topic,
		Discussion:      p.Discussion,
		Decision:        p.Decision,
		DueDate:         p.DueDate,
		Status:          string(p.Status),
		Assignees:       assignees,
		AssignedToNames: strings.Join(names, ", "),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}

	if p.Meeting != nil {
		response.MeetingTitle = p.Meeting.Title
	}
	if len(p.ActionItems) > 0 {
		response.ActionItems = ToActionItemListResponse(p.ActionItems)
	}

	return response
}

// ToPointListResponse converts a slice of MomPoint entities
func ToPointListResponse(points []*entities.MomPoint) []*mom.PointResponse {
	responses := make([]*mom.PointResponse, len(points))
	for i, p := range points {
		responses[i] = ToPointResponse(p)
	}
	return responses
}

// ToActionItemResponse converts an ActionItem entity to its DTO
func ToActionItemResponse(item *entities.ActionItem) *mom.ActionItemResponse {
	if item == nil {
		return nil
	}

	response := &mom.ActionItemResponse{
		ID:          item.ID.String(),
		MomPointID:  item.MomPointID.String(),
		Description: item.Description,
		DueDate:     item.DueDate,
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}

	if item.AssigneeID != nil {
		id := item.AssigneeID.String()
		response.AssigneeID = &id
	}
	if item.Assignee != nil {
		response.AssigneeName = item.Assignee.Name
	}
	if item.MomPoint != nil {
		response.Topic = item.MomPoint.Topic
		if item.MomPoint.Meeting != nil {
			response.MeetingTitle = item.MomPoint.Meeting.Title
		}
	}

	return response
}

// ToActionItemListResponse converts a slice of ActionItem entities
func ToActionItemListResponse(items []*entities.ActionItem) []*mom.ActionItemResponse {
	responses := make([]*mom.ActionItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToActionItemResponse(item)
	}
	return responses
}
