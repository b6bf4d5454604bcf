package presenter

import (
	"encoding/json"

	"github.com/kamplisrinivas/mom-meeting-system/internal/adapter/dto/meeting"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	var metadata map[string]interface{}
	if m.Metadata != nil {
		json.Unmarshal(m.Metadata, &metadata)
	}

	response := &meeting.MeetingResponse{
		ID:          m.ID.String(),
		Title:       m.Title,
		Description: m.Description,
		ScheduledAt: m.ScheduledAt,
		Type:        string(m.Type),
		Platform:    m.Platform,
		Venue:       m.Venue,
		Location:    m.Location(),
		CreatedBy:   m.CreatedBy.String(),
		Metadata:    metadata,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if m.DepartmentID != nil {
		id := m.DepartmentID.String()
		response.DepartmentID = &id
	}
	if m.Department != nil {
		response.Department = &m.Department.Name
	}

	return response
}

// ToMeetingListResponse converts a slice of Meeting entities
func ToMeetingListResponse(meetings []*entities.Meeting) []*meeting.MeetingResponse {
	responses := make([]*meeting.MeetingResponse, len(meetings))
	for i, m := range meetings {
		responses[i] = ToMeetingResponse(m)
	}
	return responses
}
