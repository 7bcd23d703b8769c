package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/bdm-lab/mediascope/pkg/domain/model"
	"github.com/bdm-lab/mediascope/pkg/domain/types"
)

func TestNewIncident(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("Valid incident creation", func(t *testing.T) {
		incident, err := model.NewIncident("BDM-VY0001", &model.CreateIncidentRequest{
			MediaMaterial: types.MediaMaterialVideo,
			Platform:      types.PlatformYouTube,
			Description:   "misleading clip",
			ReportedBy:    "alice",
			IssueLink:     "https://tracker.example/issue/42",
		}, now)
		gt.NoError(t, err)
		gt.Equal(t, types.SerialNumber("BDM-VY0001"), incident.SerialNumber)
		gt.Equal(t, types.IncidentStatusNew, incident.Status)
		gt.Equal(t, now, incident.ReceivedAt)
		gt.Equal(t, 0, len(incident.ActionsLog))
		gt.V(t, incident.StartedProcessingAt).Nil()
		gt.V(t, incident.ClosedAt).Nil()
		gt.True(t, incident.ID != "")
	})

	t.Run("Missing description", func(t *testing.T) {
		incident, err := model.NewIncident("BDM-VY0001", &model.CreateIncidentRequest{
			MediaMaterial: types.MediaMaterialVideo,
			Platform:      types.PlatformYouTube,
			ReportedBy:    "alice",
		}, now)
		gt.Error(t, err)
		gt.V(t, incident).Nil()
		gt.S(t, err.Error()).Contains("description is required")
	})

	t.Run("Missing reporter", func(t *testing.T) {
		incident, err := model.NewIncident("BDM-VY0001", &model.CreateIncidentRequest{
			MediaMaterial: types.MediaMaterialVideo,
			Platform:      types.PlatformYouTube,
			Description:   "misleading clip",
		}, now)
		gt.Error(t, err)
		gt.V(t, incident).Nil()
		gt.S(t, err.Error()).Contains("reporter name is required")
	})

	t.Run("Missing serial number", func(t *testing.T) {
		incident, err := model.NewIncident("", &model.CreateIncidentRequest{
			MediaMaterial: types.MediaMaterialVideo,
			Platform:      types.PlatformYouTube,
			Description:   "misleading clip",
			ReportedBy:    "alice",
		}, now)
		gt.Error(t, err)
		gt.V(t, incident).Nil()
	})

	t.Run("Unmapped categories are accepted", func(t *testing.T) {
		incident, err := model.NewIncident("BDM-XX0001", &model.CreateIncidentRequest{
			MediaMaterial: types.MediaMaterial("hologram"),
			Platform:      types.Platform("usenet"),
			Description:   "odd one",
			ReportedBy:    "bob",
		}, now)
		gt.NoError(t, err)
		gt.Equal(t, types.MediaMaterial("hologram"), incident.MediaMaterial)
	})
}

func TestIncidentClone(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	started := now.Add(time.Hour)

	original := &model.Incident{
		ID:                  types.NewIncidentID(),
		SerialNumber:        "BDM-VY0001",
		Status:              types.IncidentStatusProcessing,
		MediaMaterial:       types.MediaMaterialVideo,
		Platform:            types.PlatformYouTube,
		Description:         "misleading clip",
		ReportedBy:          "alice",
		ReceivedAt:          now,
		StartedProcessingAt: &started,
		ActionsLog: []model.ActionEntry{
			{Timestamp: started, Description: "Processing started", User: types.SystemUser},
		},
	}

	clone := original.Clone()

	t.Run("Equal content", func(t *testing.T) {
		gt.Equal(t, original.SerialNumber, clone.SerialNumber)
		gt.Equal(t, original.Status, clone.Status)
		gt.Equal(t, *original.StartedProcessingAt, *clone.StartedProcessingAt)
		gt.Equal(t, original.ActionsLog, clone.ActionsLog)
	})

	t.Run("Mutating the clone leaves the original untouched", func(t *testing.T) {
		clone.Status = types.IncidentStatusClosed
		*clone.StartedProcessingAt = clone.StartedProcessingAt.Add(time.Hour)
		clone.ActionsLog[0].Description = "tampered"
		clone.ActionsLog = append(clone.ActionsLog, model.ActionEntry{Description: "extra"})

		gt.Equal(t, types.IncidentStatusProcessing, original.Status)
		gt.Equal(t, started, *original.StartedProcessingAt)
		gt.Equal(t, "Processing started", original.ActionsLog[0].Description)
		gt.Equal(t, 1, len(original.ActionsLog))
	})

	t.Run("Nil clone", func(t *testing.T) {
		var none *model.Incident
		gt.V(t, none.Clone()).Nil()
	})
}

func TestAppendAction(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	incident := &model.Incident{ActionsLog: []model.ActionEntry{}}

	incident.AppendAction(now, "checked the source", "carol")
	incident.AppendAction(now.Add(time.Minute), "escalated", "dave")

	gt.Equal(t, 2, len(incident.ActionsLog))
	gt.Equal(t, "checked the source", incident.ActionsLog[0].Description)
	gt.Equal(t, types.UserName("dave"), incident.ActionsLog[1].User)
}
