package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/bdm-lab/mediascope/pkg/domain/model"
	"github.com/bdm-lab/mediascope/pkg/domain/types"
	"github.com/bdm-lab/mediascope/pkg/repository"
	"github.com/bdm-lab/mediascope/pkg/service/worktime"
	"github.com/bdm-lab/mediascope/pkg/usecase"
)

func TestStatsEmptySet(t *testing.T) {
	stats := usecase.NewStats(worktime.New())

	var none []*model.Incident
	gt.Equal(t, "N/A", stats.AverageProcessingTime(none))
	gt.Equal(t, "N/A", stats.AverageResolutionTime(none))
	gt.Equal(t, "N/A", stats.ResolutionRate(none))
	gt.Equal(t, "N/A", stats.OldestOpenIncidentAge(none))
	gt.Equal(t, 0, len(stats.TopMediaMaterials(none, 5)))
	gt.Equal(t, 0, len(stats.TopPlatforms(none, 5)))
}

func TestStatsAverages(t *testing.T) {
	// Monday reception keeps all intervals inside working days
	received := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := &fixedClock{now: received.Add(6 * time.Hour)}
	stats := usecase.NewStats(worktime.New(), usecase.WithStatsClock(clock.Now))

	started2h := received.Add(2 * time.Hour)
	started4h := received.Add(4 * time.Hour)
	closed5h := received.Add(5 * time.Hour)

	incidents := []*model.Incident{
		{
			Status:              types.IncidentStatusProcessing,
			MediaMaterial:       types.MediaMaterialVideo,
			Platform:            types.PlatformYouTube,
			ReceivedAt:          received,
			StartedProcessingAt: &started2h,
		},
		{
			Status:              types.IncidentStatusClosed,
			MediaMaterial:       types.MediaMaterialVideo,
			Platform:            types.PlatformFacebook,
			ReceivedAt:          received,
			StartedProcessingAt: &started4h,
			ClosedAt:            &closed5h,
		},
		{
			Status:        types.IncidentStatusNew,
			MediaMaterial: types.MediaMaterialImage,
			Platform:      types.PlatformYouTube,
			ReceivedAt:    received,
		},
	}

	t.Run("AverageProcessingTime skips new records", func(t *testing.T) {
		// (2h + 4h) / 2 = 3h
		gt.Equal(t, "3h", stats.AverageProcessingTime(incidents))
	})

	t.Run("AverageResolutionTime over closed records", func(t *testing.T) {
		gt.Equal(t, "5h", stats.AverageResolutionTime(incidents))
	})

	t.Run("ResolutionRate with one decimal", func(t *testing.T) {
		gt.Equal(t, "33.3%", stats.ResolutionRate(incidents))
	})

	t.Run("OldestOpenIncidentAge uses the minimum reception time", func(t *testing.T) {
		gt.Equal(t, "6h", stats.OldestOpenIncidentAge(incidents))
	})

	t.Run("OldestOpenIncidentAge N/A when everything is closed", func(t *testing.T) {
		closedOnly := []*model.Incident{incidents[1]}
		gt.Equal(t, "N/A", stats.OldestOpenIncidentAge(closedOnly))
	})

	t.Run("AverageProcessingTime N/A without started records", func(t *testing.T) {
		newOnly := []*model.Incident{incidents[2]}
		gt.Equal(t, "N/A", stats.AverageProcessingTime(newOnly))
	})
}

func TestTopCounts(t *testing.T) {
	stats := usecase.NewStats(worktime.New())

	mk := func(m types.MediaMaterial, p types.Platform) *model.Incident {
		return &model.Incident{MediaMaterial: m, Platform: p}
	}
	incidents := []*model.Incident{
		mk(types.MediaMaterialVideo, types.PlatformYouTube),
		mk(types.MediaMaterialImage, types.PlatformFacebook),
		mk(types.MediaMaterialVideo, types.PlatformYouTube),
		mk(types.MediaMaterialArticle, types.PlatformWebsite),
		mk(types.MediaMaterialVideo, types.PlatformFacebook),
		mk(types.MediaMaterialImage, types.PlatformYouTube),
	}

	t.Run("Descending by count", func(t *testing.T) {
		top := stats.TopMediaMaterials(incidents, 2)
		gt.Equal(t, 2, len(top))
		gt.Equal(t, model.CategoryCount{Name: "video", Count: 3}, top[0])
		gt.Equal(t, model.CategoryCount{Name: "image", Count: 2}, top[1])
	})

	t.Run("Ties keep encounter order", func(t *testing.T) {
		top := stats.TopMediaMaterials(incidents, 3)
		gt.Equal(t, "article", top[2].Name)

		platforms := stats.TopPlatforms(incidents, 3)
		gt.Equal(t, model.CategoryCount{Name: "youtube", Count: 3}, platforms[0])
		gt.Equal(t, model.CategoryCount{Name: "facebook", Count: 2}, platforms[1])
		gt.Equal(t, model.CategoryCount{Name: "website", Count: 1}, platforms[2])
	})

	t.Run("N larger than the category set", func(t *testing.T) {
		top := stats.TopPlatforms(incidents, 10)
		gt.Equal(t, 3, len(top))
	})
}

// TestDashboardScenario walks the full path a dashboard session takes:
// two reports, status work on both, then the aggregate view.
func TestDashboardScenario(t *testing.T) {
	ctx := context.Background()
	clock := newFixedClock()
	repo := repository.NewMemory()
	uc := usecase.NewIncident(repo, usecase.WithClock(clock.Now))
	stats := usecase.NewStats(worktime.New(), usecase.WithStatsClock(clock.Now))

	first, err := uc.CreateIncident(ctx, videoRequest("alice"))
	gt.NoError(t, err)
	gt.Equal(t, types.SerialNumber("BDM-VY0001"), first.SerialNumber)

	second, err := uc.CreateIncident(ctx, videoRequest("bob"))
	gt.NoError(t, err)
	gt.Equal(t, types.SerialNumber("BDM-VY0002"), second.SerialNumber)

	clock.Advance(2 * time.Hour)
	firstUpdated, err := uc.UpdateStatus(ctx, first.ID, types.IncidentStatusProcessing, "")
	gt.NoError(t, err)
	gt.NotNil(t, firstUpdated.StartedProcessingAt)
	gt.Equal(t, 1, len(firstUpdated.ActionsLog))

	clock.Advance(time.Hour)
	secondUpdated, err := uc.LogAction(ctx, second.ID, "verified the uploader", "bob")
	gt.NoError(t, err)
	gt.Equal(t, types.IncidentStatusProcessing, secondUpdated.Status)
	gt.NotNil(t, secondUpdated.StartedProcessingAt)
	gt.Equal(t, 2, len(secondUpdated.ActionsLog))

	snapshot, err := uc.ListIncidents(ctx)
	gt.NoError(t, err)
	gt.Equal(t, 2, len(snapshot))

	avg := stats.AverageProcessingTime(snapshot)
	gt.NotEqual(t, "N/A", avg)
	// First waited 2h, second 3h: mean is 2.5h, floored to whole hours
	gt.Equal(t, "2h", avg)

	gt.Equal(t, "0.0%", stats.ResolutionRate(snapshot))
	gt.Equal(t, "N/A", stats.AverageResolutionTime(snapshot))
	gt.NotEqual(t, "N/A", stats.OldestOpenIncidentAge(snapshot))
}
