package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/bdm-lab/mediascope/pkg/domain/types"
)

func TestIncidentStatus(t *testing.T) {
	t.Run("Valid statuses", func(t *testing.T) {
		gt.True(t, types.IncidentStatusNew.IsValid())
		gt.True(t, types.IncidentStatusProcessing.IsValid())
		gt.True(t, types.IncidentStatusClosed.IsValid())
	})

	t.Run("Invalid status", func(t *testing.T) {
		gt.False(t, types.IncidentStatus("resolved").IsValid())
		gt.False(t, types.IncidentStatus("").IsValid())
	})

	t.Run("Open statuses", func(t *testing.T) {
		gt.True(t, types.IncidentStatusNew.IsOpen())
		gt.True(t, types.IncidentStatusProcessing.IsOpen())
		gt.False(t, types.IncidentStatusClosed.IsOpen())
	})

	t.Run("Default notes", func(t *testing.T) {
		gt.Equal(t, "Processing started", types.IncidentStatusProcessing.DefaultNote())
		gt.Equal(t, "Incident closed", types.IncidentStatusClosed.DefaultNote())
	})
}

func TestSerialCodes(t *testing.T) {
	t.Run("Every material has a code", func(t *testing.T) {
		materials := []types.MediaMaterial{
			types.MediaMaterialVideo,
			types.MediaMaterialImage,
			types.MediaMaterialArticle,
			types.MediaMaterialAudio,
			types.MediaMaterialBroadcast,
			types.MediaMaterialOther,
		}
		seen := map[string]bool{}
		for _, m := range materials {
			code := m.Code()
			gt.Equal(t, 1, len(code))
			gt.False(t, seen[code])
			seen[code] = true
		}
	})

	t.Run("Every platform has a code", func(t *testing.T) {
		platforms := []types.Platform{
			types.PlatformYouTube,
			types.PlatformFacebook,
			types.PlatformInstagram,
			types.PlatformX,
			types.PlatformTikTok,
			types.PlatformWebsite,
			types.PlatformOther,
		}
		seen := map[string]bool{}
		for _, p := range platforms {
			code := p.Code()
			gt.Equal(t, 1, len(code))
			gt.False(t, seen[code])
			seen[code] = true
		}
	})

	t.Run("Unmapped values fail closed to X", func(t *testing.T) {
		gt.Equal(t, "X", types.MediaMaterial("hologram").Code())
		gt.Equal(t, "X", types.Platform("usenet").Code())
	})

	t.Run("Known codes", func(t *testing.T) {
		gt.Equal(t, "V", types.MediaMaterialVideo.Code())
		gt.Equal(t, "Y", types.PlatformYouTube.Code())
	})
}

func TestNewIncidentID(t *testing.T) {
	id1 := types.NewIncidentID()
	id2 := types.NewIncidentID()
	gt.True(t, id1 != "")
	gt.True(t, id1 != id2)
}
