package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/bdm-lab/mediascope/pkg/domain/model"
	"github.com/bdm-lab/mediascope/pkg/domain/types"
	"github.com/bdm-lab/mediascope/pkg/service/worktime"
)

// notAvailable is returned by the scalar aggregates when no eligible
// records exist
const notAvailable = "N/A"

// StatsUseCase derives dashboard aggregates from a caller-supplied snapshot
// of the record set. It holds no repository: reporting is explicitly
// decoupled from mutation timing.
type StatsUseCase struct {
	work  *worktime.Calculator
	clock Clock
}

// StatsOption is a functional option for configuring StatsUseCase
type StatsOption func(*StatsUseCase)

// WithStatsClock overrides the time source, mainly for tests
func WithStatsClock(clock Clock) StatsOption {
	return func(u *StatsUseCase) {
		u.clock = clock
	}
}

// NewStats creates a new StatsUseCase instance
func NewStats(work *worktime.Calculator, opts ...StatsOption) *StatsUseCase {
	u := &StatsUseCase{
		work:  work,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Summary computes the four scalar aggregates in one pass-friendly bundle
func (u *StatsUseCase) Summary(incidents []*model.Incident) *model.Stats {
	return &model.Stats{
		AverageProcessingTime: u.AverageProcessingTime(incidents),
		AverageResolutionTime: u.AverageResolutionTime(incidents),
		ResolutionRate:        u.ResolutionRate(incidents),
		OldestOpenIncidentAge: u.OldestOpenIncidentAge(incidents),
	}
}

// AverageProcessingTime is the mean working time from reception to the
// start of processing, over records that have started processing
func (u *StatsUseCase) AverageProcessingTime(incidents []*model.Incident) string {
	var total time.Duration
	var count int
	for _, incident := range incidents {
		if incident.StartedProcessingAt == nil || incident.Status == types.IncidentStatusNew {
			continue
		}
		total += u.work.Duration(incident.ReceivedAt, *incident.StartedProcessingAt)
		count++
	}
	if count == 0 {
		return notAvailable
	}
	return worktime.Format(total / time.Duration(count))
}

// AverageResolutionTime is the mean working time from reception to closure,
// over closed records
func (u *StatsUseCase) AverageResolutionTime(incidents []*model.Incident) string {
	var total time.Duration
	var count int
	for _, incident := range incidents {
		if incident.Status != types.IncidentStatusClosed || incident.ClosedAt == nil {
			continue
		}
		total += u.work.Duration(incident.ReceivedAt, *incident.ClosedAt)
		count++
	}
	if count == 0 {
		return notAvailable
	}
	return worktime.Format(total / time.Duration(count))
}

// ResolutionRate is the share of closed records over all records
func (u *StatsUseCase) ResolutionRate(incidents []*model.Incident) string {
	if len(incidents) == 0 {
		return notAvailable
	}
	var closed int
	for _, incident := range incidents {
		if incident.Status == types.IncidentStatusClosed {
			closed++
		}
	}
	return fmt.Sprintf("%.1f%%", float64(closed)/float64(len(incidents))*100)
}

// OldestOpenIncidentAge is the working-time age of the open record with the
// earliest reception timestamp
func (u *StatsUseCase) OldestOpenIncidentAge(incidents []*model.Incident) string {
	var oldest *model.Incident
	for _, incident := range incidents {
		if !incident.Status.IsOpen() {
			continue
		}
		if oldest == nil || incident.ReceivedAt.Before(oldest.ReceivedAt) {
			oldest = incident
		}
	}
	if oldest == nil {
		return notAvailable
	}
	return worktime.Format(u.work.Duration(oldest.ReceivedAt, u.clock()))
}

// TopMediaMaterials counts occurrences per material category and returns
// the n most frequent. Ties keep first-encounter order.
func (u *StatsUseCase) TopMediaMaterials(incidents []*model.Incident, n int) []model.CategoryCount {
	return topCounts(incidents, n, func(incident *model.Incident) string {
		return incident.MediaMaterial.String()
	})
}

// TopPlatforms counts occurrences per platform category and returns the n
// most frequent. Ties keep first-encounter order.
func (u *StatsUseCase) TopPlatforms(incidents []*model.Incident, n int) []model.CategoryCount {
	return topCounts(incidents, n, func(incident *model.Incident) string {
		return incident.Platform.String()
	})
}

func topCounts(incidents []*model.Incident, n int, key func(*model.Incident) string) []model.CategoryCount {
	counts := make(map[string]int)
	order := []string{}
	for _, incident := range incidents {
		name := key(incident)
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	result := make([]model.CategoryCount, 0, len(order))
	for _, name := range order {
		result = append(result, model.CategoryCount{Name: name, Count: counts[name]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if n >= 0 && len(result) > n {
		result = result[:n]
	}
	return result
}
