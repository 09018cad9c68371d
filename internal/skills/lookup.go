// Package skills derives a learner's skill map from reviewed sprint
// history. It backs the recalibrator's skill lookup without a separate
// skill-tracking system of record.
package skills

import (
	"context"
	"fmt"

	"github.com/abhisek/cadence/internal/adapt"
	"github.com/abhisek/cadence/internal/store"
)

// Thresholds for classifying a required skill from recent scores.
const (
	window        = 10
	masteredScore = 0.9
	lowScore      = 0.7
	minEvidence   = 2
)

// Tracker classifies an objective's required skills as mastered or
// struggling based on recent reviewed sprint scores.
type Tracker struct {
	objectives store.ObjectiveRepo
	sprints    store.SprintRepo
}

// NewTracker creates a skill tracker over the sprint history.
func NewTracker(objectives store.ObjectiveRepo, sprints store.SprintRepo) *Tracker {
	return &Tracker{objectives: objectives, sprints: sprints}
}

// GetUserSkillMap implements adapt.SkillLookup. Skills move to mastered
// only after repeated high scores; repeated low scores flag them as
// struggling. Sparse history yields an empty map rather than a guess.
func (t *Tracker) GetUserSkillMap(userID, objectiveID string) (adapt.SkillMap, error) {
	ctx := context.Background()

	obj, err := t.objectives.Get(ctx, objectiveID)
	if err != nil {
		return adapt.SkillMap{}, err
	}
	if obj.UserID != userID {
		return adapt.SkillMap{}, fmt.Errorf("objective %s is not owned by user %s", objectiveID, userID)
	}

	recent, err := t.sprints.RecentReviewed(ctx, objectiveID, window)
	if err != nil {
		return adapt.SkillMap{}, err
	}

	high, low := 0, 0
	for _, sp := range recent {
		switch {
		case *sp.Score >= masteredScore:
			high++
		case *sp.Score < lowScore:
			low++
		}
	}

	var m adapt.SkillMap
	switch {
	case low >= minEvidence:
		m.StrugglingAreas = append(m.StrugglingAreas, obj.RequiredSkills...)
	case high >= minEvidence && low == 0:
		m.MasteredSkills = append(m.MasteredSkills, obj.RequiredSkills...)
	}
	return m, nil
}
