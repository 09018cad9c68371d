// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdaptationEvent is the predicate function for adaptationevent builders.
type AdaptationEvent func(*sql.Selector)

// DomainEvent is the predicate function for domainevent builders.
type DomainEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Milestone is the predicate function for milestone builders.
type Milestone func(*sql.Selector)

// Objective is the predicate function for objective builders.
type Objective func(*sql.Selector)

// Sprint is the predicate function for sprint builders.
type Sprint func(*sql.Selector)

// SprintArtifact is the predicate function for sprintartifact builders.
type SprintArtifact func(*sql.Selector)
