// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/cadence/ent/adaptationevent"
	"github.com/abhisek/cadence/ent/domainevent"
	"github.com/abhisek/cadence/ent/llmrequestevent"
	"github.com/abhisek/cadence/ent/milestone"
	"github.com/abhisek/cadence/ent/objective"
	"github.com/abhisek/cadence/ent/schema"
	"github.com/abhisek/cadence/ent/sprint"
	"github.com/abhisek/cadence/ent/sprintartifact"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adaptationeventMixin := schema.AdaptationEvent{}.Mixin()
	adaptationeventMixinFields0 := adaptationeventMixin[0].Fields()
	_ = adaptationeventMixinFields0
	adaptationeventFields := schema.AdaptationEvent{}.Fields()
	_ = adaptationeventFields
	// adaptationeventDescTimestamp is the schema descriptor for timestamp field.
	adaptationeventDescTimestamp := adaptationeventMixinFields0[1].Descriptor()
	// adaptationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	adaptationevent.DefaultTimestamp = adaptationeventDescTimestamp.Default.(func() time.Time)
	// adaptationeventDescObjectiveID is the schema descriptor for objective_id field.
	adaptationeventDescObjectiveID := adaptationeventFields[0].Descriptor()
	// adaptationevent.ObjectiveIDValidator is a validator for the "objective_id" field. It is called by the builders before save.
	adaptationevent.ObjectiveIDValidator = adaptationeventDescObjectiveID.Validators[0].(func(string) error)
	// adaptationeventDescAdjustmentType is the schema descriptor for adjustment_type field.
	adaptationeventDescAdjustmentType := adaptationeventFields[1].Descriptor()
	// adaptationevent.AdjustmentTypeValidator is a validator for the "adjustment_type" field. It is called by the builders before save.
	adaptationevent.AdjustmentTypeValidator = adaptationeventDescAdjustmentType.Validators[0].(func(string) error)
	// adaptationeventDescReason is the schema descriptor for reason field.
	adaptationeventDescReason := adaptationeventFields[9].Descriptor()
	// adaptationevent.DefaultReason holds the default value on creation for the reason field.
	adaptationevent.DefaultReason = adaptationeventDescReason.Default.(string)
	// adaptationeventDescSource is the schema descriptor for source field.
	adaptationeventDescSource := adaptationeventFields[10].Descriptor()
	// adaptationevent.DefaultSource holds the default value on creation for the source field.
	adaptationevent.DefaultSource = adaptationeventDescSource.Default.(string)
	domaineventMixin := schema.DomainEvent{}.Mixin()
	domaineventMixinFields0 := domaineventMixin[0].Fields()
	_ = domaineventMixinFields0
	domaineventFields := schema.DomainEvent{}.Fields()
	_ = domaineventFields
	// domaineventDescTimestamp is the schema descriptor for timestamp field.
	domaineventDescTimestamp := domaineventMixinFields0[1].Descriptor()
	// domainevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	domainevent.DefaultTimestamp = domaineventDescTimestamp.Default.(func() time.Time)
	// domaineventDescEventType is the schema descriptor for event_type field.
	domaineventDescEventType := domaineventFields[0].Descriptor()
	// domainevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	domainevent.EventTypeValidator = domaineventDescEventType.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescPromptHash is the schema descriptor for prompt_hash field.
	llmrequesteventDescPromptHash := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultPromptHash holds the default value on creation for the prompt_hash field.
	llmrequestevent.DefaultPromptHash = llmrequesteventDescPromptHash.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	milestoneFields := schema.Milestone{}.Fields()
	_ = milestoneFields
	// milestoneDescObjectiveID is the schema descriptor for objective_id field.
	milestoneDescObjectiveID := milestoneFields[1].Descriptor()
	// milestone.ObjectiveIDValidator is a validator for the "objective_id" field. It is called by the builders before save.
	milestone.ObjectiveIDValidator = milestoneDescObjectiveID.Validators[0].(func(string) error)
	// milestoneDescTitle is the schema descriptor for title field.
	milestoneDescTitle := milestoneFields[2].Descriptor()
	// milestone.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	milestone.TitleValidator = milestoneDescTitle.Validators[0].(func(string) error)
	// milestoneDescTargetDay is the schema descriptor for target_day field.
	milestoneDescTargetDay := milestoneFields[3].Descriptor()
	// milestone.TargetDayValidator is a validator for the "target_day" field. It is called by the builders before save.
	milestone.TargetDayValidator = milestoneDescTargetDay.Validators[0].(func(int) error)
	// milestoneDescCompleted is the schema descriptor for completed field.
	milestoneDescCompleted := milestoneFields[4].Descriptor()
	// milestone.DefaultCompleted holds the default value on creation for the completed field.
	milestone.DefaultCompleted = milestoneDescCompleted.Default.(bool)
	// milestoneDescCreatedAt is the schema descriptor for created_at field.
	milestoneDescCreatedAt := milestoneFields[6].Descriptor()
	// milestone.DefaultCreatedAt holds the default value on creation for the created_at field.
	milestone.DefaultCreatedAt = milestoneDescCreatedAt.Default.(func() time.Time)
	// milestoneDescID is the schema descriptor for id field.
	milestoneDescID := milestoneFields[0].Descriptor()
	// milestone.IDValidator is a validator for the "id" field. It is called by the builders before save.
	milestone.IDValidator = milestoneDescID.Validators[0].(func(string) error)
	objectiveFields := schema.Objective{}.Fields()
	_ = objectiveFields
	// objectiveDescUserID is the schema descriptor for user_id field.
	objectiveDescUserID := objectiveFields[1].Descriptor()
	// objective.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	objective.UserIDValidator = objectiveDescUserID.Validators[0].(func(string) error)
	// objectiveDescTitle is the schema descriptor for title field.
	objectiveDescTitle := objectiveFields[2].Descriptor()
	// objective.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	objective.TitleValidator = objectiveDescTitle.Validators[0].(func(string) error)
	// objectiveDescDescription is the schema descriptor for description field.
	objectiveDescDescription := objectiveFields[3].Descriptor()
	// objective.DefaultDescription holds the default value on creation for the description field.
	objective.DefaultDescription = objectiveDescDescription.Default.(string)
	// objectiveDescPriority is the schema descriptor for priority field.
	objectiveDescPriority := objectiveFields[6].Descriptor()
	// objective.DefaultPriority holds the default value on creation for the priority field.
	objective.DefaultPriority = objectiveDescPriority.Default.(string)
	// objectiveDescEstimatedTotalDays is the schema descriptor for estimated_total_days field.
	objectiveDescEstimatedTotalDays := objectiveFields[8].Descriptor()
	// objective.EstimatedTotalDaysValidator is a validator for the "estimated_total_days" field. It is called by the builders before save.
	objective.EstimatedTotalDaysValidator = objectiveDescEstimatedTotalDays.Validators[0].(func(int) error)
	// objectiveDescCompletedDays is the schema descriptor for completed_days field.
	objectiveDescCompletedDays := objectiveFields[9].Descriptor()
	// objective.DefaultCompletedDays holds the default value on creation for the completed_days field.
	objective.DefaultCompletedDays = objectiveDescCompletedDays.Default.(int)
	// objectiveDescCurrentDifficulty is the schema descriptor for current_difficulty field.
	objectiveDescCurrentDifficulty := objectiveFields[10].Descriptor()
	// objective.DefaultCurrentDifficulty holds the default value on creation for the current_difficulty field.
	objective.DefaultCurrentDifficulty = objectiveDescCurrentDifficulty.Default.(int)
	// objective.CurrentDifficultyValidator is a validator for the "current_difficulty" field. It is called by the builders before save.
	objective.CurrentDifficultyValidator = func() func(int) error {
		validators := objectiveDescCurrentDifficulty.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(current_difficulty int) error {
			for _, fn := range fns {
				if err := fn(current_difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// objectiveDescLearningVelocity is the schema descriptor for learning_velocity field.
	objectiveDescLearningVelocity := objectiveFields[11].Descriptor()
	// objective.DefaultLearningVelocity holds the default value on creation for the learning_velocity field.
	objective.DefaultLearningVelocity = objectiveDescLearningVelocity.Default.(float64)
	// objectiveDescRecalibrationCount is the schema descriptor for recalibration_count field.
	objectiveDescRecalibrationCount := objectiveFields[12].Descriptor()
	// objective.DefaultRecalibrationCount holds the default value on creation for the recalibration_count field.
	objective.DefaultRecalibrationCount = objectiveDescRecalibrationCount.Default.(int)
	// objectiveDescCurrentStreak is the schema descriptor for current_streak field.
	objectiveDescCurrentStreak := objectiveFields[13].Descriptor()
	// objective.DefaultCurrentStreak holds the default value on creation for the current_streak field.
	objective.DefaultCurrentStreak = objectiveDescCurrentStreak.Default.(int)
	// objectiveDescLongestStreak is the schema descriptor for longest_streak field.
	objectiveDescLongestStreak := objectiveFields[14].Descriptor()
	// objective.DefaultLongestStreak holds the default value on creation for the longest_streak field.
	objective.DefaultLongestStreak = objectiveDescLongestStreak.Default.(int)
	// objectiveDescCreatedAt is the schema descriptor for created_at field.
	objectiveDescCreatedAt := objectiveFields[16].Descriptor()
	// objective.DefaultCreatedAt holds the default value on creation for the created_at field.
	objective.DefaultCreatedAt = objectiveDescCreatedAt.Default.(func() time.Time)
	// objectiveDescUpdatedAt is the schema descriptor for updated_at field.
	objectiveDescUpdatedAt := objectiveFields[17].Descriptor()
	// objective.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	objective.DefaultUpdatedAt = objectiveDescUpdatedAt.Default.(func() time.Time)
	// objective.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	objective.UpdateDefaultUpdatedAt = objectiveDescUpdatedAt.UpdateDefault.(func() time.Time)
	// objectiveDescID is the schema descriptor for id field.
	objectiveDescID := objectiveFields[0].Descriptor()
	// objective.IDValidator is a validator for the "id" field. It is called by the builders before save.
	objective.IDValidator = objectiveDescID.Validators[0].(func(string) error)
	sprintFields := schema.Sprint{}.Fields()
	_ = sprintFields
	// sprintDescObjectiveID is the schema descriptor for objective_id field.
	sprintDescObjectiveID := sprintFields[1].Descriptor()
	// sprint.ObjectiveIDValidator is a validator for the "objective_id" field. It is called by the builders before save.
	sprint.ObjectiveIDValidator = sprintDescObjectiveID.Validators[0].(func(string) error)
	// sprintDescDayNumber is the schema descriptor for day_number field.
	sprintDescDayNumber := sprintFields[2].Descriptor()
	// sprint.DayNumberValidator is a validator for the "day_number" field. It is called by the builders before save.
	sprint.DayNumberValidator = sprintDescDayNumber.Validators[0].(func(int) error)
	// sprintDescLengthDays is the schema descriptor for length_days field.
	sprintDescLengthDays := sprintFields[3].Descriptor()
	// sprint.DefaultLengthDays holds the default value on creation for the length_days field.
	sprint.DefaultLengthDays = sprintDescLengthDays.Default.(int)
	// sprintDescTotalEstimatedHours is the schema descriptor for total_estimated_hours field.
	sprintDescTotalEstimatedHours := sprintFields[4].Descriptor()
	// sprint.DefaultTotalEstimatedHours holds the default value on creation for the total_estimated_hours field.
	sprint.DefaultTotalEstimatedHours = sprintDescTotalEstimatedHours.Default.(float64)
	// sprintDescDifficulty is the schema descriptor for difficulty field.
	sprintDescDifficulty := sprintFields[5].Descriptor()
	// sprint.DefaultDifficulty holds the default value on creation for the difficulty field.
	sprint.DefaultDifficulty = sprintDescDifficulty.Default.(string)
	// sprintDescCompletionPercentage is the schema descriptor for completion_percentage field.
	sprintDescCompletionPercentage := sprintFields[12].Descriptor()
	// sprint.DefaultCompletionPercentage holds the default value on creation for the completion_percentage field.
	sprint.DefaultCompletionPercentage = sprintDescCompletionPercentage.Default.(float64)
	// sprintDescReviewerSummary is the schema descriptor for reviewer_summary field.
	sprintDescReviewerSummary := sprintFields[14].Descriptor()
	// sprint.DefaultReviewerSummary holds the default value on creation for the reviewer_summary field.
	sprint.DefaultReviewerSummary = sprintDescReviewerSummary.Default.(string)
	// sprintDescSelfEvaluationReflection is the schema descriptor for self_evaluation_reflection field.
	sprintDescSelfEvaluationReflection := sprintFields[16].Descriptor()
	// sprint.DefaultSelfEvaluationReflection holds the default value on creation for the self_evaluation_reflection field.
	sprint.DefaultSelfEvaluationReflection = sprintDescSelfEvaluationReflection.Default.(string)
	// sprintDescCreatedAt is the schema descriptor for created_at field.
	sprintDescCreatedAt := sprintFields[17].Descriptor()
	// sprint.DefaultCreatedAt holds the default value on creation for the created_at field.
	sprint.DefaultCreatedAt = sprintDescCreatedAt.Default.(func() time.Time)
	// sprintDescUpdatedAt is the schema descriptor for updated_at field.
	sprintDescUpdatedAt := sprintFields[18].Descriptor()
	// sprint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sprint.DefaultUpdatedAt = sprintDescUpdatedAt.Default.(func() time.Time)
	// sprint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sprint.UpdateDefaultUpdatedAt = sprintDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sprintDescID is the schema descriptor for id field.
	sprintDescID := sprintFields[0].Descriptor()
	// sprint.IDValidator is a validator for the "id" field. It is called by the builders before save.
	sprint.IDValidator = sprintDescID.Validators[0].(func(string) error)
	sprintartifactFields := schema.SprintArtifact{}.Fields()
	_ = sprintartifactFields
	// sprintartifactDescSprintID is the schema descriptor for sprint_id field.
	sprintartifactDescSprintID := sprintartifactFields[1].Descriptor()
	// sprintartifact.SprintIDValidator is a validator for the "sprint_id" field. It is called by the builders before save.
	sprintartifact.SprintIDValidator = sprintartifactDescSprintID.Validators[0].(func(string) error)
	// sprintartifactDescArtifactID is the schema descriptor for artifact_id field.
	sprintartifactDescArtifactID := sprintartifactFields[2].Descriptor()
	// sprintartifact.ArtifactIDValidator is a validator for the "artifact_id" field. It is called by the builders before save.
	sprintartifact.ArtifactIDValidator = sprintartifactDescArtifactID.Validators[0].(func(string) error)
	// sprintartifactDescProjectID is the schema descriptor for project_id field.
	sprintartifactDescProjectID := sprintartifactFields[3].Descriptor()
	// sprintartifact.DefaultProjectID holds the default value on creation for the project_id field.
	sprintartifact.DefaultProjectID = sprintartifactDescProjectID.Default.(string)
	// sprintartifactDescTitle is the schema descriptor for title field.
	sprintartifactDescTitle := sprintartifactFields[5].Descriptor()
	// sprintartifact.DefaultTitle holds the default value on creation for the title field.
	sprintartifact.DefaultTitle = sprintartifactDescTitle.Default.(string)
	// sprintartifactDescURL is the schema descriptor for url field.
	sprintartifactDescURL := sprintartifactFields[6].Descriptor()
	// sprintartifact.DefaultURL holds the default value on creation for the url field.
	sprintartifact.DefaultURL = sprintartifactDescURL.Default.(string)
	// sprintartifactDescNotes is the schema descriptor for notes field.
	sprintartifactDescNotes := sprintartifactFields[8].Descriptor()
	// sprintartifact.DefaultNotes holds the default value on creation for the notes field.
	sprintartifact.DefaultNotes = sprintartifactDescNotes.Default.(string)
	// sprintartifactDescCreatedAt is the schema descriptor for created_at field.
	sprintartifactDescCreatedAt := sprintartifactFields[9].Descriptor()
	// sprintartifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	sprintartifact.DefaultCreatedAt = sprintartifactDescCreatedAt.Default.(func() time.Time)
	// sprintartifactDescUpdatedAt is the schema descriptor for updated_at field.
	sprintartifactDescUpdatedAt := sprintartifactFields[10].Descriptor()
	// sprintartifact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sprintartifact.DefaultUpdatedAt = sprintartifactDescUpdatedAt.Default.(func() time.Time)
	// sprintartifact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sprintartifact.UpdateDefaultUpdatedAt = sprintartifactDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sprintartifactDescID is the schema descriptor for id field.
	sprintartifactDescID := sprintartifactFields[0].Descriptor()
	// sprintartifact.IDValidator is a validator for the "id" field. It is called by the builders before save.
	sprintartifact.IDValidator = sprintartifactDescID.Validators[0].(func(string) error)
}
