// Code generated by ent, DO NOT EDIT.

package sprintartifact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldContainsFold(FieldID, id))
}

// SprintID applies equality check predicate on the "sprint_id" field. It's identical to SprintIDEQ.
func SprintID(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldSprintID, v))
}

// ArtifactID applies equality check predicate on the "artifact_id" field. It's identical to ArtifactIDEQ.
func ArtifactID(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldArtifactID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldProjectID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldTitle, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldURL, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldUpdatedAt, v))
}

// SprintIDEQ applies the EQ predicate on the "sprint_id" field.
func SprintIDEQ(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldSprintID, v))
}

// SprintIDNEQ applies the NEQ predicate on the "sprint_id" field.
func SprintIDNEQ(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNEQ(FieldSprintID, v))
}

// SprintIDIn applies the In predicate on the "sprint_id" field.
func SprintIDIn(vs ...string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldIn(FieldSprintID, vs...))
}

// SprintIDNotIn applies the NotIn predicate on the "sprint_id" field.
func SprintIDNotIn(vs ...string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNotIn(FieldSprintID, vs...))
}

// SprintIDGT applies the GT predicate on the "sprint_id" field.
func SprintIDGT(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGT(FieldSprintID, v))
}

// SprintIDGTE applies the GTE predicate on the "sprint_id" field.
func SprintIDGTE(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGTE(FieldSprintID, v))
}

// SprintIDLT applies the LT predicate on the "sprint_id" field.
func SprintIDLT(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLT(FieldSprintID, v))
}

// SprintIDLTE applies the LTE predicate on the "sprint_id" field.
func SprintIDLTE(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLTE(FieldSprintID, v))
}

// SprintIDContains applies the Contains predicate on the "sprint_id" field.
func SprintIDContains(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldContains(FieldSprintID, v))
}

// SprintIDHasPrefix applies the HasPrefix predicate on the "sprint_id" field.
func SprintIDHasPrefix(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldHasPrefix(FieldSprintID, v))
}

// SprintIDHasSuffix applies the HasSuffix predicate on the "sprint_id" field.
func SprintIDHasSuffix(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldHasSuffix(FieldSprintID, v))
}

// SprintIDEqualFold applies the EqualFold predicate on the "sprint_id" field.
func SprintIDEqualFold(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEqualFold(FieldSprintID, v))
}

// SprintIDContainsFold applies the ContainsFold predicate on the "sprint_id" field.
func SprintIDContainsFold(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldContainsFold(FieldSprintID, v))
}

// ArtifactIDEQ applies the EQ predicate on the "artifact_id" field.
func ArtifactIDEQ(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldArtifactID, v))
}

// ArtifactIDNEQ applies the NEQ predicate on the "artifact_id" field.
func ArtifactIDNEQ(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNEQ(FieldArtifactID, v))
}

// ArtifactIDIn applies the In predicate on the "artifact_id" field.
func ArtifactIDIn(vs ...string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldIn(FieldArtifactID, vs...))
}

// ArtifactIDNotIn applies the NotIn predicate on the "artifact_id" field.
func ArtifactIDNotIn(vs ...string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNotIn(FieldArtifactID, vs...))
}

// ArtifactIDGT applies the GT predicate on the "artifact_id" field.
func ArtifactIDGT(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGT(FieldArtifactID, v))
}

// ArtifactIDGTE applies the GTE predicate on the "artifact_id" field.
func ArtifactIDGTE(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGTE(FieldArtifactID, v))
}

// ArtifactIDLT applies the LT predicate on the "artifact_id" field.
func ArtifactIDLT(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLT(FieldArtifactID, v))
}

// ArtifactIDLTE applies the LTE predicate on the "artifact_id" field.
func ArtifactIDLTE(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLTE(FieldArtifactID, v))
}

// ArtifactIDContains applies the Contains predicate on the "artifact_id" field.
func ArtifactIDContains(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldContains(FieldArtifactID, v))
}

// ArtifactIDHasPrefix applies the HasPrefix predicate on the "artifact_id" field.
func ArtifactIDHasPrefix(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldHasPrefix(FieldArtifactID, v))
}

// ArtifactIDHasSuffix applies the HasSuffix predicate on the "artifact_id" field.
func ArtifactIDHasSuffix(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldHasSuffix(FieldArtifactID, v))
}

// ArtifactIDEqualFold applies the EqualFold predicate on the "artifact_id" field.
func ArtifactIDEqualFold(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEqualFold(FieldArtifactID, v))
}

// ArtifactIDContainsFold applies the ContainsFold predicate on the "artifact_id" field.
func ArtifactIDContainsFold(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldContainsFold(FieldArtifactID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldContainsFold(FieldProjectID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNotIn(FieldType, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldContainsFold(FieldTitle, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldContainsFold(FieldURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNotIn(FieldStatus, vs...))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SprintArtifact) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SprintArtifact) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SprintArtifact) predicate.SprintArtifact {
	return predicate.SprintArtifact(sql.NotPredicates(p))
}
