// Code generated by ent, DO NOT EDIT.

package qarun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/qawave/qawave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QARun {
	return predicate.QARun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QARun {
	return predicate.QARun(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldDescription, v))
}

// RequirementText applies equality check predicate on the "requirement_text" field. It's identical to RequirementTextEQ.
func RequirementText(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldRequirementText, v))
}

// SpecURL applies equality check predicate on the "spec_url" field. It's identical to SpecURLEQ.
func SpecURL(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldSpecURL, v))
}

// SpecInline applies equality check predicate on the "spec_inline" field. It's identical to SpecInlineEQ.
func SpecInline(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldSpecInline, v))
}

// SpecHash applies equality check predicate on the "spec_hash" field. It's identical to SpecHashEQ.
func SpecHash(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldSpecHash, v))
}

// BaseURL applies equality check predicate on the "base_url" field. It's identical to BaseURLEQ.
func BaseURL(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldBaseURL, v))
}

// TriggeredBy applies equality check predicate on the "triggered_by" field. It's identical to TriggeredByEQ.
func TriggeredBy(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldTriggeredBy, v))
}

// ReplayOf applies equality check predicate on the "replay_of" field. It's identical to ReplayOfEQ.
func ReplayOf(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldReplayOf, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldErrorKind, v))
}

// WorkerID applies equality check predicate on the "worker_id" field. It's identical to WorkerIDEQ.
func WorkerID(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldWorkerID, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldClaimedAt, v))
}

// HeartbeatAt applies equality check predicate on the "heartbeat_at" field. It's identical to HeartbeatAtEQ.
func HeartbeatAt(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldDurationMs, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.QARun {
	return predicate.QARun(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.QARun {
	return predicate.QARun(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContainsFold(FieldDescription, v))
}

// RequirementTextEQ applies the EQ predicate on the "requirement_text" field.
func RequirementTextEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldRequirementText, v))
}

// RequirementTextNEQ applies the NEQ predicate on the "requirement_text" field.
func RequirementTextNEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldRequirementText, v))
}

// RequirementTextIn applies the In predicate on the "requirement_text" field.
func RequirementTextIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldRequirementText, vs...))
}

// RequirementTextNotIn applies the NotIn predicate on the "requirement_text" field.
func RequirementTextNotIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldRequirementText, vs...))
}

// RequirementTextGT applies the GT predicate on the "requirement_text" field.
func RequirementTextGT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldRequirementText, v))
}

// RequirementTextGTE applies the GTE predicate on the "requirement_text" field.
func RequirementTextGTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldRequirementText, v))
}

// RequirementTextLT applies the LT predicate on the "requirement_text" field.
func RequirementTextLT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldRequirementText, v))
}

// RequirementTextLTE applies the LTE predicate on the "requirement_text" field.
func RequirementTextLTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldRequirementText, v))
}

// RequirementTextContains applies the Contains predicate on the "requirement_text" field.
func RequirementTextContains(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContains(FieldRequirementText, v))
}

// RequirementTextHasPrefix applies the HasPrefix predicate on the "requirement_text" field.
func RequirementTextHasPrefix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasPrefix(FieldRequirementText, v))
}

// RequirementTextHasSuffix applies the HasSuffix predicate on the "requirement_text" field.
func RequirementTextHasSuffix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasSuffix(FieldRequirementText, v))
}

// RequirementTextIsNil applies the IsNil predicate on the "requirement_text" field.
func RequirementTextIsNil() predicate.QARun {
	return predicate.QARun(sql.FieldIsNull(FieldRequirementText))
}

// RequirementTextNotNil applies the NotNil predicate on the "requirement_text" field.
func RequirementTextNotNil() predicate.QARun {
	return predicate.QARun(sql.FieldNotNull(FieldRequirementText))
}

// RequirementTextEqualFold applies the EqualFold predicate on the "requirement_text" field.
func RequirementTextEqualFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEqualFold(FieldRequirementText, v))
}

// RequirementTextContainsFold applies the ContainsFold predicate on the "requirement_text" field.
func RequirementTextContainsFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContainsFold(FieldRequirementText, v))
}

// SpecSourceEQ applies the EQ predicate on the "spec_source" field.
func SpecSourceEQ(v SpecSource) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldSpecSource, v))
}

// SpecSourceNEQ applies the NEQ predicate on the "spec_source" field.
func SpecSourceNEQ(v SpecSource) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldSpecSource, v))
}

// SpecSourceIn applies the In predicate on the "spec_source" field.
func SpecSourceIn(vs ...SpecSource) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldSpecSource, vs...))
}

// SpecSourceNotIn applies the NotIn predicate on the "spec_source" field.
func SpecSourceNotIn(vs ...SpecSource) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldSpecSource, vs...))
}

// SpecURLEQ applies the EQ predicate on the "spec_url" field.
func SpecURLEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldSpecURL, v))
}

// SpecURLNEQ applies the NEQ predicate on the "spec_url" field.
func SpecURLNEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldSpecURL, v))
}

// SpecURLIn applies the In predicate on the "spec_url" field.
func SpecURLIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldSpecURL, vs...))
}

// SpecURLNotIn applies the NotIn predicate on the "spec_url" field.
func SpecURLNotIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldSpecURL, vs...))
}

// SpecURLGT applies the GT predicate on the "spec_url" field.
func SpecURLGT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldSpecURL, v))
}

// SpecURLGTE applies the GTE predicate on the "spec_url" field.
func SpecURLGTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldSpecURL, v))
}

// SpecURLLT applies the LT predicate on the "spec_url" field.
func SpecURLLT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldSpecURL, v))
}

// SpecURLLTE applies the LTE predicate on the "spec_url" field.
func SpecURLLTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldSpecURL, v))
}

// SpecURLContains applies the Contains predicate on the "spec_url" field.
func SpecURLContains(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContains(FieldSpecURL, v))
}

// SpecURLHasPrefix applies the HasPrefix predicate on the "spec_url" field.
func SpecURLHasPrefix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasPrefix(FieldSpecURL, v))
}

// SpecURLHasSuffix applies the HasSuffix predicate on the "spec_url" field.
func SpecURLHasSuffix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasSuffix(FieldSpecURL, v))
}

// SpecURLIsNil applies the IsNil predicate on the "spec_url" field.
func SpecURLIsNil() predicate.QARun {
	return predicate.QARun(sql.FieldIsNull(FieldSpecURL))
}

// SpecURLNotNil applies the NotNil predicate on the "spec_url" field.
func SpecURLNotNil() predicate.QARun {
	return predicate.QARun(sql.FieldNotNull(FieldSpecURL))
}

// SpecURLEqualFold applies the EqualFold predicate on the "spec_url" field.
func SpecURLEqualFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEqualFold(FieldSpecURL, v))
}

// SpecURLContainsFold applies the ContainsFold predicate on the "spec_url" field.
func SpecURLContainsFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContainsFold(FieldSpecURL, v))
}

// SpecInlineEQ applies the EQ predicate on the "spec_inline" field.
func SpecInlineEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldSpecInline, v))
}

// SpecInlineNEQ applies the NEQ predicate on the "spec_inline" field.
func SpecInlineNEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldSpecInline, v))
}

// SpecInlineIn applies the In predicate on the "spec_inline" field.
func SpecInlineIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldSpecInline, vs...))
}

// SpecInlineNotIn applies the NotIn predicate on the "spec_inline" field.
func SpecInlineNotIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldSpecInline, vs...))
}

// SpecInlineGT applies the GT predicate on the "spec_inline" field.
func SpecInlineGT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldSpecInline, v))
}

// SpecInlineGTE applies the GTE predicate on the "spec_inline" field.
func SpecInlineGTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldSpecInline, v))
}

// SpecInlineLT applies the LT predicate on the "spec_inline" field.
func SpecInlineLT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldSpecInline, v))
}

// SpecInlineLTE applies the LTE predicate on the "spec_inline" field.
func SpecInlineLTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldSpecInline, v))
}

// SpecInlineContains applies the Contains predicate on the "spec_inline" field.
func SpecInlineContains(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContains(FieldSpecInline, v))
}

// SpecInlineHasPrefix applies the HasPrefix predicate on the "spec_inline" field.
func SpecInlineHasPrefix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasPrefix(FieldSpecInline, v))
}

// SpecInlineHasSuffix applies the HasSuffix predicate on the "spec_inline" field.
func SpecInlineHasSuffix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasSuffix(FieldSpecInline, v))
}

// SpecInlineIsNil applies the IsNil predicate on the "spec_inline" field.
func SpecInlineIsNil() predicate.QARun {
	return predicate.QARun(sql.FieldIsNull(FieldSpecInline))
}

// SpecInlineNotNil applies the NotNil predicate on the "spec_inline" field.
func SpecInlineNotNil() predicate.QARun {
	return predicate.QARun(sql.FieldNotNull(FieldSpecInline))
}

// SpecInlineEqualFold applies the EqualFold predicate on the "spec_inline" field.
func SpecInlineEqualFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEqualFold(FieldSpecInline, v))
}

// SpecInlineContainsFold applies the ContainsFold predicate on the "spec_inline" field.
func SpecInlineContainsFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContainsFold(FieldSpecInline, v))
}

// SpecHashEQ applies the EQ predicate on the "spec_hash" field.
func SpecHashEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldSpecHash, v))
}

// SpecHashNEQ applies the NEQ predicate on the "spec_hash" field.
func SpecHashNEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldSpecHash, v))
}

// SpecHashIn applies the In predicate on the "spec_hash" field.
func SpecHashIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldSpecHash, vs...))
}

// SpecHashNotIn applies the NotIn predicate on the "spec_hash" field.
func SpecHashNotIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldSpecHash, vs...))
}

// SpecHashGT applies the GT predicate on the "spec_hash" field.
func SpecHashGT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldSpecHash, v))
}

// SpecHashGTE applies the GTE predicate on the "spec_hash" field.
func SpecHashGTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldSpecHash, v))
}

// SpecHashLT applies the LT predicate on the "spec_hash" field.
func SpecHashLT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldSpecHash, v))
}

// SpecHashLTE applies the LTE predicate on the "spec_hash" field.
func SpecHashLTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldSpecHash, v))
}

// SpecHashContains applies the Contains predicate on the "spec_hash" field.
func SpecHashContains(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContains(FieldSpecHash, v))
}

// SpecHashHasPrefix applies the HasPrefix predicate on the "spec_hash" field.
func SpecHashHasPrefix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasPrefix(FieldSpecHash, v))
}

// SpecHashHasSuffix applies the HasSuffix predicate on the "spec_hash" field.
func SpecHashHasSuffix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasSuffix(FieldSpecHash, v))
}

// SpecHashIsNil applies the IsNil predicate on the "spec_hash" field.
func SpecHashIsNil() predicate.QARun {
	return predicate.QARun(sql.FieldIsNull(FieldSpecHash))
}

// SpecHashNotNil applies the NotNil predicate on the "spec_hash" field.
func SpecHashNotNil() predicate.QARun {
	return predicate.QARun(sql.FieldNotNull(FieldSpecHash))
}

// SpecHashEqualFold applies the EqualFold predicate on the "spec_hash" field.
func SpecHashEqualFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEqualFold(FieldSpecHash, v))
}

// SpecHashContainsFold applies the ContainsFold predicate on the "spec_hash" field.
func SpecHashContainsFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContainsFold(FieldSpecHash, v))
}

// BaseURLEQ applies the EQ predicate on the "base_url" field.
func BaseURLEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldBaseURL, v))
}

// BaseURLNEQ applies the NEQ predicate on the "base_url" field.
func BaseURLNEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldBaseURL, v))
}

// BaseURLIn applies the In predicate on the "base_url" field.
func BaseURLIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldBaseURL, vs...))
}

// BaseURLNotIn applies the NotIn predicate on the "base_url" field.
func BaseURLNotIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldBaseURL, vs...))
}

// BaseURLGT applies the GT predicate on the "base_url" field.
func BaseURLGT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldBaseURL, v))
}

// BaseURLGTE applies the GTE predicate on the "base_url" field.
func BaseURLGTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldBaseURL, v))
}

// BaseURLLT applies the LT predicate on the "base_url" field.
func BaseURLLT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldBaseURL, v))
}

// BaseURLLTE applies the LTE predicate on the "base_url" field.
func BaseURLLTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldBaseURL, v))
}

// BaseURLContains applies the Contains predicate on the "base_url" field.
func BaseURLContains(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContains(FieldBaseURL, v))
}

// BaseURLHasPrefix applies the HasPrefix predicate on the "base_url" field.
func BaseURLHasPrefix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasPrefix(FieldBaseURL, v))
}

// BaseURLHasSuffix applies the HasSuffix predicate on the "base_url" field.
func BaseURLHasSuffix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasSuffix(FieldBaseURL, v))
}

// BaseURLEqualFold applies the EqualFold predicate on the "base_url" field.
func BaseURLEqualFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEqualFold(FieldBaseURL, v))
}

// BaseURLContainsFold applies the ContainsFold predicate on the "base_url" field.
func BaseURLContainsFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContainsFold(FieldBaseURL, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldMode, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldStatus, vs...))
}

// TriggeredByEQ applies the EQ predicate on the "triggered_by" field.
func TriggeredByEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldTriggeredBy, v))
}

// TriggeredByNEQ applies the NEQ predicate on the "triggered_by" field.
func TriggeredByNEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldTriggeredBy, v))
}

// TriggeredByIn applies the In predicate on the "triggered_by" field.
func TriggeredByIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldTriggeredBy, vs...))
}

// TriggeredByNotIn applies the NotIn predicate on the "triggered_by" field.
func TriggeredByNotIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldTriggeredBy, vs...))
}

// TriggeredByGT applies the GT predicate on the "triggered_by" field.
func TriggeredByGT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldTriggeredBy, v))
}

// TriggeredByGTE applies the GTE predicate on the "triggered_by" field.
func TriggeredByGTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldTriggeredBy, v))
}

// TriggeredByLT applies the LT predicate on the "triggered_by" field.
func TriggeredByLT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldTriggeredBy, v))
}

// TriggeredByLTE applies the LTE predicate on the "triggered_by" field.
func TriggeredByLTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldTriggeredBy, v))
}

// TriggeredByContains applies the Contains predicate on the "triggered_by" field.
func TriggeredByContains(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContains(FieldTriggeredBy, v))
}

// TriggeredByHasPrefix applies the HasPrefix predicate on the "triggered_by" field.
func TriggeredByHasPrefix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasPrefix(FieldTriggeredBy, v))
}

// TriggeredByHasSuffix applies the HasSuffix predicate on the "triggered_by" field.
func TriggeredByHasSuffix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasSuffix(FieldTriggeredBy, v))
}

// TriggeredByIsNil applies the IsNil predicate on the "triggered_by" field.
func TriggeredByIsNil() predicate.QARun {
	return predicate.QARun(sql.FieldIsNull(FieldTriggeredBy))
}

// TriggeredByNotNil applies the NotNil predicate on the "triggered_by" field.
func TriggeredByNotNil() predicate.QARun {
	return predicate.QARun(sql.FieldNotNull(FieldTriggeredBy))
}

// TriggeredByEqualFold applies the EqualFold predicate on the "triggered_by" field.
func TriggeredByEqualFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEqualFold(FieldTriggeredBy, v))
}

// TriggeredByContainsFold applies the ContainsFold predicate on the "triggered_by" field.
func TriggeredByContainsFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContainsFold(FieldTriggeredBy, v))
}

// ReplayOfEQ applies the EQ predicate on the "replay_of" field.
func ReplayOfEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldReplayOf, v))
}

// ReplayOfNEQ applies the NEQ predicate on the "replay_of" field.
func ReplayOfNEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldReplayOf, v))
}

// ReplayOfIn applies the In predicate on the "replay_of" field.
func ReplayOfIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldReplayOf, vs...))
}

// ReplayOfNotIn applies the NotIn predicate on the "replay_of" field.
func ReplayOfNotIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldReplayOf, vs...))
}

// ReplayOfGT applies the GT predicate on the "replay_of" field.
func ReplayOfGT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldReplayOf, v))
}

// ReplayOfGTE applies the GTE predicate on the "replay_of" field.
func ReplayOfGTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldReplayOf, v))
}

// ReplayOfLT applies the LT predicate on the "replay_of" field.
func ReplayOfLT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldReplayOf, v))
}

// ReplayOfLTE applies the LTE predicate on the "replay_of" field.
func ReplayOfLTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldReplayOf, v))
}

// ReplayOfContains applies the Contains predicate on the "replay_of" field.
func ReplayOfContains(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContains(FieldReplayOf, v))
}

// ReplayOfHasPrefix applies the HasPrefix predicate on the "replay_of" field.
func ReplayOfHasPrefix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasPrefix(FieldReplayOf, v))
}

// ReplayOfHasSuffix applies the HasSuffix predicate on the "replay_of" field.
func ReplayOfHasSuffix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasSuffix(FieldReplayOf, v))
}

// ReplayOfIsNil applies the IsNil predicate on the "replay_of" field.
func ReplayOfIsNil() predicate.QARun {
	return predicate.QARun(sql.FieldIsNull(FieldReplayOf))
}

// ReplayOfNotNil applies the NotNil predicate on the "replay_of" field.
func ReplayOfNotNil() predicate.QARun {
	return predicate.QARun(sql.FieldNotNull(FieldReplayOf))
}

// ReplayOfEqualFold applies the EqualFold predicate on the "replay_of" field.
func ReplayOfEqualFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEqualFold(FieldReplayOf, v))
}

// ReplayOfContainsFold applies the ContainsFold predicate on the "replay_of" field.
func ReplayOfContainsFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContainsFold(FieldReplayOf, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.QARun {
	return predicate.QARun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.QARun {
	return predicate.QARun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.QARun {
	return predicate.QARun(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.QARun {
	return predicate.QARun(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContainsFold(FieldErrorKind, v))
}

// WorkerIDEQ applies the EQ predicate on the "worker_id" field.
func WorkerIDEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldWorkerID, v))
}

// WorkerIDNEQ applies the NEQ predicate on the "worker_id" field.
func WorkerIDNEQ(v string) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldWorkerID, v))
}

// WorkerIDIn applies the In predicate on the "worker_id" field.
func WorkerIDIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldWorkerID, vs...))
}

// WorkerIDNotIn applies the NotIn predicate on the "worker_id" field.
func WorkerIDNotIn(vs ...string) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldWorkerID, vs...))
}

// WorkerIDGT applies the GT predicate on the "worker_id" field.
func WorkerIDGT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldWorkerID, v))
}

// WorkerIDGTE applies the GTE predicate on the "worker_id" field.
func WorkerIDGTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldWorkerID, v))
}

// WorkerIDLT applies the LT predicate on the "worker_id" field.
func WorkerIDLT(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldWorkerID, v))
}

// WorkerIDLTE applies the LTE predicate on the "worker_id" field.
func WorkerIDLTE(v string) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldWorkerID, v))
}

// WorkerIDContains applies the Contains predicate on the "worker_id" field.
func WorkerIDContains(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContains(FieldWorkerID, v))
}

// WorkerIDHasPrefix applies the HasPrefix predicate on the "worker_id" field.
func WorkerIDHasPrefix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasPrefix(FieldWorkerID, v))
}

// WorkerIDHasSuffix applies the HasSuffix predicate on the "worker_id" field.
func WorkerIDHasSuffix(v string) predicate.QARun {
	return predicate.QARun(sql.FieldHasSuffix(FieldWorkerID, v))
}

// WorkerIDIsNil applies the IsNil predicate on the "worker_id" field.
func WorkerIDIsNil() predicate.QARun {
	return predicate.QARun(sql.FieldIsNull(FieldWorkerID))
}

// WorkerIDNotNil applies the NotNil predicate on the "worker_id" field.
func WorkerIDNotNil() predicate.QARun {
	return predicate.QARun(sql.FieldNotNull(FieldWorkerID))
}

// WorkerIDEqualFold applies the EqualFold predicate on the "worker_id" field.
func WorkerIDEqualFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldEqualFold(FieldWorkerID, v))
}

// WorkerIDContainsFold applies the ContainsFold predicate on the "worker_id" field.
func WorkerIDContainsFold(v string) predicate.QARun {
	return predicate.QARun(sql.FieldContainsFold(FieldWorkerID, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.QARun {
	return predicate.QARun(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.QARun {
	return predicate.QARun(sql.FieldNotNull(FieldClaimedAt))
}

// HeartbeatAtEQ applies the EQ predicate on the "heartbeat_at" field.
func HeartbeatAtEQ(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtNEQ applies the NEQ predicate on the "heartbeat_at" field.
func HeartbeatAtNEQ(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtIn applies the In predicate on the "heartbeat_at" field.
func HeartbeatAtIn(vs ...time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtNotIn applies the NotIn predicate on the "heartbeat_at" field.
func HeartbeatAtNotIn(vs ...time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtGT applies the GT predicate on the "heartbeat_at" field.
func HeartbeatAtGT(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldHeartbeatAt, v))
}

// HeartbeatAtGTE applies the GTE predicate on the "heartbeat_at" field.
func HeartbeatAtGTE(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldHeartbeatAt, v))
}

// HeartbeatAtLT applies the LT predicate on the "heartbeat_at" field.
func HeartbeatAtLT(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldHeartbeatAt, v))
}

// HeartbeatAtLTE applies the LTE predicate on the "heartbeat_at" field.
func HeartbeatAtLTE(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldHeartbeatAt, v))
}

// HeartbeatAtIsNil applies the IsNil predicate on the "heartbeat_at" field.
func HeartbeatAtIsNil() predicate.QARun {
	return predicate.QARun(sql.FieldIsNull(FieldHeartbeatAt))
}

// HeartbeatAtNotNil applies the NotNil predicate on the "heartbeat_at" field.
func HeartbeatAtNotNil() predicate.QARun {
	return predicate.QARun(sql.FieldNotNull(FieldHeartbeatAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.QARun {
	return predicate.QARun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.QARun {
	return predicate.QARun(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.QARun {
	return predicate.QARun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.QARun {
	return predicate.QARun(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.QARun {
	return predicate.QARun(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.QARun {
	return predicate.QARun(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.QARun {
	return predicate.QARun(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.QARun {
	return predicate.QARun(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.QARun {
	return predicate.QARun(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.QARun {
	return predicate.QARun(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.QARun {
	return predicate.QARun(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.QARun {
	return predicate.QARun(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.QARun {
	return predicate.QARun(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.QARun {
	return predicate.QARun(sql.FieldNotNull(FieldDurationMs))
}

// HasScenarios applies the HasEdge predicate on the "scenarios" edge.
func HasScenarios() predicate.QARun {
	return predicate.QARun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ScenariosTable, ScenariosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScenariosWith applies the HasEdge predicate on the "scenarios" edge with a given conditions (other predicates).
func HasScenariosWith(preds ...predicate.Scenario) predicate.QARun {
	return predicate.QARun(func(s *sql.Selector) {
		step := newScenariosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStepResults applies the HasEdge predicate on the "step_results" edge.
func HasStepResults() predicate.QARun {
	return predicate.QARun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepResultsTable, StepResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepResultsWith applies the HasEdge predicate on the "step_results" edge with a given conditions (other predicates).
func HasStepResultsWith(preds ...predicate.StepResult) predicate.QARun {
	return predicate.QARun(func(s *sql.Selector) {
		step := newStepResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.QARun {
	return predicate.QARun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.RunEvent) predicate.QARun {
	return predicate.QARun(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPayload applies the HasEdge predicate on the "payload" edge.
func HasPayload() predicate.QARun {
	return predicate.QARun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, PayloadTable, PayloadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPayloadWith applies the HasEdge predicate on the "payload" edge with a given conditions (other predicates).
func HasPayloadWith(preds ...predicate.RunPayload) predicate.QARun {
	return predicate.QARun(func(s *sql.Selector) {
		step := newPayloadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCoverage applies the HasEdge predicate on the "coverage" edge.
func HasCoverage() predicate.QARun {
	return predicate.QARun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, CoverageTable, CoverageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCoverageWith applies the HasEdge predicate on the "coverage" edge with a given conditions (other predicates).
func HasCoverageWith(preds ...predicate.CoverageSnapshot) predicate.QARun {
	return predicate.QARun(func(s *sql.Selector) {
		step := newCoverageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSummary applies the HasEdge predicate on the "summary" edge.
func HasSummary() predicate.QARun {
	return predicate.QARun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, SummaryTable, SummaryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSummaryWith applies the HasEdge predicate on the "summary" edge with a given conditions (other predicates).
func HasSummaryWith(preds ...predicate.QASummary) predicate.QARun {
	return predicate.QARun(func(s *sql.Selector) {
		step := newSummaryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QARun) predicate.QARun {
	return predicate.QARun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QARun) predicate.QARun {
	return predicate.QARun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QARun) predicate.QARun {
	return predicate.QARun(sql.NotPredicates(p))
}
