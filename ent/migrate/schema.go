// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CoverageSnapshotsColumns holds the columns for the "coverage_snapshots" table.
	CoverageSnapshotsColumns = []*schema.Column{
		{Name: "coverage_id", Type: field.TypeString, Unique: true},
		{Name: "ops_total", Type: field.TypeInt},
		{Name: "ops_covered", Type: field.TypeInt},
		{Name: "ops_failed", Type: field.TypeInt},
		{Name: "uncovered_ops", Type: field.TypeJSON, Nullable: true},
		{Name: "per_op_status", Type: field.TypeJSON, Nullable: true},
		{Name: "scenarios_passed", Type: field.TypeInt},
		{Name: "scenarios_failed", Type: field.TypeInt},
		{Name: "computed_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
	}
	// CoverageSnapshotsTable holds the schema information for the "coverage_snapshots" table.
	CoverageSnapshotsTable = &schema.Table{
		Name:       "coverage_snapshots",
		Columns:    CoverageSnapshotsColumns,
		PrimaryKey: []*schema.Column{CoverageSnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "coverage_snapshots_qa_runs_coverage",
				Columns:    []*schema.Column{CoverageSnapshotsColumns[9]},
				RefColumns: []*schema.Column{QaRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// QaRunsColumns holds the columns for the "qa_runs" table.
	QaRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "requirement_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "spec_source", Type: field.TypeEnum, Enums: []string{"url", "inline"}},
		{Name: "spec_url", Type: field.TypeString, Nullable: true},
		{Name: "spec_inline", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "spec_hash", Type: field.TypeString, Nullable: true},
		{Name: "base_url", Type: field.TypeString},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"standard", "security", "performance"}, Default: "standard"},
		{Name: "config", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"requested", "spec_fetched", "ai_success", "execution_in_progress", "execution_complete", "qa_eval_in_progress", "qa_eval_done", "complete", "cancelled", "failed_spec_fetch", "failed_generation", "failed_execution"}, Default: "requested"},
		{Name: "triggered_by", Type: field.TypeString, Nullable: true},
		{Name: "replay_of", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
	}
	// QaRunsTable holds the schema information for the "qa_runs" table.
	QaRunsTable = &schema.Table{
		Name:       "qa_runs",
		Columns:    QaRunsColumns,
		PrimaryKey: []*schema.Column{QaRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "qarun_status",
				Unique:  false,
				Columns: []*schema.Column{QaRunsColumns[11]},
			},
			{
				Name:    "qarun_worker_id",
				Unique:  false,
				Columns: []*schema.Column{QaRunsColumns[16]},
			},
			{
				Name:    "qarun_triggered_by",
				Unique:  false,
				Columns: []*schema.Column{QaRunsColumns[12]},
			},
			{
				Name:    "qarun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{QaRunsColumns[11], QaRunsColumns[19]},
			},
			{
				Name:    "qarun_status_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{QaRunsColumns[11], QaRunsColumns[18]},
			},
			{
				Name:    "qa_runs_requested_scan",
				Unique:  false,
				Columns: []*schema.Column{QaRunsColumns[19]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'requested'",
				},
			},
		},
	}
	// QaSummariesColumns holds the columns for the "qa_summaries" table.
	QaSummariesColumns = []*schema.Column{
		{Name: "summary_id", Type: field.TypeString, Unique: true},
		{Name: "overall_verdict", Type: field.TypeEnum, Enums: []string{"PASS", "FAIL", "INCONCLUSIVE"}},
		{Name: "passed_scenarios", Type: field.TypeInt},
		{Name: "failed_scenarios", Type: field.TypeInt},
		{Name: "errored_scenarios", Type: field.TypeInt},
		{Name: "narrative_summary", Type: field.TypeString, Size: 2147483647},
		{Name: "narrative_source", Type: field.TypeEnum, Enums: []string{"ai", "template"}},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "quality_score", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
	}
	// QaSummariesTable holds the schema information for the "qa_summaries" table.
	QaSummariesTable = &schema.Table{
		Name:       "qa_summaries",
		Columns:    QaSummariesColumns,
		PrimaryKey: []*schema.Column{QaSummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "qa_summaries_qa_runs_summary",
				Columns:    []*schema.Column{QaSummariesColumns[10]},
				RefColumns: []*schema.Column{QaRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"REQUESTED", "SPEC_FETCHED", "SPEC_FETCH_FAILED", "SCENARIO_CREATED", "SCENARIO_GENERATION_FAILED", "AI_SUCCESS", "AI_FAILED", "EXECUTION_STARTED", "EXECUTION_SUCCESS", "EXECUTION_FAILED", "QA_EVAL_STARTED", "QA_EVAL_DONE", "QA_EVAL_FAILED", "COMPLETE", "FAILED", "CANCELLED"}},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "scenario_id", Type: field.TypeString, Nullable: true},
		{Name: "step_result_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_events_qa_runs_events",
				Columns:    []*schema.Column{RunEventsColumns[8]},
				RefColumns: []*schema.Column{QaRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_run_id_seq",
				Unique:  true,
				Columns: []*schema.Column{RunEventsColumns[8], RunEventsColumns[1]},
			},
			{
				Name:    "runevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[7]},
			},
		},
	}
	// RunPayloadsColumns holds the columns for the "run_payloads" table.
	RunPayloadsColumns = []*schema.Column{
		{Name: "payload_id", Type: field.TypeString, Unique: true},
		{Name: "body", Type: field.TypeBytes},
		{Name: "size_bytes", Type: field.TypeInt},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
	}
	// RunPayloadsTable holds the schema information for the "run_payloads" table.
	RunPayloadsTable = &schema.Table{
		Name:       "run_payloads",
		Columns:    RunPayloadsColumns,
		PrimaryKey: []*schema.Column{RunPayloadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_payloads_qa_runs_payload",
				Columns:    []*schema.Column{RunPayloadsColumns[5]},
				RefColumns: []*schema.Column{QaRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ScenariosColumns holds the columns for the "scenarios" table.
	ScenariosColumns = []*schema.Column{
		{Name: "scenario_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"ai_generated", "manual", "imported", "replayed", "fallback"}},
		{Name: "operation_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "ready", "invalid", "disabled"}, Default: "pending"},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "steps", Type: field.TypeJSON},
		{Name: "generation_attempts", Type: field.TypeInt, Default: 0},
		{Name: "failure_kinds", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// ScenariosTable holds the schema information for the "scenarios" table.
	ScenariosTable = &schema.Table{
		Name:       "scenarios",
		Columns:    ScenariosColumns,
		PrimaryKey: []*schema.Column{ScenariosColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scenarios_qa_runs_scenarios",
				Columns:    []*schema.Column{ScenariosColumns[14]},
				RefColumns: []*schema.Column{QaRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scenario_run_id_status",
				Unique:  false,
				Columns: []*schema.Column{ScenariosColumns[14], ScenariosColumns[5]},
			},
			{
				Name:    "scenario_run_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ScenariosColumns[14], ScenariosColumns[12]},
			},
		},
	}
	// StepResultsColumns holds the columns for the "step_results" table.
	StepResultsColumns = []*schema.Column{
		{Name: "step_result_id", Type: field.TypeString, Unique: true},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "method", Type: field.TypeString, Nullable: true},
		{Name: "endpoint", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"passed", "failed", "errored", "skipped"}},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "actual_status_code", Type: field.TypeInt, Nullable: true},
		{Name: "actual_headers", Type: field.TypeJSON, Nullable: true},
		{Name: "actual_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "body_digest", Type: field.TypeString, Nullable: true},
		{Name: "assertion_results", Type: field.TypeJSON, Nullable: true},
		{Name: "extracted", Type: field.TypeJSON, Nullable: true},
		{Name: "unresolved", Type: field.TypeJSON, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "scenario_id", Type: field.TypeString},
	}
	// StepResultsTable holds the schema information for the "step_results" table.
	StepResultsTable = &schema.Table{
		Name:       "step_results",
		Columns:    StepResultsColumns,
		PrimaryKey: []*schema.Column{StepResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "step_results_qa_runs_step_results",
				Columns:    []*schema.Column{StepResultsColumns[19]},
				RefColumns: []*schema.Column{QaRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "step_results_scenarios_step_results",
				Columns:    []*schema.Column{StepResultsColumns[20]},
				RefColumns: []*schema.Column{ScenariosColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stepresult_run_id_scenario_id_step_index",
				Unique:  true,
				Columns: []*schema.Column{StepResultsColumns[19], StepResultsColumns[20], StepResultsColumns[1]},
			},
			{
				Name:    "stepresult_run_id",
				Unique:  false,
				Columns: []*schema.Column{StepResultsColumns[19]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CoverageSnapshotsTable,
		QaRunsTable,
		QaSummariesTable,
		RunEventsTable,
		RunPayloadsTable,
		ScenariosTable,
		StepResultsTable,
	}
)

func init() {
	CoverageSnapshotsTable.ForeignKeys[0].RefTable = QaRunsTable
	QaSummariesTable.ForeignKeys[0].RefTable = QaRunsTable
	RunEventsTable.ForeignKeys[0].RefTable = QaRunsTable
	RunPayloadsTable.ForeignKeys[0].RefTable = QaRunsTable
	ScenariosTable.ForeignKeys[0].RefTable = QaRunsTable
	StepResultsTable.ForeignKeys[0].RefTable = QaRunsTable
	StepResultsTable.ForeignKeys[1].RefTable = ScenariosTable
}
