package ai

import (
	"fmt"
	"sort"
	"strings"

	"github.com/qawave/qawave/pkg/openapi"
)

// generationSystemPrompt is the system prompt for scenario generation.
const generationSystemPrompt = `You are an expert API QA engineer. You design executable multi-step test scenarios for HTTP APIs from a requirement and an OpenAPI specification.

You return ONLY a JSON array of scenario objects. No prose, no markdown fences. Each scenario object has:
- "name": short descriptive name (required)
- "description": one sentence on what the scenario verifies (optional)
- "operationId": the primary spec operation it exercises (optional)
- "steps": ordered array of step objects (required, at least one)

Each step object has:
- "index": 0-based position in the scenario
- "name": short step name
- "method": one of GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS
- "endpoint": request path from the spec, e.g. "/users/42"
- "headers": optional object of header name to value
- "body": optional JSON request body
- "expected": assertion object (required)
- "extractions": optional object mapping a variable name to a JSON path in the response body, e.g. {"userId": "$.id"}

The "expected" object has:
- "status": required; an exact code ("201") or a comparison (">=200", "<300", "!=500")
- "bodyFields": optional object mapping a JSON path ("$.user.id", "$.items[0].name") to an expected value
- "headers": optional object mapping a header name to an expected value

Expected values support these forms:
- "<any>": field must exist, any value
- a literal: exact match ("alice", "42", "true")
- "contains:X": string contains X, array contains element X, or object has key X
- "regex:PATTERN": full-string regular expression match
- ">N", ">=N", "<N", "<=N", "!=N": numeric comparison
- "${var}": equals a variable extracted by an EARLIER step

Placeholder rules:
- "${var}" anywhere in endpoint, headers, body, or expected values refers to a variable from an earlier step's "extractions"
- "${env.KEY}" refers to a run environment variable
- "${random.uuid}", "${random.email}", "${random.string}", "${random.int}" generate fresh values
- NEVER reference a variable that no earlier step extracts

CRITICAL RULES:
- Every step endpoint and method MUST correspond to an operation in the provided specification
- Chain steps realistically: create a resource, extract its id, then read, update, or delete it
- Cover failure paths (bad input, missing resource) as well as happy paths when the requirement asks for it
- Return ONLY the JSON array`

// generationUserTemplate is the user prompt for scenario generation.
// %s = requirement, %s = API surface, %s = environment block,
// %d = max scenarios, %d = max steps per scenario.
const generationUserTemplate = `## Requirement
%s

## API Specification
%s

%s## Limits
- At most %d scenarios
- At most %d steps per scenario

Generate the scenarios now. Return ONLY the JSON array.`

// correctionTemplate asks the provider to repair a rejected document.
// %s = bullet list of violations, %s = previous response.
const correctionTemplate = `Your previous response violated the scenario contract:

%s

Here is your previous response:

%s

Fix EVERY violation listed above and return the corrected JSON array. Return ONLY the JSON array, with no prose and no markdown fences.`

// narrativeSystemPrompt is the system prompt for run summary narratives.
const narrativeSystemPrompt = `You are an expert QA lead writing the summary paragraph of an API test report. Focus on clarity, brevity, and actionable information.`

// narrativeUserTemplate is the user prompt for run summary narratives.
// %s = run statistics block.
const narrativeUserTemplate = `Write a 2-4 sentence narrative for this API test run.

CRITICAL RULES:
- Only describe what the statistics show
- Name the most significant failures, if any
- Do NOT invent causes that are not visible in the data
- Plain text only, no headings or lists

Run statistics:

%s

Narrative (2-4 sentences, facts only):`

// BuildGenerationPrompt composes the system and user messages for the
// initial generation call. A focus set narrows the operations described to
// the provider; the rest of the document stays available for chaining.
func BuildGenerationPrompt(in GenerateInput) (system, user string) {
	doc := in.Doc
	if len(in.Focus) > 0 {
		view := *in.Doc
		view.Operations = in.Focus
		doc = &view
	}
	cfg := in.Config
	user = fmt.Sprintf(generationUserTemplate,
		strings.TrimSpace(in.Requirement),
		describeAPI(doc, in.BaseURL),
		describeEnvironment(in.Environment),
		cfg.ScenarioBudget(),
		cfg.MaxStepsPerScenario,
	)
	return generationSystemPrompt, user
}

// BuildCorrectionPrompt composes the follow-up user message after a failed
// verification, carrying every violation back to the provider.
func BuildCorrectionPrompt(previousResponse string, violations []string) string {
	var list strings.Builder
	for _, v := range violations {
		list.WriteString("- ")
		list.WriteString(v)
		list.WriteString("\n")
	}
	return fmt.Sprintf(correctionTemplate, strings.TrimSpace(list.String()), strings.TrimSpace(previousResponse))
}

// BuildNarrativePrompt composes the summary narrative request.
func BuildNarrativePrompt(statistics string) (system, user string) {
	return narrativeSystemPrompt, fmt.Sprintf(narrativeUserTemplate, strings.TrimSpace(statistics))
}

// describeAPI renders the spec surface the generator may target: title,
// version, base URL, and one line per operation.
func describeAPI(doc *openapi.Document, baseURL string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s (version %s)\n", doc.Title, doc.Version)
	fmt.Fprintf(&sb, "Base URL: %s\n", baseURL)
	sb.WriteString("Operations:\n")
	for _, op := range doc.Operations {
		fmt.Fprintf(&sb, "- %s %s", op.Method, op.Path)
		if op.OperationID != "" {
			fmt.Fprintf(&sb, " (operationId: %s)", op.OperationID)
		}
		if op.Summary != "" {
			fmt.Fprintf(&sb, ": %s", truncateLine(op.Summary, 120))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// describeEnvironment lists the names of available ${env.*} variables.
// Values never reach the prompt.
func describeEnvironment(environment map[string]string) string {
	if len(environment) == 0 {
		return ""
	}
	names := make([]string, 0, len(environment))
	for name := range environment {
		names = append(names, name)
	}
	sort.Strings(names)
	var sb strings.Builder
	sb.WriteString("## Environment Variables\nAvailable as ${env.NAME} (values are injected at execution time):\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "- %s\n", name)
	}
	sb.WriteString("\n")
	return sb.String()
}

func truncateLine(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
