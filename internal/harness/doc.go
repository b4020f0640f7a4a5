// Package harness runs resolver conformance scenarios.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: masft_core
//	description: "What this scenario validates"
//	catalog: ../catalogs/ties.json   # optional, relative to the scenario file
//	min_score: 1                     # optional
//	cases:
//	  - query: "agent goals conflict"
//	    expect:
//	      outcome: resolved
//	      entity: Inter-Agent Misalignment
//	      kind: failure_mode
//	      min_confidence: 10
//	  - query: "decision"
//	    expect:
//	      outcome: ambiguous
//	      candidates: [Decision Paralysis, Decision/Coordination Failures]
//
// Unknown fields are rejected.
//
// # Execution
//
// Every case is asked through educator.Service backed by an in-memory
// interaction log with a deterministic clock and IDs. Besides the per-case
// expectations, Run checks that the log holds one record per case, in
// order, consistent with the result of that case.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/masft.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.RunScenario(ctx, scenario)
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        fmt.Println(e)
//	    }
//	}
//
// Tests snapshot outcomes with AssertGolden. Regenerate with:
//
//	go test ./internal/harness -update
package harness
